package overlay

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The page is a local browser source; no cross-origin concerns.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server hosts the overlay page and its event socket, and doubles as the
// session's Display, Speech, and HypeTrain collaborators by translating
// every call into a broadcast event.
type Server struct {
	hub    *Hub
	router *mux.Router
}

// New builds the server. webDir is the directory holding index.html and
// its assets.
func New(webDir string) *Server {
	s := &Server{
		hub:    NewHub(),
		router: mux.NewRouter(),
	}
	s.router.HandleFunc("/ws", s.serveWS)
	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(webDir)))
	return s
}

// ListenAndServe blocks; run it on its own goroutine.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("overlay: serveWS() Upgrade()", err)
		return
	}
	s.hub.Register(conn)

	// The page never sends anything meaningful; read until it goes away so
	// close frames and pings are serviced.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.Unregister(conn)
				return
			}
		}
	}()
}

// Display

func (s *Server) ShowCounter(handle string) {
	s.hub.Broadcast(Event{Type: "counter_show", Handle: handle})
}

func (s *Server) HideCounter(handle string) {
	s.hub.Broadcast(Event{Type: "counter_hide", Handle: handle})
}

func (s *Server) FlashCounter(handle string) {
	s.hub.Broadcast(Event{Type: "counter_flash", Handle: handle})
}

func (s *Server) UpdateCounter(handle string, deleted int) {
	s.hub.Broadcast(Event{Type: "counter_update", Handle: handle, Count: deleted})
}

func (s *Server) LotteryCount(n int) {
	s.hub.Broadcast(Event{Type: "lottery_count", Count: n})
}

func (s *Server) ShowVoices(names []string) {
	s.hub.Broadcast(Event{Type: "voices_show", Voices: names})
}

func (s *Server) HideVoices() {
	s.hub.Broadcast(Event{Type: "voices_hide"})
}

// Speech

func (s *Server) Speak(voice string, volume float64, text string) {
	s.hub.Broadcast(Event{Type: "speak", Voice: voice, Volume: volume, Text: text})
}

func (s *Server) Skip() {
	s.hub.Broadcast(Event{Type: "tts_skip"})
}

// HypeTrain

func (s *Server) Trigger(force bool) {
	s.hub.Broadcast(Event{Type: "hype_train", Force: force})
}

// AnnounceWinners shows the drawn winners on the page.
func (s *Server) AnnounceWinners(names []string) {
	s.hub.Broadcast(Event{Type: "lottery_winners", Text: strings.Join(names, ", ")})
}
