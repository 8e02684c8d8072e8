package overlay

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one overlay message pushed to every connected browser source.
type Event struct {
	Type   string   `json:"type"`
	Handle string   `json:"handle,omitempty"`
	Count  int      `json:"count,omitempty"`
	Text   string   `json:"text,omitempty"`
	Voice  string   `json:"voice,omitempty"`
	Volume float64  `json:"volume,omitempty"`
	Voices []string `json:"voices,omitempty"`
	Force  bool     `json:"force,omitempty"`
}

// Hub fans events out to the connected overlay pages. A dropped write
// unregisters the client; the page reconnects on its own.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	if h.clients[conn] {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

// Broadcast writes the event to every client. Failed clients are dropped
// in place so one dead browser source never wedges the rest.
func (h *Hub) Broadcast(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Println("overlay: Broadcast() WriteJSON()", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

func (h *Hub) Size() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
