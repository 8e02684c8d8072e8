package overlay

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestClient(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(s.router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// The server registers the client on its own goroutine; wait for it.
	deadline := time.Now().Add(2 * time.Second)
	for s.hub.Size() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, 1, s.hub.Size())
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestServerBroadcastsDisplayEvents(t *testing.T) {
	s := New(".")
	conn := dialTestClient(t, s)

	s.ShowCounter("delete_counter_42")
	event := readEvent(t, conn)
	assert.Equal(t, "counter_show", event.Type)
	assert.Equal(t, "delete_counter_42", event.Handle)

	s.UpdateCounter("delete_counter_42", 3)
	event = readEvent(t, conn)
	assert.Equal(t, "counter_update", event.Type)
	assert.Equal(t, 3, event.Count)

	s.LotteryCount(7)
	event = readEvent(t, conn)
	assert.Equal(t, "lottery_count", event.Type)
	assert.Equal(t, 7, event.Count)
}

func TestServerBroadcastsSpeechEvents(t *testing.T) {
	s := New(".")
	conn := dialTestClient(t, s)

	s.Speak("murphy", 0.2, "top of the morning")
	event := readEvent(t, conn)
	assert.Equal(t, "speak", event.Type)
	assert.Equal(t, "murphy", event.Voice)
	assert.Equal(t, 0.2, event.Volume)
	assert.Equal(t, "top of the morning", event.Text)

	s.Skip()
	assert.Equal(t, "tts_skip", readEvent(t, conn).Type)
}

func TestServerBroadcastsHypeTrain(t *testing.T) {
	s := New(".")
	conn := dialTestClient(t, s)

	s.Trigger(true)
	event := readEvent(t, conn)
	assert.Equal(t, "hype_train", event.Type)
	assert.True(t, event.Force)
}

func TestHubDropsDeadClients(t *testing.T) {
	s := New(".")
	conn := dialTestClient(t, s)

	conn.Close()
	// Two broadcasts: the first may hit the closing socket, the second must
	// see it gone.
	s.HideVoices()
	deadline := time.Now().Add(2 * time.Second)
	for s.hub.Size() > 0 && time.Now().Before(deadline) {
		s.HideVoices()
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 0, s.hub.Size())
}
