package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lawyerup/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return newHub(&config.RealtimeConfig{SendBuffer: 4, WriteTimeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// dial connects userID to a test server fronting the hub.
func dial(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, userID)
	}))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.ConnectionCount(userID) > 0 }, time.Second, 10*time.Millisecond)

	return conn
}

func TestHub_SendToUser(t *testing.T) {
	hub := newTestHub()
	conn := dial(t, hub, "c1")

	queued := hub.SendToUser("c1", "notification", map[string]string{"message": "hello"})
	assert.Equal(t, 1, queued)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, frame, err := conn.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(frame, &got))
	assert.Equal(t, "notification", got.Event)
	assert.Equal(t, "hello", got.Data["message"])
}

func TestHub_SendToUnknownUser(t *testing.T) {
	hub := newTestHub()

	assert.Equal(t, 0, hub.SendToUser("nobody", "notification", "x"))
}

func TestHub_CloseDisconnects(t *testing.T) {
	hub := newTestHub()
	conn := dial(t, hub, "l1")

	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, hub.ConnectionCount("l1"))
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	hub := newTestHub()
	conn := dial(t, hub, "l2")

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.ConnectionCount("l2") == 0 }, 2*time.Second, 10*time.Millisecond)
}
