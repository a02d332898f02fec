// Package realtime pushes events to users over websocket connections.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"lawyerup/config"
	"lawyerup/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Envelope is the frame written to a connection for every event.
type Envelope struct {
	Event  string    `json:"event"`
	Data   any       `json:"data"`
	SentAt time.Time `json:"sentAt"`
}

// Hub tracks open connections per user. A user may hold several connections.
type Hub struct {
	mu           sync.RWMutex
	clients      map[string]map[*client]struct{}
	closed       bool
	upgrader     websocket.Upgrader
	sendBuffer   int
	writeTimeout time.Duration
	logger       *slog.Logger
}

type client struct {
	hub    *Hub
	userID string
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
}

// HubParams holds dependencies for Hub, injected by Fx.
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewHub creates the hub and closes every connection on shutdown.
func NewHub(params HubParams) *Hub {
	hub := newHub(params.Config.Realtime, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()
			return nil
		},
	})

	return hub
}

// AsPublisher exposes the hub through the domain interface.
func AsPublisher(h *Hub) service.RealtimePublisher {
	return h
}

func newHub(cfg *config.RealtimeConfig, logger *slog.Logger) *Hub {
	sendBuffer, writeTimeout := 16, 10*time.Second
	if cfg != nil {
		if cfg.SendBuffer > 0 {
			sendBuffer = cfg.SendBuffer
		}
		if cfg.WriteTimeout > 0 {
			writeTimeout = cfg.WriteTimeout
		}
	}

	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		sendBuffer:   sendBuffer,
		writeTimeout: writeTimeout,
		logger:       logger,
	}
}

// Serve upgrades the request and blocks until the connection closes.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade failed")
	}

	c := &client{
		hub:    h,
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, h.sendBuffer),
	}
	if !h.register(c) {
		_ = conn.Close()
		return errors.New("realtime hub is closed")
	}

	h.logger.Debug("Realtime connection opened", slog.String("userID", userID))

	go c.writePump()
	c.readPump()

	return nil
}

// SendToUser queues the event on every connection of the user. A connection
// whose buffer is full is dropped.
func (h *Hub) SendToUser(userID, event string, payload any) int {
	frame, err := json.Marshal(Envelope{Event: event, Data: payload, SentAt: time.Now()})
	if err != nil {
		h.logger.Warn("Failed to encode realtime event", slog.String("event", event), slog.Any("error", err))
		return 0
	}

	h.mu.RLock()
	var (
		queued int
		slow   []*client
	)
	for c := range h.clients[userID] {
		select {
		case c.send <- frame:
			queued++
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow realtime connection", slog.String("userID", userID))
		h.unregister(c)
	}

	return queued
}

// ConnectionCount returns the number of open connections of a user.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[userID])
}

// Close disconnects everybody and refuses new connections.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	all := h.clients
	h.clients = make(map[string]map[*client]struct{})
	h.mu.Unlock()

	for _, set := range all {
		for c := range set {
			c.shutdown()
		}
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}

	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if set, ok := h.clients[c.userID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()

	c.shutdown()
}

// shutdown closes the send queue once; the write pump then closes the socket.
func (c *client) shutdown() {
	c.once.Do(func() { close(c.send) })
}

// readPump discards inbound frames and keeps the pong deadline fresh.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.hub.logger.Debug("Realtime connection closed", slog.String("userID", c.userID))
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("Realtime read error", slog.String("userID", c.userID), slog.Any("error", err))
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
