// Package feed pushes connection state and game events to websocket clients,
// e.g. a stream overlay.
package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"StageDJ/emulator"
	"StageDJ/processing"

	"github.com/gorilla/websocket"
	"github.com/sirkon/message"
)

const (
	writeWait   = time.Second
	clientQueue = 16
)

// Message is what clients receive, one JSON object per websocket message.
type Message struct {
	Type    string `json:"type"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Event   string `json:"event,omitempty"`
	Stage   *int   `json:"stage,omitempty"`
}

// Hub fans messages out to every connected client. Slow clients drop
// messages instead of blocking the poll loop.
type Hub struct {
	m        sync.Mutex
	clients  map[*client]struct{}
	last     *Message
	upgrader websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and keeps the client until it disconnects.
// New clients get the last connection state straight away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		message.Warningf("feed upgrade: %s", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientQueue)}

	h.m.Lock()
	h.clients[c] = struct{}{}
	if h.last != nil {
		if b, err := json.Marshal(h.last); err == nil {
			c.send <- b
		}
	}
	h.m.Unlock()

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) Connection(status emulator.ConnectionStatus, msg string) {
	m := Message{Type: "connection", Status: status.String(), Message: msg}

	h.m.Lock()
	h.last = &m
	h.m.Unlock()

	h.broadcast(m)
}

func (h *Hub) Event(e processing.Event) {
	m := Message{Type: "event", Event: e.String()}
	switch ev := e.(type) {
	case processing.GameJoin:
		stage := int(ev.Info.Stage)
		m.Event = "join"
		m.Stage = &stage
	case processing.GameLeave:
		m.Event = "leave"
	case processing.GamePause:
		m.Event = "pause"
	case processing.GameResume:
		m.Event = "resume"
	}
	h.broadcast(m)
}

// Clients is the number of connected clients.
func (h *Hub) Clients() int {
	h.m.Lock()
	defer h.m.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.m.Lock()
	defer h.m.Unlock()
	for c := range h.clients {
		h.drop(c)
	}
}

func (h *Hub) broadcast(m Message) {
	b, err := json.Marshal(m)
	if err != nil {
		message.Errorf("feed marshal: %s", err)
		return
	}

	h.m.Lock()
	defer h.m.Unlock()
	for c := range h.clients {
		select {
		case c.send <- b:
		default:
		}
	}
}

// readLoop discards client input and notices disconnects.
func (h *Hub) readLoop(c *client) {
	defer func() {
		h.m.Lock()
		h.drop(c)
		h.m.Unlock()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()

	for b := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}

// drop must be called with h.m held.
func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}
