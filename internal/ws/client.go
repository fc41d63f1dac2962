// README: One WebSocket connection: upgrade, identity, read/write pumps.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mishwar/internal/types"
)

const (
	// pingInterval is how often the server pings the client.
	pingInterval = 30 * time.Second
	// pongWait is how long a client may stay silent before the
	// connection is considered dead.
	pongWait = 60 * time.Second
	// writeWait bounds a single write to the peer.
	writeWait = 10 * time.Second
	// maxMessageSize caps inbound messages at 8 KB.
	maxMessageSize = 8192
	// sendBuffer is the per-client outbound queue length.
	sendBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// No origin check; clients connect from file:// during development.
		return true
	},
}

// Client is a live WebSocket session. It implements Session.
type Client struct {
	id     string
	userID string
	role   types.Role

	conn *websocket.Conn
	hub  *Hub

	sendMu sync.Mutex
	closed bool
	send   chan []byte
}

func (c *Client) ConnID() string   { return c.id }
func (c *Client) UserID() string   { return c.userID }
func (c *Client) Role() types.Role { return c.role }

// Send marshals one event envelope and enqueues it. A full queue or an
// already-closed session drops the message and reports false.
func (c *Client) Send(event string, data any) bool {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("ws: marshal %s for conn=%s: %v", event, c.id, err)
		return false
	}
	msg, err := json.Marshal(Message{Type: event, Data: payload})
	if err != nil {
		return false
	}

	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// ServeWS upgrades an HTTP request into a registered session. The client
// declares its identity in the query string: /ws?role=driver&user_id=d1.
// There is no authentication; the declared identity is trusted.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	role, ok := types.ParseRole(r.URL.Query().Get("role"))
	if !ok {
		http.Error(w, "unknown role", http.StatusBadRequest)
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "missing user_id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:     uuid.NewString(),
		userID: userID,
		role:   role,
		conn:   conn,
		hub:    h,
		send:   make(chan []byte, sendBuffer),
	}

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	h.handleConnect(client)

	go client.writePump()
	go client.readPump()
}

func (h *Hub) handleConnect(c *Client) {
	if h.onConnect != nil {
		h.onConnect(c)
		return
	}
	h.Register(c)
}

func (h *Hub) handleDisconnect(c *Client) {
	if h.onDisconnect != nil {
		h.onDisconnect(c)
		return
	}
	h.Unregister(c)
}

// readPump delivers inbound events to the hub's message handler, in
// arrival order, until the connection dies. A handler error only concerns
// the event that caused it; the connection lives on.
func (c *Client) readPump() {
	defer func() {
		c.hub.handleDisconnect(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("ws: read conn=%s: %v", c.id, err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("ws: bad frame from conn=%s: %v", c.id, err)
			continue
		}

		if c.hub.onMessage != nil {
			if err := c.hub.onMessage(c, msg.Type, msg.Data); err != nil {
				log.Printf("ws: event %s from conn=%s rejected: %v", msg.Type, c.id, err)
			}
		}
	}
}

// writePump owns all writes to the connection: queued events and pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
