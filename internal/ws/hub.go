// README: WebSocket hub; tracks live connections and fans events out by role.
package ws

import (
	"encoding/json"
	"log"
	"sync"

	"mishwar/internal/types"
)

// Session is one live connection as the rest of the system sees it: an
// opaque handle, the user behind it, its declared role, and a
// fire-and-forget send.
type Session interface {
	ConnID() string
	UserID() string
	Role() types.Role
	// Send enqueues one event for delivery. It reports false when the
	// message was dropped (slow or gone client); delivery is best-effort
	// and a failed send is never fatal.
	Send(event string, data any) bool
}

// Message is the wire envelope for every event in both directions.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MessageHandler processes one inbound event from a session.
type MessageHandler func(c *Client, event string, data json.RawMessage) error

// SessionHandler observes a session joining or leaving.
type SessionHandler func(c *Client)

// Hub is the connection registry. It only knows identities and roles;
// what to deliver to whom is decided by the caller per event.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]Session

	onMessage    MessageHandler
	onConnect    SessionHandler
	onDisconnect SessionHandler
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]Session)}
}

func (h *Hub) SetMessageHandler(fn MessageHandler)    { h.onMessage = fn }
func (h *Hub) SetConnectHandler(fn SessionHandler)    { h.onConnect = fn }
func (h *Hub) SetDisconnectHandler(fn SessionHandler) { h.onDisconnect = fn }

// Register adds a session to the broadcast domain.
func (h *Hub) Register(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[s.ConnID()] = s
	log.Printf("ws: client connected conn=%s user=%s role=%s", s.ConnID(), s.UserID(), s.Role())
}

// Unregister removes a session. Removing an unknown session is a no-op.
func (h *Hub) Unregister(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[s.ConnID()]; !ok {
		return
	}
	delete(h.clients, s.ConnID())
	if c, ok := s.(*Client); ok {
		c.closeSend()
	}
	log.Printf("ws: client disconnected conn=%s user=%s", s.ConnID(), s.UserID())
}

// Broadcast delivers one event to every registered session.
func (h *Hub) Broadcast(event string, data any) {
	h.BroadcastRoles(event, data, types.RoleDriver, types.RolePassenger, types.RoleAdmin)
}

// BroadcastRoles delivers one event to every session holding one of the
// given roles. Drops for individual sessions are logged, not returned.
func (h *Hub) BroadcastRoles(event string, data any, roles ...types.Role) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.clients {
		if !roleIn(s.Role(), roles) {
			continue
		}
		if !s.Send(event, data) {
			log.Printf("ws: dropped %s for conn=%s", event, s.ConnID())
		}
	}
}

// SendToUser delivers one event to every session of the given user and
// reports whether at least one delivery was enqueued.
func (h *Hub) SendToUser(userID string, event string, data any) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sent := false
	for _, s := range h.clients {
		if s.UserID() != userID {
			continue
		}
		if s.Send(event, data) {
			sent = true
		}
	}
	return sent
}

// Len reports the number of registered sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func roleIn(r types.Role, roles []types.Role) bool {
	for _, want := range roles {
		if r == want {
			return true
		}
	}
	return false
}
