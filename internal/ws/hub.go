// Package ws holds the live push side of the service: the per-user
// connection registry and the WebSocket handshake handler. Registry state is
// process-local; durability comes from the notifications table, not from
// anything here.
package ws

import (
	"sync"
)

// Channel is the write side of one client connection. *websocket.Conn
// satisfies it.
type Channel interface {
	WriteJSON(v interface{}) error
}

// Hub maps a user ID to the set of that user's live channels. A user may
// hold several channels at once (multi-device). All state is rebuilt from
// scratch when the process restarts; clients are expected to reconnect.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[Channel]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[Channel]struct{})}
}

// Register adds a channel to the user's set, creating the set if absent.
func (h *Hub) Register(userID string, ch Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[userID]
	if !ok {
		set = make(map[Channel]struct{})
		h.clients[userID] = set
	}

	set[ch] = struct{}{}
}

// Unregister removes a channel from the user's set. The user entry itself is
// removed once the set empties, so churned users do not leak.
func (h *Hub) Unregister(userID string, ch Channel) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[userID]
	if !ok {
		return
	}

	delete(set, ch)

	if len(set) == 0 {
		delete(h.clients, userID)
	}
}

// Publish sends payload to every live channel registered for the user.
// Delivery is best-effort: channels that fail to write are skipped, no error
// is surfaced. A channel may close between lookup and write; that is not an
// error either.
//
// The channel set is snapshotted under the lock and the writes happen
// outside it, so a stalled peer cannot block registration or publishes to
// other users.
func (h *Hub) Publish(userID string, payload interface{}) {
	h.mu.Lock()
	channels := make([]Channel, 0, len(h.clients[userID]))
	for ch := range h.clients[userID] {
		channels = append(channels, ch)
	}
	h.mu.Unlock()

	for _, ch := range channels {
		_ = ch.WriteJSON(payload)
	}
}

// Connections reports how many live channels the user currently holds.
func (h *Hub) Connections(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients[userID])
}
