package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
)

// writeWait bounds a single push write. A peer that stops reading fails the
// write at the deadline instead of stalling the writer forever.
const writeWait = 10 * time.Second

// timedChannel is the hub-facing side of a connection; every write carries
// the deadline.
type timedChannel struct {
	conn *websocket.Conn
}

func (c *timedChannel) WriteJSON(v interface{}) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Handler upgrades HTTP requests to WebSocket push channels.
//
// Protocol: the first client message must be {"userId": "..."} and must
// arrive within the handshake timeout. Anything else closes the connection
// with a policy-violation status. Identity is self-asserted; there is no
// credential check.
type Handler struct {
	hub              *Hub
	upgrader         websocket.Upgrader
	handshakeTimeout time.Duration
}

func NewHandler(hub *Hub, handshakeTimeout time.Duration) *Handler {
	return &Handler{
		hub:              hub,
		handshakeTimeout: handshakeTimeout,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

func (h *Handler) Handle(c *ginext.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to upgrade connection")
		return
	}

	h.serve(conn)
}

func (h *Handler) serve(conn *websocket.Conn) {
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(h.handshakeTimeout))

	_, raw, err := conn.ReadMessage()
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("connection closed before handshake")
		return
	}

	var ident struct {
		UserID interface{} `json:"userId"`
	}
	if err := json.Unmarshal(raw, &ident); err != nil {
		h.reject(conn, "Invalid JSON")
		return
	}

	userID, ok := ident.UserID.(string)
	if !ok || userID == "" {
		h.reject(conn, "Missing userId")
		return
	}

	_ = conn.SetReadDeadline(time.Time{})

	ch := &timedChannel{conn: conn}
	h.hub.Register(userID, ch)
	defer h.hub.Unregister(userID, ch)

	zlog.Logger.Info().
		Str("user_id", userID).
		Int("connections", h.hub.Connections(userID)).
		Msg("websocket registered")

	// Drain until the client disconnects; the server never reads payloads
	// after the handshake.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			zlog.Logger.Info().Str("user_id", userID).Msg("websocket disconnected")
			return
		}
	}
}

func (h *Handler) reject(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}
