package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of a user action that may notify another user.
// The type set is open: follow, post and comment have dedicated message
// templates, anything else renders through the fallback template.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	ActorID   string          `json:"actorId"`
	TargetID  string          `json:"targetId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
