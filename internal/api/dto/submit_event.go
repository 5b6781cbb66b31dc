package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type SubmitEventRequest struct {
	Type     string          `json:"type" validate:"required"`
	ActorID  string          `json:"actorId" validate:"required"`
	TargetID string          `json:"targetId" validate:"required"`
	Payload  json.RawMessage `json:"payload"`
}

type SubmitEventResponse struct {
	Success bool      `json:"success"`
	EventID uuid.UUID `json:"eventId"`
}
