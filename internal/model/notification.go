package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"userId"`
	EventID   uuid.UUID  `json:"eventId"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"isRead"`
	SeenAt    *time.Time `json:"seenAt"`
	CreatedAt time.Time  `json:"createdAt"`
}
