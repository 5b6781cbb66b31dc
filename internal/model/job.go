package model

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus tracks a delivery job through its lifecycle. Jobs never move
// out of completed or failed.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusActive    JobStatus = "active"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// DeliveryJob is the bookkeeping row for one "render and deliver one
// notification for one event/target pair" unit of work. The row mirrors the
// broker message for observability; the broker owns scheduling.
type DeliveryJob struct {
	ID          uuid.UUID `json:"id"`
	EventID     uuid.UUID `json:"eventId"`
	TargetID    string    `json:"targetId"`
	Status      JobStatus `json:"status"`
	Attempts    int       `json:"attempts"`
	LastError   *string   `json:"lastError,omitempty"`
	ScheduledAt time.Time `json:"scheduledAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
