package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/event-notifier/internal/model"
)

var ErrEventNotFound = errors.New("event not found")

// Repository provides methods to interact with the events table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new event repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateEvent inserts a new event and returns its ID.
func (r *Repository) CreateEvent(ctx context.Context, event model.Event) (uuid.UUID, error) {
	query := `
		INSERT INTO events (
		    type, actor_id, target_id, payload
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, event.Type, event.ActorID, event.TargetID, []byte(event.Payload),
	).Scan(&event.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event.ID, nil
}

// GetEventByID retrieves a single event by its ID.
func (r *Repository) GetEventByID(ctx context.Context, id uuid.UUID) (model.Event, error) {
	query := `
		SELECT id, type, actor_id, target_id, payload, created_at
		FROM events
		WHERE id = $1;
    `

	var ev model.Event
	var payload []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ev.ID, &ev.Type, &ev.ActorID, &ev.TargetID, &payload, &ev.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, ErrEventNotFound
		}

		return model.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	ev.Payload = payload

	return ev, nil
}
