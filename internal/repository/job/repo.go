package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/event-notifier/internal/model"
)

var ErrJobNotFound = errors.New("delivery job not found")

// Repository provides methods to interact with the delivery_jobs table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery job repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateJob inserts a pending delivery job and returns its ID.
func (r *Repository) CreateJob(ctx context.Context, j model.DeliveryJob) (uuid.UUID, error) {
	query := `
		INSERT INTO delivery_jobs (
		    event_id, target_id
		) VALUES ($1, $2)
		RETURNING id;
    `

	err := r.db.QueryRowContext(ctx, query, j.EventID, j.TargetID).Scan(&j.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create delivery job: %w", err)
	}

	return j.ID, nil
}

// MarkActive marks a job as claimed by a worker execution.
func (r *Repository) MarkActive(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE delivery_jobs
		SET status = 'active', updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id)
}

// MarkCompleted marks a job as completed with its final attempt count.
func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID, attempts int) error {
	query := `
		UPDATE delivery_jobs
		SET status = 'completed', attempts = $2, last_error = NULL, updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id, attempts)
}

// MarkFailed marks a job as failed-terminal after retry exhaustion.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, reason string) error {
	query := `
		UPDATE delivery_jobs
		SET status = 'failed', attempts = $2, last_error = $3, updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id, attempts, reason)
}

func (r *Repository) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update delivery job: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}
