package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/event-notifier/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification and returns the full record
// with server-generated fields populated.
func (r *Repository) CreateNotification(ctx context.Context, notification model.Notification) (model.Notification, error) {
	query := `
		INSERT INTO notifications (
		    user_id, event_id, message
		) VALUES ($1, $2, $3)
		RETURNING id, is_read, seen_at, created_at;
    `

	err := r.db.QueryRowContext(
		ctx, query, notification.UserID, notification.EventID, notification.Message,
	).Scan(&notification.ID, &notification.IsRead, &notification.SeenAt, &notification.CreatedAt)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

// ListByUser retrieves notifications for a user, newest first, capped at limit.
func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, event_id, message, is_read, seen_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.EventID, &n.Message, &n.IsRead, &n.SeenAt, &n.CreatedAt); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead marks a notification as read and returns the updated record.
// Reading is a terminal transition: seen_at keeps its first-set value on
// repeated calls.
func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE,
		    seen_at = COALESCE(seen_at, NOW())
		WHERE id = $1
		RETURNING id, user_id, event_id, message, is_read, seen_at, created_at;
    `

	var n model.Notification
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.UserID, &n.EventID, &n.Message, &n.IsRead, &n.SeenAt, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return n, nil
}
