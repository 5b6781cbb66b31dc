package notification

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/event-notifier/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	createdAt := time.Now()
	n := model.Notification{
		UserID:  "u2",
		EventID: uuid.New(),
		Message: "Alice started following you.",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notifications (
		    user_id, event_id, message
		) VALUES ($1, $2, $3)
		RETURNING id, is_read, seen_at, created_at;
    `)).
		WithArgs(n.UserID, n.EventID, n.Message).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_read", "seen_at", "created_at"}).
			AddRow(notificationID, false, nil, createdAt))

	got, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, got.ID)
	assert.False(t, got.IsRead)
	assert.Nil(t, got.SeenAt)
	assert.Equal(t, n.Message, got.Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	n1 := model.Notification{
		ID:        uuid.New(),
		UserID:    "u2",
		EventID:   uuid.New(),
		Message:   "Alice published a new post.",
		CreatedAt: time.Now(),
	}
	n2 := model.Notification{
		ID:        uuid.New(),
		UserID:    "u2",
		EventID:   uuid.New(),
		Message:   "Bob started following you.",
		IsRead:    true,
		CreatedAt: time.Now().Add(-time.Minute),
	}

	rows := sqlmock.NewRows([]string{"id", "user_id", "event_id", "message", "is_read", "seen_at", "created_at"}).
		AddRow(n1.ID, n1.UserID, n1.EventID, n1.Message, n1.IsRead, nil, n1.CreatedAt).
		AddRow(n2.ID, n2.UserID, n2.EventID, n2.Message, n2.IsRead, nil, n2.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, user_id, event_id, message, is_read, seen_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
    `)).
		WithArgs("u2", 50).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), "u2", 50)
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, n1.ID, list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())

	// No rows is an empty list, not an error.
	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, user_id, event_id, message, is_read, seen_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
    `)).
		WithArgs("nobody", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "message", "is_read", "seen_at", "created_at"}))

	list, err = repo.ListByUser(context.Background(), "nobody", 50)
	assert.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	eventID := uuid.New()
	seenAt := time.Now()
	createdAt := seenAt.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE notifications
		SET is_read = TRUE,
		    seen_at = COALESCE(seen_at, NOW())
		WHERE id = $1
		RETURNING id, user_id, event_id, message, is_read, seen_at, created_at;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "message", "is_read", "seen_at", "created_at"}).
			AddRow(id, "u2", eventID, "Alice started following you.", true, seenAt, createdAt))

	got, err := repo.MarkRead(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.NotNil(t, got.SeenAt)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE notifications
		SET is_read = TRUE,
		    seen_at = COALESCE(seen_at, NOW())
		WHERE id = $1
		RETURNING id, user_id, event_id, message, is_read, seen_at, created_at;
    `)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.MarkRead(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
