package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides methods to interact with the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetDisplayName retrieves the display name for a user.
func (r *Repository) GetDisplayName(ctx context.Context, id string) (string, error) {
	query := `
		SELECT name
		FROM users
		WHERE id = $1;
    `

	var name string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}

		return "", fmt.Errorf("failed to get user name: %w", err)
	}

	return name, nil
}
