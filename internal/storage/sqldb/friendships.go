package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/adarkz/YellowCarGame-chef/internal/models"
	"github.com/adarkz/YellowCarGame-chef/internal/storage"
)

const friendshipColumns = `id, user_id, friend_id, status, created_at`

// CreateFriendship inserts one direction of a friendship.
func (q *queries) CreateFriendship(ctx context.Context, friendship *models.Friendship) error {
	if !friendship.Status.Valid() {
		return fmt.Errorf("failed to create friendship: unknown status %q", friendship.Status)
	}
	if friendship.ID == "" {
		friendship.ID = newID()
	}
	if friendship.CreatedAt == 0 {
		friendship.CreatedAt = q.timestamp()
	}

	_, err := sqlx.NamedExecContext(ctx, q.ext, `
		INSERT INTO friendships (id, user_id, friend_id, status, created_at)
		VALUES (:id, :user_id, :friend_id, :status, :created_at)`,
		map[string]any{
			"id":         friendship.ID,
			"user_id":    friendship.UserID,
			"friend_id":  friendship.FriendID,
			"status":     string(friendship.Status),
			"created_at": friendship.CreatedAt,
		},
	)
	if err != nil {
		return q.createError("friendship", err)
	}
	return nil
}

// GetFriendship retrieves the (userID -> friendID) record.
func (q *queries) GetFriendship(ctx context.Context, userID, friendID string) (*models.Friendship, error) {
	friendship := &models.Friendship{}
	err := sqlx.GetContext(ctx, q.ext, friendship, q.ext.Rebind(`
		SELECT `+friendshipColumns+`
		FROM friendships
		WHERE user_id = ? AND friend_id = ?`), userID, friendID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("friendship %s -> %s: %w", userID, friendID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}
	return friendship, nil
}

// ListFriendshipsByOwner lists the user's friendships with the given status.
func (q *queries) ListFriendshipsByOwner(ctx context.Context, userID string, status models.FriendshipStatus) ([]*models.Friendship, error) {
	var friendships []*models.Friendship
	err := sqlx.SelectContext(ctx, q.ext, &friendships, q.ext.Rebind(`
		SELECT `+friendshipColumns+`
		FROM friendships
		WHERE user_id = ? AND status = ?
		ORDER BY id`), userID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	return friendships, nil
}
