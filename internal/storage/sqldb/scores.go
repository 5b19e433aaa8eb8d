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

const scoreColumns = `id, user_id, total_points, total_spots, updated_at`

// CreateScore inserts the first score row for a user.
func (q *queries) CreateScore(ctx context.Context, score *models.UserScore) error {
	if score.ID == "" {
		score.ID = newID()
	}
	if score.UpdatedAt == 0 {
		score.UpdatedAt = q.timestamp()
	}

	_, err := sqlx.NamedExecContext(ctx, q.ext, `
		INSERT INTO user_scores (id, user_id, total_points, total_spots, updated_at)
		VALUES (:id, :user_id, :total_points, :total_spots, :updated_at)`,
		score,
	)
	if err != nil {
		return q.createError("user score", err)
	}
	return nil
}

// UpdateScore writes new totals for an existing score row.
func (q *queries) UpdateScore(ctx context.Context, score *models.UserScore) error {
	score.UpdatedAt = q.timestamp()

	result, err := sqlx.NamedExecContext(ctx, q.ext, `
		UPDATE user_scores
		SET total_points = :total_points, total_spots = :total_spots, updated_at = :updated_at
		WHERE id = :id`,
		score,
	)
	if err != nil {
		return fmt.Errorf("failed to update user score: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated user score: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user score %s: %w", score.ID, storage.ErrNotFound)
	}
	return nil
}

// GetScoreByUser retrieves the score row owned by userID.
func (q *queries) GetScoreByUser(ctx context.Context, userID string) (*models.UserScore, error) {
	score := &models.UserScore{}
	err := sqlx.GetContext(ctx, q.ext, score,
		q.ext.Rebind(`SELECT `+scoreColumns+` FROM user_scores WHERE user_id = ?`), userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("score for user %s: %w", userID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user score: %w", err)
	}
	return score, nil
}

// GetScoresByUsers retrieves the scores of several users at once.
func (q *queries) GetScoresByUsers(ctx context.Context, userIDs []string) (map[string]*models.UserScore, error) {
	scores := make(map[string]*models.UserScore, len(userIDs))
	if len(userIDs) == 0 {
		return scores, nil
	}

	query, args, err := sqlx.In(`SELECT `+scoreColumns+` FROM user_scores WHERE user_id IN (?)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build scores query: %w", err)
	}

	var rows []*models.UserScore
	if err := sqlx.SelectContext(ctx, q.ext, &rows, q.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get user scores: %w", err)
	}
	for _, score := range rows {
		scores[score.UserID] = score
	}
	return scores, nil
}

// ListTopScores returns the highest scores, ties broken by user ID.
func (q *queries) ListTopScores(ctx context.Context, limit int) ([]*models.UserScore, error) {
	var scores []*models.UserScore
	err := sqlx.SelectContext(ctx, q.ext, &scores, q.ext.Rebind(`
		SELECT `+scoreColumns+`
		FROM user_scores
		ORDER BY total_points DESC, user_id ASC
		LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top scores: %w", err)
	}
	return scores, nil
}
