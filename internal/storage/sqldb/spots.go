package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/adarkz/YellowCarGame-chef/internal/models"
)

// CreateCarSpot persists a new spot.
func (q *queries) CreateCarSpot(ctx context.Context, spot *models.CarSpot) error {
	if spot.ID == "" {
		spot.ID = newID()
	}
	if spot.CreatedAt == 0 {
		spot.CreatedAt = q.timestamp()
	}

	_, err := sqlx.NamedExecContext(ctx, q.ext, `
		INSERT INTO car_spots (id, user_id, image_id, points, verified, description, created_at)
		VALUES (:id, :user_id, :image_id, :points, :verified, :description, :created_at)`,
		spot,
	)
	if err != nil {
		return q.createError("car spot", err)
	}
	return nil
}

// ListCarSpotsByUser returns the user's spots in insertion order.
func (q *queries) ListCarSpotsByUser(ctx context.Context, userID string) ([]*models.CarSpot, error) {
	var spots []*models.CarSpot
	err := sqlx.SelectContext(ctx, q.ext, &spots, q.ext.Rebind(`
		SELECT id, user_id, image_id, points, verified, description, created_at
		FROM car_spots
		WHERE user_id = ?
		ORDER BY id`), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list car spots: %w", err)
	}
	return spots, nil
}
