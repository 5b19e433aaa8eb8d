package models

// UserScore holds the running totals for one user.
// It is created lazily on the user's first spot and only ever incremented.
type UserScore struct {
	// ID is the unique identifier for the score row (UUID format).
	ID string `db:"id"`

	// UserID is the owner. Unique across all scores.
	UserID string `db:"user_id"`

	// TotalPoints is the sum of Points over the user's spots.
	TotalPoints int64 `db:"total_points"`

	// TotalSpots is the number of spots the user has submitted.
	TotalSpots int64 `db:"total_spots"`

	// UpdatedAt is the Unix timestamp of the last increment.
	UpdatedAt int64 `db:"updated_at"`
}

// AddSpot credits one more spot worth points.
func (s *UserScore) AddSpot(points int64) {
	s.TotalPoints += points
	s.TotalSpots++
}
