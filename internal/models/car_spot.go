package models

// PointsPerSpot is the flat reward for every submitted spot.
const PointsPerSpot = 1

// CarSpot is a single submission of a photographed yellow car.
// Spots are created once and never mutated or deleted.
type CarSpot struct {
	// ID is the unique identifier for the spot (time-ordered UUID).
	ID string `db:"id"`

	// UserID is the owner who submitted the spot.
	UserID string `db:"user_id"`

	// ImageID references the uploaded photo in the object store.
	ImageID string `db:"image_id"`

	// Points awarded for this spot. Always PointsPerSpot today.
	Points int64 `db:"points"`

	// Verified is reserved for future moderation. It is written as false
	// and never read by scoring.
	Verified bool `db:"verified"`

	// Description is the free-text note the user attached.
	Description string `db:"description"`

	// CreatedAt is the Unix timestamp when the spot was submitted.
	CreatedAt int64 `db:"created_at"`
}
