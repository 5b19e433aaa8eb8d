package models

// FriendshipStatus is the state of one directional friendship record.
type FriendshipStatus string

const (
	// FriendshipPending is modeled for a future approval workflow.
	// Nothing produces it today.
	FriendshipPending FriendshipStatus = "pending"

	// FriendshipAccepted is the state every friendship is created in.
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Valid reports whether s is a known status.
func (s FriendshipStatus) Valid() bool {
	return s == FriendshipPending || s == FriendshipAccepted
}

// Friendship is one direction of a mutual friendship. A mutual friendship
// is stored as two records, (UserID -> FriendID) and (FriendID -> UserID).
type Friendship struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `db:"id"`

	// UserID is the owner of this direction.
	UserID string `db:"user_id"`

	// FriendID is the user the owner is friends with.
	FriendID string `db:"friend_id"`

	// Status of this direction.
	Status FriendshipStatus `db:"status"`

	// CreatedAt is the Unix timestamp when the pair was created.
	CreatedAt int64 `db:"created_at"`
}

// Reverse returns the opposite direction of f with the same status and
// timestamp and an empty ID.
func (f Friendship) Reverse() Friendship {
	return Friendship{
		UserID:    f.FriendID,
		FriendID:  f.UserID,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}
