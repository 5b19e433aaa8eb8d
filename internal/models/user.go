package models

import "strings"

// User represents a registered account.
//
// Users are owned by the identity provider. The game core only reads them,
// to resolve friends by email and to decorate the leaderboard.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `db:"id"`

	// Email is the user's email address (unique, stored lower-cased).
	// Used for login and to find friends.
	Email string `db:"email"`

	// Name is the optional display name.
	Name string `db:"name"`

	// Image is an optional avatar URL. Empty when the user has none.
	Image string `db:"image"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `db:"password_hash"`

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64 `db:"created_at"`

	// UpdatedAt is the Unix timestamp of the last account change.
	UpdatedAt int64 `db:"updated_at"`
}

// NormalizeEmail returns the canonical form emails are stored and looked up
// in: trimmed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
