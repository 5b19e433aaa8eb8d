// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/adarkz/YellowCarGame-chef/internal/models"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
var ErrAlreadyExists = errors.New("record already exists")

// ErrConflict marks a transaction the database aborted because of a
// concurrent transaction (serialization failure, deadlock, busy database).
// The driver error stays in the chain. Retrying the operation may succeed.
var ErrConflict = errors.New("transaction conflict")

// Reader defines the lookups the game and the identity provider need.
type Reader interface {
	// GetUserByID returns ErrNotFound when no user has the given ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail returns ErrNotFound when no user has the given email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUsersByIDs returns a map of user ID to user.
	// Users that don't exist are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// ListCarSpotsByUser returns every spot owned by userID in insertion order.
	ListCarSpotsByUser(ctx context.Context, userID string) ([]*models.CarSpot, error)

	// GetScoreByUser returns ErrNotFound when the user has no score yet.
	GetScoreByUser(ctx context.Context, userID string) (*models.UserScore, error)

	// GetScoresByUsers returns a map of user ID to score.
	// Users without a score are omitted from the result.
	GetScoresByUsers(ctx context.Context, userIDs []string) (map[string]*models.UserScore, error)

	// ListTopScores returns at most limit scores ordered by TotalPoints
	// descending, ties broken by ascending UserID.
	ListTopScores(ctx context.Context, limit int) ([]*models.UserScore, error)

	// GetFriendship returns the (userID -> friendID) record or ErrNotFound.
	GetFriendship(ctx context.Context, userID, friendID string) (*models.Friendship, error)

	// ListFriendshipsByOwner returns the records owned by userID with the
	// given status.
	ListFriendshipsByOwner(ctx context.Context, userID string, status models.FriendshipStatus) ([]*models.Friendship, error)
}

// Writer defines the mutations. Create methods fill in empty IDs and zero
// timestamps, and return an error wrapping ErrAlreadyExists on a uniqueness
// violation.
type Writer interface {
	CreateUser(ctx context.Context, user *models.User) error
	CreateCarSpot(ctx context.Context, spot *models.CarSpot) error
	CreateScore(ctx context.Context, score *models.UserScore) error

	// UpdateScore overwrites the totals of an existing score.
	// Returns ErrNotFound if the score does not exist.
	UpdateScore(ctx context.Context, score *models.UserScore) error

	CreateFriendship(ctx context.Context, friendship *models.Friendship) error
}

// Tx is the view of the store inside a transaction.
type Tx interface {
	Reader
	Writer
}

// Store defines the interface for game storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	Reader
	Writer

	// InTx runs fn inside a single database transaction. The transaction
	// commits only if fn returns nil; otherwise it rolls back and fn's error
	// is returned. Errors the backend reports as a conflict with another
	// transaction, from fn or from the commit, are also matched by
	// ErrConflict.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}
