// Package game implements the Yellow Car Game rules: submitting spots,
// keeping per-user scores, the leaderboard and mutual friendships.
//
// Every operation takes the caller's user ID explicitly. An empty ID means
// the caller is not authenticated: mutations fail with ErrUnauthenticated
// while queries return empty results.
//
// Mutations run inside a single storage transaction, which is what keeps
// scores consistent with spots and friendships symmetric under concurrent
// requests. The game adds no locking of its own.
package game

import (
	"context"

	"github.com/adarkz/YellowCarGame-chef/internal/storage"
)

const (
	// LeaderboardSize is how many scores the leaderboard shows.
	LeaderboardSize = 10

	// AnonymousName is shown on the leaderboard for users whose account
	// can no longer be found.
	AnonymousName = "Anonymous"
)

// ImageStore is the part of the object store the game depends on.
type ImageStore interface {
	// Exists reports whether an image was uploaded under ref.
	Exists(ctx context.Context, ref string) (bool, error)

	// ResolveURL returns a display URL for ref, or false if it has none.
	ResolveURL(ctx context.Context, ref string) (string, bool)
}

// Observer is told about committed mutations.
type Observer interface {
	SpotSubmitted(userID string)
	FriendshipCreated()
}

type nopObserver struct{}

func (nopObserver) SpotSubmitted(string) {}
func (nopObserver) FriendshipCreated()   {}

// Game runs the game operations against a store.
type Game struct {
	store    storage.Store
	images   ImageStore
	observer Observer
}

// Option configures a Game.
type Option func(*Game)

// WithObserver registers an observer for committed mutations.
func WithObserver(observer Observer) Option {
	return func(g *Game) {
		if observer != nil {
			g.observer = observer
		}
	}
}

// New creates a Game backed by store and images.
func New(store storage.Store, images ImageStore, opts ...Option) *Game {
	g := &Game{
		store:    store,
		images:   images,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
