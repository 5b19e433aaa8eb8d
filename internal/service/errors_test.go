package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/internal/game"
	"github.com/adarkz/YellowCarGame-chef/internal/middleware"
	"github.com/adarkz/YellowCarGame-chef/internal/storage"
	pb "github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
)

// failingStore fails every transaction with err. Other methods are not
// reached by SubmitSpot and AddFriend.
type failingStore struct {
	storage.Store
	err error
}

func (s failingStore) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	return s.err
}

// knownImages accepts every image reference.
type knownImages struct{}

func (knownImages) Exists(context.Context, string) (bool, error) { return true, nil }

func (knownImages) ResolveURL(_ context.Context, ref string) (string, bool) {
	return "https://img.test/" + ref, true
}

func TestGameErrorKeepsPersistenceFailures(t *testing.T) {
	serialization := errors.New("pq: could not serialize access due to concurrent update")
	diskFull := errors.New("disk I/O error")

	tests := []struct {
		name  string
		err   error
		code  connect.Code
		cause error
	}{
		{
			name:  "serialization conflict",
			err:   fmt.Errorf("%w: %w", storage.ErrConflict, fmt.Errorf("failed to commit transaction: %w", serialization)),
			code:  connect.CodeAborted,
			cause: serialization,
		},
		{
			name:  "concurrent first score",
			err:   fmt.Errorf("failed to create user score: %w", storage.ErrAlreadyExists),
			code:  connect.CodeAborted,
			cause: storage.ErrAlreadyExists,
		},
		{
			name:  "other failure",
			err:   fmt.Errorf("failed to begin transaction: %w", diskFull),
			code:  connect.CodeInternal,
			cause: diskFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gameError("SubmitCar", tt.err)
			if got := connect.CodeOf(err); got != tt.code {
				t.Errorf("expected code %v, got %v", tt.code, got)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("expected error to wrap %v, got %v", tt.cause, err)
			}
			var connectErr *connect.Error
			if !errors.As(err, &connectErr) || connectErr.Message() != tt.err.Error() {
				t.Errorf("expected message %q, got %v", tt.err.Error(), err)
			}
		})
	}
}

func TestHandlersSurfaceStoreConflicts(t *testing.T) {
	serialization := errors.New("pq: could not serialize access due to read/write dependencies")
	store := failingStore{err: fmt.Errorf("%w: %w", storage.ErrConflict, serialization)}
	g := game.New(store, knownImages{})
	ctx := middleware.WithUser(context.Background(), "user-1")

	_, err := NewCarService(g, nil).SubmitCar(ctx, connect.NewRequest(&pb.SubmitCarRequest{ImageID: "img"}))
	if connect.CodeOf(err) != connect.CodeAborted {
		t.Errorf("SubmitCar: expected aborted, got %v", err)
	}
	if !errors.Is(err, serialization) {
		t.Errorf("SubmitCar: expected driver error in chain, got %v", err)
	}

	_, err = NewFriendService(g).AddFriend(ctx, connect.NewRequest(&pb.AddFriendRequest{FriendEmail: "bob@example.com"}))
	if connect.CodeOf(err) != connect.CodeAborted {
		t.Errorf("AddFriend: expected aborted, got %v", err)
	}

	broken := failingStore{err: errors.New("database is closed")}
	_, err = NewCarService(game.New(broken, knownImages{}), nil).
		SubmitCar(ctx, connect.NewRequest(&pb.SubmitCarRequest{ImageID: "img"}))
	if connect.CodeOf(err) != connect.CodeInternal {
		t.Errorf("expected internal, got %v", err)
	}
	if !errors.Is(err, broken.err) {
		t.Errorf("expected original error in chain, got %v", err)
	}
}
