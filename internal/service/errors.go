package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/internal/game"
	"github.com/adarkz/YellowCarGame-chef/internal/storage"
	pb "github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
)

// gameError translates a game error into a Connect error. Errors from a
// transaction that lost a race with a concurrent one become CodeAborted so
// callers can retry. Everything else is CodeInternal. Both keep the original
// error.
func gameError(op string, err error) error {
	switch {
	case errors.Is(err, game.ErrUnauthenticated):
		return pb.NewError(connect.CodeUnauthenticated, pb.ReasonUnauthenticated, game.ErrUnauthenticated)
	case errors.Is(err, game.ErrUserNotFound):
		return pb.NewError(connect.CodeNotFound, pb.ReasonUserNotFound, game.ErrUserNotFound)
	case errors.Is(err, game.ErrSelfFriendship):
		return pb.NewError(connect.CodeInvalidArgument, pb.ReasonSelfFriendship, game.ErrSelfFriendship)
	case errors.Is(err, game.ErrAlreadyFriends):
		return pb.NewError(connect.CodeAlreadyExists, pb.ReasonAlreadyFriends, game.ErrAlreadyFriends)
	case errors.Is(err, game.ErrInvalidImage):
		return pb.NewError(connect.CodeInvalidArgument, pb.ReasonInvalidImage, game.ErrInvalidImage)
	case errors.Is(err, storage.ErrConflict), errors.Is(err, storage.ErrAlreadyExists):
		slog.Warn(op+" conflicted", "error", err)
		return connect.NewError(connect.CodeAborted, err)
	default:
		slog.Error(op+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
