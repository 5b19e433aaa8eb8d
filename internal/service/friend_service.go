package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/internal/game"
	"github.com/adarkz/YellowCarGame-chef/internal/middleware"
	pb "github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1/yellowcarv1connect"
)

// FriendService implements the Connect FriendService.
type FriendService struct {
	yellowcarv1connect.UnimplementedFriendServiceHandler
	game *game.Game
}

// NewFriendService creates a FriendService on top of the game.
func NewFriendService(g *game.Game) *FriendService {
	return &FriendService{game: g}
}

// AddFriend befriends the user with the given email.
func (s *FriendService) AddFriend(ctx context.Context, req *connect.Request[pb.AddFriendRequest]) (*connect.Response[pb.AddFriendResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("AddFriend request received", "user_id", userID)

	friendship, err := s.game.AddFriend(ctx, userID, req.Msg.FriendEmail)
	if err != nil {
		return nil, gameError("AddFriend", err)
	}

	slog.Info("Friendship created", "user_id", userID, "friend_id", friendship.FriendID)
	return connect.NewResponse(&pb.AddFriendResponse{
		Friendship: &pb.Friendship{
			ID:        friendship.ID,
			UserID:    friendship.UserID,
			FriendID:  friendship.FriendID,
			Status:    string(friendship.Status),
			CreatedAt: friendship.CreatedAt,
		},
	}), nil
}

// GetFriends lists the caller's friends with their scores.
func (s *FriendService) GetFriends(ctx context.Context, req *connect.Request[pb.GetFriendsRequest]) (*connect.Response[pb.GetFriendsResponse], error) {
	friends, err := s.game.GetFriends(ctx, middleware.GetUserID(ctx))
	if err != nil {
		return nil, gameError("GetFriends", err)
	}

	resp := make([]*pb.Friend, len(friends))
	for i, friend := range friends {
		resp[i] = &pb.Friend{
			ID:          friend.ID,
			FriendID:    friend.FriendID,
			Email:       friend.Email,
			Status:      string(friend.Status),
			TotalPoints: friend.TotalPoints,
			TotalSpots:  friend.TotalSpots,
			CreatedAt:   friend.CreatedAt,
		}
	}
	return connect.NewResponse(&pb.GetFriendsResponse{Friends: resp}), nil
}
