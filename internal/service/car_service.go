package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/adarkz/YellowCarGame-chef/internal/blob"
	"github.com/adarkz/YellowCarGame-chef/internal/game"
	"github.com/adarkz/YellowCarGame-chef/internal/middleware"
	"github.com/adarkz/YellowCarGame-chef/internal/models"
	pb "github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1"
	"github.com/adarkz/YellowCarGame-chef/pkg/api/yellowcarv1/yellowcarv1connect"
)

// UploadTargets issues upload URLs for images.
type UploadTargets interface {
	CreateTarget(userID string) (blob.Target, error)
}

// CarService implements the Connect CarService.
type CarService struct {
	yellowcarv1connect.UnimplementedCarServiceHandler
	game    *game.Game
	uploads UploadTargets
}

// NewCarService creates a CarService on top of the game and upload targets.
func NewCarService(g *game.Game, uploads UploadTargets) *CarService {
	return &CarService{game: g, uploads: uploads}
}

// GenerateUploadUrl hands the caller a single-use URL to upload a photo to.
func (s *CarService) GenerateUploadUrl(ctx context.Context, req *connect.Request[pb.GenerateUploadUrlRequest]) (*connect.Response[pb.GenerateUploadUrlResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, gameError("GenerateUploadUrl", game.ErrUnauthenticated)
	}

	target, err := s.uploads.CreateTarget(userID)
	if err != nil {
		return nil, gameError("GenerateUploadUrl", err)
	}

	slog.Info("Upload URL issued", "user_id", userID, "storage_id", target.StorageID)
	return connect.NewResponse(&pb.GenerateUploadUrlResponse{
		UploadURL: target.URL,
		StorageID: target.StorageID,
		ExpiresAt: target.ExpiresAt.Unix(),
	}), nil
}

// SubmitCar records a spot for the caller.
func (s *CarService) SubmitCar(ctx context.Context, req *connect.Request[pb.SubmitCarRequest]) (*connect.Response[pb.SubmitCarResponse], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("SubmitCar request received", "user_id", userID, "image_id", req.Msg.ImageID)

	spot, score, err := s.game.SubmitSpot(ctx, userID, req.Msg.ImageID, req.Msg.Description)
	if err != nil {
		return nil, gameError("SubmitCar", err)
	}

	slog.Info("Spot recorded", "user_id", userID, "spot_id", spot.ID, "total_points", score.TotalPoints)
	return connect.NewResponse(&pb.SubmitCarResponse{
		Spot:  toCarSpot(spot, ""),
		Score: toScore(score),
	}), nil
}

// GetCarSpots lists the caller's spots, oldest first.
func (s *CarService) GetCarSpots(ctx context.Context, req *connect.Request[pb.GetCarSpotsRequest]) (*connect.Response[pb.GetCarSpotsResponse], error) {
	spots, err := s.game.ListSpots(ctx, middleware.GetUserID(ctx))
	if err != nil {
		return nil, gameError("GetCarSpots", err)
	}

	resp := make([]*pb.CarSpot, len(spots))
	for i := range spots {
		resp[i] = toCarSpot(&spots[i].CarSpot, spots[i].ImageURL)
	}
	return connect.NewResponse(&pb.GetCarSpotsResponse{Spots: resp}), nil
}

// GetLeaderboard returns the top scores. It does not require a caller.
func (s *CarService) GetLeaderboard(ctx context.Context, req *connect.Request[pb.GetLeaderboardRequest]) (*connect.Response[pb.GetLeaderboardResponse], error) {
	entries, err := s.game.Leaderboard(ctx)
	if err != nil {
		return nil, gameError("GetLeaderboard", err)
	}

	resp := make([]*pb.LeaderboardEntry, len(entries))
	for i, entry := range entries {
		resp[i] = &pb.LeaderboardEntry{
			UserID:      entry.UserID,
			TotalPoints: entry.TotalPoints,
			TotalSpots:  entry.TotalSpots,
			Username:    entry.Username,
			Image:       entry.Image,
		}
	}
	return connect.NewResponse(&pb.GetLeaderboardResponse{Entries: resp}), nil
}

// GetMyScore returns the caller's totals.
func (s *CarService) GetMyScore(ctx context.Context, req *connect.Request[pb.GetMyScoreRequest]) (*connect.Response[pb.GetMyScoreResponse], error) {
	score, err := s.game.MyScore(ctx, middleware.GetUserID(ctx))
	if err != nil {
		return nil, gameError("GetMyScore", err)
	}
	return connect.NewResponse(&pb.GetMyScoreResponse{Score: toScore(score)}), nil
}

func toCarSpot(spot *models.CarSpot, imageURL string) *pb.CarSpot {
	return &pb.CarSpot{
		ID:          spot.ID,
		UserID:      spot.UserID,
		ImageID:     spot.ImageID,
		ImageURL:    imageURL,
		Points:      spot.Points,
		Verified:    spot.Verified,
		Description: spot.Description,
		CreatedAt:   spot.CreatedAt,
	}
}

func toScore(score *models.UserScore) *pb.Score {
	return &pb.Score{
		UserID:      score.UserID,
		TotalPoints: score.TotalPoints,
		TotalSpots:  score.TotalSpots,
	}
}
