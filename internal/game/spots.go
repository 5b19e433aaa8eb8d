package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adarkz/YellowCarGame-chef/internal/models"
	"github.com/adarkz/YellowCarGame-chef/internal/storage"
)

// Spot is a CarSpot with its image resolved to a display URL.
type Spot struct {
	models.CarSpot

	// ImageURL is empty when the object store cannot resolve the image.
	ImageURL string
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	UserID      string
	TotalPoints int64
	TotalSpots  int64

	// Username is the owner's email, or AnonymousName.
	Username string

	// Image is the owner's avatar URL, if any.
	Image string
}

// SubmitSpot records a new spot for userID and credits their score.
//
// The spot insert and the score increment (or creation on the first spot)
// commit together, so TotalSpots always equals the number of spots.
func (g *Game) SubmitSpot(ctx context.Context, userID, imageRef, description string) (*models.CarSpot, *models.UserScore, error) {
	if userID == "" {
		return nil, nil, ErrUnauthenticated
	}

	imageRef = strings.TrimSpace(imageRef)
	if imageRef == "" {
		return nil, nil, ErrInvalidImage
	}
	ok, err := g.images.Exists(ctx, imageRef)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check image: %w", err)
	}
	if !ok {
		return nil, nil, ErrInvalidImage
	}

	spot := &models.CarSpot{
		UserID:      userID,
		ImageID:     imageRef,
		Points:      models.PointsPerSpot,
		Verified:    false,
		Description: description,
	}

	var score *models.UserScore
	err = g.store.InTx(ctx, func(tx storage.Tx) error {
		if err := tx.CreateCarSpot(ctx, spot); err != nil {
			return err
		}

		existing, err := tx.GetScoreByUser(ctx, userID)
		switch {
		case err == nil:
			existing.AddSpot(spot.Points)
			if err := tx.UpdateScore(ctx, existing); err != nil {
				return err
			}
			score = existing
			return nil
		case errors.Is(err, storage.ErrNotFound):
			score = &models.UserScore{UserID: userID}
			score.AddSpot(spot.Points)
			return tx.CreateScore(ctx, score)
		default:
			return err
		}
	})
	if err != nil {
		return nil, nil, err
	}

	g.observer.SpotSubmitted(userID)
	return spot, score, nil
}

// ListSpots returns the caller's spots in submission order.
func (g *Game) ListSpots(ctx context.Context, userID string) ([]Spot, error) {
	if userID == "" {
		return []Spot{}, nil
	}

	spots, err := g.store.ListCarSpotsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]Spot, 0, len(spots))
	for _, spot := range spots {
		url, _ := g.images.ResolveURL(ctx, spot.ImageID)
		result = append(result, Spot{CarSpot: *spot, ImageURL: url})
	}
	return result, nil
}

// Leaderboard returns the top LeaderboardSize scores by points, ties broken
// by ascending user ID. Users without spots have no score and never appear.
func (g *Game) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	scores, err := g.store.ListTopScores(ctx, LeaderboardSize)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(scores))
	for i, score := range scores {
		ids[i] = score.UserID
	}
	users, err := g.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		entry := LeaderboardEntry{
			UserID:      score.UserID,
			TotalPoints: score.TotalPoints,
			TotalSpots:  score.TotalSpots,
			Username:    AnonymousName,
		}
		if user, ok := users[score.UserID]; ok {
			entry.Username = user.Email
			entry.Image = user.Image
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// MyScore returns the caller's totals, zero when they have no spots yet.
func (g *Game) MyScore(ctx context.Context, userID string) (*models.UserScore, error) {
	if userID == "" {
		return &models.UserScore{}, nil
	}

	score, err := g.store.GetScoreByUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return &models.UserScore{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return score, nil
}
