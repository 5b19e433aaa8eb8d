package game

import (
	"context"
	"errors"

	"github.com/adarkz/YellowCarGame-chef/internal/models"
	"github.com/adarkz/YellowCarGame-chef/internal/storage"
)

// Friend is an accepted friendship joined with the friend's details.
type Friend struct {
	models.Friendship

	// Email is empty if the friend's account can no longer be found.
	Email string

	// TotalPoints and TotalSpots are zero until the friend submits a spot.
	TotalPoints int64
	TotalSpots  int64
}

// AddFriend befriends the user registered under friendEmail.
//
// Both directions are created together, already accepted. The lookup, the
// duplicate check and both inserts share one transaction, and a uniqueness
// violation from a concurrent request is reported as ErrAlreadyFriends.
func (g *Game) AddFriend(ctx context.Context, userID, friendEmail string) (*models.Friendship, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	email := models.NormalizeEmail(friendEmail)

	var created *models.Friendship
	err := g.store.InTx(ctx, func(tx storage.Tx) error {
		friend, err := tx.GetUserByEmail(ctx, email)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		if friend.ID == userID {
			return ErrSelfFriendship
		}

		_, err = tx.GetFriendship(ctx, userID, friend.ID)
		if err == nil {
			return ErrAlreadyFriends
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		forward := &models.Friendship{
			UserID:   userID,
			FriendID: friend.ID,
			Status:   models.FriendshipAccepted,
		}
		if err := tx.CreateFriendship(ctx, forward); err != nil {
			return friendshipError(err)
		}
		reverse := forward.Reverse()
		if err := tx.CreateFriendship(ctx, &reverse); err != nil {
			return friendshipError(err)
		}

		created = forward
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.observer.FriendshipCreated()
	return created, nil
}

func friendshipError(err error) error {
	if errors.Is(err, storage.ErrAlreadyExists) {
		return ErrAlreadyFriends
	}
	return err
}

// GetFriends returns the caller's accepted friendships with each friend's
// email and current totals.
func (g *Game) GetFriends(ctx context.Context, userID string) ([]Friend, error) {
	if userID == "" {
		return []Friend{}, nil
	}

	friendships, err := g.store.ListFriendshipsByOwner(ctx, userID, models.FriendshipAccepted)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(friendships))
	for i, f := range friendships {
		ids[i] = f.FriendID
	}
	users, err := g.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	scores, err := g.store.GetScoresByUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	friends := make([]Friend, 0, len(friendships))
	for _, f := range friendships {
		friend := Friend{Friendship: *f}
		if user, ok := users[f.FriendID]; ok {
			friend.Email = user.Email
		}
		if score, ok := scores[f.FriendID]; ok {
			friend.TotalPoints = score.TotalPoints
			friend.TotalSpots = score.TotalSpots
		}
		friends = append(friends, friend)
	}
	return friends, nil
}
