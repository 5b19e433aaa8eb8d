// Package models defines the core domain records of the Yellow Car Game.
//
// # Records
//
//   - User: an account owned by the identity provider (internal/auth)
//   - CarSpot: one photographed yellow car submitted by a user
//   - UserScore: per-user running totals, at most one per user
//   - Friendship: one direction of a mutual friendship
//
// # Invariants
//
// For every user with at least one CarSpot exactly one UserScore exists, and
// its TotalSpots equals the number of that user's spots while TotalPoints
// equals the sum of their points.
//
// Friendships come in symmetric pairs: when (A -> B) exists, (B -> A) exists
// with the same status and both were written by the same transaction. Nobody
// can befriend themselves and every ordered (UserID, FriendID) pair is unique.
//
// CarSpot and UserScore are append/accumulate-only. There is no un-spotting
// and no unfriending.
//
// Relationships are expressed with ID strings rather than pointers.
package models
