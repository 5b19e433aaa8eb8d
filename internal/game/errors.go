package game

import "errors"

// Domain errors. Their messages are shown to users as is.
var (
	ErrUnauthenticated = errors.New("Not authenticated")
	ErrUserNotFound    = errors.New("User not found")
	ErrSelfFriendship  = errors.New("Cannot add yourself as a friend")
	ErrAlreadyFriends  = errors.New("Already friends or request pending")
	ErrInvalidImage    = errors.New("Image not found")
)
