// Package auth is the identity provider: it registers and authenticates
// users and issues the session tokens the RPC middleware resolves back into
// a user ID.
package auth

import (
	"context"

	"github.com/adarkz/YellowCarGame-chef/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// The service layer only talks to this interface, so another credential
// type (OAuth, passkeys) can replace passwords without touching handlers.
type Authenticator interface {
	// Register creates a new user account. name and image are optional.
	Register(ctx context.Context, email, name, image, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// User returns the account with the given ID, or ErrUserNotFound.
	User(ctx context.Context, id string) (*models.User, error)

	// ValidateCredential checks the credential before it is stored.
	ValidateCredential(credential string) error
}
