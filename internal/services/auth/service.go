// Package auth implements account registration, login, and bearer
// token verification for the save-sync API.
package auth

import (
	"context"

	"github.com/forgebound/forge-api/internal/entities"
)

// Service defines the interface for authentication operations
type Service interface {
	// Register creates an account and returns it with a fresh token.
	// Returns errors.InvalidArgument when the username, email, or
	// password fail validation; errors.AlreadyExists on duplicates.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates by username or email plus password.
	// Returns errors.Unauthenticated on any mismatch.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves a bearer token to its user.
	// Returns errors.Unauthenticated for expired or invalid tokens.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// Refresh issues a new token for an authenticated user.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
}

// RegisterInput defines the input for registration
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterOutput defines the output for registration
type RegisterOutput struct {
	User  *entities.User
	Token string
}

// LoginInput defines the input for login
type LoginInput struct {
	UsernameOrEmail string
	Password        string
}

// LoginOutput defines the output for login
type LoginOutput struct {
	User  *entities.User
	Token string
}

// AuthenticateInput defines the input for token authentication
type AuthenticateInput struct {
	Token string
}

// AuthenticateOutput defines the output for token authentication
type AuthenticateOutput struct {
	User *entities.User
}

// RefreshInput defines the input for token refresh
type RefreshInput struct {
	UserID string
}

// RefreshOutput defines the output for token refresh
type RefreshOutput struct {
	Token string
}
