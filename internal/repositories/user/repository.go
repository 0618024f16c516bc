// Package user provides the interface for account persistence
package user

import (
	"context"

	"github.com/forgebound/forge-api/internal/entities"
)

// Repository defines the interface for account persistence
type Repository interface {
	// Create creates a new user
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the username or email is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// GetByID retrieves a user by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the user doesn't exist
	// Returns errors.Internal for storage failures
	GetByID(ctx context.Context, input GetByIDInput) (*GetByIDOutput, error)

	// GetByLogin retrieves a user by username or email
	// Returns errors.InvalidArgument for empty logins
	// Returns errors.NotFound if no user matches
	// Returns errors.Internal for storage failures
	GetByLogin(ctx context.Context, input GetByLoginInput) (*GetByLoginOutput, error)
}

// CreateInput defines the input for creating a user
type CreateInput struct {
	User *entities.User
}

// CreateOutput defines the output for creating a user
type CreateOutput struct {
	User *entities.User
}

// GetByIDInput defines the input for getting a user by id
type GetByIDInput struct {
	ID string
}

// GetByIDOutput defines the output for getting a user by id
type GetByIDOutput struct {
	User *entities.User
}

// GetByLoginInput defines the input for getting a user by login
type GetByLoginInput struct {
	UsernameOrEmail string
}

// GetByLoginOutput defines the output for getting a user by login
type GetByLoginOutput struct {
	User *entities.User
}
