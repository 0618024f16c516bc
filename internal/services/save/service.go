// Package save implements the cloud save-slot service: one versioned
// slot per user, stored opaque.
package save

import (
	"context"
	"encoding/json"
)

// Service defines the interface for save-slot operations
type Service interface {
	// Get returns the user's save slot.
	// Returns errors.NotFound when no save exists.
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put overwrites the user's slot and bumps its version.
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Delete removes the user's slot.
	// Returns errors.NotFound when no save exists.
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Info reports slot metadata without the payload.
	Info(ctx context.Context, input *InfoInput) (*InfoOutput, error)
}

// GetInput defines the input for reading a save
type GetInput struct {
	UserID string
}

// GetOutput defines the output for reading a save
type GetOutput struct {
	GameState json.RawMessage
	SavedAt   int64
	Version   int64
}

// PutInput defines the input for writing a save
type PutInput struct {
	UserID    string
	GameState json.RawMessage
}

// PutOutput defines the output for writing a save
type PutOutput struct {
	SavedAt int64
	Version int64
}

// DeleteInput defines the input for deleting a save
type DeleteInput struct {
	UserID string
}

// DeleteOutput defines the output for deleting a save
type DeleteOutput struct{}

// InfoInput defines the input for save metadata
type InfoInput struct {
	UserID string
}

// InfoOutput defines the output for save metadata
type InfoOutput struct {
	HasSave bool
	SavedAt int64
	Version int64
}
