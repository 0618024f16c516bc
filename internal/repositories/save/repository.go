// Package save provides the interface for cloud save-slot persistence
package save

import (
	"context"
	"encoding/json"

	"github.com/forgebound/forge-api/internal/entities"
)

// Repository defines the interface for save-slot persistence. Each
// user has exactly one slot; writes bump a per-user version counter.
type Repository interface {
	// Get retrieves a user's save slot
	// Returns errors.InvalidArgument for empty user IDs
	// Returns errors.NotFound if no slot exists (or the stored payload
	// is unreadable, which is treated as no data)
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put overwrites the user's slot and increments its version
	// Returns errors.InvalidArgument for empty user IDs or payloads
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes the user's slot
	// Returns errors.InvalidArgument for empty user IDs
	// Returns errors.NotFound if no slot exists
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a save slot
type GetInput struct {
	UserID string
}

// GetOutput defines the output for getting a save slot
type GetOutput struct {
	Slot *entities.SaveSlot
}

// PutInput defines the input for writing a save slot
type PutInput struct {
	UserID    string
	GameState json.RawMessage
}

// PutOutput defines the output for writing a save slot
type PutOutput struct {
	Slot *entities.SaveSlot
}

// DeleteInput defines the input for deleting a save slot
type DeleteInput struct {
	UserID string
}

// DeleteOutput defines the output for deleting a save slot
type DeleteOutput struct{}
