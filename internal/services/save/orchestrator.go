package save

import (
	"context"
	"log/slog"

	"github.com/forgebound/forge-api/internal/errors"
	saverepo "github.com/forgebound/forge-api/internal/repositories/save"
)

// Config holds the dependencies for the save service
type Config struct {
	SaveRepo saverepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	saveRepo saverepo.Repository
}

// NewOrchestrator creates the save service with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{saveRepo: cfg.SaveRepo}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	out, err := o.saveRepo.Get(ctx, saverepo.GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &GetOutput{
		GameState: out.Slot.GameState,
		SavedAt:   out.Slot.SavedAt,
		Version:   out.Slot.Version,
	}, nil
}

func (o *orchestrator) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	if len(input.GameState) == 0 {
		return nil, errors.InvalidArgument("game state is required")
	}

	out, err := o.saveRepo.Put(ctx, saverepo.PutInput{
		UserID:    input.UserID,
		GameState: input.GameState,
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "stored save slot",
		"user_id", input.UserID,
		"version", out.Slot.Version,
		"bytes", len(input.GameState))

	return &PutOutput{
		SavedAt: out.Slot.SavedAt,
		Version: out.Slot.Version,
	}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	if _, err := o.saveRepo.Delete(ctx, saverepo.DeleteInput{UserID: input.UserID}); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func (o *orchestrator) Info(ctx context.Context, input *InfoInput) (*InfoOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	out, err := o.saveRepo.Get(ctx, saverepo.GetInput{UserID: input.UserID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &InfoOutput{HasSave: false}, nil
		}
		return nil, err
	}

	return &InfoOutput{
		HasSave: true,
		SavedAt: out.Slot.SavedAt,
		Version: out.Slot.Version,
	}, nil
}
