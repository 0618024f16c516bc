// Package persistence snapshots the progression state to local
// storage. Saves are atomic (temp file + rename) and loads are
// forgiving: schema drift defaults, a corrupt or missing file reads as
// "no save" instead of failing.
package persistence

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/errors"
)

// Store persists a single progression state.
type Store interface {
	// Save writes a snapshot of state.
	Save(state *entities.GameState) error

	// Load reads the last snapshot. ok is false when no usable
	// snapshot exists; that is not an error.
	Load() (state *entities.GameState, ok bool, err error)
}

// FileStore keeps the snapshot in one JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.InvalidArgument("path is required")
	}
	return &FileStore{path: path}, nil
}

// Save writes the snapshot atomically so a crash mid-write can never
// leave a truncated file behind.
func (s *FileStore) Save(state *entities.GameState) error {
	if state == nil {
		return errors.InvalidArgument("state cannot be nil")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create save directory")
	}

	tmp, err := os.CreateTemp(dir, ".save-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close snapshot")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to replace snapshot")
	}
	return nil
}

// Load reads the snapshot. Unknown fields are ignored and missing
// fields default, so older and newer schemas both round-trip.
func (s *FileStore) Load() (*entities.GameState, bool, error) {
	data, err := os.ReadFile(s.path) // #nosec G304 -- path is fixed at construction
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to read snapshot")
	}

	var state entities.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Warn("discarding unreadable snapshot",
			"path", s.path,
			"error", err.Error())
		return nil, false, nil
	}
	state.Normalize()

	return &state, true, nil
}
