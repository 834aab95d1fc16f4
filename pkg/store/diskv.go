// Package store persists the whole application state as one JSON blob in
// a local diskv key-value store. The write replaces the blob atomically
// from the caller's point of view; there are no merge semantics.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/quirk/pkg/state"
)

// stateKey is the fixed key the blob lives under. It matches the storage
// key the browser build of this app used, so an imported blob loads as-is.
const stateKey = "quirkCounterState"

var (
	// ErrNotFound means no state has ever been saved (first run).
	ErrNotFound = errors.New("store: no saved state")
	// ErrCorruptState means the blob exists but failed to deserialize.
	// Callers fall back to defaults.
	ErrCorruptState = errors.New("store: corrupt state")
	// ErrStorageFailure means the write failed. The in-memory state stays
	// authoritative for the session.
	ErrStorageFailure = errors.New("store: write failed")
)

// Persistence is the load/save contract the core depends on.
type Persistence interface {
	Load(ctx context.Context) (*state.State, error)
	Save(ctx context.Context, s *state.State) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Load(_ context.Context) (*state.State, error) {
	data, err := p.d.Read(stateKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read state: %w", err)
	}

	s := &state.State{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	s.Normalize()
	return s, nil
}

func (p *persistence) Save(_ context.Context, s *state.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("store: marshal state: %w", err)
	}
	if err := p.d.Write(stateKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return nil
}
