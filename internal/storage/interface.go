package storage

import (
	"errors"

	"github.com/julianstephens/habitquest/internal/models"
)

// ErrNotInitialized is returned by Load when no snapshot exists yet. Callers
// fall back to models.DefaultState on first run.
var ErrNotInitialized = errors.New("storage not initialized, run 'habitquest init' first")

// Provider persists the full application state as one snapshot under a fixed
// name. The engine reads it once at startup and writes it after every
// mutation.
type Provider interface {
	// Init bootstraps the backend (directories, tables) and writes an empty
	// default snapshot if none exists.
	Init() error
	// Load reads the snapshot. Returns ErrNotInitialized when absent.
	Load() (*models.State, error)
	// Save serializes and durably writes the snapshot.
	Save(*models.State) error
	Close() error
	// Path returns the backing file path or connection target for diagnostics.
	Path() string
}
