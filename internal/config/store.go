package config

import (
	"fmt"

	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// StoreConfig holds settings for the SQLite position store.
type StoreConfig struct {
	// DBPath is the database file; empty disables recording
	DBPath string

	// MaxPositions stops recording after this many positions (0 = unlimited)
	MaxPositions int
}

// NewStoreConfig creates a StoreConfig with default values.
// Recording is disabled by default.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}

// Enabled reports whether a database path is configured.
func (s *StoreConfig) Enabled() bool {
	return s.DBPath != ""
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if s.MaxPositions < 0 {
		return fmt.Errorf("max positions (%d) must not be negative: %w", s.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}
