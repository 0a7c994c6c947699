// Package testsupport provides shared fixtures for partsort tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"partsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.HistoryDB = filepath.Join(base, "history.db")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSortDirName overrides the canonical output folder name.
func WithSortDirName(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.SortDirName = name
	}
}
