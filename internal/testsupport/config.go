// Package testsupport provides shared helpers for package tests: configs
// seeded with per-test temp directories and record file builders.
package testsupport

import (
	"path/filepath"
	"testing"

	"liner/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults to lenient mode with a single worker so builds are fully
// deterministic unless a test opts out.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "records")
	cfg.Paths.OutputDir = filepath.Join(base, "content")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Build.Mode = config.ModeLenient
	cfg.Build.Workers = 1

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMode sets the build mode on the test config.
func WithMode(mode string) ConfigOption {
	return func(c *config.Config) {
		c.Build.Mode = mode
	}
}

// WithWorkers sets the parser worker cap on the test config.
func WithWorkers(workers int) ConfigOption {
	return func(c *config.Config) {
		c.Build.Workers = workers
	}
}
