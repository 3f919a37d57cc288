package testsupport

import (
	"path/filepath"
	"testing"

	"studify/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
// Simulation delays are collapsed so tests run fast.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Uploads.StepDelayMs = 1
	cfg.Analysis.StepScale = 0.001
	cfg.Analysis.Seed = 1

	return &cfg
}
