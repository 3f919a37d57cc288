package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Uploads contains limits and timing for the simulated upload pipeline.
type Uploads struct {
	MaxFileMiB  int `toml:"max_file_mib"`
	StepDelayMs int `toml:"step_delay_ms"`
}

// Analysis contains configuration for the simulated material analyzer.
type Analysis struct {
	// StepScale multiplies the built-in step durations. Values below 1 speed
	// the simulation up; 0 keeps the defaults.
	StepScale float64 `toml:"step_scale"`
	// Seed fixes the analyzer's random source. 0 seeds from the clock.
	Seed int64 `toml:"seed"`
}

// Planner contains configuration for study plan generation.
type Planner struct {
	DailyMinutes       int `toml:"daily_minutes"`
	FocusBlockMinutes  int `toml:"focus_block_minutes"`
	ReviewBlockMinutes int `toml:"review_block_minutes"`
	RecapBlockMinutes  int `toml:"recap_block_minutes"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Studify.
//
// Configuration sections by subsystem:
//   - Paths: data and log directories
//   - Uploads: file size cap and simulated transfer timing
//   - Analysis: simulated analyzer timing and random seed
//   - Planner: study plan session geometry
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Uploads  Uploads  `toml:"uploads"`
	Analysis Analysis `toml:"analysis"`
	Planner  Planner  `toml:"planner"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/studify/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("studify.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// MaxFileSize returns the upload size cap in bytes.
func (c *Config) MaxFileSize() int64 {
	return int64(c.Uploads.MaxFileMiB) * 1024 * 1024
}

// UploadStepDelay returns the pause between simulated transfer steps.
func (c *Config) UploadStepDelay() time.Duration {
	return time.Duration(c.Uploads.StepDelayMs) * time.Millisecond
}

// AnalysisStepScale returns the multiplier applied to analyzer step durations.
func (c *Config) AnalysisStepScale() float64 {
	if c.Analysis.StepScale <= 0 {
		return 1
	}
	return c.Analysis.StepScale
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
