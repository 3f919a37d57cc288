package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeUploads()
	c.normalizePlanner()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeUploads() {
	if c.Uploads.MaxFileMiB <= 0 {
		c.Uploads.MaxFileMiB = defaultMaxFileMiB
	}
	if c.Uploads.StepDelayMs < 0 {
		c.Uploads.StepDelayMs = defaultStepDelayMs
	}
}

func (c *Config) normalizePlanner() {
	if c.Planner.DailyMinutes <= 0 {
		c.Planner.DailyMinutes = defaultDailyMinutes
	}
	if c.Planner.FocusBlockMinutes <= 0 {
		c.Planner.FocusBlockMinutes = defaultFocusBlockMinutes
	}
	if c.Planner.ReviewBlockMinutes <= 0 {
		c.Planner.ReviewBlockMinutes = defaultReviewBlockMinutes
	}
	if c.Planner.RecapBlockMinutes <= 0 {
		c.Planner.RecapBlockMinutes = defaultRecapBlockMinutes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
