package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateUploads(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validatePlanner(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateUploads() error {
	if c.Uploads.MaxFileMiB <= 0 {
		return errors.New("uploads.max_file_mib must be positive")
	}
	if c.Uploads.StepDelayMs < 0 {
		return errors.New("uploads.step_delay_ms must not be negative")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.StepScale < 0 {
		return errors.New("analysis.step_scale must not be negative")
	}
	return nil
}

func (c *Config) validatePlanner() error {
	if c.Planner.DailyMinutes < c.Planner.RecapBlockMinutes {
		return fmt.Errorf(
			"planner.daily_minutes (%d) must cover at least one recap block (%d)",
			c.Planner.DailyMinutes, c.Planner.RecapBlockMinutes,
		)
	}
	for name, minutes := range map[string]int{
		"planner.focus_block_minutes":  c.Planner.FocusBlockMinutes,
		"planner.review_block_minutes": c.Planner.ReviewBlockMinutes,
		"planner.recap_block_minutes":  c.Planner.RecapBlockMinutes,
	} {
		if minutes <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
