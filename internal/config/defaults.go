package config

const (
	defaultDataDir            = "~/.local/share/studify"
	defaultLogDir             = "~/.local/share/studify/logs"
	defaultMaxFileMiB         = 100
	defaultStepDelayMs        = 200
	defaultDailyMinutes       = 240
	defaultFocusBlockMinutes  = 90
	defaultReviewBlockMinutes = 60
	defaultRecapBlockMinutes  = 30
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Uploads: Uploads{
			MaxFileMiB:  defaultMaxFileMiB,
			StepDelayMs: defaultStepDelayMs,
		},
		Analysis: Analysis{
			StepScale: 1,
		},
		Planner: Planner{
			DailyMinutes:       defaultDailyMinutes,
			FocusBlockMinutes:  defaultFocusBlockMinutes,
			ReviewBlockMinutes: defaultReviewBlockMinutes,
			RecapBlockMinutes:  defaultRecapBlockMinutes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
