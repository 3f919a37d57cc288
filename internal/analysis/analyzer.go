package analysis

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"studify/internal/logging"
	"studify/internal/materials"
	"studify/internal/progress"
)

// Session is one recommended study block.
type Session struct {
	Duration int    `json:"duration"`
	Type     string `json:"type"`
}

// Result summarizes an analyzed material.
type Result struct {
	TotalPages          int                  `json:"totalPages"`
	ContentDensity      int                  `json:"contentDensity"`
	EstimatedHours      int                  `json:"estimatedHours"`
	Difficulty          materials.Difficulty `json:"difficulty"`
	RecommendedSessions []Session            `json:"recommendedSessions"`
	SuggestedTopics     []string             `json:"suggestedTopics"`
}

// Options tunes the analyzer. Zero values fall back to defaults: a
// time-derived seed and unscaled stage durations.
type Options struct {
	Seed      int64
	StepScale float64
}

// Analyzer drives the staged analysis pipeline.
type Analyzer struct {
	rng    *rand.Rand
	scale  float64
	logger *slog.Logger
}

// NewAnalyzer builds an analyzer. StepScale shrinks or stretches every
// stage's duration; tests run with a small scale.
func NewAnalyzer(logger *slog.Logger, opts Options) *Analyzer {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scale := opts.StepScale
	if scale <= 0 {
		scale = 1
	}
	return &Analyzer{
		rng:    rand.New(rand.NewSource(seed)),
		scale:  scale,
		logger: logging.NewComponentLogger(logger, "analysis"),
	}
}

func (a *Analyzer) steps() []progress.Step {
	base := []progress.Step{
		{Label: "Uploading file", Duration: 500 * time.Millisecond},
		{Label: "Scanning slides", Duration: 1000 * time.Millisecond},
		{Label: "Extracting headings", Duration: 800 * time.Millisecond},
		{Label: "Analyzing content density", Duration: 1200 * time.Millisecond},
		{Label: "Calculating complexity", Duration: 900 * time.Millisecond},
		{Label: "Generating estimate", Duration: 600 * time.Millisecond},
	}
	for i := range base {
		base[i].Duration = time.Duration(float64(base[i].Duration) * a.scale)
	}
	return base
}

// Run analyzes fileName through the staged pipeline, reporting each stage to
// onProgress (optional). A cancelled context aborts with the context's error
// and no result.
func (a *Analyzer) Run(ctx context.Context, fileName string, onProgress func(progress.Event)) (*Result, error) {
	a.logger.Info("analysis started", logging.String("file_name", fileName))

	if err := progress.Drive(ctx, a.steps(), onProgress); err != nil {
		a.logger.Info("analysis aborted",
			logging.String("file_name", fileName),
			logging.Error(err),
		)
		return nil, err
	}

	result := a.fabricateResult()
	a.logger.Info("analysis complete",
		logging.String("file_name", fileName),
		logging.Int("total_pages", result.TotalPages),
		logging.String("difficulty", string(result.Difficulty)),
	)
	return result, nil
}

// fabricateResult stands in for real content inspection. Ranges: pages
// 20-69, density 60-99, hours 3-7, difficulty uniform over the three
// buckets. Sessions and topics are fixed templates.
func (a *Analyzer) fabricateResult() *Result {
	difficulties := []materials.Difficulty{
		materials.DifficultyEasy,
		materials.DifficultyMedium,
		materials.DifficultyHard,
	}
	return &Result{
		TotalPages:     a.rng.Intn(50) + 20,
		ContentDensity: a.rng.Intn(40) + 60,
		EstimatedHours: a.rng.Intn(5) + 3,
		Difficulty:     difficulties[a.rng.Intn(3)],
		RecommendedSessions: []Session{
			{Duration: 90, Type: "Deep focus"},
			{Duration: 60, Type: "Review"},
			{Duration: 90, Type: "Deep focus"},
			{Duration: 30, Type: "Quick recap"},
		},
		SuggestedTopics: []string{
			"Introduction to concepts",
			"Core principles",
			"Advanced applications",
			"Practice problems",
		},
	}
}
