package analysis_test

import (
	"context"
	"errors"
	"testing"

	"studify/internal/analysis"
	"studify/internal/logging"
	"studify/internal/materials"
	"studify/internal/progress"
)

func newAnalyzer(seed int64) *analysis.Analyzer {
	return analysis.NewAnalyzer(logging.NewNop(), analysis.Options{
		Seed:      seed,
		StepScale: 0.001,
	})
}

func TestRunAnnouncesSixStages(t *testing.T) {
	analyzer := newAnalyzer(1)

	var labels []string
	var lastPercent float64
	result, err := analyzer.Run(context.Background(), "lecture.pdf", func(event progress.Event) {
		switch event.Kind {
		case progress.EventStep:
			labels = append(labels, event.Label)
		case progress.EventProgress, progress.EventComplete:
			lastPercent = event.Percent
		}
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}

	wantLabels := []string{
		"Uploading file",
		"Scanning slides",
		"Extracting headings",
		"Analyzing content density",
		"Calculating complexity",
		"Generating estimate",
	}
	if len(labels) != len(wantLabels) {
		t.Fatalf("expected %d stage announcements, got %v", len(wantLabels), labels)
	}
	for i, label := range labels {
		if label != wantLabels[i] {
			t.Errorf("stage %d: got %q, want %q", i, label, wantLabels[i])
		}
	}
	if lastPercent != 100 {
		t.Fatalf("expected progress to finish at 100, got %v", lastPercent)
	}
}

func TestResultStaysInsidePlaceholderRanges(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		result, err := newAnalyzer(seed).Run(context.Background(), "lecture.pdf", nil)
		if err != nil {
			t.Fatalf("seed %d: Run failed: %v", seed, err)
		}
		if result.TotalPages < 20 || result.TotalPages > 69 {
			t.Errorf("seed %d: totalPages %d out of range", seed, result.TotalPages)
		}
		if result.ContentDensity < 60 || result.ContentDensity > 99 {
			t.Errorf("seed %d: contentDensity %d out of range", seed, result.ContentDensity)
		}
		if result.EstimatedHours < 3 || result.EstimatedHours > 7 {
			t.Errorf("seed %d: estimatedHours %d out of range", seed, result.EstimatedHours)
		}
		switch result.Difficulty {
		case materials.DifficultyEasy, materials.DifficultyMedium, materials.DifficultyHard:
		default:
			t.Errorf("seed %d: unexpected difficulty %q", seed, result.Difficulty)
		}
	}
}

func TestResultCarriesFixedTemplates(t *testing.T) {
	result, err := newAnalyzer(7).Run(context.Background(), "lecture.pdf", nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	wantSessions := []analysis.Session{
		{Duration: 90, Type: "Deep focus"},
		{Duration: 60, Type: "Review"},
		{Duration: 90, Type: "Deep focus"},
		{Duration: 30, Type: "Quick recap"},
	}
	if len(result.RecommendedSessions) != len(wantSessions) {
		t.Fatalf("unexpected sessions: %+v", result.RecommendedSessions)
	}
	for i, session := range result.RecommendedSessions {
		if session != wantSessions[i] {
			t.Errorf("session %d: got %+v, want %+v", i, session, wantSessions[i])
		}
	}
	if len(result.SuggestedTopics) != 4 || result.SuggestedTopics[0] != "Introduction to concepts" {
		t.Fatalf("unexpected topics: %v", result.SuggestedTopics)
	}
}

func TestSameSeedSameResult(t *testing.T) {
	first, err := newAnalyzer(42).Run(context.Background(), "a.pdf", nil)
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	second, err := newAnalyzer(42).Run(context.Background(), "b.pdf", nil)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if first.TotalPages != second.TotalPages ||
		first.ContentDensity != second.ContentDensity ||
		first.EstimatedHours != second.EstimatedHours ||
		first.Difficulty != second.Difficulty {
		t.Fatalf("seeded runs must match: %+v vs %+v", first, second)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	analyzer := analysis.NewAnalyzer(logging.NewNop(), analysis.Options{Seed: 1, StepScale: 0.1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := analyzer.Run(ctx, "lecture.pdf", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result != nil {
		t.Fatalf("cancelled run must not produce a result, got %+v", result)
	}
}
