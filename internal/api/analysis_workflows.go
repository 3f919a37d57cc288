package api

import (
	"context"
	"log/slog"

	"studify/internal/analysis"
	"studify/internal/config"
	"studify/internal/materials"
	"studify/internal/progress"
	"studify/internal/registry"
)

type AnalyzeMaterialRequest struct {
	Config     *config.Config
	Logger     *slog.Logger
	ID         string
	OnProgress func(progress.Event)
}

type AnalyzeMaterialResult struct {
	FileName string          `json:"fileName"`
	Result   analysis.Result `json:"result"`
}

// AnalyzeMaterial runs the staged analyzer against an uploaded material.
func AnalyzeMaterial(ctx context.Context, req AnalyzeMaterialRequest) (AnalyzeMaterialResult, error) {
	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return AnalyzeMaterialResult{}, err
	}
	defer sess.Close()

	file, err := sess.materials.ByID(ctx, req.ID)
	if err != nil {
		return AnalyzeMaterialResult{}, err
	}
	if file == nil {
		return AnalyzeMaterialResult{}, registry.Wrap(registry.ErrNotFound, materials.CollectionKey, "analyze", req.ID, nil)
	}

	analyzer := analysis.NewAnalyzer(sess.logger, analysis.Options{
		Seed:      sess.cfg.Analysis.Seed,
		StepScale: sess.cfg.AnalysisStepScale(),
	})
	result, err := analyzer.Run(ctx, file.FileName, req.OnProgress)
	if err != nil {
		return AnalyzeMaterialResult{}, err
	}
	return AnalyzeMaterialResult{FileName: file.FileName, Result: *result}, nil
}
