package api

import (
	"context"
	"log/slog"

	"studify/internal/config"
	"studify/internal/materials"
	"studify/internal/planner"
)

type BuildPlanRequest struct {
	Config *config.Config
	Logger *slog.Logger
	// SubjectID restricts the plan to one subject's materials when non-empty.
	SubjectID string
}

// BuildPlan generates a study plan from the current library state using the
// configured session geometry.
func BuildPlan(ctx context.Context, req BuildPlanRequest) (planner.Plan, error) {
	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return planner.Plan{}, err
	}
	defer sess.Close()

	catalog, err := sess.subjects.All(ctx)
	if err != nil {
		return planner.Plan{}, err
	}

	var files []materials.File
	if req.SubjectID != "" {
		files, err = sess.materials.BySubject(ctx, req.SubjectID)
	} else {
		files, err = sess.materials.All(ctx)
	}
	if err != nil {
		return planner.Plan{}, err
	}

	return planner.Build(catalog, files, planner.Options{
		DailyMinutes:       sess.cfg.Planner.DailyMinutes,
		FocusBlockMinutes:  sess.cfg.Planner.FocusBlockMinutes,
		ReviewBlockMinutes: sess.cfg.Planner.ReviewBlockMinutes,
		RecapBlockMinutes:  sess.cfg.Planner.RecapBlockMinutes,
	}), nil
}
