package api_test

import (
	"context"
	"reflect"
	"testing"

	"studify/internal/api"
	"studify/internal/planner"
	"studify/internal/testsupport"
)

func TestBuildPlanSchedulesLibrary(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	// 100 pages at 2 minutes each: 200 study minutes.
	if _, err := api.UploadMaterial(ctx, api.UploadMaterialRequest{
		Config:    cfg,
		FileName:  "notes.pdf",
		FileSize:  100 * 51200,
		SubjectID: "default_1",
	}); err != nil {
		t.Fatalf("UploadMaterial failed: %v", err)
	}

	plan, err := api.BuildPlan(ctx, api.BuildPlanRequest{Config: cfg})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if plan.TotalMinutes != 200 {
		t.Fatalf("expected 200 planned minutes, got %+v", plan)
	}
	if len(plan.Days) == 0 {
		t.Fatal("expected at least one planned day")
	}
	session := plan.Days[0].Sessions[0]
	if session.SubjectName != "Computer Science" || session.Type != planner.TypeDeepFocus {
		t.Fatalf("unexpected first session: %+v", session)
	}
}

func TestBuildPlanEmptyLibrary(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	plan, err := api.BuildPlan(context.Background(), api.BuildPlanRequest{Config: cfg})
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if plan.TotalSessions != 0 || len(plan.Days) != 0 {
		t.Fatalf("empty library must yield an empty plan: %+v", plan)
	}
}

func TestBuildPlanIsDeterministic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	for _, u := range []struct {
		name    string
		size    int64
		subject string
	}{
		{"a.pdf", 60 * 51200, "default_1"},
		{"b.mp4", 45 << 20, "default_4"},
	} {
		if _, err := api.UploadMaterial(ctx, api.UploadMaterialRequest{
			Config:    cfg,
			FileName:  u.name,
			FileSize:  u.size,
			SubjectID: u.subject,
		}); err != nil {
			t.Fatalf("UploadMaterial(%s) failed: %v", u.name, err)
		}
	}

	first, err := api.BuildPlan(ctx, api.BuildPlanRequest{Config: cfg})
	if err != nil {
		t.Fatalf("first BuildPlan failed: %v", err)
	}
	second, err := api.BuildPlan(ctx, api.BuildPlanRequest{Config: cfg})
	if err != nil {
		t.Fatalf("second BuildPlan failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical library state must yield identical plans")
	}

	scoped, err := api.BuildPlan(ctx, api.BuildPlanRequest{Config: cfg, SubjectID: "default_4"})
	if err != nil {
		t.Fatalf("scoped BuildPlan failed: %v", err)
	}
	for _, day := range scoped.Days {
		for _, session := range day.Sessions {
			if session.SubjectID != "default_4" {
				t.Fatalf("scoped plan leaked other subjects: %+v", session)
			}
		}
	}
}
