package api_test

import (
	"context"
	"errors"
	"testing"

	"studify/internal/api"
	"studify/internal/materials"
	"studify/internal/registry"
	"studify/internal/testsupport"
)

func TestUploadMaterialReportsProgressAndResolvesSubject(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	var percents []float64
	record, err := api.UploadMaterial(context.Background(), api.UploadMaterialRequest{
		Config:    cfg,
		FileName:  "lecture.pdf",
		FileSize:  512000,
		SubjectID: "default_1",
		OnProgress: func(event materials.ProgressEvent) {
			percents = append(percents, event.Progress)
		},
	})
	if err != nil {
		t.Fatalf("UploadMaterial failed: %v", err)
	}

	if record.SubjectName != "Computer Science" {
		t.Fatalf("expected resolved subject name, got %q", record.SubjectName)
	}
	if record.FilePath != "local://"+record.ID {
		t.Fatalf("unexpected path %q", record.FilePath)
	}
	if record.Metadata == nil || record.Metadata.Pages != 10 || record.Metadata.EstimatedTime != "20m" {
		t.Fatalf("unexpected metadata: %+v", record.Metadata)
	}

	want := []float64{0, 20, 40, 60, 80, 95, 100}
	if len(percents) != len(want) {
		t.Fatalf("expected %v, got %v", want, percents)
	}
	for i := range want {
		if percents[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, percents)
		}
	}
}

func TestUploadMaterialRejectsUnknownSubject(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	_, err := api.UploadMaterial(context.Background(), api.UploadMaterialRequest{
		Config:    cfg,
		FileName:  "lecture.pdf",
		FileSize:  2048,
		SubjectID: "subject_missing",
	})
	if !errors.Is(err, registry.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListMaterialsFiltersBySubject(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	uploads := []struct {
		name    string
		subject string
	}{
		{"a.pdf", "default_1"},
		{"b.mp4", "default_2"},
		{"c.docx", "default_1"},
	}
	for _, u := range uploads {
		if _, err := api.UploadMaterial(ctx, api.UploadMaterialRequest{
			Config:    cfg,
			FileName:  u.name,
			FileSize:  2048,
			SubjectID: u.subject,
		}); err != nil {
			t.Fatalf("UploadMaterial(%s) failed: %v", u.name, err)
		}
	}

	all, err := api.ListMaterials(ctx, api.ListMaterialsRequest{Config: cfg})
	if err != nil {
		t.Fatalf("ListMaterials failed: %v", err)
	}
	if len(all.Materials) != 3 {
		t.Fatalf("expected 3 materials, got %+v", all.Materials)
	}

	scoped, err := api.ListMaterials(ctx, api.ListMaterialsRequest{Config: cfg, SubjectID: "default_1"})
	if err != nil {
		t.Fatalf("scoped ListMaterials failed: %v", err)
	}
	if len(scoped.Materials) != 2 {
		t.Fatalf("expected 2 materials for default_1, got %+v", scoped.Materials)
	}
	for _, record := range scoped.Materials {
		if record.SubjectName != "Computer Science" {
			t.Fatalf("expected resolved subject name, got %+v", record)
		}
	}
}

func TestDescribeMaterialRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	uploaded, err := api.UploadMaterial(ctx, api.UploadMaterialRequest{
		Config:    cfg,
		FileName:  "talk.mp4",
		FileSize:  3 << 20,
		SubjectID: "default_3",
	})
	if err != nil {
		t.Fatalf("UploadMaterial failed: %v", err)
	}

	record, err := api.DescribeMaterial(ctx, api.DescribeMaterialRequest{Config: cfg, ID: uploaded.ID})
	if err != nil {
		t.Fatalf("DescribeMaterial failed: %v", err)
	}
	if record.FileType != "video" || record.Metadata == nil || record.Metadata.Duration != "3m" {
		t.Fatalf("unexpected record: %+v", record)
	}

	_, err = api.DescribeMaterial(ctx, api.DescribeMaterialRequest{Config: cfg, ID: "file_missing"})
	if !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveMaterial(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	uploaded, err := api.UploadMaterial(ctx, api.UploadMaterialRequest{
		Config:    cfg,
		FileName:  "gone.pdf",
		FileSize:  2048,
		SubjectID: "default_1",
	})
	if err != nil {
		t.Fatalf("UploadMaterial failed: %v", err)
	}

	result, err := api.RemoveMaterial(ctx, api.RemoveMaterialRequest{Config: cfg, ID: uploaded.ID})
	if err != nil || !result.Removed {
		t.Fatalf("expected removal, got %+v err=%v", result, err)
	}

	_, err = api.RemoveMaterial(ctx, api.RemoveMaterialRequest{Config: cfg, ID: uploaded.ID})
	if !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}
}
