package api

import (
	"context"
	"log/slog"
	"strings"

	"studify/internal/config"
	"studify/internal/materials"
	"studify/internal/registry"
)

type ListMaterialsRequest struct {
	Config *config.Config
	Logger *slog.Logger
	// SubjectID restricts the listing when non-empty.
	SubjectID string
}

// ListMaterials returns the material catalog with resolved subject names.
func ListMaterials(ctx context.Context, req ListMaterialsRequest) (MaterialListResponse, error) {
	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return MaterialListResponse{}, err
	}
	defer sess.Close()

	var files []materials.File
	if req.SubjectID != "" {
		files, err = sess.materials.BySubject(ctx, req.SubjectID)
	} else {
		files, err = sess.materials.All(ctx)
	}
	if err != nil {
		return MaterialListResponse{}, err
	}

	catalog, err := sess.subjects.All(ctx)
	if err != nil {
		return MaterialListResponse{}, err
	}
	names := subjectNames(catalog)

	response := MaterialListResponse{Materials: make([]MaterialRecord, 0, len(files))}
	for _, file := range files {
		response.Materials = append(response.Materials, materialRecord(file, names[file.SubjectID]))
	}
	return response, nil
}

type DescribeMaterialRequest struct {
	Config *config.Config
	Logger *slog.Logger
	ID     string
}

// DescribeMaterial returns one material by id.
func DescribeMaterial(ctx context.Context, req DescribeMaterialRequest) (MaterialRecord, error) {
	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return MaterialRecord{}, err
	}
	defer sess.Close()

	file, err := sess.materials.ByID(ctx, req.ID)
	if err != nil {
		return MaterialRecord{}, err
	}
	if file == nil {
		return MaterialRecord{}, registry.Wrap(registry.ErrNotFound, materials.CollectionKey, "describe", req.ID, nil)
	}

	name := ""
	if subject, err := sess.subjects.ByID(ctx, file.SubjectID); err == nil && subject != nil {
		name = subject.Name
	}
	return materialRecord(*file, name), nil
}

type RemoveMaterialRequest struct {
	Config *config.Config
	Logger *slog.Logger
	ID     string
}

type RemoveMaterialResult struct {
	Removed bool `json:"removed"`
}

// RemoveMaterial deletes one material by id.
func RemoveMaterial(ctx context.Context, req RemoveMaterialRequest) (RemoveMaterialResult, error) {
	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return RemoveMaterialResult{}, err
	}
	defer sess.Close()

	removed, err := sess.materials.Delete(ctx, req.ID)
	if err != nil {
		return RemoveMaterialResult{}, err
	}
	if !removed {
		return RemoveMaterialResult{}, registry.Wrap(registry.ErrNotFound, materials.CollectionKey, "remove", req.ID, nil)
	}
	return RemoveMaterialResult{Removed: true}, nil
}

type UploadMaterialRequest struct {
	Config     *config.Config
	Logger     *slog.Logger
	FileName   string
	FileSize   int64
	SubjectID  string
	OnProgress func(materials.ProgressEvent)
}

// UploadMaterial runs the staged upload against an existing subject.
func UploadMaterial(ctx context.Context, req UploadMaterialRequest) (MaterialRecord, error) {
	subjectID := strings.TrimSpace(req.SubjectID)
	if subjectID == "" {
		return MaterialRecord{}, registry.Wrap(registry.ErrValidation, materials.CollectionKey, "upload", "subject id is required", nil)
	}

	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return MaterialRecord{}, err
	}
	defer sess.Close()

	subject, err := sess.subjects.ByID(ctx, subjectID)
	if err != nil {
		return MaterialRecord{}, err
	}
	if subject == nil {
		return MaterialRecord{}, registry.Wrap(registry.ErrValidation, materials.CollectionKey, "upload", "unknown subject "+subjectID, nil)
	}

	file, err := sess.materials.Upload(ctx, materials.Source{
		Name: strings.TrimSpace(req.FileName),
		Size: req.FileSize,
	}, subjectID, req.OnProgress)
	if err != nil {
		return MaterialRecord{}, err
	}
	return materialRecord(*file, subject.Name), nil
}
