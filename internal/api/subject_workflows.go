package api

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"studify/internal/config"
	"studify/internal/registry"
	"studify/internal/subjects"
)

type ListSubjectsRequest struct {
	Config *config.Config
	Logger *slog.Logger
}

// ListSubjects returns the subject catalog with per-subject material counts.
func ListSubjects(ctx context.Context, req ListSubjectsRequest) (SubjectListResponse, error) {
	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return SubjectListResponse{}, err
	}
	defer sess.Close()

	catalog, err := sess.subjects.All(ctx)
	if err != nil {
		return SubjectListResponse{}, err
	}
	files, err := sess.materials.All(ctx)
	if err != nil {
		return SubjectListResponse{}, err
	}

	counts := make(map[string]int, len(catalog))
	for _, file := range files {
		counts[file.SubjectID]++
	}

	response := SubjectListResponse{Subjects: make([]SubjectRecord, 0, len(catalog))}
	for _, subject := range catalog {
		response.Subjects = append(response.Subjects, subjectRecord(subject, counts[subject.ID]))
	}
	return response, nil
}

type DescribeSubjectRequest struct {
	Config *config.Config
	Logger *slog.Logger
	ID     string
}

// DescribeSubject returns one subject by id with its material count.
func DescribeSubject(ctx context.Context, req DescribeSubjectRequest) (SubjectRecord, error) {
	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return SubjectRecord{}, err
	}
	defer sess.Close()

	subject, err := sess.subjects.ByID(ctx, req.ID)
	if err != nil {
		return SubjectRecord{}, err
	}
	if subject == nil {
		return SubjectRecord{}, registry.Wrap(registry.ErrNotFound, subjects.CollectionKey, "describe", req.ID, nil)
	}

	files, err := sess.materials.BySubject(ctx, req.ID)
	if err != nil {
		return SubjectRecord{}, err
	}
	return subjectRecord(*subject, len(files)), nil
}

type CreateSubjectRequest struct {
	Config      *config.Config
	Logger      *slog.Logger
	Name        string
	Description string
	Color       string
}

// CreateSubject validates and persists a new subject. An empty color picks
// the next palette entry in rotation.
func CreateSubject(ctx context.Context, req CreateSubjectRequest) (SubjectRecord, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return SubjectRecord{}, registry.Wrap(registry.ErrValidation, subjects.CollectionKey, "create", "name is required", nil)
	}

	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return SubjectRecord{}, err
	}
	defer sess.Close()

	color := strings.TrimSpace(req.Color)
	if color == "" {
		catalog, err := sess.subjects.All(ctx)
		if err != nil {
			return SubjectRecord{}, err
		}
		color = subjects.Palette[len(catalog)%len(subjects.Palette)]
	}

	created, err := sess.subjects.Create(ctx, subjects.Draft{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Color:       color,
	})
	if err != nil {
		return SubjectRecord{}, err
	}
	return subjectRecord(*created, 0), nil
}

type UpdateSubjectRequest struct {
	Config      *config.Config
	Logger      *slog.Logger
	ID          string
	Name        *string
	Description *string
	Color       *string
}

// UpdateSubject merges the provided fields onto an existing subject.
func UpdateSubject(ctx context.Context, req UpdateSubjectRequest) (SubjectRecord, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return SubjectRecord{}, registry.Wrap(registry.ErrValidation, subjects.CollectionKey, "update", "name cannot be empty", nil)
	}

	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return SubjectRecord{}, err
	}
	defer sess.Close()

	updated, err := sess.subjects.Update(ctx, req.ID, subjects.Patch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return SubjectRecord{}, err
	}
	if updated == nil {
		return SubjectRecord{}, registry.Wrap(registry.ErrNotFound, subjects.CollectionKey, "update", req.ID, nil)
	}

	count := 0
	if files, err := sess.materials.BySubject(ctx, req.ID); err == nil {
		count = len(files)
	}
	return subjectRecord(*updated, count), nil
}

type RemoveSubjectRequest struct {
	Config *config.Config
	Logger *slog.Logger
	ID     string
	// Cascade removes the subject's materials along with it. Without it the
	// request is refused while materials still reference the subject.
	Cascade bool
}

type RemoveSubjectResult struct {
	Removed          bool `json:"removed"`
	MaterialsRemoved int  `json:"materialsRemoved"`
}

// RemoveSubject deletes a subject. Materials referencing it block the delete
// unless Cascade is set, in which case they are removed first.
func RemoveSubject(ctx context.Context, req RemoveSubjectRequest) (RemoveSubjectResult, error) {
	ctx, sess, err := openSession(ctx, req.Config, req.Logger)
	if err != nil {
		return RemoveSubjectResult{}, err
	}
	defer sess.Close()

	refs, err := sess.materials.BySubject(ctx, req.ID)
	if err != nil {
		return RemoveSubjectResult{}, err
	}

	result := RemoveSubjectResult{}
	if len(refs) > 0 {
		if !req.Cascade {
			message := fmt.Sprintf("subject still has %d material(s); remove them or use cascade", len(refs))
			return RemoveSubjectResult{}, registry.Wrap(registry.ErrValidation, subjects.CollectionKey, "remove", message, nil)
		}
		removed, err := sess.materials.DeleteBySubject(ctx, req.ID)
		if err != nil {
			return RemoveSubjectResult{}, err
		}
		result.MaterialsRemoved = removed
	}

	removed, err := sess.subjects.Delete(ctx, req.ID)
	if err != nil {
		return RemoveSubjectResult{}, err
	}
	if !removed {
		return RemoveSubjectResult{}, registry.Wrap(registry.ErrNotFound, subjects.CollectionKey, "remove", req.ID, nil)
	}
	result.Removed = true
	return result, nil
}
