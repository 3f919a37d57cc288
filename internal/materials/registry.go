package materials

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"studify/internal/logging"
	"studify/internal/progress"
	"studify/internal/registry"
	"studify/internal/storage"
)

// DefaultMaxFileSize is the upload size cap applied when Options leaves
// MaxFileSize unset.
const DefaultMaxFileSize = 100 << 20

const defaultStepDelay = 200 * time.Millisecond

// Options tunes the upload pipeline. Zero values fall back to defaults.
type Options struct {
	MaxFileSize int64
	StepDelay   time.Duration
}

// Registry provides the uploaded material catalog and the upload pipeline.
type Registry struct {
	backend     storage.Backend
	logger      *slog.Logger
	now         func() time.Time
	newID       func() string
	maxFileSize int64
	stepDelay   time.Duration
}

// NewRegistry builds a registry over the given backend.
func NewRegistry(backend storage.Backend, logger *slog.Logger, opts Options) *Registry {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.StepDelay <= 0 {
		opts.StepDelay = defaultStepDelay
	}
	return &Registry{
		backend:     backend,
		logger:      logging.NewComponentLogger(logger, "materials"),
		now:         time.Now,
		newID:       func() string { return "file_" + uuid.NewString() },
		maxFileSize: opts.MaxFileSize,
		stepDelay:   opts.StepDelay,
	}
}

// uploadSteps reports fixed waypoints rather than even splits; the last stop
// before completion is 95 so the final jump to 100 lands after persistence.
func (r *Registry) uploadSteps() []progress.Step {
	waypoints := []float64{20, 40, 60, 80, 95}
	steps := make([]progress.Step, len(waypoints))
	for i, percent := range waypoints {
		steps[i] = progress.Step{Duration: r.stepDelay, Percent: percent}
	}
	return steps
}

// Upload validates src, runs the staged transfer, derives metadata, and
// persists the record. onProgress (optional) observes an initial uploading
// event at zero, one per transfer stage, and a final complete event at 100
// once the record is durable. Validation failures report nothing and mutate
// nothing. A cancelled context aborts before persistence and returns the
// context's error.
func (r *Registry) Upload(ctx context.Context, src Source, subjectID string, onProgress func(ProgressEvent)) (*File, error) {
	if err := Validate(src, r.maxFileSize); err != nil {
		return nil, err
	}
	fileType, _ := DetectType(src.Name)

	id := r.newID()
	var lastPercent float64
	notify := func(percent float64, status ProgressStatus, detail string) {
		lastPercent = percent
		if onProgress == nil {
			return
		}
		onProgress(ProgressEvent{
			FileID:   id,
			FileName: src.Name,
			Progress: percent,
			Status:   status,
			Error:    detail,
		})
	}

	notify(0, StatusUploading, "")
	err := progress.Drive(ctx, r.uploadSteps(), func(event progress.Event) {
		if event.Kind == progress.EventProgress {
			notify(event.Percent, StatusUploading, "")
		}
	})
	if err != nil {
		return nil, err
	}

	file := File{
		ID:           id,
		FileName:     src.Name,
		OriginalName: src.Name,
		FileType:     fileType,
		FileSize:     src.Size,
		FilePath:     "local://" + id,
		SubjectID:    subjectID,
		UploadedAt:   r.now(),
		Metadata:     EstimateMetadata(fileType, src.Size),
	}

	catalog, err := storage.LoadAll[File](ctx, r.backend, r.logger, CollectionKey)
	if err != nil {
		// Report the failure at the last transfer percent; progress never
		// moves backwards within one upload.
		notify(lastPercent, StatusError, err.Error())
		return nil, err
	}
	catalog = append(catalog, file)
	if err := storage.SaveAll(ctx, r.backend, CollectionKey, catalog); err != nil {
		wrapped := registry.Wrap(registry.ErrStorage, CollectionKey, "upload", "persisting record", err)
		notify(lastPercent, StatusError, wrapped.Error())
		return nil, wrapped
	}

	notify(100, StatusComplete, "")
	r.logger.Info("material uploaded",
		logging.String(logging.FieldRecordID, file.ID),
		logging.String("file_name", file.FileName),
		logging.String("file_type", string(file.FileType)),
		logging.Int64("file_size", file.FileSize),
	)
	return &file, nil
}

// All returns the catalog in upload order.
func (r *Registry) All(ctx context.Context) ([]File, error) {
	return storage.LoadAll[File](ctx, r.backend, r.logger, CollectionKey)
}

// BySubject returns the materials attached to subjectID, preserving order.
func (r *Registry) BySubject(ctx context.Context, subjectID string) ([]File, error) {
	catalog, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]File, 0, len(catalog))
	for _, file := range catalog {
		if file.SubjectID == subjectID {
			matches = append(matches, file)
		}
	}
	return matches, nil
}

// ByID returns the matching record, or nil when absent.
func (r *Registry) ByID(ctx context.Context, id string) (*File, error) {
	catalog, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if catalog[i].ID == id {
			file := catalog[i]
			return &file, nil
		}
	}
	return nil, nil
}

// Delete removes the matching record. Returns false when id was absent.
func (r *Registry) Delete(ctx context.Context, id string) (bool, error) {
	catalog, err := r.All(ctx)
	if err != nil {
		return false, err
	}
	filtered := make([]File, 0, len(catalog))
	for _, file := range catalog {
		if file.ID != id {
			filtered = append(filtered, file)
		}
	}
	if len(filtered) == len(catalog) {
		return false, nil
	}
	if err := storage.SaveAll(ctx, r.backend, CollectionKey, filtered); err != nil {
		return false, err
	}
	r.logger.Info("material deleted", logging.String(logging.FieldRecordID, id))
	return true, nil
}

// DeleteBySubject removes every material attached to subjectID and reports
// how many records went away.
func (r *Registry) DeleteBySubject(ctx context.Context, subjectID string) (int, error) {
	catalog, err := r.All(ctx)
	if err != nil {
		return 0, err
	}
	filtered := make([]File, 0, len(catalog))
	for _, file := range catalog {
		if file.SubjectID != subjectID {
			filtered = append(filtered, file)
		}
	}
	removed := len(catalog) - len(filtered)
	if removed == 0 {
		return 0, nil
	}
	if err := storage.SaveAll(ctx, r.backend, CollectionKey, filtered); err != nil {
		return 0, err
	}
	r.logger.Info("materials deleted with subject",
		logging.String("subject_id", subjectID),
		logging.Int("removed", removed),
	)
	return removed, nil
}
