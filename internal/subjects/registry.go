package subjects

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"studify/internal/logging"
	"studify/internal/storage"
)

// Registry provides CRUD over the subject catalog.
type Registry struct {
	backend storage.Backend
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// NewRegistry builds a registry over the given backend.
func NewRegistry(backend storage.Backend, logger *slog.Logger) *Registry {
	return &Registry{
		backend: backend,
		logger:  logging.NewComponentLogger(logger, "subjects"),
		now:     time.Now,
		newID:   func() string { return "subject_" + uuid.NewString() },
	}
}

// All returns the catalog in insertion order. When the collection has never
// been persisted it returns the default catalog without writing it back, so
// a fresh install stays unpersisted until the first Create.
func (r *Registry) All(ctx context.Context) ([]Subject, error) {
	_, seeded, err := r.backend.Load(ctx, CollectionKey)
	if err != nil {
		return nil, err
	}
	if !seeded {
		return DefaultCatalog(r.now()), nil
	}
	return storage.LoadAll[Subject](ctx, r.backend, r.logger, CollectionKey)
}

// Create appends a new subject and persists the whole catalog. If defaults
// were still in-memory they are persisted alongside the new record.
func (r *Registry) Create(ctx context.Context, draft Draft) (*Subject, error) {
	catalog, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	subject := Subject{
		ID:          r.newID(),
		Name:        draft.Name,
		Description: draft.Description,
		Color:       draft.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	catalog = append(catalog, subject)

	if err := storage.SaveAll(ctx, r.backend, CollectionKey, catalog); err != nil {
		return nil, err
	}

	r.logger.Info("subject created",
		logging.String(logging.FieldRecordID, subject.ID),
		logging.String("name", subject.Name),
	)
	return &subject, nil
}

// Update merges patch onto the matching record and refreshes its UpdatedAt.
// Returns nil when id is absent.
func (r *Registry) Update(ctx context.Context, id string, patch Patch) (*Subject, error) {
	catalog, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range catalog {
		if catalog[i].ID != id {
			continue
		}
		updated := apply(catalog[i], patch)
		updated.UpdatedAt = r.now()
		catalog[i] = updated

		if err := storage.SaveAll(ctx, r.backend, CollectionKey, catalog); err != nil {
			return nil, err
		}
		r.logger.Info("subject updated", logging.String(logging.FieldRecordID, id))
		return &updated, nil
	}
	return nil, nil
}

// Delete removes the matching record. Returns false when id was absent.
func (r *Registry) Delete(ctx context.Context, id string) (bool, error) {
	catalog, err := r.All(ctx)
	if err != nil {
		return false, err
	}

	filtered := make([]Subject, 0, len(catalog))
	for _, subject := range catalog {
		if subject.ID != id {
			filtered = append(filtered, subject)
		}
	}
	if len(filtered) == len(catalog) {
		return false, nil
	}

	if err := storage.SaveAll(ctx, r.backend, CollectionKey, filtered); err != nil {
		return false, err
	}
	r.logger.Info("subject deleted", logging.String(logging.FieldRecordID, id))
	return true, nil
}

// ByID returns the matching record, or nil when absent.
func (r *Registry) ByID(ctx context.Context, id string) (*Subject, error) {
	catalog, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if catalog[i].ID == id {
			subject := catalog[i]
			return &subject, nil
		}
	}
	return nil, nil
}
