package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"studify/internal/config"
	"studify/internal/logging"
	"studify/internal/materials"
	"studify/internal/registry"
	"studify/internal/storage"
	"studify/internal/subjects"
)

// session bundles an open store with the registries built over it. Workflows
// open one per call and close it before returning.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *storage.Store
	subjects  *subjects.Registry
	materials *materials.Registry
}

func openSession(ctx context.Context, cfg *config.Config, logger *slog.Logger) (context.Context, *session, error) {
	if cfg == nil {
		return ctx, nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	requestID := uuid.NewString()
	ctx = registry.WithRequestID(ctx, requestID)
	logger = logger.With(logging.String(logging.FieldCorrelationID, requestID))

	store, err := storage.Open(cfg, logger)
	if err != nil {
		return ctx, nil, err
	}
	return ctx, &session{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		subjects: subjects.NewRegistry(store, logger),
		materials: materials.NewRegistry(store, logger, materials.Options{
			MaxFileSize: cfg.MaxFileSize(),
			StepDelay:   cfg.UploadStepDelay(),
		}),
	}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}
