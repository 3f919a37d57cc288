package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"studify/internal/logging"
)

// LoadAll reads and decodes the collection stored under key. An absent key
// yields an empty slice. A payload that fails to decode is logged and treated
// as empty rather than surfaced as an error; only genuine backend read
// failures propagate.
func LoadAll[T any](ctx context.Context, backend Backend, logger *slog.Logger, key string) ([]T, error) {
	payload, ok, err := backend.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		if logger == nil {
			logger = logging.NewNop()
		}
		logger.Warn("discarding corrupt collection payload",
			logging.String(logging.FieldCollection, key),
			logging.Int("payload_bytes", len(payload)),
			logging.Error(err),
		)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveAll encodes items and replaces the collection stored under key.
func SaveAll[T any](ctx context.Context, backend Backend, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return backend.Save(ctx, key, payload)
}
