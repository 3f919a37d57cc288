package registry

import "context"

type contextKey string

const (
	recordIDKey   contextKey = "record_id"
	collectionKey contextKey = "collection"
	requestIDKey  contextKey = "request_id"
)

// WithRecordID annotates context with the record identifier being operated on.
func WithRecordID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, recordIDKey, id)
}

// RecordIDFromContext extracts the record identifier if present.
func RecordIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(recordIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithCollection annotates context with the collection name.
func WithCollection(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, collectionKey, name)
}

// CollectionFromContext returns the collection name if present.
func CollectionFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(collectionKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier so log lines
// from one CLI invocation can be grouped.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(requestIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
