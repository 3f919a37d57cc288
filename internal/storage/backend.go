package storage

import (
	"context"
	"sync"
)

// Backend reads and writes one serialized payload per collection key.
// Implementations must treat each Save as a full replacement of the prior
// payload for that key.
type Backend interface {
	// Load returns the stored payload for key, or ok=false when the key has
	// never been written.
	Load(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Save replaces the payload stored under key.
	Save(ctx context.Context, key string, payload []byte) error
	// Remove deletes the payload stored under key. Returns false when the key
	// was absent.
	Remove(ctx context.Context, key string) (bool, error)
}

// Memory is an in-process Backend used by tests and ephemeral runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, true, nil
}

func (m *Memory) Save(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	m.data[key] = cp
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return false, nil
	}
	delete(m.data, key)
	return true, nil
}
