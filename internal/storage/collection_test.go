package storage_test

import (
	"context"
	"testing"

	"studify/internal/logging"
	"studify/internal/storage"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoadAllAbsentKeyYieldsEmpty(t *testing.T) {
	backend := storage.NewMemory()

	items, err := storage.LoadAll[record](context.Background(), backend, logging.NewNop(), "missing")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(items))
	}
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	backend := storage.NewMemory()
	ctx := context.Background()

	want := []record{{ID: "a", Name: "Algebra"}, {ID: "b", Name: "Biology"}}
	if err := storage.SaveAll(ctx, backend, "records", want); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	got, err := storage.LoadAll[record](ctx, backend, logging.NewNop(), "records")
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestLoadAllSwallowsCorruptPayload(t *testing.T) {
	backend := storage.NewMemory()
	ctx := context.Background()

	if err := backend.Save(ctx, "records", []byte("definitely not json")); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	items, err := storage.LoadAll[record](ctx, backend, logging.NewNop(), "records")
	if err != nil {
		t.Fatalf("expected corrupt payload to be swallowed, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(items))
	}
}

func TestSaveAllNilSlicePersistsEmptyArray(t *testing.T) {
	backend := storage.NewMemory()
	ctx := context.Background()

	if err := storage.SaveAll[record](ctx, backend, "records", nil); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}
	payload, ok, err := backend.Load(ctx, "records")
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	if string(payload) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", payload)
	}
}
