package storage_test

import (
	"context"
	"errors"
	"testing"

	"studify/internal/logging"
	"studify/internal/registry"
	"studify/internal/storage"
	"studify/internal/testsupport"
)

func TestOpenCreatesSchemaAndRoundTrips(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	if _, ok, err := store.Load(ctx, "studify_subjects"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	payload := []byte(`[{"id":"subject_1"}]`)
	if err := store.Save(ctx, "studify_subjects", payload); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok, err := store.Load(ctx, "studify_subjects")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok || string(got) != string(payload) {
		t.Fatalf("unexpected payload: ok=%v got=%q", ok, got)
	}
}

func TestSaveReplacesPriorPayload(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	if err := store.Save(ctx, "k", []byte(`["a"]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, "k", []byte(`["b","c"]`)); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, ok, err := store.Load(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	if string(got) != `["b","c"]` {
		t.Fatalf("expected replacement, got %q", got)
	}
}

func TestRemoveReportsPresence(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	if err := store.Save(ctx, "k", []byte(`[]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := store.Remove(ctx, "k")
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	removed, err = store.Remove(ctx, "k")
	if err != nil || removed {
		t.Fatalf("expected idempotent no-op, got removed=%v err=%v", removed, err)
	}
}

func TestOpenRefusesSecondInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	_ = testsupport.MustOpenStore(t, cfg)

	if _, err := storage.Open(cfg, logging.NewNop()); !errors.Is(err, storage.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestSaveRefusedWhenVolumeNearlyFull(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	store.SetFreeSpaceFunc(func(string) (uint64, error) { return 1024, nil })

	err := store.Save(context.Background(), "k", []byte(`[]`))
	if !errors.Is(err, registry.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := storage.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	if err := store.Save(context.Background(), "k", []byte(`["kept"]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	got, ok, err := reopened.Load(context.Background(), "k")
	if err != nil || !ok || string(got) != `["kept"]` {
		t.Fatalf("expected persisted payload, got ok=%v err=%v payload=%q", ok, err, got)
	}
}
