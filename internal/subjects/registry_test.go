package subjects_test

import (
	"context"
	"testing"
	"time"

	"studify/internal/logging"
	"studify/internal/storage"
	"studify/internal/subjects"
)

func newRegistry(t *testing.T) (*subjects.Registry, *storage.Memory) {
	t.Helper()
	backend := storage.NewMemory()
	reg := subjects.NewRegistry(backend, logging.NewNop())
	return reg, backend
}

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
}

func TestAllReturnsDefaultCatalogWithoutPersisting(t *testing.T) {
	reg, backend := newRegistry(t)
	ctx := context.Background()

	first, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("expected 4 default subjects, got %d", len(first))
	}
	if first[0].Name != "Computer Science" || first[3].Name != "Algorithms" {
		t.Fatalf("unexpected default catalog: %+v", first)
	}

	if _, ok, _ := backend.Load(ctx, subjects.CollectionKey); ok {
		t.Fatal("defaults must not be written back by All")
	}

	second, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("second All failed: %v", err)
	}
	for i := range first {
		if second[i].ID != first[i].ID || second[i].Name != first[i].Name {
			t.Fatalf("catalog not stable across reads: %+v vs %+v", first[i], second[i])
		}
	}
}

func TestCreatePersistsDefaultsPlusNewSubject(t *testing.T) {
	reg, backend := newRegistry(t)
	ctx := context.Background()

	created, err := reg.Create(ctx, subjects.Draft{
		Name:        "Operating Systems",
		Description: "Scheduling and memory management",
		Color:       subjects.Palette[4],
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("expected assigned fields, got %+v", created)
	}
	if !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Fatalf("fresh record should have equal timestamps: %+v", created)
	}

	if _, ok, _ := backend.Load(ctx, subjects.CollectionKey); !ok {
		t.Fatal("expected catalog to be persisted after first create")
	}

	catalog, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(catalog) != 5 {
		t.Fatalf("expected defaults plus new subject, got %d records", len(catalog))
	}
	if catalog[4].ID != created.ID {
		t.Fatalf("expected insertion order, got %+v", catalog)
	}
}

func TestByIDRoundTrip(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	created, err := reg.Create(ctx, subjects.Draft{Name: "Networks", Color: subjects.Palette[5]})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := reg.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected record back")
	}
	// Timestamps are compared with Equal: the created record carries a
	// monotonic clock reading that does not survive serialization.
	if got.ID != created.ID || got.Name != created.Name ||
		got.Description != created.Description || got.Color != created.Color {
		t.Fatalf("round trip mismatch: created=%+v got=%+v", created, got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) || !got.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("timestamps not preserved: created=%+v got=%+v", created, got)
	}

	missing, err := reg.ByID(ctx, "subject_nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unknown id, got %+v err=%v", missing, err)
	}
}

func TestUpdateMergesPatchAndRefreshesUpdatedAt(t *testing.T) {
	reg, _ := newRegistry(t)
	reg.SetClock(tickingClock())
	ctx := context.Background()

	created, err := reg.Create(ctx, subjects.Draft{
		Name:        "Statistics",
		Description: "Probability and inference",
		Color:       subjects.Palette[2],
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	name := "Applied Statistics"
	updated, err := reg.Update(ctx, created.ID, subjects.Patch{Name: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated record")
	}
	if updated.Name != name {
		t.Fatalf("patched field not applied: %+v", updated)
	}
	if updated.Description != created.Description || updated.Color != created.Color {
		t.Fatalf("omitted fields must be unchanged: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt must be immutable: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("UpdatedAt must advance: before=%v after=%v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateUnknownIDReturnsNil(t *testing.T) {
	reg, _ := newRegistry(t)

	name := "anything"
	got, err := reg.Update(context.Background(), "subject_missing", subjects.Patch{Name: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown id, got %+v", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	created, err := reg.Create(ctx, subjects.Draft{Name: "Compilers", Color: subjects.Palette[6]})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	removed, err := reg.Delete(ctx, created.ID)
	if err != nil || !removed {
		t.Fatalf("expected delete to succeed, removed=%v err=%v", removed, err)
	}

	if got, err := reg.ByID(ctx, created.ID); err != nil || got != nil {
		t.Fatalf("expected record gone, got %+v err=%v", got, err)
	}

	removed, err = reg.Delete(ctx, created.ID)
	if err != nil || removed {
		t.Fatalf("second delete must be a no-op, removed=%v err=%v", removed, err)
	}
}

func TestAllIdempotentAfterMutations(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	if _, err := reg.Create(ctx, subjects.Draft{Name: "AI", Color: subjects.Palette[0]}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	second, err := reg.All(ctx)
	if err != nil {
		t.Fatalf("second All failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("catalog not idempotent at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
