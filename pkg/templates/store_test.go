package templates

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/printgrid/pkg/layout"
)

func storedTemplate(id string) Stored {
	now := time.Now().UTC().Truncate(time.Second)
	return Stored{
		Template: layout.Template{
			ID:   id,
			Name: "Stored " + id,
			Grid: layout.Grid{Cols: 3, Rows: 2},
			Cells: []layout.Cell{
				{X: 0, Y: 0, ColSpan: 2},
				{X: 2, Y: 0, RowSpan: 2},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if err := s.Save(ctx, storedTemplate("one")); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Save(ctx, storedTemplate("two")); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Load returned %d templates, want 2", len(loaded))
	}

	byID := make(map[string]Stored, len(loaded))
	for _, st := range loaded {
		byID[st.ID] = st
	}
	one, ok := byID["one"]
	if !ok {
		t.Fatal("template one missing after round-trip")
	}
	if one.Grid.Cols != 3 || len(one.Cells) != 2 || one.Cells[0].ColSpan != 2 {
		t.Errorf("template one lost structure: %+v", one.Template)
	}

	if err := s.Delete(ctx, "one"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	// Deleting twice is fine.
	if err := s.Delete(ctx, "one"); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}

	loaded, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "two" {
		t.Errorf("after delete, Load = %+v", loaded)
	}
}

func TestMemoryStore(t *testing.T) {
	testStoreRoundTrip(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	testStoreRoundTrip(t, s)
}

func TestFileStoreSanitizesIDs(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}

	tricky := storedTemplate("../escape/attempt")
	if err := s.Save(context.Background(), tricky); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "../escape/attempt" {
		t.Errorf("tricky id did not round-trip: %+v", loaded)
	}
}
