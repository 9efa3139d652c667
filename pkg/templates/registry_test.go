package templates

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/printgrid/pkg/errors"
	"github.com/matzehuels/printgrid/pkg/layout"
	"github.com/matzehuels/printgrid/pkg/observability"
)

func testTemplate() layout.Template {
	return layout.Template{
		ID:   "postcards",
		Name: "Postcards",
		Grid: layout.Grid{Cols: 2, Rows: 2},
		Gap:  3,
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	want := testTemplate()
	if _, err := r.Register(ctx, want); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	got, ok := r.Get("postcards")
	if !ok {
		t.Fatal("Get after Register returned not found")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestRegistryUpsert(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	first := testTemplate()
	if _, err := r.Register(ctx, first); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	second := first
	second.Name = "Postcards v2"
	if _, err := r.Register(ctx, second); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	got, _ := r.Get("postcards")
	if got.Name != "Postcards v2" {
		t.Errorf("last write should win, got name %q", got.Name)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryAssignsID(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	tmpl := testTemplate()
	tmpl.ID = ""
	registered, err := r.Register(ctx, tmpl)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if registered.ID == "" {
		t.Fatal("Register should assign an id")
	}
	if _, ok := r.Get(registered.ID); !ok {
		t.Error("assigned id should resolve")
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	bad := testTemplate()
	bad.Grid = layout.Grid{Cols: 0, Rows: 1}
	if _, err := r.Register(ctx, bad); !errors.Is(err, errors.ErrCodeInvalidGrid) {
		t.Errorf("error = %v, want INVALID_GRID", err)
	}

	collage := testTemplate()
	collage.Cells = []layout.Cell{{X: 5, Y: 0}}
	if _, err := r.Register(ctx, collage); !errors.Is(err, errors.ErrCodeInvalidCellBounds) {
		t.Errorf("error = %v, want INVALID_CELL_BOUNDS", err)
	}
	if r.Len() != 0 {
		t.Error("invalid templates must not enter the registry")
	}
}

func TestRegistryRemove(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)
	if _, err := r.Register(ctx, testTemplate()); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	existed, err := r.Remove(ctx, "postcards")
	if err != nil || !existed {
		t.Errorf("first Remove = %v, %v, want true, nil", existed, err)
	}
	existed, err = r.Remove(ctx, "postcards")
	if err != nil || existed {
		t.Errorf("second Remove = %v, %v, want false, nil", existed, err)
	}
	if _, ok := r.Get("postcards"); ok {
		t.Error("Get after Remove should return not found")
	}
}

func TestRegistryListSorted(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)
	for _, id := range []string{"zebra", "alpha", "mid"} {
		tmpl := testTemplate()
		tmpl.ID = id
		if _, err := r.Register(ctx, tmpl); err != nil {
			t.Fatalf("Register error: %v", err)
		}
	}

	list := r.List()
	if len(list) != 3 {
		t.Fatalf("List returned %d entries", len(list))
	}
	if list[0].ID != "alpha" || list[1].ID != "mid" || list[2].ID != "zebra" {
		t.Errorf("List not sorted by id: %s, %s, %s", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestRegistryResolve(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(nil)

	// Presets resolve without registration.
	if _, ok := r.Resolve("grid-2x2"); !ok {
		t.Error("preset grid-2x2 should resolve")
	}

	// Registered templates shadow presets.
	shadow := testTemplate()
	shadow.ID = "grid-2x2"
	shadow.Name = "My 2x2"
	if _, err := r.Register(ctx, shadow); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	got, ok := r.Resolve("grid-2x2")
	if !ok || got.Name != "My 2x2" {
		t.Errorf("Resolve = %+v, want registered shadow", got)
	}

	if _, ok := r.Resolve("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

type recordingRegistryHooks struct {
	registered []string
	removed    []string
}

func (h *recordingRegistryHooks) OnTemplateRegistered(_ context.Context, id string) {
	h.registered = append(h.registered, id)
}

func (h *recordingRegistryHooks) OnTemplateRemoved(_ context.Context, id string) {
	h.removed = append(h.removed, id)
}

func TestRegistryHooks(t *testing.T) {
	ctx := context.Background()
	hooks := &recordingRegistryHooks{}
	observability.SetRegistryHooks(hooks)
	defer observability.SetRegistryHooks(nil)

	r := NewRegistry(nil)
	if _, err := r.Register(ctx, testTemplate()); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if len(hooks.registered) != 1 || hooks.registered[0] != "postcards" {
		t.Errorf("registered hook calls = %v, want [postcards]", hooks.registered)
	}

	// A rejected template must not emit an event.
	bad := testTemplate()
	bad.Grid = layout.Grid{Cols: 0, Rows: 1}
	if _, err := r.Register(ctx, bad); err == nil {
		t.Fatal("invalid template should be rejected")
	}
	if len(hooks.registered) != 1 {
		t.Errorf("registered hook calls = %v after rejection", hooks.registered)
	}

	if _, err := r.Remove(ctx, "postcards"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if _, err := r.Remove(ctx, "postcards"); err != nil {
		t.Fatalf("second Remove error: %v", err)
	}
	if len(hooks.removed) != 1 || hooks.removed[0] != "postcards" {
		t.Errorf("removed hook calls = %v, want [postcards]", hooks.removed)
	}
}

func TestRegistryWriteThrough(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	r := NewRegistry(store)

	if _, err := r.Register(ctx, testTemplate()); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// A second registry sharing the store sees the entry after Load.
	other := NewRegistry(store)
	if err := other.Load(ctx); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := other.Get("postcards"); !ok {
		t.Error("template should survive the store round-trip")
	}

	if _, err := r.Remove(ctx, "postcards"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if err := other.Load(ctx); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := other.Get("postcards"); ok {
		t.Error("removal should propagate through the store")
	}
}

func TestPresets(t *testing.T) {
	all := Presets()
	if len(all) == 0 {
		t.Fatal("no presets defined")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID > all[i].ID {
			t.Fatal("Presets should be sorted by id")
		}
	}
	// Every preset must be structurally valid.
	for _, p := range all {
		if err := layout.ValidateTemplate(p); err != nil {
			t.Errorf("preset %s invalid: %v", p.ID, err)
		}
	}

	// Clones: mutating a returned preset must not corrupt the catalog.
	featured, ok := Preset("collage-featured")
	if !ok {
		t.Fatal("collage-featured preset missing")
	}
	featured.Cells[0].ColSpan = 99
	again, _ := Preset("collage-featured")
	if again.Cells[0].ColSpan == 99 {
		t.Error("Preset must return an isolated copy")
	}
}
