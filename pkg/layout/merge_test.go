package layout

import "testing"

func baseTemplate() Template {
	return Template{
		ID:          "base",
		Name:        "Base",
		Description: "two by two",
		Grid:        Grid{Cols: 2, Rows: 2},
		AspectRatio: 1.5,
		Gap:         4,
		Orientation: Portrait,
	}
}

func TestMergeNilFieldsKeepBase(t *testing.T) {
	got := Merge(baseTemplate(), Patch{})
	want := baseTemplate()
	if got.ID != want.ID || got.Name != want.Name || got.Grid != want.Grid ||
		got.AspectRatio != want.AspectRatio || got.Gap != want.Gap || got.Orientation != want.Orientation {
		t.Errorf("empty patch changed template: %+v", got)
	}
}

func TestMergeOverrides(t *testing.T) {
	name := "Variant"
	grid := Grid{Cols: 3, Rows: 1}
	gap := 0.0
	o := Landscape

	got := Merge(baseTemplate(), Patch{Name: &name, Grid: &grid, Gap: &gap, Orientation: &o})

	if got.Name != "Variant" || got.Grid != grid || got.Orientation != Landscape {
		t.Errorf("patched fields not applied: %+v", got)
	}
	// An explicitly provided zero overwrites, it is not skipped.
	if got.Gap != 0 {
		t.Errorf("explicit zero gap was skipped, got %g", got.Gap)
	}
	// Untouched fields survive.
	if got.Description != "two by two" || got.AspectRatio != 1.5 {
		t.Errorf("unpatched fields changed: %+v", got)
	}
	if got.ID != "base" {
		t.Errorf("id must never change, got %q", got.ID)
	}
}

func TestMergeExplicitZeroClearsRatio(t *testing.T) {
	zero := 0.0
	got := Merge(baseTemplate(), Patch{AspectRatio: &zero})
	if got.AspectRatio != 0 {
		t.Errorf("aspect ratio = %g, want cleared", got.AspectRatio)
	}
}

func TestMergeCellsReplacedWholesale(t *testing.T) {
	base := baseTemplate()
	base.Cells = []Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}

	patchCells := []Cell{{X: 0, Y: 0, ColSpan: 2}}
	got := Merge(base, Patch{Cells: &patchCells})
	if len(got.Cells) != 1 || got.Cells[0].ColSpan != 2 {
		t.Errorf("cells not replaced wholesale: %+v", got.Cells)
	}

	// An empty non-nil slice switches back to grid mode.
	empty := []Cell{}
	got = Merge(base, Patch{Cells: &empty})
	if got.IsCustom() {
		t.Error("empty cell patch should clear custom mode")
	}

	// Nil patch keeps base cells, as a copy.
	got = Merge(base, Patch{})
	if len(got.Cells) != 2 {
		t.Fatalf("base cells lost: %+v", got.Cells)
	}
	got.Cells[0].X = 99
	if base.Cells[0].X == 99 {
		t.Error("merge result shares cell storage with base")
	}
}
