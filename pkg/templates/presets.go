// Package templates manages the layout template catalog: a fixed set of
// built-in presets plus a registry of user-defined templates with
// pluggable persistence (memory, file, redis, mongo).
package templates

import (
	"sort"

	"github.com/matzehuels/printgrid/pkg/layout"
)

// presets is the built-in template set. Presets are never mutated; Preset
// and Presets hand out clones.
var presets = map[string]layout.Template{
	"grid-1x1": {
		ID:   "grid-1x1",
		Name: "Full Page",
		Grid: layout.Grid{Cols: 1, Rows: 1},
	},
	"grid-2x1": {
		ID:   "grid-2x1",
		Name: "Two Up",
		Grid: layout.Grid{Cols: 2, Rows: 1},
		Gap:  5,
	},
	"grid-2x2": {
		ID:   "grid-2x2",
		Name: "2 x 2",
		Grid: layout.Grid{Cols: 2, Rows: 2},
		Gap:  5,
	},
	"grid-3x3": {
		ID:   "grid-3x3",
		Name: "3 x 3",
		Grid: layout.Grid{Cols: 3, Rows: 3},
		Gap:  4,
	},
	"grid-4x4": {
		ID:   "grid-4x4",
		Name: "4 x 4",
		Grid: layout.Grid{Cols: 4, Rows: 4},
		Gap:  3,
	},
	"contact-sheet": {
		ID:          "contact-sheet",
		Name:        "Contact Sheet",
		Description: "24 square thumbnails per page",
		Grid:        layout.Grid{Cols: 4, Rows: 6},
		AspectRatio: 1,
		Gap:         2,
	},
	"collage-featured": {
		ID:          "collage-featured",
		Name:        "Featured Collage",
		Description: "one large photo with five satellites",
		Grid:        layout.Grid{Cols: 3, Rows: 3},
		Gap:         4,
		Cells: []layout.Cell{
			{X: 0, Y: 0, ColSpan: 2, RowSpan: 2},
			{X: 2, Y: 0},
			{X: 2, Y: 1},
			{X: 0, Y: 2},
			{X: 1, Y: 2},
			{X: 2, Y: 2},
		},
	},
	"collage-split": {
		ID:          "collage-split",
		Name:        "Split Collage",
		Description: "tall photo beside two stacked photos",
		Grid:        layout.Grid{Cols: 2, Rows: 2},
		Gap:         5,
		Cells: []layout.Cell{
			{X: 0, Y: 0, RowSpan: 2},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
		},
	},
}

// Preset returns the built-in template with the given id.
func Preset(id string) (layout.Template, bool) {
	t, ok := presets[id]
	if !ok {
		return layout.Template{}, false
	}
	return t.Clone(), true
}

// Presets returns all built-in templates sorted by id.
func Presets() []layout.Template {
	out := make([]layout.Template, 0, len(presets))
	for _, t := range presets {
		out = append(out, t.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
