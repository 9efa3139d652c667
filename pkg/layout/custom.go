package layout

import "github.com/matzehuels/printgrid/pkg/errors"

// CustomCells partitions the printable area of p from explicit cell
// definitions addressed in grid units. The grid is divided into cols x rows
// unit cells exactly as in grid mode but without aspect-ratio adjustment,
// and each definition spans one or more units, accumulating the internal
// gaps it crosses. Cells keep the array order of defs as their index, and
// no centering is applied: the definitions are expected to tile the grid.
//
// Definitions reaching outside the declared grid are rejected with
// INVALID_CELL_BOUNDS rather than clamped; see [ValidateCells].
func CustomCells(defs []Cell, g Grid, p Paper, gap float64) ([]CalculatedCell, error) {
	if !g.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "grid must be at least 1x1, got %dx%d", g.Cols, g.Rows)
	}
	if gap < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "gap must be non-negative, got %g", gap)
	}
	if err := ValidateCells(defs, g); err != nil {
		return nil, err
	}

	printableW := p.PrintableWidth()
	printableH := p.PrintableHeight()

	availW := printableW - gap*float64(g.Cols-1)
	availH := printableH - gap*float64(g.Rows-1)
	if availW <= 0 || availH <= 0 {
		return nil, errors.New(errors.ErrCodeInsufficientArea,
			"printable area %gx%g leaves no room for a %dx%d grid with gap %g",
			printableW, printableH, g.Cols, g.Rows, gap)
	}

	unitW := availW / float64(g.Cols)
	unitH := availH / float64(g.Rows)

	cells := make([]CalculatedCell, len(defs))
	for i, def := range defs {
		colSpan, rowSpan := def.Spans()
		cells[i] = CalculatedCell{
			Index:  i,
			X:      p.Margins.Left + float64(def.X)*(unitW+gap),
			Y:      p.Margins.Top + float64(def.Y)*(unitH+gap),
			Width:  unitW*float64(colSpan) + gap*float64(colSpan-1),
			Height: unitH*float64(rowSpan) + gap*float64(rowSpan-1),
		}
	}
	return cells, nil
}

// ValidateCells checks that every definition lies entirely inside the
// declared grid. Used both at partition time and when templates are
// registered, so malformed collages are rejected before any geometry is
// produced.
func ValidateCells(defs []Cell, g Grid) error {
	for i, def := range defs {
		colSpan, rowSpan := def.Spans()
		if def.X < 0 || def.Y < 0 || def.X+colSpan > g.Cols || def.Y+rowSpan > g.Rows {
			return errors.New(errors.ErrCodeInvalidCellBounds,
				"cell %d at (%d,%d) span %dx%d exceeds %dx%d grid",
				i, def.X, def.Y, colSpan, rowSpan, g.Cols, g.Rows)
		}
	}
	return nil
}
