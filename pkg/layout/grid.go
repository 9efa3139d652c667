package layout

import "github.com/matzehuels/printgrid/pkg/errors"

// GridCells partitions the printable area of p into a uniform grid and
// returns the cells in row-major order (row outer, column inner), indexed
// in emission order.
//
// gap is inserted between adjacent cells and subtracted from the printable
// area before sizing. aspectRatio, when positive, fixes each cell's
// width/height ratio by shrinking one dimension; the whole grid is then
// re-centered inside the printable area with a single symmetric offset.
// Non-positive aspect ratios are ignored and the natural cell shape kept.
//
// Errors: INVALID_GRID when the grid is smaller than 1x1 or gap is
// negative, INSUFFICIENT_AREA when margins and gaps leave no room for the
// cells themselves.
func GridCells(g Grid, p Paper, gap, aspectRatio float64) ([]CalculatedCell, error) {
	if !g.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "grid must be at least 1x1, got %dx%d", g.Cols, g.Rows)
	}
	if gap < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "gap must be non-negative, got %g", gap)
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

	cellW := availW / float64(g.Cols)
	cellH := availH / float64(g.Rows)

	// A fixed aspect ratio only ever shrinks one dimension, so cells are
	// guaranteed to stay inside their natural grid slot.
	if aspectRatio > 0 {
		if cellW/cellH > aspectRatio {
			cellW = cellH * aspectRatio
		} else {
			cellH = cellW / aspectRatio
		}
	}

	// Shrinking may leave unused space: center the occupied block once for
	// the whole grid, not per row or column.
	occupiedW := cellW*float64(g.Cols) + gap*float64(g.Cols-1)
	occupiedH := cellH*float64(g.Rows) + gap*float64(g.Rows-1)
	offsetX := (printableW - occupiedW) / 2
	offsetY := (printableH - occupiedH) / 2

	cells := make([]CalculatedCell, 0, g.Capacity())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cells = append(cells, CalculatedCell{
				Index:  len(cells),
				X:      p.Margins.Left + offsetX + float64(col)*(cellW+gap),
				Y:      p.Margins.Top + offsetY + float64(row)*(cellH+gap),
				Width:  cellW,
				Height: cellH,
			})
		}
	}
	return cells, nil
}
