package layout_test

import (
	"fmt"

	"github.com/matzehuels/printgrid/pkg/layout"
)

// Lay out six photos on A4 paper with a 2x2 grid and print where the first
// photo lands inside its cell.
func Example() {
	tmpl := layout.Template{
		ID:   "grid-2x2",
		Name: "2 x 2",
		Grid: layout.Grid{Cols: 2, Rows: 2},
		Gap:  5,
	}
	paper := layout.Paper{
		Width:   210,
		Height:  297,
		Margins: layout.Uniform(10),
		Unit:    "mm",
	}

	var images []layout.ImageRef
	for i := 0; i < 6; i++ {
		images = append(images, layout.NewImageRef(fmt.Sprintf("photo-%d", i), 3000, 2000))
	}

	engine := layout.NewEngine(nil)
	result, err := engine.Layout(tmpl, paper, images)
	if err != nil {
		panic(err)
	}

	fmt.Printf("pages: %d\n", result.PageCount())
	fmt.Printf("cells per page: %d\n", len(result.Cells))

	cell := result.Pages[0].Cells[0]
	rect := layout.Fit(images[0], cell, layout.FitContain, layout.AnchorCenter)
	fmt.Printf("photo-0 cell: %.1fx%.1f\n", cell.Width, cell.Height)
	fmt.Printf("photo-0 placed: %.1fx%.1f\n", rect.Width, rect.Height)

	// Output:
	// pages: 2
	// cells per page: 4
	// photo-0 cell: 92.5x136.0
	// photo-0 placed: 92.5x61.7
}
