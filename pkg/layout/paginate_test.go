package layout

import (
	"fmt"
	"testing"

	"github.com/matzehuels/printgrid/pkg/errors"
)

func testImages(n int) []ImageRef {
	imgs := make([]ImageRef, n)
	for i := range imgs {
		imgs[i] = NewImageRef(fmt.Sprintf("img-%02d", i), 1200, 800)
	}
	return imgs
}

func testCells(n int) []CalculatedCell {
	cells := make([]CalculatedCell, n)
	for i := range cells {
		cells[i] = CalculatedCell{Index: i, X: float64(i) * 100, Y: 0, Width: 90, Height: 90}
	}
	return cells
}

func TestPaginateSplitsPages(t *testing.T) {
	pages, err := Paginate(testImages(6), testCells(4))
	if err != nil {
		t.Fatalf("Paginate error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0].ImageCount != 4 || pages[1].ImageCount != 2 {
		t.Errorf("image counts = %d,%d, want 4,2", pages[0].ImageCount, pages[1].ImageCount)
	}

	// Union of both pages preserves the original order.
	var ids []string
	for _, p := range pages {
		for _, img := range p.Images {
			ids = append(ids, img.ID)
		}
	}
	for i, id := range ids {
		if want := fmt.Sprintf("img-%02d", i); id != want {
			t.Errorf("position %d: got %s, want %s", i, id, want)
		}
	}
}

func TestPaginateAssignsCells(t *testing.T) {
	pages, err := Paginate(testImages(6), testCells(4))
	if err != nil {
		t.Fatalf("Paginate error: %v", err)
	}

	// First page: all cells assigned in order.
	for i, c := range pages[0].Cells {
		if want := fmt.Sprintf("img-%02d", i); c.ImageID != want {
			t.Errorf("page 0 cell %d image = %q, want %q", i, c.ImageID, want)
		}
	}
	// Last page: two assigned, two surplus cells unassigned.
	last := pages[1]
	if last.Cells[0].ImageID != "img-04" || last.Cells[1].ImageID != "img-05" {
		t.Errorf("page 1 assignments = %q,%q", last.Cells[0].ImageID, last.Cells[1].ImageID)
	}
	if last.Cells[2].ImageID != "" || last.Cells[3].ImageID != "" {
		t.Error("surplus cells on last page should stay unassigned")
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	pages, err := Paginate(nil, testCells(4))
	if err != nil {
		t.Fatalf("Paginate error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	p := pages[0]
	if p.ImageCount != 0 || len(p.Images) != 0 {
		t.Errorf("empty input page has ImageCount=%d, %d images", p.ImageCount, len(p.Images))
	}
	if len(p.Cells) != 4 {
		t.Fatalf("empty page has %d cells, want 4", len(p.Cells))
	}
	for _, c := range p.Cells {
		if c.ImageID != "" {
			t.Error("cells on empty page should carry no image id")
		}
	}
}

func TestPaginateGeometryIdenticalAcrossPages(t *testing.T) {
	cells := testCells(3)
	pages, err := Paginate(testImages(7), cells)
	if err != nil {
		t.Fatalf("Paginate error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for _, p := range pages {
		for i, c := range p.Cells {
			base := cells[i]
			if c.X != base.X || c.Y != base.Y || c.Width != base.Width || c.Height != base.Height {
				t.Errorf("page %d cell %d geometry differs from computed cells", p.Index, i)
			}
		}
	}
	// Stamping image ids must not leak into the shared cell slice.
	for i, c := range cells {
		if c.ImageID != "" {
			t.Errorf("source cell %d was mutated during pagination", i)
		}
	}
}

func TestPaginateExactFit(t *testing.T) {
	pages, err := Paginate(testImages(4), testCells(4))
	if err != nil {
		t.Fatalf("Paginate error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if pages[0].ImageCount != 4 {
		t.Errorf("ImageCount = %d, want 4", pages[0].ImageCount)
	}
}

func TestPaginateZeroCells(t *testing.T) {
	_, err := Paginate(testImages(2), nil)
	if !errors.Is(err, errors.ErrCodeInvalidGrid) {
		t.Errorf("error = %v, want INVALID_GRID", err)
	}
}

func TestMoveImage(t *testing.T) {
	imgs := testImages(4)

	moved, err := MoveImage(imgs, 0, 2)
	if err != nil {
		t.Fatalf("MoveImage error: %v", err)
	}
	got := []string{moved[0].ID, moved[1].ID, moved[2].ID, moved[3].ID}
	want := []string{"img-01", "img-02", "img-00", "img-03"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after move = %v, want %v", got, want)
		}
	}

	// Original untouched.
	if imgs[0].ID != "img-00" {
		t.Error("MoveImage must not mutate its input")
	}
}

func TestMoveImageInvalidIndex(t *testing.T) {
	imgs := testImages(3)
	for _, tc := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if _, err := MoveImage(imgs, tc[0], tc[1]); !errors.Is(err, errors.ErrCodeInvalidIndex) {
			t.Errorf("MoveImage(%d,%d) error = %v, want INVALID_INDEX", tc[0], tc[1], err)
		}
	}
}
