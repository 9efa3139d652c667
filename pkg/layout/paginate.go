package layout

import "github.com/matzehuels/printgrid/pkg/errors"

// Paginate distributes images across pages of fixed capacity, where
// capacity is the number of calculated cells per page. Image order is
// preserved: page p holds the slice images[p*capacity : (p+1)*capacity],
// with each image stamped onto the cell of matching position. Surplus
// cells on the last page carry no image id.
//
// An empty image sequence yields exactly one page with all cells present
// but unassigned. Cell geometry is computed once by the caller and reused
// for every page.
func Paginate(images []ImageRef, cells []CalculatedCell) ([]Page, error) {
	capacity := len(cells)
	if capacity == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGrid, "cannot paginate onto zero cells")
	}

	pageCount := (len(images) + capacity - 1) / capacity
	if pageCount == 0 {
		pageCount = 1
	}

	pages := make([]Page, pageCount)
	for p := 0; p < pageCount; p++ {
		start := p * capacity
		end := min(start+capacity, len(images))
		slice := images[start:end]

		pageCells := make([]CalculatedCell, capacity)
		copy(pageCells, cells)
		for i, img := range slice {
			pageCells[i].ImageID = img.ID
		}

		pages[p] = Page{
			Index:      p,
			ImageCount: len(slice),
			Cells:      pageCells,
			Images:     slice,
		}
	}
	return pages, nil
}

// MoveImage returns a copy of images with the element at from re-inserted
// at to, shifting the elements in between. Both indices must address an
// existing element; out-of-range indices are rejected with INVALID_INDEX
// before anything is copied.
func MoveImage(images []ImageRef, from, to int) ([]ImageRef, error) {
	if from < 0 || from >= len(images) {
		return nil, errors.New(errors.ErrCodeInvalidIndex, "from index %d out of range [0,%d)", from, len(images))
	}
	if to < 0 || to >= len(images) {
		return nil, errors.New(errors.ErrCodeInvalidIndex, "to index %d out of range [0,%d)", to, len(images))
	}

	out := make([]ImageRef, 0, len(images))
	out = append(out, images[:from]...)
	out = append(out, images[from+1:]...)

	moved := images[from]
	out = append(out[:to], append([]ImageRef{moved}, out[to:]...)...)
	return out, nil
}
