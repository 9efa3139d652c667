package render

import (
	"github.com/matzehuels/printgrid/pkg/errors"
	"github.com/matzehuels/printgrid/pkg/layout"
)

// DefaultScale is the raster/vector scale in pixels per paper unit. At
// millimeter papers this is roughly 100 DPI, enough for screen proofs.
const DefaultScale = 4.0

func pageAt(res *layout.Result, page int) (layout.Page, error) {
	if res == nil || page < 0 || page >= len(res.Pages) {
		n := 0
		if res != nil {
			n = len(res.Pages)
		}
		return layout.Page{}, errors.New(errors.ErrCodeInvalidIndex, "page %d out of range (%d pages)", page, n)
	}
	return res.Pages[page], nil
}

// refLookup indexes a page's images by id so cell assignments can be
// resolved back to pixel dimensions.
func refLookup(p layout.Page) map[string]layout.ImageRef {
	m := make(map[string]layout.ImageRef, len(p.Images))
	for _, img := range p.Images {
		m[img.ID] = img
	}
	return m
}
