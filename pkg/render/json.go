package render

import (
	"encoding/json"

	"github.com/matzehuels/printgrid/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	fitMode layout.FitMode
	anchor  layout.Anchor
	compact bool
}

// WithJSONFit sets the fit mode and anchor used to compute placement
// rectangles in the document.
func WithJSONFit(mode layout.FitMode, anchor layout.Anchor) JSONOption {
	return func(r *jsonRenderer) { r.fitMode = mode; r.anchor = anchor }
}

// WithJSONCompact emits the document without indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonDocument struct {
	Template  jsonTemplate `json:"template"`
	Paper     layout.Paper `json:"paper"`
	FitMode   string       `json:"fit_mode"`
	Anchor    string       `json:"anchor"`
	PageCount int          `json:"page_count"`
	Pages     []jsonPage   `json:"pages"`
}

type jsonTemplate struct {
	ID   string      `json:"id"`
	Name string      `json:"name,omitempty"`
	Grid layout.Grid `json:"grid"`
	Gap  float64     `json:"gap"`
}

type jsonPage struct {
	Index      int             `json:"index"`
	ImageCount int             `json:"image_count"`
	Cells      []jsonPlacement `json:"cells"`
}

type jsonPlacement struct {
	Index   int          `json:"index"`
	Cell    layout.Rect  `json:"cell"`
	ImageID string       `json:"image_id,omitempty"`
	Placed  *layout.Rect `json:"placed,omitempty"`
}

// RenderJSON exports the complete layout as a JSON document: paper
// geometry, per-page cells, image assignments, and the placement rectangle
// computed from the fit options. The document is the interchange format for
// re-rendering a layout without recomputing it.
func RenderJSON(res *layout.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{fitMode: layout.FitContain, anchor: layout.AnchorCenter}
	for _, opt := range opts {
		opt(&r)
	}

	doc := jsonDocument{
		Template: jsonTemplate{
			ID:   res.Template.ID,
			Name: res.Template.Name,
			Grid: res.Template.Grid,
			Gap:  res.Template.Gap,
		},
		Paper:     res.Paper,
		FitMode:   r.fitMode.String(),
		Anchor:    r.anchor.String(),
		PageCount: res.PageCount(),
		Pages:     make([]jsonPage, 0, len(res.Pages)),
	}

	for _, pg := range res.Pages {
		refs := refLookup(pg)
		jp := jsonPage{
			Index:      pg.Index,
			ImageCount: pg.ImageCount,
			Cells:      make([]jsonPlacement, 0, len(pg.Cells)),
		}
		for _, cell := range pg.Cells {
			pl := jsonPlacement{Index: cell.Index, Cell: cell.Rect(), ImageID: cell.ImageID}
			if img, ok := refs[cell.ImageID]; ok {
				placed := layout.Fit(img, cell, r.fitMode, r.anchor)
				pl.Placed = &placed
			}
			jp.Cells = append(jp.Cells, pl)
		}
		doc.Pages = append(doc.Pages, jp)
	}

	if r.compact {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}
