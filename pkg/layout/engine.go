package layout

import "github.com/matzehuels/printgrid/pkg/errors"

// TemplateResolver looks up templates by id. Implemented by the template
// registry; the engine itself holds no template state.
type TemplateResolver interface {
	Resolve(id string) (Template, bool)
}

// Result is the complete output of a layout computation: the effective
// template, the paper in its resolved orientation, the per-page cell
// geometry, and the paginated pages.
type Result struct {
	Template Template         `json:"template"`
	Paper    Paper            `json:"paper"`
	Cells    []CalculatedCell `json:"cells"`
	Pages    []Page           `json:"pages"`
}

// PageCount returns the number of pages in the result.
func (r *Result) PageCount() int { return len(r.Pages) }

// Engine is the layout facade. It resolves templates, decides orientation,
// delegates cell computation to the grid or custom partitioner, and
// paginates the image sequence.
//
// The zero value is usable for Layout; Templates is only needed for
// LayoutByID.
type Engine struct {
	Templates TemplateResolver
}

// NewEngine creates an engine resolving template ids through r.
func NewEngine(r TemplateResolver) *Engine {
	return &Engine{Templates: r}
}

// Layout computes the full page layout for a template, paper, and image
// sequence. Grid and custom partitioning are mutually exclusive, chosen by
// whether the template carries explicit cell definitions.
//
// The paper is turned to the template's resolved orientation before
// partitioning, so callers may pass the paper in its natural orientation.
func (e *Engine) Layout(t Template, p Paper, images []ImageRef) (*Result, error) {
	if err := ValidateTemplate(t); err != nil {
		return nil, err
	}
	if err := ValidatePaper(p); err != nil {
		return nil, err
	}

	paper := p.Oriented(ResolveOrientation(t))

	var (
		cells []CalculatedCell
		err   error
	)
	if t.IsCustom() {
		cells, err = CustomCells(t.Cells, t.Grid, paper, t.Gap)
	} else {
		cells, err = GridCells(t.Grid, paper, t.Gap, t.AspectRatio)
	}
	if err != nil {
		return nil, err
	}

	pages, err := Paginate(images, cells)
	if err != nil {
		return nil, err
	}

	return &Result{Template: t, Paper: paper, Cells: cells, Pages: pages}, nil
}

// LayoutByID resolves a template id and computes the layout. Unknown ids
// surface as LAYOUT_NOT_FOUND so callers can fall back to a default
// template instead of failing hard.
func (e *Engine) LayoutByID(id string, p Paper, images []ImageRef) (*Result, error) {
	if e.Templates == nil {
		return nil, errors.New(errors.ErrCodeLayoutNotFound, "no template resolver configured")
	}
	t, ok := e.Templates.Resolve(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeLayoutNotFound, "no layout template %q", id)
	}
	return e.Layout(t, p, images)
}

// ValidateTemplate checks a template's structural invariants: a valid
// grid, a non-negative gap, and custom cells within grid bounds. A
// non-positive aspect ratio is not an error; it reads as unset.
func ValidateTemplate(t Template) error {
	if !t.Grid.Valid() {
		return errors.New(errors.ErrCodeInvalidGrid, "template %q: grid must be at least 1x1, got %dx%d",
			t.ID, t.Grid.Cols, t.Grid.Rows)
	}
	if t.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "template %q: gap must be non-negative, got %g", t.ID, t.Gap)
	}
	switch t.Orientation {
	case "", Auto, Portrait, Landscape:
	default:
		return errors.New(errors.ErrCodeInvalidTemplate, "template %q: unknown orientation %q", t.ID, t.Orientation)
	}
	if t.IsCustom() {
		if err := ValidateCells(t.Cells, t.Grid); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePaper checks that the paper has positive dimensions and
// non-negative margins.
func ValidatePaper(p Paper) error {
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidPaper, "paper dimensions must be positive, got %gx%g", p.Width, p.Height)
	}
	m := p.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return errors.New(errors.ErrCodeInvalidPaper, "margins must be non-negative")
	}
	return nil
}
