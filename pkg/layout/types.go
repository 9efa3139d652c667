package layout

// =============================================================================
// Orientation
// =============================================================================

// Orientation describes how a page is turned.
type Orientation string

// Orientation values. Auto defers the decision to the template's grid shape,
// see [ResolveOrientation].
const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
	Auto      Orientation = "auto"
)

// =============================================================================
// Template - Declarative Page Description
// =============================================================================

// Grid declares a uniform cols x rows partition of the printable area.
type Grid struct {
	Cols int `json:"cols" bson:"cols"`
	Rows int `json:"rows" bson:"rows"`
}

// Capacity returns the number of cells the grid holds.
func (g Grid) Capacity() int { return g.Cols * g.Rows }

// Valid reports whether the grid has at least one column and one row.
func (g Grid) Valid() bool { return g.Cols >= 1 && g.Rows >= 1 }

// Cell is a free-form cell definition in grid-unit coordinates, used by
// collage-style templates. X and Y address the zero-based top-left grid
// unit; ColSpan and RowSpan extend the cell across unit boundaries and
// default to 1 when zero.
type Cell struct {
	X       int `json:"x" bson:"x"`
	Y       int `json:"y" bson:"y"`
	ColSpan int `json:"col_span,omitempty" bson:"col_span,omitempty"`
	RowSpan int `json:"row_span,omitempty" bson:"row_span,omitempty"`

	// AspectRatio is advisory: reserved for per-cell fit overrides, not
	// consulted by the partitioner.
	AspectRatio float64 `json:"aspect_ratio,omitempty" bson:"aspect_ratio,omitempty"`
}

// Spans returns the effective column and row spans, defaulting to 1.
func (c Cell) Spans() (cols, rows int) {
	cols, rows = c.ColSpan, c.RowSpan
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Template declares how images are arranged on a page.
//
// When Cells is non-empty the template is in custom mode and the grid only
// defines the unit coordinate system for the cell definitions; otherwise
// the grid itself is partitioned uniformly.
type Template struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Grid        Grid   `json:"grid" bson:"grid"`
	Cells       []Cell `json:"cells,omitempty" bson:"cells,omitempty"`

	// AspectRatio fixes the width/height ratio of grid cells. Values <= 0
	// are treated as unset and the natural cell shape is kept. Only
	// meaningful in grid mode.
	AspectRatio float64 `json:"aspect_ratio,omitempty" bson:"aspect_ratio,omitempty"`

	// Gap is the spacing between adjacent cells, in the paper's unit.
	Gap float64 `json:"gap,omitempty" bson:"gap,omitempty"`

	// Orientation of the page; empty means Auto.
	Orientation Orientation `json:"orientation,omitempty" bson:"orientation,omitempty"`
}

// IsCustom reports whether the template uses explicit cell definitions.
func (t Template) IsCustom() bool { return len(t.Cells) > 0 }

// Clone returns a deep copy of the template, so callers can hold or mutate
// the result without sharing cell storage.
func (t Template) Clone() Template {
	out := t
	if t.Cells != nil {
		out.Cells = append([]Cell(nil), t.Cells...)
	}
	return out
}

// Capacity returns the number of images a single page can hold.
func (t Template) Capacity() int {
	if t.IsCustom() {
		return len(t.Cells)
	}
	return t.Grid.Capacity()
}

// =============================================================================
// Paper
// =============================================================================

// Margins are the non-printable borders of a page, in the paper's unit.
type Margins struct {
	Top    float64 `json:"top" bson:"top"`
	Right  float64 `json:"right" bson:"right"`
	Bottom float64 `json:"bottom" bson:"bottom"`
	Left   float64 `json:"left" bson:"left"`
}

// Uniform returns margins with the same value on all four sides.
func Uniform(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

// Paper describes the physical page the layout is computed for. Width and
// Height are expressed in Unit; the engine never converts units and treats
// Unit as an informational tag.
type Paper struct {
	Width       float64     `json:"width" bson:"width"`
	Height      float64     `json:"height" bson:"height"`
	Margins     Margins     `json:"margins" bson:"margins"`
	Orientation Orientation `json:"orientation,omitempty" bson:"orientation,omitempty"`
	Unit        string      `json:"unit,omitempty" bson:"unit,omitempty"`
}

// PrintableWidth returns the paper width minus horizontal margins.
func (p Paper) PrintableWidth() float64 {
	return p.Width - p.Margins.Left - p.Margins.Right
}

// PrintableHeight returns the paper height minus vertical margins.
func (p Paper) PrintableHeight() float64 {
	return p.Height - p.Margins.Top - p.Margins.Bottom
}

// Oriented returns the paper turned to the given orientation, swapping
// width and height when necessary. Margins follow the page corners and are
// left untouched.
func (p Paper) Oriented(o Orientation) Paper {
	if o != Portrait && o != Landscape {
		return p
	}
	needsSwap := (o == Landscape && p.Height > p.Width) ||
		(o == Portrait && p.Width > p.Height)
	if needsSwap {
		p.Width, p.Height = p.Height, p.Width
	}
	p.Orientation = o
	return p
}

// =============================================================================
// Computed Geometry
// =============================================================================

// Rect is an axis-aligned rectangle in the paper's unit.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CalculatedCell is one positioned slot on a page. Coordinates are absolute
// on the paper, margin offset included. ImageID is set during pagination
// and empty for surplus cells on the last page.
type CalculatedCell struct {
	Index   int     `json:"index"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	ImageID string  `json:"image_id,omitempty"`
}

// Rect returns the cell's rectangle.
func (c CalculatedCell) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// ImageRef identifies one image by its pixel dimensions. The engine never
// inspects pixel content; refs are supplied by an external image loader.
type ImageRef struct {
	ID          string  `json:"id"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
}

// NewImageRef builds an ImageRef with its aspect ratio derived from the
// pixel dimensions.
func NewImageRef(id string, width, height int) ImageRef {
	r := ImageRef{ID: id, Width: width, Height: height}
	if height > 0 {
		r.AspectRatio = float64(width) / float64(height)
	}
	return r
}

// Ratio returns the image's aspect ratio, deriving it from the pixel
// dimensions when the stored value is unset.
func (r ImageRef) Ratio() float64 {
	if r.AspectRatio > 0 {
		return r.AspectRatio
	}
	if r.Height > 0 {
		return float64(r.Width) / float64(r.Height)
	}
	return 1
}

// Page is one laid-out page: the cells with their image assignments and the
// slice of the input sequence placed on this page, in original order.
type Page struct {
	Index      int              `json:"index"`
	ImageCount int              `json:"image_count"`
	Cells      []CalculatedCell `json:"cells"`
	Images     []ImageRef       `json:"images"`
}
