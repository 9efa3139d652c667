package render

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/matzehuels/printgrid/pkg/layout"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fitMode    layout.FitMode
	anchor     layout.Anchor
	scale      float64
	labels     bool
	background string
}

// WithSVGFit sets the fit mode and anchor used for image placement boxes.
func WithSVGFit(mode layout.FitMode, anchor layout.Anchor) SVGOption {
	return func(r *svgRenderer) { r.fitMode = mode; r.anchor = anchor }
}

// WithSVGScale sets the output pixel size per paper unit (default
// [DefaultScale]).
func WithSVGScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithSVGLabels draws the image file name inside each occupied cell.
func WithSVGLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithSVGBackground sets the paper fill color (default white).
func WithSVGBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG renders one page of the result as an SVG proof sheet: the paper
// outline, the printable area, every cell, and the fitted image box inside
// each occupied cell. Coordinates in the document are paper units, so the
// SVG can be overlaid on print output directly.
func RenderSVG(res *layout.Result, page int, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{fitMode: layout.FitContain, anchor: layout.AnchorCenter, scale: DefaultScale, background: "#ffffff"}
	for _, opt := range opts {
		opt(&r)
	}

	pg, err := pageAt(res, page)
	if err != nil {
		return nil, err
	}

	paper := res.Paper
	refs := refLookup(pg)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.3f %.3f" width="%.0f" height="%.0f">`+"\n",
		paper.Width, paper.Height, paper.Width*r.scale, paper.Height*r.scale)

	// Paper and printable area.
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.3f" height="%.3f" fill="%s" stroke="#999" stroke-width="0.5"/>`+"\n",
		paper.Width, paper.Height, r.background)
	fmt.Fprintf(&buf, `  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="none" stroke="#ccc" stroke-width="0.25" stroke-dasharray="2 2"/>`+"\n",
		paper.Margins.Left, paper.Margins.Top, paper.PrintableWidth(), paper.PrintableHeight())

	for _, cell := range pg.Cells {
		renderSVGCell(&buf, &r, cell, refs)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderSVGCell(buf *bytes.Buffer, r *svgRenderer, cell layout.CalculatedCell, refs map[string]layout.ImageRef) {
	fmt.Fprintf(buf, `  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="#f5f5f5" stroke="#666" stroke-width="0.35"/>`+"\n",
		cell.X, cell.Y, cell.Width, cell.Height)

	img, ok := refs[cell.ImageID]
	if !ok {
		return
	}

	placed := layout.Fit(img, cell, r.fitMode, r.anchor)
	fmt.Fprintf(buf, `  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="#b8cde0" stroke="#4a7aa8" stroke-width="0.35"/>`+"\n",
		placed.X, placed.Y, placed.Width, placed.Height)

	if r.labels {
		fontSize := cell.Height * 0.06
		fmt.Fprintf(buf, `  <text x="%.3f" y="%.3f" font-size="%.2f" font-family="sans-serif" text-anchor="middle" fill="#333">%s</text>`+"\n",
			cell.X+cell.Width/2, cell.Y+cell.Height-fontSize, fontSize, svgEscape(filepath.Base(img.ID)))
	}
}

func svgEscape(s string) string {
	var buf bytes.Buffer
	for _, c := range s {
		switch c {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(c)
		}
	}
	return buf.String()
}
