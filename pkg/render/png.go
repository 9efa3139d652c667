package render

import (
	"bytes"
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"

	"github.com/matzehuels/printgrid/pkg/layout"
)

// ImageLoader resolves an image ref id to decoded pixels. Loaders returning
// an error for an id cause a placeholder to be drawn instead.
type ImageLoader func(id string) (image.Image, error)

// PNGOption configures PNG rendering via [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	fitMode layout.FitMode
	anchor  layout.Anchor
	scale   float64
	loader  ImageLoader
}

// WithPNGFit sets the fit mode and anchor used for image placement.
func WithPNGFit(mode layout.FitMode, anchor layout.Anchor) PNGOption {
	return func(r *pngRenderer) { r.fitMode = mode; r.anchor = anchor }
}

// WithPNGScale sets the output pixel size per paper unit (default
// [DefaultScale]).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithPNGLoader replaces the default file-based image loader.
func WithPNGLoader(l ImageLoader) PNGOption {
	return func(r *pngRenderer) { r.loader = l }
}

// fileLoader treats the ref id as a path on disk.
func fileLoader(id string) (image.Image, error) {
	f, err := os.Open(id)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// RenderPNG rasterizes one page of the result. Occupied cells draw the
// actual image pixels when the loader can resolve the ref id; unresolvable
// refs and empty cells draw as outlined placeholders. Cover-mode placements
// are clipped to their cell.
func RenderPNG(res *layout.Result, page int, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{fitMode: layout.FitContain, anchor: layout.AnchorCenter, scale: DefaultScale, loader: fileLoader}
	for _, opt := range opts {
		opt(&r)
	}

	pg, err := pageAt(res, page)
	if err != nil {
		return nil, err
	}

	paper := res.Paper
	w := int(math.Round(paper.Width * r.scale))
	h := int(math.Round(paper.Height * r.scale))
	dc := gg.NewContext(w, h)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	refs := refLookup(pg)
	for _, cell := range pg.Cells {
		drawCell(dc, &r, cell, refs)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawCell(dc *gg.Context, r *pngRenderer, cell layout.CalculatedCell, refs map[string]layout.ImageRef) {
	s := r.scale
	cx, cy := cell.X*s, cell.Y*s
	cw, ch := cell.Width*s, cell.Height*s

	dc.SetRGB(0.96, 0.96, 0.96)
	dc.DrawRectangle(cx, cy, cw, ch)
	dc.Fill()

	img, ok := refs[cell.ImageID]
	if ok {
		placed := layout.Fit(img, cell, r.fitMode, r.anchor)
		if pixels, err := r.loader(img.ID); err == nil {
			drawPixels(dc, pixels, placed, cell, s)
		} else {
			drawPlaceholder(dc, placed, s)
		}
	}

	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetLineWidth(1)
	dc.DrawRectangle(cx, cy, cw, ch)
	dc.Stroke()
}

func drawPixels(dc *gg.Context, pixels image.Image, placed layout.Rect, cell layout.CalculatedCell, s float64) {
	bounds := pixels.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	// The placement may extend past the cell in cover mode.
	dc.Push()
	dc.DrawRectangle(cell.X*s, cell.Y*s, cell.Width*s, cell.Height*s)
	dc.Clip()

	sx := placed.Width * s / float64(bounds.Dx())
	sy := placed.Height * s / float64(bounds.Dy())
	dc.Translate(placed.X*s, placed.Y*s)
	dc.Scale(sx, sy)
	dc.DrawImage(pixels, 0, 0)

	dc.Pop()
}

func drawPlaceholder(dc *gg.Context, placed layout.Rect, s float64) {
	x, y := placed.X*s, placed.Y*s
	w, h := placed.Width*s, placed.Height*s

	dc.SetRGB(0.72, 0.8, 0.88)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	dc.SetRGB(0.29, 0.48, 0.66)
	dc.SetLineWidth(1)
	dc.DrawLine(x, y, x+w, y+h)
	dc.DrawLine(x+w, y, x, y+h)
	dc.Stroke()
}
