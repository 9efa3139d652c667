// Package render provides output sinks for computed layouts.
//
// # Overview
//
// A sink transforms a [layout.Result] into a final output format.
// This package provides renderers for:
//
//   - SVG: vector proof sheets, one document per page
//   - JSON: the full layout as a data document for external tools
//   - PNG: raster proof sheets via fogleman/gg
//
// All sinks are pure functions of the result plus their options: they never
// modify the result and are safe to call concurrently.
//
// # SVG Output
//
// [RenderSVG] draws the page outline, every cell, and the fitted image box
// inside each occupied cell:
//
//	svg, err := render.RenderSVG(res, 0,
//	    render.WithSVGFit(layout.FitCover, layout.AnchorCenter),
//	    render.WithSVGLabels(),
//	)
//
// # JSON Output
//
// [RenderJSON] exports paper geometry, cells, assignments, and the computed
// placement rectangles. It is the interchange format for re-rendering a
// layout without recomputing it.
//
// # PNG Output
//
// [RenderPNG] rasterizes one page. When an image ref id is a readable file
// the actual pixels are drawn (clipped to the cell for cover mode);
// otherwise a placeholder box is drawn in its place.
//
// [layout.Result]: github.com/matzehuels/printgrid/pkg/layout.Result
package render
