// Package layout implements the page layout geometry engine.
//
// The engine arranges an ordered sequence of images onto one or more
// fixed-size pages according to a declarative template, and computes for
// every image the exact rectangle it occupies inside its assigned cell.
//
// # Pipeline
//
// A template plus paper geometry is partitioned into cells, either as a
// uniform cols x rows grid ([GridCells]) or from explicit, possibly
// spanning, cell definitions ([CustomCells]). The image sequence is then
// chunked into fixed-capacity pages ([Paginate]). A renderer finally places
// each image inside its cell with [Fit], choosing a fit mode and anchor.
//
// The [Engine] facade ties these steps together and resolves templates by
// id through a [TemplateResolver].
//
// # Purity
//
// Every operation in this package is a pure, synchronous computation over
// its inputs: no I/O, no shared mutable state, no retained allocations.
// Recomputing a layout for the same (template, paper) pair yields
// bit-identical rectangles, and all functions are safe for concurrent use.
//
// # Units
//
// The engine is unit-agnostic. Paper dimensions, margins, and gaps share
// one physical unit (the [Paper.Unit] tag is informational only), and all
// produced geometry is expressed in that same unit.
package layout
