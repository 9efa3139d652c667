package layout

import (
	"strings"

	"github.com/matzehuels/printgrid/pkg/errors"
)

// =============================================================================
// Fit Modes
// =============================================================================

// FitMode is the policy deriving an image's rectangle from its aspect
// ratio and its target cell. The set is closed: adding a mode is a
// compile-time change, not a new string.
type FitMode int

const (
	// FitContain scales the image to the largest size that fits entirely
	// inside the cell, preserving aspect ratio.
	FitContain FitMode = iota

	// FitCover scales the image to the smallest size that covers the cell
	// entirely, preserving aspect ratio; one axis may exceed the cell.
	FitCover

	// FitFill stretches the image to the exact cell rectangle, ignoring
	// aspect ratio.
	FitFill

	// FitNone keeps the image's original pixel dimensions. Any unit
	// mismatch with the cell is the caller's responsibility.
	FitNone
)

var fitModeNames = map[FitMode]string{
	FitContain: "contain",
	FitCover:   "cover",
	FitFill:    "fill",
	FitNone:    "none",
}

// String returns the lowercase mode name.
func (m FitMode) String() string {
	if s, ok := fitModeNames[m]; ok {
		return s
	}
	return "contain"
}

// ParseFitMode converts a mode name to a FitMode.
// Returns INVALID_FIT_MODE for unknown names.
func ParseFitMode(s string) (FitMode, error) {
	for m, name := range fitModeNames {
		if s == name {
			return m, nil
		}
	}
	return FitContain, errors.New(errors.ErrCodeInvalidFitMode,
		"invalid fit mode: %q (must be one of: contain, cover, fill, none)", s)
}

// =============================================================================
// Anchors
// =============================================================================

// HAlign is the horizontal placement of a sized image within its cell.
type HAlign int

// Horizontal alignments.
const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// VAlign is the vertical placement of a sized image within its cell.
type VAlign int

// Vertical alignments.
const (
	AlignMiddle VAlign = iota
	AlignTop
	AlignBottom
)

// Anchor combines horizontal and vertical alignment. The zero value is
// centered on both axes.
type Anchor struct {
	H HAlign
	V VAlign
}

// AnchorCenter places the image centered in its cell.
var AnchorCenter = Anchor{AlignCenter, AlignMiddle}

var (
	hAlignNames = map[HAlign]string{AlignLeft: "left", AlignCenter: "center", AlignRight: "right"}
	vAlignNames = map[VAlign]string{AlignTop: "top", AlignMiddle: "center", AlignBottom: "bottom"}
)

// String returns the anchor as "horizontal-vertical", e.g. "center-top".
func (a Anchor) String() string {
	return hAlignNames[a.H] + "-" + vAlignNames[a.V]
}

// ParseAnchor converts a "horizontal-vertical" pair (e.g. "left-top",
// "center-center") to an Anchor. Returns INVALID_ANCHOR for unknown names.
func ParseAnchor(s string) (Anchor, error) {
	if h, v, ok := strings.Cut(s, "-"); ok {
		var a Anchor
		var okH, okV bool
		for align, name := range hAlignNames {
			if h == name {
				a.H, okH = align, true
			}
		}
		for align, name := range vAlignNames {
			if v == name {
				a.V, okV = align, true
			}
		}
		if okH && okV {
			return a, nil
		}
	}
	return AnchorCenter, errors.New(errors.ErrCodeInvalidAnchor,
		"invalid anchor: %q (expected <left|center|right>-<top|center|bottom>)", s)
}

// =============================================================================
// Fit
// =============================================================================

// Fit computes the rectangle img occupies within cell under the given fit
// mode and anchor. The result is in the same unit as the cell, except for
// [FitNone] which uses the image's raw pixel dimensions.
//
// Under FitFill the anchor has no visible effect: the result equals the
// cell rectangle exactly.
func Fit(img ImageRef, cell CalculatedCell, mode FitMode, anchor Anchor) Rect {
	ia := img.Ratio()
	ca := cell.Width / cell.Height

	var w, h float64
	switch mode {
	case FitCover:
		if ia > ca {
			h = cell.Height
			w = cell.Height * ia
		} else {
			w = cell.Width
			h = cell.Width / ia
		}
	case FitFill:
		w, h = cell.Width, cell.Height
	case FitNone:
		w, h = float64(img.Width), float64(img.Height)
	default: // FitContain
		if ia > ca {
			w = cell.Width
			h = cell.Width / ia
		} else {
			h = cell.Height
			w = cell.Height * ia
		}
	}

	r := Rect{Width: w, Height: h}

	switch anchor.H {
	case AlignLeft:
		r.X = cell.X
	case AlignRight:
		r.X = cell.X + cell.Width - w
	default: // AlignCenter
		r.X = cell.X + (cell.Width-w)/2
	}

	switch anchor.V {
	case AlignTop:
		r.Y = cell.Y
	case AlignBottom:
		r.Y = cell.Y + cell.Height - h
	default: // AlignMiddle
		r.Y = cell.Y + (cell.Height-h)/2
	}

	return r
}
