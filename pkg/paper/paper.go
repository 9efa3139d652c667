// Package paper provides standard paper sizes, physical units, and helpers
// for building the paper geometry consumed by the layout engine.
//
// Sizes are stored in millimeters, the native unit of the ISO series, and
// can be converted to other units with [Convert]. The layout engine itself
// is unit-agnostic; this package exists so CLI and API callers can say
// "a4" or "letter" instead of spelling out dimensions.
package paper

import (
	"sort"
	"strings"

	"github.com/matzehuels/printgrid/pkg/errors"
	"github.com/matzehuels/printgrid/pkg/layout"
)

// Unit is a physical measurement unit tag.
type Unit string

// Supported units.
const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Inch       Unit = "in"
	Point      Unit = "pt" // 1/72 inch, the PDF base unit
	Pixel      Unit = "px" // at 96 DPI
)

// millimetersPer maps each unit to its size in millimeters.
var millimetersPer = map[Unit]float64{
	Millimeter: 1,
	Centimeter: 10,
	Inch:       25.4,
	Point:      25.4 / 72,
	Pixel:      25.4 / 96,
}

// ParseUnit converts a unit name to a Unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(s))
	if _, ok := millimetersPer[u]; !ok {
		return "", errors.New(errors.ErrCodeUnsupported, "unknown unit %q (must be one of: mm, cm, in, pt, px)", s)
	}
	return u, nil
}

// Convert converts a value between units.
func Convert(value float64, from, to Unit) float64 {
	return value * millimetersPer[from] / millimetersPer[to]
}

// Size is a named paper size in millimeters, portrait orientation.
type Size struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Standard sizes, portrait, in millimeters.
var sizes = map[string]Size{
	"a3":     {"A3", 297, 420},
	"a4":     {"A4", 210, 297},
	"a5":     {"A5", 148, 210},
	"a6":     {"A6", 105, 148},
	"letter": {"Letter", 215.9, 279.4},
	"legal":  {"Legal", 215.9, 355.6},
	"4x6":    {"4x6 in", 101.6, 152.4},
	"5x7":    {"5x7 in", 127, 177.8},
}

// DefaultMargin is the default page margin in millimeters.
const DefaultMargin = 10.0

// Lookup finds a paper size by its lowercase key (e.g. "a4", "letter").
func Lookup(key string) (Size, error) {
	s, ok := sizes[strings.ToLower(key)]
	if !ok {
		return Size{}, errors.New(errors.ErrCodePaperNotFound, "unknown paper size %q", key)
	}
	return s, nil
}

// List returns all known sizes sorted by name.
func List() []Size {
	out := make([]Size, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Geometry builds the layout.Paper for a named size in the requested unit,
// with a uniform margin given in that same unit.
func Geometry(key string, unit Unit, margin float64) (layout.Paper, error) {
	s, err := Lookup(key)
	if err != nil {
		return layout.Paper{}, err
	}
	if _, ok := millimetersPer[unit]; !ok {
		return layout.Paper{}, errors.New(errors.ErrCodeUnsupported, "unknown unit %q", unit)
	}
	return layout.Paper{
		Width:       Convert(s.Width, Millimeter, unit),
		Height:      Convert(s.Height, Millimeter, unit),
		Margins:     layout.Uniform(margin),
		Orientation: layout.Portrait,
		Unit:        string(unit),
	}, nil
}
