package paper

import (
	"math"
	"testing"

	"github.com/matzehuels/printgrid/pkg/errors"
)

func TestLookup(t *testing.T) {
	s, err := Lookup("a4")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if s.Width != 210 || s.Height != 297 {
		t.Errorf("A4 = %gx%g, want 210x297", s.Width, s.Height)
	}

	// Case-insensitive.
	if _, err := Lookup("Letter"); err != nil {
		t.Errorf("Lookup(Letter) error: %v", err)
	}

	if _, err := Lookup("b9"); !errors.Is(err, errors.ErrCodePaperNotFound) {
		t.Errorf("error = %v, want PAPER_NOT_FOUND", err)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		value    float64
		from, to Unit
		want     float64
	}{
		{25.4, Millimeter, Inch, 1},
		{1, Inch, Point, 72},
		{1, Inch, Pixel, 96},
		{10, Millimeter, Centimeter, 1},
		{100, Millimeter, Millimeter, 100},
	}
	for _, tt := range tests {
		if got := Convert(tt.value, tt.from, tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Convert(%g, %s, %s) = %g, want %g", tt.value, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	if u, err := ParseUnit("MM"); err != nil || u != Millimeter {
		t.Errorf("ParseUnit(MM) = %q, %v", u, err)
	}
	if _, err := ParseUnit("furlong"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}

func TestGeometry(t *testing.T) {
	p, err := Geometry("a4", Millimeter, 10)
	if err != nil {
		t.Fatalf("Geometry error: %v", err)
	}
	if p.Width != 210 || p.Height != 297 {
		t.Errorf("paper = %gx%g", p.Width, p.Height)
	}
	if p.Margins.Top != 10 || p.Margins.Left != 10 {
		t.Errorf("margins = %+v", p.Margins)
	}
	if p.PrintableWidth() != 190 || p.PrintableHeight() != 277 {
		t.Errorf("printable = %gx%g, want 190x277", p.PrintableWidth(), p.PrintableHeight())
	}

	// Unit conversion applies to dimensions but not the margin value.
	inches, err := Geometry("letter", Inch, 0.5)
	if err != nil {
		t.Fatalf("Geometry error: %v", err)
	}
	if math.Abs(inches.Width-8.5) > 1e-9 {
		t.Errorf("letter width = %g in, want 8.5", inches.Width)
	}
	if inches.Margins.Top != 0.5 {
		t.Errorf("margin = %g, want 0.5", inches.Margins.Top)
	}
}

func TestList(t *testing.T) {
	all := List()
	if len(all) < 6 {
		t.Fatalf("List returned %d sizes", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatal("List should be sorted by name")
		}
	}
}
