package pipeline

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/printgrid/pkg/cache"
	"github.com/matzehuels/printgrid/pkg/errors"
	"github.com/matzehuels/printgrid/pkg/layout"
	"github.com/matzehuels/printgrid/pkg/templates"
)

func testRefs(n int) []layout.ImageRef {
	refs := make([]layout.ImageRef, n)
	for i := range refs {
		refs[i] = layout.NewImageRef(fmt.Sprintf("img-%02d.jpg", i), 1200, 800)
	}
	return refs
}

func testRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("cache: %v", err)
	}
	return NewRunner(c, templates.NewRegistry(templates.NewMemoryStore()), log.New(io.Discard))
}

func TestOptionsValidation(t *testing.T) {
	t.Run("no source", func(t *testing.T) {
		opts := Options{}
		if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error = %v, want INVALID_FORMAT", err)
		}
	})

	t.Run("two sources", func(t *testing.T) {
		opts := Options{Dir: "./photos", Manifest: "images.json"}
		if err := opts.ValidateAndSetDefaults(); err == nil {
			t.Error("two sources should be rejected")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		opts := Options{Images: testRefs(1)}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.Template != DefaultTemplate || opts.Paper != DefaultPaper || opts.Unit != DefaultUnit {
			t.Errorf("layout defaults not applied: %+v", opts)
		}
		if opts.FitMode != DefaultFitMode || opts.Anchor != DefaultAnchor {
			t.Errorf("render defaults not applied: %+v", opts)
		}
		if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
			t.Errorf("formats = %v, want [svg]", opts.Formats)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		opts := Options{Images: testRefs(1), Formats: []string{"pdf"}}
		if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error = %v, want INVALID_FORMAT", err)
		}
	})

	t.Run("bad fit mode", func(t *testing.T) {
		opts := Options{Images: testRefs(1), FitMode: "stretch"}
		if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidFitMode) {
			t.Errorf("error = %v, want INVALID_FIT_MODE", err)
		}
	})
}

func TestEffectiveMargin(t *testing.T) {
	if m := (&Options{}).EffectiveMargin(); m != 10 {
		t.Errorf("default margin = %g, want 10", m)
	}
	if m := (&Options{Margin: 5}).EffectiveMargin(); m != 5 {
		t.Errorf("explicit margin = %g, want 5", m)
	}
	if m := (&Options{Margin: 5, Borderless: true}).EffectiveMargin(); m != 0 {
		t.Errorf("borderless margin = %g, want 0", m)
	}
}

func TestExecute(t *testing.T) {
	r := testRunner(t)
	defer r.Close()

	opts := Options{
		Images:  testRefs(6),
		Formats: []string{FormatSVG, FormatJSON},
	}
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Stats.ImageCount != 6 || result.Stats.PageCount != 2 {
		t.Errorf("stats = %d images / %d pages, want 6/2", result.Stats.ImageCount, result.Stats.PageCount)
	}
	if result.LayoutHash == "" {
		t.Error("layout hash should be set")
	}
	if len(result.Artifacts[FormatSVG]) != 2 {
		t.Errorf("svg artifacts = %d, want one per page", len(result.Artifacts[FormatSVG]))
	}
	if len(result.Artifacts[FormatJSON]) != 1 {
		t.Errorf("json artifacts = %d, want 1", len(result.Artifacts[FormatJSON]))
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}
}

func TestExecuteCaching(t *testing.T) {
	r := testRunner(t)
	defer r.Close()

	opts := Options{Images: testRefs(3)}
	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}

	second, err := r.Execute(context.Background(), Options{Images: testRefs(3)})
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit the cache: %+v", second.CacheInfo)
	}
	if second.LayoutHash != first.LayoutHash {
		t.Error("layout hash should be stable across runs")
	}

	// Refresh bypasses the cache.
	refreshed, err := r.Execute(context.Background(), Options{Images: testRefs(3), Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute error: %v", err)
	}
	if refreshed.CacheInfo.LayoutHit {
		t.Error("refresh run should not hit the layout cache")
	}
}

func TestExecuteUnknownTemplate(t *testing.T) {
	r := testRunner(t)
	defer r.Close()

	opts := Options{Images: testRefs(1), Template: "no-such-template"}
	if _, err := r.Execute(context.Background(), opts); !errors.Is(err, errors.ErrCodeLayoutNotFound) {
		t.Errorf("error = %v, want LAYOUT_NOT_FOUND", err)
	}
}

func TestExecuteUnknownPaper(t *testing.T) {
	r := testRunner(t)
	defer r.Close()

	opts := Options{Images: testRefs(1), Paper: "a9"}
	if _, err := r.Execute(context.Background(), opts); !errors.Is(err, errors.ErrCodePaperNotFound) {
		t.Errorf("error = %v, want PAPER_NOT_FOUND", err)
	}
}

func TestScanPassesThroughRefs(t *testing.T) {
	r := testRunner(t)
	defer r.Close()

	refs := testRefs(2)
	got, err := r.Scan(context.Background(), Options{Images: refs})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(got) != 2 || got[0].ID != refs[0].ID {
		t.Errorf("refs not passed through: %v", got)
	}
}
