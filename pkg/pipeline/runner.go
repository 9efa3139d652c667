package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/printgrid/pkg/cache"
	"github.com/matzehuels/printgrid/pkg/images"
	"github.com/matzehuels/printgrid/pkg/layout"
	"github.com/matzehuels/printgrid/pkg/observability"
	"github.com/matzehuels/printgrid/pkg/paper"
	"github.com/matzehuels/printgrid/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, engine, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Engine *layout.Engine
	Logger *log.Logger
}

// NewRunner creates a runner resolving template ids through resolver.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, resolver layout.TemplateResolver, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Engine: layout.NewEngine(resolver),
		Logger: logger,
	}
}

// Execute runs the complete scan → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][][]byte),
	}

	// Stage 1: Scan
	scanStart := time.Now()
	refs, err := r.Scan(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	result.Stats.ScanTime = time.Since(scanStart)
	result.Stats.ImageCount = len(refs)

	r.Logger.Info("scanned images",
		"count", len(refs),
		"duration", result.Stats.ScanTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	res, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, refs, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.PageCount = res.PageCount()
	result.Stats.CellCount = len(res.Cells)
	result.CacheInfo.LayoutHit = layoutHit

	if data, err := json.Marshal(res); err == nil {
		result.LayoutHash = cache.Hash(data)
	}

	r.Logger.Info("computed layout",
		"template", opts.Template,
		"pages", res.PageCount(),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Scan reads image refs from the configured source. Pre-scanned refs pass
// through untouched so API callers can skip filesystem access entirely.
func (r *Runner) Scan(ctx context.Context, opts Options) ([]layout.ImageRef, error) {
	if err := opts.ValidateForScan(); err != nil {
		return nil, err
	}

	source := opts.Dir
	if source == "" {
		source = opts.Manifest
	}
	observability.Pipeline().OnScanStart(ctx, source)
	start := time.Now()

	var (
		refs []layout.ImageRef
		err  error
	)
	switch {
	case len(opts.Images) > 0:
		refs = opts.Images
	case opts.Manifest != "":
		refs, err = images.ReadManifest(opts.Manifest)
	case len(opts.Files) > 0:
		refs, err = images.ScanFiles(ctx, opts.Files)
	default:
		refs, err = images.ScanDir(ctx, opts.Dir)
	}

	observability.Pipeline().OnScanComplete(ctx, source, len(refs), time.Since(start), err)
	return refs, err
}

// ComputeLayoutWithCacheInfo computes the page layout with caching and
// returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, refs []layout.ImageRef, opts Options) (*layout.Result, bool, error) {
	opts.SetLayoutDefaults()
	r.applyLogger(&opts)

	observability.Pipeline().OnLayoutStart(ctx, opts.Template, len(refs))
	start := time.Now()

	res, hit, err := r.computeLayout(ctx, refs, opts)

	pages := 0
	if res != nil {
		pages = res.PageCount()
	}
	observability.Pipeline().OnLayoutComplete(ctx, opts.Template, pages, time.Since(start), err)
	return res, hit, err
}

func (r *Runner) computeLayout(ctx context.Context, refs []layout.ImageRef, opts Options) (*layout.Result, bool, error) {
	refsData, _ := json.Marshal(refs)
	cacheKey := cache.LayoutKey(opts.LayoutKeyOpts(cache.Hash(refsData)))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return &cached, true, nil
			}
			// Corrupt entry, fall through to recompute.
		}
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	unit, err := paper.ParseUnit(opts.Unit)
	if err != nil {
		return nil, false, err
	}
	p, err := paper.Geometry(opts.Paper, unit, opts.EffectiveMargin())
	if err != nil {
		return nil, false, err
	}

	res, err := r.Engine.LayoutByID(opts.Template, p, refs)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(res); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return res, false, nil
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, refs []layout.ImageRef, opts Options) (*layout.Result, error) {
	res, _, err := r.ComputeLayoutWithCacheInfo(ctx, refs, opts)
	return res, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit
// info. Page formats (svg, png) get one entry per page; json gets a single
// entry for the whole layout.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *layout.Result, opts Options) (map[string][][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnRenderStart(ctx, fmt.Sprint(opts.Formats), res.PageCount())
	start := time.Now()

	artifacts, hit, err := r.renderFormats(ctx, res, opts)

	observability.Pipeline().OnRenderComplete(ctx, fmt.Sprint(opts.Formats), time.Since(start), err)
	return artifacts, hit, err
}

func (r *Runner) renderFormats(ctx context.Context, res *layout.Result, opts Options) (map[string][][]byte, bool, error) {
	layoutData, err := json.Marshal(res)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	fitMode, err := layout.ParseFitMode(opts.FitMode)
	if err != nil {
		return nil, false, err
	}
	anchor, err := layout.ParseAnchor(opts.Anchor)
	if err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		pages, cached, err := r.renderFormat(ctx, res, layoutHash, format, fitMode, anchor, opts)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = pages
		if !cached {
			allCached = false
		}
	}

	return artifacts, allCached, nil
}

func (r *Runner) renderFormat(ctx context.Context, res *layout.Result, layoutHash, format string, fitMode layout.FitMode, anchor layout.Anchor, opts Options) ([][]byte, bool, error) {
	pageCount := res.PageCount()
	if format == FormatJSON {
		pageCount = 1
	}

	keyOpts := opts.ArtifactKeyOpts(format)
	pages := make([][]byte, 0, pageCount)

	if !opts.Refresh {
		cached := true
		for page := 0; page < pageCount; page++ {
			key := cache.ArtifactKey(layoutHash, page, keyOpts)
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				cached = false
				break
			}
			pages = append(pages, data)
		}
		if cached {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return pages, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	pages = pages[:0]
	for page := 0; page < pageCount; page++ {
		data, err := r.renderPage(res, page, format, fitMode, anchor, opts)
		if err != nil {
			return nil, false, err
		}
		key := cache.ArtifactKey(layoutHash, page, keyOpts)
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		pages = append(pages, data)
	}

	return pages, false, nil
}

func (r *Runner) renderPage(res *layout.Result, page int, format string, fitMode layout.FitMode, anchor layout.Anchor, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return render.RenderJSON(res, render.WithJSONFit(fitMode, anchor))
	case FormatPNG:
		return render.RenderPNG(res, page,
			render.WithPNGFit(fitMode, anchor),
			render.WithPNGScale(opts.Scale))
	default: // FormatSVG
		svgOpts := []render.SVGOption{
			render.WithSVGFit(fitMode, anchor),
			render.WithSVGScale(opts.Scale),
		}
		if opts.Labels {
			svgOpts = append(svgOpts, render.WithSVGLabels())
		}
		return render.RenderSVG(res, page, svgOpts...)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
