// Package pipeline provides the core print-layout pipeline for Printgrid.
//
// This package implements the complete scan → layout → render pipeline that
// can be used by CLI, API, and worker components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Scan: Read image dimensions from a directory, file list, or manifest
//  2. Layout: Partition the paper into cells and paginate the images
//  3. Render: Generate output in various formats (SVG, PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, registry, logger)
//	opts := pipeline.Options{
//	    Dir:      "./photos",
//	    Template: "grid-3x3",
//	    Paper:    "a4",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"][0]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/printgrid/pkg/cache"
	"github.com/matzehuels/printgrid/pkg/errors"
	"github.com/matzehuels/printgrid/pkg/layout"
	"github.com/matzehuels/printgrid/pkg/paper"
	"github.com/matzehuels/printgrid/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultTemplate is the layout template used when none is given.
	DefaultTemplate = "grid-2x2"

	// DefaultPaper is the paper size key used when none is given.
	DefaultPaper = "a4"

	// DefaultUnit is the paper unit used when none is given.
	DefaultUnit = "mm"

	// DefaultFitMode is the image fit policy used when none is given.
	DefaultFitMode = "contain"

	// DefaultAnchor is the image anchor used when none is given.
	DefaultAnchor = "center-center"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Scan options. Exactly one image source is used, checked in the order
	// Images, Manifest, Files, Dir.
	Dir      string            `json:"dir,omitempty"`
	Files    []string          `json:"files,omitempty"`
	Manifest string            `json:"manifest,omitempty"`
	Images   []layout.ImageRef `json:"images,omitempty"` // Pre-scanned refs (API requests)

	// Layout options
	Template   string  `json:"template,omitempty"`
	Paper      string  `json:"paper,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Margin     float64 `json:"margin,omitempty"` // Zero means the paper default
	Borderless bool    `json:"borderless,omitempty"`
	Refresh    bool    `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	FitMode string   `json:"fit_mode,omitempty"`
	Anchor  string   `json:"anchor,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed page layout.
	Layout *layout.Result

	// LayoutHash is the content hash of the layout.
	LayoutHash string

	// Artifacts contains rendered pages keyed by format, one entry per
	// page in page order (a single entry for JSON).
	Artifacts map[string][][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ImageCount int
	PageCount  int
	CellCount  int // cells per page
	ScanTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForScan(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForScan checks that exactly one image source is configured.
func (o *Options) ValidateForScan() error {
	sources := 0
	if len(o.Images) > 0 {
		sources++
	}
	if o.Manifest != "" {
		sources++
	}
	if len(o.Files) > 0 {
		sources++
	}
	if o.Dir != "" {
		sources++
	}
	if sources == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "an image source is required (dir, files, manifest, or images)")
	}
	if sources > 1 {
		return errors.New(errors.ErrCodeInvalidFormat, "only one image source may be set")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Template == "" {
		o.Template = DefaultTemplate
	}
	if o.Paper == "" {
		o.Paper = DefaultPaper
	}
	if o.Unit == "" {
		o.Unit = DefaultUnit
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.FitMode == "" {
		o.FitMode = DefaultFitMode
	}
	if o.Anchor == "" {
		o.Anchor = DefaultAnchor
	}
	if o.Scale == 0 {
		o.Scale = render.DefaultScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := layout.ParseFitMode(o.FitMode); err != nil {
		return err
	}
	if _, err := layout.ParseAnchor(o.Anchor); err != nil {
		return err
	}
	return nil
}

// EffectiveMargin returns the margin after applying the borderless flag
// and the paper default.
func (o *Options) EffectiveMargin() float64 {
	if o.Borderless {
		return 0
	}
	if o.Margin > 0 {
		return o.Margin
	}
	return paper.DefaultMargin
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts(imagesHash string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		TemplateID: o.Template,
		PaperKey:   o.Paper,
		Unit:       o.Unit,
		Margin:     o.EffectiveMargin(),
		ImagesHash: imagesHash,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  format,
		FitMode: o.FitMode,
		Anchor:  o.Anchor,
		Scale:   o.Scale,
	}
}
