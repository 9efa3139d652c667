package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printgrid/pkg/pipeline"
)

// renderCommand creates the render command for producing proof sheets.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		outputDir string
		baseName  string
		formats   string
		noCache   bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "render [dir]",
		Short: "Render image layouts as SVG, PNG, or JSON proof sheets",
		Long: `Render image layouts as SVG, PNG, or JSON proof sheets.

The render command runs the full scan → layout → render pipeline: it reads
image dimensions, computes the page geometry, and writes one output file per
page and format. JSON output is a single document covering all pages.

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			opts.Formats = parseFormats(formats)
			return c.runRender(cmd.Context(), opts, outputDir, baseName, noCache)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&baseName, "name", "page", "base name for output files")
	cmd.Flags().StringVarP(&formats, "formats", "f", "svg", "comma-separated output formats: svg, png, json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when cached")

	cmd.Flags().StringVarP(&opts.Template, "template", "t", opts.Template, "layout template id")
	cmd.Flags().StringVarP(&opts.Paper, "paper", "p", opts.Paper, "paper size: a4 (default), a3, a5, a6, letter, legal, 4x6, 5x7")
	cmd.Flags().StringVar(&opts.Unit, "unit", opts.Unit, "measurement unit: mm (default), cm, in, pt, px")
	cmd.Flags().Float64Var(&opts.Margin, "margin", opts.Margin, "page margin in the chosen unit")
	cmd.Flags().BoolVar(&opts.Borderless, "borderless", false, "zero margins for borderless printing")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "read images from a manifest instead of a directory")

	cmd.Flags().StringVar(&opts.FitMode, "fit", opts.FitMode, "image fit mode: contain (default), cover, fill, none")
	cmd.Flags().StringVar(&opts.Anchor, "anchor", opts.Anchor, "image anchor, e.g. center-center, left-top")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "output pixels per paper unit")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw file names inside cells (svg)")

	return cmd
}

// runRender executes the pipeline and writes one file per page and format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, outputDir, baseName string, noCache bool) error {
	runner, registry, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	defer registry.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering pages...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		for page, data := range result.Artifacts[format] {
			path := artifactPath(outputDir, baseName, format, page, result.Stats.PageCount)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("write output %s: %w", path, err)
			}
			printFile(path)
		}
	}
	printStats(result.Stats.ImageCount, result.Stats.PageCount,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)

	return nil
}

// artifactPath names an output file. Page formats get a page suffix when
// the layout spans more than one page; JSON covers all pages in one file.
func artifactPath(dir, base, format string, page, pageCount int) string {
	if format == pipeline.FormatJSON || pageCount <= 1 {
		return filepath.Join(dir, fmt.Sprintf("%s.%s", base, format))
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%d.%s", base, page+1, format))
}
