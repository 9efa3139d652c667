package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printgrid/pkg/pipeline"
	"github.com/matzehuels/printgrid/pkg/render"
)

// layoutCommand creates the layout command for computing page geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "layout [dir]",
		Short: "Compute page geometry for a set of images",
		Long: `Compute page geometry for a set of images.

The layout command scans a directory of images (or reads a manifest produced
by an earlier scan), partitions the paper according to the chosen template,
and paginates the images across as many pages as needed. The output is a
layout.json document that can be rendered to SVG or PNG using 'render'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "layout.json", "output file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	cmd.Flags().StringVarP(&opts.Template, "template", "t", opts.Template, "layout template id")
	cmd.Flags().StringVarP(&opts.Paper, "paper", "p", opts.Paper, "paper size: a4 (default), a3, a5, a6, letter, legal, 4x6, 5x7")
	cmd.Flags().StringVar(&opts.Unit, "unit", opts.Unit, "measurement unit: mm (default), cm, in, pt, px")
	cmd.Flags().Float64Var(&opts.Margin, "margin", opts.Margin, "page margin in the chosen unit")
	cmd.Flags().BoolVar(&opts.Borderless, "borderless", false, "zero margins for borderless printing")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "read images from a manifest instead of a directory")

	return cmd
}

// runLayout scans the images, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, registry, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	defer registry.Close()

	refs, err := runner.Scan(ctx, opts)
	if err != nil {
		return fmt.Errorf("scan images: %w", err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Template))
	spinner.Start()

	res, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, refs, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	doc, err := render.RenderJSON(res)
	if err != nil {
		return fmt.Errorf("serialize layout: %w", err)
	}
	if err := os.WriteFile(output, doc, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(len(refs), res.PageCount(), cacheHit)
	printNewline()
	printNextStep("Render", fmt.Sprintf("%s render %s -t %s", appName, opts.Dir, opts.Template))

	return nil
}
