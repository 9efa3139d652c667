// Package cli implements the printgrid command-line interface.
//
// This package provides commands for laying out photo collections onto
// fixed-size pages, rendering proof sheets, managing layout templates, and
// serving the HTTP API. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute page geometry for a set of images
//   - render: Generate SVG, PNG, or JSON proof sheets
//   - templates: List, inspect, and manage layout templates
//   - papers: List supported paper sizes
//   - cache: Manage the layout and artifact cache
//   - serve: Run the HTTP API server
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/printgrid/pkg/buildinfo"
	"github.com/matzehuels/printgrid/pkg/cache"
	"github.com/matzehuels/printgrid/pkg/pipeline"
	"github.com/matzehuels/printgrid/pkg/templates"
)

// appName is the application name used for directories and display.
const appName = "printgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the on-disk
// config (or defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfigOrDefault(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Printgrid arranges photos onto printable pages",
		Long:         `Printgrid is a CLI tool for arranging image collections onto fixed-size pages using grid and custom layout templates, producing print-ready proof sheets.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.papersCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use, backed by the configured
// template store.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, *templates.Registry, error) {
	registry, err := c.newRegistry(ctx)
	if err != nil {
		return nil, nil, err
	}
	cch, err := c.newCache(noCache)
	if err != nil {
		return nil, nil, err
	}
	return pipeline.NewRunner(cch, registry, c.Logger), registry, nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory, preferring the configured path and
// falling back to the XDG standard (~/.cache/printgrid/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config != nil && c.Config.CacheDir != "" {
		return c.Config.CacheDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using the XDG standard
// (~/.config/printgrid/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineOptions builds pipeline options seeded from the config file, so
// command flags only need to override what the user asked for.
func (c *CLI) pipelineOptions() pipeline.Options {
	opts := pipeline.Options{Logger: c.Logger}
	if c.Config != nil {
		opts.Template = c.Config.Template
		opts.Paper = c.Config.Paper
		opts.Unit = c.Config.Unit
		opts.Margin = c.Config.Margin
	}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
