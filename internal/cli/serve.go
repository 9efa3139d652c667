package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/printgrid/internal/api"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

The server exposes the layout pipeline over HTTP:

  POST /api/v1/layout      compute page geometry for inline image refs
  POST /api/v1/render      run the full pipeline and return artifacts
  GET  /api/v1/templates   list templates (POST to create)
  GET  /api/v1/papers      list paper sizes
  GET  /healthz            health check

The server shares the CLI's template store and cache, so layouts computed
over HTTP match local runs exactly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.serveAddr()
			}

			runner, registry, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			defer registry.Close()

			srv := api.NewServer(runner, registry, c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
