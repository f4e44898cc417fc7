package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkrank/pkg/observability"
	"github.com/matzehuels/linkrank/pkg/server"
	"github.com/matzehuels/linkrank/pkg/service"
)

// serveCommand creates the serve command that exposes the graph over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph over an HTTP JSON API",
		Long: `Load the graph and serve it over HTTP until interrupted.

Routes:
  GET    /pages?order=   list pages
  POST   /pages          add a page {"url": "...", "keywords": [...]}
  DELETE /pages?url=     remove a page
  GET    /links          list links
  POST   /links          add a link {"from": "...", "to": "..."}
  DELETE /links?from=&to=
  GET    /search?q=      ranked keyword search
  GET    /matrix         raw link matrix
  GET    /graph          pages and links as JSON
  GET    /healthz        liveness
  GET    /metrics        Prometheus metrics (with --metrics)

Changes live in memory only; the input files are never written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := c.loadGraph(ctx)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("addr") {
				addr = c.cfg.Server.Addr
			}
			opts := server.Options{
				Addr:            addr,
				ShutdownTimeout: c.cfg.Server.ShutdownTimeout.Duration,
				Logger:          logger,
			}
			if metrics {
				prom := observability.NewPrometheus()
				observability.SetGraphHooks(prom)
				observability.SetHTTPHooks(prom)
				defer observability.Reset()
				opts.Metrics = prom
			}

			svc := service.New(g, logger)
			return server.New(svc, opts).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "expose Prometheus metrics at /metrics")

	return cmd
}
