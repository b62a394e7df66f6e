package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spboyer/benchrank/internal/webserver"
	"github.com/spf13/cobra"
)

func newServeCommand(g *globalOptions) *cobra.Command {
	var port int
	var host string
	var allowRemote bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the progress HTTP API",
		Long: `Start the progress HTTP API.

Routes:
  GET /api/health
  GET /api/benchmarks
  GET /api/benchmarks/{benchmark}
  GET /api/progress/{benchmark}/{difficulty}/{userId}

Progress lookups always answer 200. The X-Benchrank-Outcome response header
reports whether the view carries live data.

The server defaults to loopback (127.0.0.1). Use --allow-remote to bind to
all interfaces.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := g.loadApp(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("host") {
				host = a.cfg.Server.Host
				if allowRemote {
					host = ""
				}
			}
			if !cmd.Flags().Changed("port") {
				port = a.cfg.Server.Port
			}

			srv, err := webserver.New(webserver.Config{
				Host:           resolveHost(host, allowRemote, a.logger),
				Port:           port,
				AllowedOrigins: a.cfg.Server.AllowedOrigins,
				Resolver:       a.resolver,
				Catalog:        a.store,
				Logger:         a.logger,
			})
			if err != nil {
				return fmt.Errorf("failed to start HTTP server: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "benchrank API listening on http://%s\n", srv.Addr())
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from config, 3000)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind (default from config, 127.0.0.1)")
	cmd.Flags().BoolVar(&allowRemote, "allow-remote", false,
		"Allow binding to non-loopback addresses (WARNING: exposes the server to the network with no authentication)")

	return cmd
}

// resolveHost keeps the server on loopback unless --allow-remote is set.
func resolveHost(host string, allowRemote bool, logger *slog.Logger) string {
	if allowRemote {
		if host == "" {
			host = "0.0.0.0"
		}
		logger.Warn("HTTP server binding to non-loopback address, no authentication is provided",
			"host", host)
		return host
	}

	// Wildcard hosts fall back to loopback without --allow-remote.
	if host == "" || host == "0.0.0.0" || host == "::" {
		return "127.0.0.1"
	}
	return host
}
