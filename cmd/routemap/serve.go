package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/routemap-dev/routemap/internal/config"
	"github.com/routemap-dev/routemap/internal/inspect"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve [routes-dir]",
		Short: "Serve a live route inventory over HTTP",
		Long: `Serve the route inventory from a local HTTP server.

The server rescans the tree whenever route files change and exposes:

  GET /            the route table as plain text
  GET /api/routes  the inventory as JSON
  GET /healthz     liveness check
  GET /metrics     Prometheus metrics (scan counts, durations, totals)
  GET /ws          WebSocket pushing fresh inventories on change

Examples:
  routemap serve
  routemap serve --port=8080
  routemap serve path/to/src/routes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args, port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to bind (default from routemap.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind (default from routemap.json)")

	return cmd
}

func runServe(args []string, port int, host string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	info("Serving route inventory for %s", root)
	info("Listening on http://%s", cfg.ServeAddr())
	fmt.Println()

	return inspect.NewServer(root).Run(ctx, cfg.ServeAddr())
}
