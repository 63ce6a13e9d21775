package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/routemap-dev/routemap/internal/inspect"
	"github.com/routemap-dev/routemap/internal/report"
	"github.com/routemap-dev/routemap/pkg/routes"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [routes-dir]",
		Short: "Rescan and reprint the route table on change",
		Long: `Watch the routes directory and reprint the inventory whenever
route files are added, changed, or removed. Stop with Ctrl-C.

Examples:
  routemap watch
  routemap watch path/to/src/routes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args)
		},
	}
}

func runWatch(args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	// The initial scan validates the root; later scan failures are
	// reported but do not stop the watch.
	printTable := func() error {
		records, err := routes.NewScanner(root).Scan()
		if err != nil {
			return err
		}
		fmt.Printf("Scanning routes in: %s\n", root)
		if len(records) == 0 {
			fmt.Println("No routes found.")
			return nil
		}
		report.WriteTable(os.Stdout, records)
		return nil
	}
	if err := printTable(); err != nil {
		return err
	}

	watcher, err := inspect.NewWatcher(root, func() {
		fmt.Println()
		if err := printTable(); err != nil {
			warn("rescan failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	info("Watching %s for changes (Ctrl-C to stop)", root)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return nil
}
