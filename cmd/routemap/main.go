package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/routemap-dev/routemap/pkg/routes"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "routemap [routes-dir]",
		Short: "Inspect a SvelteKit project's file-based routes",
		Long: `routemap scans a SvelteKit routes directory and prints an inventory
of the routes it defines: URL paths, HTTP methods, structural type
(page, endpoint, or layout), and the files backing each route.

With no argument the routes directory defaults to ./src/routes
(or the paths.routes entry of a routemap.json in the working
directory). The tool only reads file names and file contents; it
never imports or runs the scanned project's code.

Examples:
  routemap                      # scan ./src/routes
  routemap path/to/src/routes   # scan an explicit directory
  routemap serve                # live inventory over HTTP
  routemap watch                # reprint the table on change
  routemap export --output routes.json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args)
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		watchCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		var notFound *routes.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Usage: routemap [path-to-routes-directory]")
		}
		os.Exit(1)
	}
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
