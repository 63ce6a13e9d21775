package main

import (
	"fmt"
	"os"

	"github.com/routemap-dev/routemap/internal/config"
	"github.com/routemap-dev/routemap/internal/report"
	"github.com/routemap-dev/routemap/pkg/routes"
)

// resolveRoot decides which directory to scan: an explicit positional
// argument is used verbatim; otherwise the routes directory comes from
// routemap.json in the working directory, defaulting to ./src/routes.
func resolveRoot(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return "", err
	}
	return cfg.RoutesPath(), nil
}

// runScan performs a single scan and prints the route table.
func runScan(args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	fmt.Printf("Scanning routes in: %s\n", root)

	records, err := routes.NewScanner(root).Scan()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No routes found.")
		return nil
	}

	report.WriteTable(os.Stdout, records)
	return nil
}
