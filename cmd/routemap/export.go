package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/routemap-dev/routemap/internal/export"
	"github.com/routemap-dev/routemap/internal/report"
	"github.com/routemap-dev/routemap/pkg/routes"
)

func exportCmd() *cobra.Command {
	var (
		output string
		s3Dest string
	)

	cmd := &cobra.Command{
		Use:   "export [routes-dir]",
		Short: "Export the route inventory as JSON",
		Long: `Scan the routes directory and write the inventory as JSON.

By default the inventory is written to routes.json in the working
directory. With --s3 it is uploaded to an S3 bucket instead, using
the ambient AWS credentials (useful as a CI artifact).

Examples:
  routemap export
  routemap export --output build/routes.json
  routemap export --s3 my-bucket/inventories/routes.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args, output, s3Dest)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "routes.json", "Output file")
	cmd.Flags().StringVar(&s3Dest, "s3", "", "S3 destination as bucket/key (overrides --output)")

	return cmd
}

func runExport(ctx context.Context, args []string, output, s3Dest string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	records, err := routes.NewScanner(root).Scan()
	if err != nil {
		return err
	}
	inv := report.NewInventory(root, records)

	if s3Dest != "" {
		bucket, key, err := export.SplitDestination(s3Dest)
		if err != nil {
			return err
		}
		publisher, err := export.NewS3Publisher(ctx, bucket)
		if err != nil {
			return err
		}
		if err := publisher.Publish(ctx, key, inv); err != nil {
			return err
		}
		success("Uploaded %d routes to s3://%s/%s", len(inv.Routes), bucket, key)
		return nil
	}

	if err := export.WriteFile(output, inv); err != nil {
		return err
	}
	success("Wrote %d routes to %s", len(inv.Routes), output)
	return nil
}
