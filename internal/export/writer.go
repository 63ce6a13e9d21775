// Package export writes route inventories to files or object storage.
package export

import (
	"fmt"
	"os"

	"github.com/routemap-dev/routemap/internal/report"
)

// WriteFile writes the inventory as indented JSON to the given path.
func WriteFile(path string, inv *report.Inventory) error {
	data, err := inv.MarshalIndented()
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
