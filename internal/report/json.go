package report

import (
	"encoding/json"
	"time"

	"github.com/routemap-dev/routemap/pkg/routes"
)

// Inventory is the JSON shape served by the inspection server and written
// by the export command.
type Inventory struct {
	// Root is the routes directory the scan ran against.
	Root string `json:"root"`

	// ScannedAt is when the scan completed.
	ScannedAt time.Time `json:"scannedAt"`

	// Routes are the records in display order.
	Routes []*routes.Record `json:"routes"`

	// Totals summarizes the inventory.
	Totals InventoryTotals `json:"totals"`
}

// InventoryTotals mirrors the two summary counts of the text report.
type InventoryTotals struct {
	Routes  int `json:"routes"`
	Layouts int `json:"layouts"`
}

// NewInventory assembles an Inventory from scan output.
func NewInventory(root string, records []*routes.Record) *Inventory {
	totalRoutes, totalLayouts := Totals(records)
	return &Inventory{
		Root:      root,
		ScannedAt: time.Now().UTC(),
		Routes:    Sorted(records),
		Totals: InventoryTotals{
			Routes:  totalRoutes,
			Layouts: totalLayouts,
		},
	}
}

// MarshalIndented renders the inventory as indented JSON with a trailing
// newline, suitable for files and HTTP responses alike.
func (inv *Inventory) MarshalIndented() ([]byte, error) {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
