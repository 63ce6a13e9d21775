// Package report renders scanned route records for display and export.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/routemap-dev/routemap/pkg/routes"
)

// Minimum column widths for the route table.
const (
	minMethodsWidth = 10
	minPathWidth    = 10
	minTypeWidth    = 8
	minFilesWidth   = 15
)

// Display precedence: pages first, then endpoints, then layouts.
var typeOrder = map[routes.RouteType]int{
	routes.TypePage:     0,
	routes.TypeEndpoint: 1,
	routes.TypeLayout:   2,
}

// Sorted returns a display-ordered copy of records: primary key is the type
// precedence, secondary key is collation order of the path. The input is
// left untouched; records are immutable once the scan completes.
func Sorted(records []*routes.Record) []*routes.Record {
	sorted := make([]*routes.Record, len(records))
	copy(sorted, records)

	c := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		if typeOrder[sorted[i].Type] != typeOrder[sorted[j].Type] {
			return typeOrder[sorted[i].Type] < typeOrder[sorted[j].Type]
		}
		return c.CompareString(sorted[i].Path, sorted[j].Path) < 0
	})
	return sorted
}

// methodsCell renders the Methods column value for a record.
func methodsCell(r *routes.Record) string {
	if len(r.Methods) == 0 {
		return "-"
	}
	return strings.Join(r.Methods, "|")
}

// filesCell renders the Files column value for a record.
func filesCell(r *routes.Record) string {
	return strings.Join(r.Files, ", ")
}

// Totals counts the non-layout and layout records.
func Totals(records []*routes.Record) (totalRoutes, totalLayouts int) {
	for _, r := range records {
		if r.Type == routes.TypeLayout {
			totalLayouts++
		} else {
			totalRoutes++
		}
	}
	return totalRoutes, totalLayouts
}

// WriteTable renders the records as a box-drawn table followed by the two
// summary counts. Callers are expected to handle the empty case themselves;
// an empty record list still renders a header-only table here.
func WriteTable(w io.Writer, records []*routes.Record) {
	sorted := Sorted(records)

	headers := [4]string{"Methods", "Path", "Type", "Files"}
	widths := [4]int{minMethodsWidth, minPathWidth, minTypeWidth, minFilesWidth}

	rows := make([][4]string, 0, len(sorted))
	for _, r := range sorted {
		row := [4]string{methodsCell(r), r.Path, string(r.Type), filesCell(r)}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	writeBorder(w, widths, "┌", "┬", "┐")
	writeRow(w, widths, headers)
	writeBorder(w, widths, "├", "┼", "┤")
	for _, row := range rows {
		writeRow(w, widths, row)
	}
	writeBorder(w, widths, "└", "┴", "┘")

	totalRoutes, totalLayouts := Totals(records)
	fmt.Fprintf(w, "\nTotal routes: %d\n", totalRoutes)
	fmt.Fprintf(w, "Total layouts: %d\n", totalLayouts)
}

// writeRow writes one table line, each cell right-justified to its column
// width, cells separated by " │ ".
func writeRow(w io.Writer, widths [4]int, cells [4]string) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%*s", widths[i], cell)
	}
	fmt.Fprintf(w, "│ %s │\n", strings.Join(padded, " │ "))
}

// writeBorder writes a horizontal box border.
func writeBorder(w io.Writer, widths [4]int, left, mid, right string) {
	segments := make([]string, len(widths))
	for i, width := range widths {
		segments[i] = strings.Repeat("─", width+2)
	}
	fmt.Fprintf(w, "%s%s%s\n", left, strings.Join(segments, mid), right)
}
