package report

import (
	"strings"
	"testing"

	"github.com/routemap-dev/routemap/pkg/routes"
)

func sampleRecords() []*routes.Record {
	return []*routes.Record{
		{Path: "/blog", Type: routes.TypeLayout, Files: []string{"+layout.svelte"}},
		{Path: "/api/users", Type: routes.TypeEndpoint, Methods: []string{"GET", "POST"}, Files: []string{"+server.ts"}},
		{Path: "/blog/:slug", Type: routes.TypePage, Methods: []string{"GET"}, Files: []string{"+page.svelte"}},
		{Path: "/about", Type: routes.TypePage, Methods: []string{"GET"}, Files: []string{"+page.svelte"}},
	}
}

func TestSortedOrdersByTypeThenPath(t *testing.T) {
	sorted := Sorted(sampleRecords())

	want := []struct {
		path string
		typ  routes.RouteType
	}{
		{"/about", routes.TypePage},
		{"/blog/:slug", routes.TypePage},
		{"/api/users", routes.TypeEndpoint},
		{"/blog", routes.TypeLayout},
	}

	for i, w := range want {
		if sorted[i].Path != w.path || sorted[i].Type != w.typ {
			t.Errorf("sorted[%d] = (%s, %s), want (%s, %s)",
				i, sorted[i].Path, sorted[i].Type, w.path, w.typ)
		}
	}
}

func TestSortedLeavesInputUntouched(t *testing.T) {
	records := sampleRecords()
	first := records[0]
	Sorted(records)
	if records[0] != first {
		t.Error("Sorted reordered the caller's slice")
	}
}

func TestTotals(t *testing.T) {
	totalRoutes, totalLayouts := Totals(sampleRecords())
	if totalRoutes != 3 {
		t.Errorf("totalRoutes = %d, want 3", totalRoutes)
	}
	if totalLayouts != 1 {
		t.Errorf("totalLayouts = %d, want 1", totalLayouts)
	}
}

func TestWriteTable(t *testing.T) {
	var buf strings.Builder
	WriteTable(&buf, sampleRecords())
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top border, header, separator, 4 rows, bottom border, blank, 2 totals
	if len(lines) != 11 {
		t.Fatalf("got %d output lines, want 11:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[0], "┐") {
		t.Errorf("top border = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Methods") || !strings.Contains(lines[1], "Files") {
		t.Errorf("header = %q", lines[1])
	}

	// Rows follow display order; the layout row renders "-" for no methods.
	if !strings.Contains(lines[3], "/about") {
		t.Errorf("first data row = %q, want /about", lines[3])
	}
	layoutRow := lines[6]
	if !strings.Contains(layoutRow, "layout") || !strings.Contains(layoutRow, " - ") {
		t.Errorf("layout row = %q, want '-' methods cell", layoutRow)
	}

	if !strings.Contains(lines[5], "GET|POST") {
		t.Errorf("endpoint row = %q, want GET|POST", lines[5])
	}

	if lines[9] != "Total routes: 3" {
		t.Errorf("summary line = %q, want 'Total routes: 3'", lines[9])
	}
	if lines[10] != "Total layouts: 1" {
		t.Errorf("summary line = %q, want 'Total layouts: 1'", lines[10])
	}
}

func TestWriteTableMinimumWidths(t *testing.T) {
	var buf strings.Builder
	WriteTable(&buf, []*routes.Record{
		{Path: "/", Type: routes.TypePage, Methods: []string{"GET"}, Files: []string{"+page.svelte"}},
	})
	lines := strings.Split(buf.String(), "\n")

	// Content: 2 spaces padding per cell plus minimum widths 10/10/8/15 and
	// three " │ " separators between four cells.
	header := []rune(lines[1])
	wantLen := len([]rune("│ ")) + 10 + len([]rune(" │ ")) + 10 +
		len([]rune(" │ ")) + 8 + len([]rune(" │ ")) + 15 + len([]rune(" │"))
	if len(header) != wantLen {
		t.Errorf("header rune length = %d, want %d: %q", len(header), wantLen, lines[1])
	}
}

func TestWriteTableWideCellsGrowColumns(t *testing.T) {
	longPath := "/some/very/long/route/path/:with/:params"
	var buf strings.Builder
	WriteTable(&buf, []*routes.Record{
		{Path: longPath, Type: routes.TypePage, Methods: []string{"GET"}, Files: []string{"+page.svelte"}},
	})
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, longPath) {
			return
		}
	}
	t.Errorf("long path not rendered intact:\n%s", buf.String())
}
