package routes

import "fmt"

// RouteType classifies what a route file defines at its directory's path.
type RouteType string

const (
	// TypePage is a user-facing page route (+page.*).
	TypePage RouteType = "page"

	// TypeEndpoint is an API endpoint route (+server.*).
	TypeEndpoint RouteType = "endpoint"

	// TypeLayout is a layout wrapping child routes (+layout.*).
	TypeLayout RouteType = "layout"
)

// Record is one logical route discovered by the scanner. Several files in
// the same directory can contribute to a single record: a page and its
// server load file collapse into one page record, while a co-located layout
// file produces a separate layout record sharing the same path.
type Record struct {
	// Path is the canonical URL path (e.g., "/blog/:slug"). Unique per
	// (Path, Type) pair, not across the whole record list.
	Path string `json:"path"`

	// Methods lists supported HTTP methods in first-seen order, without
	// duplicates. Empty only for layouts with no server logic.
	Methods []string `json:"methods"`

	// Type is the structural kind of the route. It never changes after
	// the record is created.
	Type RouteType `json:"type"`

	// Files are the contributing filenames in discovery order.
	Files []string `json:"files"`

	// Location is the root-relative path of the first file that created
	// this record. Kept for diagnostics; not shown in the default table.
	Location string `json:"location"`
}

// merge folds another qualifying file into the record. The filename is
// always appended; methods are unioned in first-seen order only when the
// incoming list is not the bare GET fallback, so a file whose extraction
// fell back to GET never overrides previously detected methods.
func (r *Record) merge(file string, methods []string) {
	r.Files = append(r.Files, file)
	if isDefaultGET(methods) {
		return
	}
	r.Methods = unionMethods(r.Methods, methods)
}

// isDefaultGET reports whether methods is exactly the extraction fallback.
func isDefaultGET(methods []string) bool {
	return len(methods) == 1 && methods[0] == "GET"
}

// unionMethods appends the methods from extra that are not already present,
// preserving the order of existing and the relative order of extra.
func unionMethods(existing, extra []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		seen[m] = struct{}{}
	}
	for _, m := range extra {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		existing = append(existing, m)
	}
	return existing
}

// NotFoundError reports that the routes root does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Directory not found: %s", e.Path)
}

// NotDirectoryError reports that the routes root exists but is not a
// directory.
type NotDirectoryError struct {
	Path string
}

func (e *NotDirectoryError) Error() string {
	return fmt.Sprintf("%s is not a directory", e.Path)
}
