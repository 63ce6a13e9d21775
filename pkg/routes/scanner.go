// Package routes discovers a SvelteKit project's file-based routes.
//
// The scanner walks a routes directory, matches route- and layout-defining
// filenames, translates file locations into URL paths, and aggregates the
// results into one Record per (path, type) pair.
package routes

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/routemap-dev/routemap/pkg/routepath"
)

// routeFiles and layoutFiles are the exact filenames that define routes.
// The two sets are disjoint by construction; a file matching neither is
// ignored.
var routeFiles = map[string]struct{}{
	"+page.svelte":    {},
	"+page.server.ts": {},
	"+page.server.js": {},
	"+server.ts":      {},
	"+server.js":      {},
}

var layoutFiles = map[string]struct{}{
	"+layout.svelte":    {},
	"+layout.server.ts": {},
	"+layout.server.js": {},
}

// Scanner discovers route and layout files under a routes root.
type Scanner struct {
	rootDir string
}

// NewScanner creates a scanner for the given routes root directory.
func NewScanner(rootDir string) *Scanner {
	return &Scanner{rootDir: rootDir}
}

// recordKey identifies the record a qualifying file contributes to.
type recordKey struct {
	path string
	typ  RouteType
}

// Scan walks the routes tree depth-first and returns the accumulated
// records in creation order. Directories whose name starts with "_" or "."
// are grouping/private folders: the entire subtree is pruned.
//
// A missing root yields a *NotFoundError, a root that is a plain file a
// *NotDirectoryError. Any other walk failure is returned as-is. Errors
// reading individual files during method extraction never surface here.
func (s *Scanner) Scan() ([]*Record, error) {
	info, err := os.Stat(s.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: s.rootDir}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: s.rootDir}
	}

	var records []*Record
	index := make(map[recordKey]*Record)

	err = filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// The root itself is exempt from pruning; only segments
			// beneath it can mark a private subtree.
			if path != s.rootDir && isPrivateDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		_, isRoute := routeFiles[name]
		_, isLayout := layoutFiles[name]
		if !isRoute && !isLayout {
			return nil
		}

		relPath, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}

		urlPath := routepath.FromFile(relPath)

		var (
			typ     RouteType
			methods []string
		)
		switch {
		case isLayout:
			typ = TypeLayout
			if strings.Contains(name, "server") {
				methods = ExtractMethods(path)
			}
		case strings.HasPrefix(name, "+server"):
			typ = TypeEndpoint
			methods = MethodsOrGET(path)
		default:
			typ = TypePage
			if strings.Contains(name, "server") {
				methods = MethodsOrGET(path)
			} else {
				methods = []string{"GET"}
			}
		}

		key := recordKey{path: urlPath, typ: typ}
		if rec, ok := index[key]; ok {
			rec.merge(name, methods)
			return nil
		}

		rec := &Record{
			Path:     urlPath,
			Methods:  methods,
			Type:     typ,
			Files:    []string{name},
			Location: relPath,
		}
		index[key] = rec
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// isPrivateDir reports whether a directory name marks a non-route
// grouping/private folder.
func isPrivateDir(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}
