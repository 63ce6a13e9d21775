// Package routepath converts route file locations into canonical URL paths.
//
// The package is pure: it never touches the filesystem and is total over
// well-formed relative paths. SvelteKit's dynamic segment syntax maps to
// router notation as follows:
//
//   - [...slug] → :slug*  (rest / catch-all parameter)
//   - [[lang]]  → :lang?  (optional parameter)
//   - [id]      → :id     (required parameter)
package routepath

import (
	"path"
	"regexp"
	"strings"
)

// Segment rewrites, applied in this order. The patterns overlap ([[name]]
// contains [name], [...name] contains a [name]-shaped tail), so rest params
// must be rewritten first and optional params before required ones.
var (
	restRe     = regexp.MustCompile(`\[\.\.\.(\w+)\]`)
	optionalRe = regexp.MustCompile(`\[\[(\w+)\]\]`)
	paramRe    = regexp.MustCompile(`\[(\w+)\]`)
)

// FromFile converts a route file's path, relative to the routes root, into
// its canonical URL path. Only the directory portion matters: every file in
// a directory shares that directory's route.
//
// Examples:
//   - "+page.svelte"                → "/"
//   - "about/+page.svelte"          → "/about"
//   - "blog/[slug]/+page.svelte"    → "/blog/:slug"
//   - "[[lang]]/about/+page.svelte" → "/:lang?/about"
//   - "docs/[...path]/+server.ts"   → "/docs/:path*"
func FromFile(relPath string) string {
	// Normalize Windows path separators before splitting so that a
	// backslash-separated input is handled the same on every platform.
	normalized := strings.ReplaceAll(relPath, "\\", "/")

	dir := path.Dir(normalized)
	if dir == "" || dir == "." || dir == "/" {
		return "/"
	}

	dir = restRe.ReplaceAllString(dir, ":$1*")
	dir = optionalRe.ReplaceAllString(dir, ":$1?")
	dir = paramRe.ReplaceAllString(dir, ":$1")

	return "/" + dir
}
