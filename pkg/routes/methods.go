package routes

import (
	"os"
	"regexp"
)

// exportRe matches exported HTTP handler declarations in SvelteKit server
// files: "export function GET", "export async function POST",
// "export const DELETE", and so on.
var exportRe = regexp.MustCompile(`export\s+(?:async\s+)?(?:function|const)\s+(GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS)\b`)

// ExtractMethods scans a server file's text for exported HTTP handler names
// and returns them in order of appearance, deduplicated. The result is empty
// when the file has no recognized exports or cannot be read; per-file read
// errors are deliberately swallowed, since a best-effort method list is more
// useful than aborting the whole inventory over one unreadable file.
func ExtractMethods(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var methods []string
	seen := make(map[string]struct{})
	for _, m := range exportRe.FindAllSubmatch(data, -1) {
		name := string(m[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		methods = append(methods, name)
	}
	return methods
}

// MethodsOrGET is ExtractMethods with the route-file fallback: every route
// file implies at least a GET-capable page, so an empty extraction yields
// ["GET"]. Layout files use ExtractMethods directly, since a layout with no
// discoverable exports legitimately has zero methods.
func MethodsOrGET(path string) []string {
	if methods := ExtractMethods(path); len(methods) > 0 {
		return methods
	}
	return []string{"GET"}
}
