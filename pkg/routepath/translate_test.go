package routepath

import "testing"

func TestFromFile(t *testing.T) {
	tests := []struct {
		relPath string
		want    string
	}{
		{"+page.svelte", "/"},
		{"+layout.svelte", "/"},
		{"about/+page.svelte", "/about"},
		{"api/users/+server.ts", "/api/users"},
		{"blog/archive/+page.svelte", "/blog/archive"},
		{"[id]/+page.svelte", "/:id"},
		{"blog/[slug]/+page.svelte", "/blog/:slug"},
		{"users/[userId]/posts/[postId]/+page.svelte", "/users/:userId/posts/:postId"},
		{"[[lang]]/about/+page.svelte", "/:lang?/about"},
		{"[[lang]]/+page.svelte", "/:lang?"},
		{"blog/[...slug]/+page.svelte", "/blog/:slug*"},
		{"[...rest]/+server.ts", "/:rest*"},
		{"docs/[...path]/guide/+page.svelte", "/docs/:path*/guide"},
		{"[[lang]]/blog/[slug]/[...rest]/+page.svelte", "/:lang?/blog/:slug/:rest*"},
		{"snake_case/[some_id]/+page.svelte", "/snake_case/:some_id"},
	}

	for _, tt := range tests {
		if got := FromFile(tt.relPath); got != tt.want {
			t.Errorf("FromFile(%q) = %q, want %q", tt.relPath, got, tt.want)
		}
	}
}

func TestFromFileWindowsSeparators(t *testing.T) {
	tests := []struct {
		relPath string
		want    string
	}{
		{`blog\[slug]\+page.svelte`, "/blog/:slug"},
		{`api\users\+server.ts`, "/api/users"},
	}

	for _, tt := range tests {
		if got := FromFile(tt.relPath); got != tt.want {
			t.Errorf("FromFile(%q) = %q, want %q", tt.relPath, got, tt.want)
		}
	}
}
