package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns lists the dynamic routes whose IDs must be collapsed before
// the path is used as a metrics label. Evaluated in order.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{pattern: regexp.MustCompile(`^/api/news/\d+$`), template: "/api/news/:id"},
	{pattern: regexp.MustCompile(`^/api/sources/\d+$`), template: "/api/sources/:id"},
	{pattern: regexp.MustCompile(`^/api/categories/\d+$`), template: "/api/categories/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths with IDs (e.g. /api/news/123) become template
// form (/api/news/:id); static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/api/news/123")       // "/api/news/:id"
//	NormalizePath("/api/news/search")    // "/api/news/search" (unchanged)
//	NormalizePath("/healthz")            // "/healthz" (unchanged)
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	// Static paths like /healthz and /metrics pass through unchanged
	return path
}
