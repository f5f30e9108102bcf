// Package search provides helpers for building safe ILIKE search patterns.
package search

import (
	"strings"
	"time"
)

// DefaultSearchTimeout bounds how long a single search query may run.
const DefaultSearchTimeout = 5 * time.Second

// EscapeILIKE escapes ILIKE metacharacters in a raw keyword and wraps it in
// '%' wildcards for substring matching. Without escaping, a keyword such as
// "100%" would match every row.
func EscapeILIKE(keyword string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return "%" + replacer.Replace(keyword) + "%"
}
