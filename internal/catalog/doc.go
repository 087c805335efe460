// Package catalog holds the fixed set of documentation categories and the
// sample document shown for each of them.
//
// Both tables are built once when the package is initialised and never
// change afterwards. Lookups are read-only and safe for concurrent use.
//
// # Categories
//
// Categories are returned in display order:
//
//	for _, c := range catalog.Categories() {
//	    fmt.Printf("%s %s - %s\n", c.Icon, c.Name, c.Description)
//	}
//
// # Content
//
// Each category id maps to a multi-line sample document. The text is kept
// exactly as written, including markdown fences, so callers can display it
// preformatted:
//
//	text := catalog.ContentOrFallback(activeID)
//
// An id that is not in the table resolves to FallbackContent instead of an
// error.
package catalog
