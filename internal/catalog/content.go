package catalog

import (
	"embed"
	"fmt"
	"strings"
)

// FallbackContent is displayed when no document exists for an id.
const FallbackContent = "Select a documentation type to see the preview."

//go:embed content/*.md
var contentFS embed.FS

// contents is filled once by init and only read afterwards.
var contents map[string]string

func init() {
	table, err := loadContents()
	if err != nil {
		panic(err)
	}
	contents = table
}

// loadContents reads one document per category from the embedded files.
// A category without a document is a build defect.
func loadContents() (map[string]string, error) {
	table := make(map[string]string, len(categories))
	for _, c := range categories {
		data, err := contentFS.ReadFile("content/" + c.ID + ".md")
		if err != nil {
			return nil, fmt.Errorf("missing document for category %q: %w", c.ID, err)
		}
		// Files end with a newline, the documents themselves do not.
		table[c.ID] = strings.TrimSuffix(string(data), "\n")
	}
	return table, nil
}

// Content returns the document for id.
func Content(id string) (string, bool) {
	text, ok := contents[id]
	return text, ok
}

// ContentOrFallback returns the document for id, or FallbackContent if
// there is none.
func ContentOrFallback(id string) string {
	if text, ok := contents[id]; ok {
		return text
	}
	return FallbackContent
}
