package catalog

// DefaultCategory is the category selected when the application starts.
const DefaultCategory = "readme"

// Category describes one entry of the documentation sidebar.
type Category struct {
	ID          string // Unique key, also the content table key
	Name        string // Display name (e.g., "API Docs")
	Icon        string // Single glyph drawn next to the name
	Description string // Short one-line description
}

// categories is the sidebar order. Never mutated.
var categories = []Category{
	{ID: "readme", Name: "README", Icon: "▤", Description: "Main project documentation"},
	{ID: "api", Name: "API Docs", Icon: "⌥", Description: "API reference and endpoints"},
	{ID: "guide", Name: "User Guide", Icon: "✎", Description: "Step-by-step tutorials"},
	{ID: "setup", Name: "Installation", Icon: "⚙", Description: "Setup and configuration"},
	{ID: "features", Name: "Features", Icon: "⚡", Description: "Key features overview"},
	{ID: "security", Name: "Security", Icon: "⛨", Description: "Security guidelines"},
	{ID: "contributing", Name: "Contributing", Icon: "☺", Description: "Contribution guidelines"},
	{ID: "changelog", Name: "Changelog", Icon: "⎇", Description: "Version history"},
}

// titles maps a category id to the heading shown above its document.
var titles = map[string]string{
	"readme":       "README Documentation",
	"api":          "API Reference",
	"guide":        "User Guide",
	"setup":        "Installation Guide",
	"features":     "Features Overview",
	"security":     "Security Documentation",
	"contributing": "Contributing Guidelines",
	"changelog":    "Project Changelog",
}

// FallbackTitle is the heading used for ids without a title.
const FallbackTitle = "Documentation"

// Categories returns the categories in display order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Lookup returns the category with the given id.
func Lookup(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// IsKnown reports whether id names a category.
func IsKnown(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Index returns the display position of id, or -1.
func Index(id string) int {
	for i, c := range categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// IDs returns all category ids in display order.
func IDs() []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

// Title returns the document heading for id, or FallbackTitle.
func Title(id string) string {
	if t, ok := titles[id]; ok {
		return t
	}
	return FallbackTitle
}
