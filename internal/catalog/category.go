package catalog

import (
	"fmt"
	"strings"
)

// CategoryID identifies a business department a task belongs to.
type CategoryID string

const (
	Marketing   CategoryID = "marketing"
	Sales       CategoryID = "sales"
	Operations  CategoryID = "operations"
	HR          CategoryID = "hr"
	Finance     CategoryID = "finance"
	Product     CategoryID = "product"
	Engineering CategoryID = "engineering"
	Support     CategoryID = "support"
)

// Category carries the presentation metadata for a CategoryID.
// The engine only reads ID; the rest is for renderers.
type Category struct {
	ID     CategoryID
	Label  string
	Color  string
	Icon   string
	Weight int
}

// Categories is the closed set of categories in display order.
var Categories = []Category{
	{ID: Marketing, Label: "Marketing", Color: "#EC4899", Icon: "📣", Weight: 1},
	{ID: Sales, Label: "Sales", Color: "#10B981", Icon: "💼", Weight: 1},
	{ID: Operations, Label: "Operations", Color: "#F59E0B", Icon: "⚙️", Weight: 1},
	{ID: HR, Label: "HR", Color: "#8B5CF6", Icon: "👥", Weight: 1},
	{ID: Finance, Label: "Finance", Color: "#0EA5E9", Icon: "💰", Weight: 1},
	{ID: Product, Label: "Product", Color: "#6366F1", Icon: "🧩", Weight: 1},
	{ID: Engineering, Label: "Engineering", Color: "#EF4444", Icon: "🛠️", Weight: 1},
	{ID: Support, Label: "Support", Color: "#14B8A6", Icon: "🎧", Weight: 1},
}

// LookupCategory returns the metadata for id.
func LookupCategory(id CategoryID) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Valid reports whether id is a member of Categories.
func (id CategoryID) Valid() bool {
	_, ok := LookupCategory(id)
	return ok
}

// Label returns the display label, or the raw id for unknown categories.
func (id CategoryID) Label() string {
	if c, ok := LookupCategory(id); ok {
		return c.Label
	}
	return string(id)
}

// ParseCategory validates and normalizes a category id.
func ParseCategory(value string) (CategoryID, error) {
	id := CategoryID(strings.ToLower(strings.TrimSpace(value)))
	if id.Valid() {
		return id, nil
	}
	valid := make([]string, 0, len(Categories))
	for _, c := range Categories {
		valid = append(valid, string(c.ID))
	}
	return "", fmt.Errorf("invalid category %q (valid: %s)", value, strings.Join(valid, ", "))
}
