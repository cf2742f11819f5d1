// Package catalog holds the static workflow templates tasks are generated from.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pablasso/backlog/internal/placeholder"
)

// ErrInvalidCatalog is wrapped by every validation error returned from New.
var ErrInvalidCatalog = errors.New("invalid catalog")

// FollowUp is a task to spawn once a task built from the owning template is completed.
// A Category different from the owning template's is a cross-category bridge.
type FollowUp struct {
	Title    string
	Category CategoryID
	Priority Priority // empty means no override
}

// WorkflowTemplate pairs a title pattern with the context keys it needs and the
// follow-ups it can spawn.
type WorkflowTemplate struct {
	Key       string
	Category  CategoryID
	Title     string
	Keys      []string
	FollowUps []FollowUp
}

// Catalog is an immutable, validated set of workflow templates.
// It is safe for concurrent use.
type Catalog struct {
	byCategory map[CategoryID][]WorkflowTemplate
	byKey      map[string]WorkflowTemplate
	size       int
}

// New validates defs and builds a catalog. The owning category of each
// template is taken from its map key.
func New(defs map[CategoryID][]WorkflowTemplate) (*Catalog, error) {
	for id := range defs {
		if !id.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidCatalog, id)
		}
	}

	c := &Catalog{
		byCategory: make(map[CategoryID][]WorkflowTemplate, len(defs)),
		byKey:      make(map[string]WorkflowTemplate),
	}
	for _, cat := range Categories {
		for _, tmpl := range defs[cat.ID] {
			tmpl.Category = cat.ID
			if err := validateTemplate(tmpl); err != nil {
				return nil, err
			}
			if _, dup := c.byKey[tmpl.Key]; dup {
				return nil, fmt.Errorf("%w: duplicate template key %q", ErrInvalidCatalog, tmpl.Key)
			}
			tmpl.Keys = slices.Clone(tmpl.Keys)
			tmpl.FollowUps = slices.Clone(tmpl.FollowUps)
			c.byCategory[cat.ID] = append(c.byCategory[cat.ID], tmpl)
			c.byKey[tmpl.Key] = tmpl
			c.size++
		}
	}
	return c, nil
}

// Must is like New but panics on error. Intended for compiled-in data at startup.
func Must(c *Catalog, err error) *Catalog {
	if err != nil {
		panic(err)
	}
	return c
}

func validateTemplate(tmpl WorkflowTemplate) error {
	if tmpl.Key == "" {
		return fmt.Errorf("%w: template with empty key in %s", ErrInvalidCatalog, tmpl.Category)
	}
	if tmpl.Title == "" {
		return fmt.Errorf("%w: template %q has empty title", ErrInvalidCatalog, tmpl.Key)
	}

	declared := make(map[string]bool, len(tmpl.Keys))
	for _, k := range tmpl.Keys {
		if k == "" {
			return fmt.Errorf("%w: template %q declares an empty key", ErrInvalidCatalog, tmpl.Key)
		}
		declared[k] = true
	}
	if err := checkPlaceholders(tmpl.Key, tmpl.Title, declared); err != nil {
		return err
	}

	for _, fu := range tmpl.FollowUps {
		if fu.Title == "" {
			return fmt.Errorf("%w: template %q has a follow-up with empty title", ErrInvalidCatalog, tmpl.Key)
		}
		if !fu.Category.Valid() {
			return fmt.Errorf("%w: follow-up %q of %q targets unknown category %q", ErrInvalidCatalog, fu.Title, tmpl.Key, fu.Category)
		}
		if fu.Priority != "" && !fu.Priority.Valid() {
			return fmt.Errorf("%w: follow-up %q of %q has invalid priority %q", ErrInvalidCatalog, fu.Title, tmpl.Key, fu.Priority)
		}
		if err := checkPlaceholders(tmpl.Key, fu.Title, declared); err != nil {
			return err
		}
	}
	return nil
}

// checkPlaceholders ensures pattern only references keys the template declares,
// so follow-ups can always be resolved from the inherited context.
func checkPlaceholders(key, pattern string, declared map[string]bool) error {
	for _, k := range placeholder.Keys(pattern) {
		if !declared[k] {
			return fmt.Errorf("%w: %q in template %q uses undeclared placeholder {%s}", ErrInvalidCatalog, pattern, key, k)
		}
	}
	return nil
}

// TemplatesFor returns the templates of a category in declared order.
// Unknown or empty categories yield an empty slice.
func (c *Catalog) TemplatesFor(id CategoryID) []WorkflowTemplate {
	return slices.Clone(c.byCategory[id])
}

// FindTemplate looks up a template by key, searching the hinted category first
// and then the whole catalog.
func (c *Catalog) FindTemplate(key string, hint CategoryID) (WorkflowTemplate, bool) {
	if key == "" {
		return WorkflowTemplate{}, false
	}
	for _, tmpl := range c.byCategory[hint] {
		if tmpl.Key == key {
			return tmpl, true
		}
	}
	tmpl, ok := c.byKey[key]
	return tmpl, ok
}

// Templates returns every template, grouped by category in Categories order.
func (c *Catalog) Templates() []WorkflowTemplate {
	out := make([]WorkflowTemplate, 0, c.size)
	for _, cat := range Categories {
		out = append(out, c.byCategory[cat.ID]...)
	}
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return c.size
}
