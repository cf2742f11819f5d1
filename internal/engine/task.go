package engine

import (
	"time"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/placeholder"
)

// Task is a unit of work in the backlog. Its JSON form is the wire shape shared
// with storage and UI collaborators.
type Task struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Category    catalog.CategoryID  `json:"category"`
	Priority    catalog.Priority    `json:"priority"`
	DueDate     time.Time           `json:"dueDate"`
	CreatedAt   time.Time           `json:"createdAt"`
	Completed   bool                `json:"completed"`
	CompletedAt *time.Time          `json:"completedAt"`
	ParentID    *string             `json:"parentId"`    // lineage only
	TemplateKey *string             `json:"templateKey"` // nil when no template can continue the chain
	Context     placeholder.Context `json:"context"`
}

// Parent returns the parent task id, or "" for root tasks.
func (t Task) Parent() string {
	if t.ParentID == nil {
		return ""
	}
	return *t.ParentID
}

// Template returns the template key, or "".
func (t Task) Template() string {
	if t.TemplateKey == nil {
		return ""
	}
	return *t.TemplateKey
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
