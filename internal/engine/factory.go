package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/placeholder"
	"github.com/pablasso/backlog/internal/rng"
)

const (
	fallbackTitle = "Review outstanding items"

	day        = 24 * time.Hour
	minDueIn   = day
	maxDueIn   = 14 * day
	extraTasks = 2 // initial backlog adds 2-4 tasks on top of one per category
)

// CreateTask builds a task from a random template of category. An empty
// category picks one at random; a category without templates yields a generic
// fallback task. parentID may be empty.
func (e *Engine) CreateTask(category catalog.CategoryID, parentID string) Task {
	if category == "" {
		category = e.randomCategory()
	}

	tmpl, ok := rng.Pick(e.src, e.catalog.TemplatesFor(category))
	if !ok {
		e.log.WithField("category", category).Debug("no templates for category, creating fallback task")
		return e.newTask(category, fallbackTitle, e.randomPriority(), parentID, "", placeholder.Context{})
	}

	ctx := e.values.Build(tmpl.Keys)
	return e.newTask(tmpl.Category, e.resolve(tmpl.Title, ctx), e.randomPriority(), parentID, tmpl.Key, ctx)
}

// GenerateInitialTasks returns one task per category followed by 2-4 tasks
// from random categories.
func (e *Engine) GenerateInitialTasks() []Task {
	extra := extraTasks + rng.Intn(e.src, 3)
	tasks := make([]Task, 0, len(catalog.Categories)+extra)
	for _, c := range catalog.Categories {
		tasks = append(tasks, e.CreateTask(c.ID, ""))
	}
	for i := 0; i < extra; i++ {
		tasks = append(tasks, e.CreateTask("", ""))
	}
	e.log.WithFields(logrus.Fields{"count": len(tasks)}).Debug("generated initial backlog")
	return tasks
}

func (e *Engine) randomCategory() catalog.CategoryID {
	return catalog.Categories[rng.Intn(e.src, len(catalog.Categories))].ID
}

// resolve substitutes ctx into pattern, generating values for missing keys.
func (e *Engine) resolve(pattern string, ctx placeholder.Context) string {
	return placeholder.Resolve(pattern, ctx, e.values.Value)
}

// newTask stamps creation time, due date and id. Draw order: due date, then id.
func (e *Engine) newTask(category catalog.CategoryID, title string, priority catalog.Priority, parentID, templateKey string, ctx placeholder.Context) Task {
	now := e.now().UTC()
	due := e.dueDate(now)
	return Task{
		ID:          e.newID(),
		DueDate:     due,
		Title:       title,
		Category:    category,
		Priority:    priority,
		CreatedAt:   now,
		ParentID:    optional(parentID),
		TemplateKey: optional(templateKey),
		Context:     ctx,
	}
}

// dueDate returns a time in [now+1d, now+14d), truncated to the second.
func (e *Engine) dueDate(now time.Time) time.Time {
	offset := minDueIn + time.Duration(e.src.Float64()*float64(maxDueIn-minDueIn))
	if offset >= maxDueIn {
		offset = maxDueIn - time.Second
	}
	return now.Add(offset).Truncate(time.Second)
}
