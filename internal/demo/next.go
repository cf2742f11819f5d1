package demo

import (
	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/engine"
)

// NextTask picks the open task autoplay completes next: highest priority,
// then earliest due date, then earliest in the list.
func NextTask(tasks []engine.Task) (engine.Task, bool) {
	best := -1
	for i, t := range tasks {
		if t.Completed {
			continue
		}
		if best < 0 || before(t, tasks[best]) {
			best = i
		}
	}
	if best < 0 {
		return engine.Task{}, false
	}
	return tasks[best], true
}

func before(a, b engine.Task) bool {
	ra, rb := rank(a.Priority), rank(b.Priority)
	if ra != rb {
		return ra < rb
	}
	return a.DueDate.Before(b.DueDate)
}

// rank orders unknown priorities after every known one.
func rank(p catalog.Priority) int {
	if r := p.Rank(); r >= 0 {
		return r
	}
	return len(catalog.Priorities)
}
