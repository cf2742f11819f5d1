package demo

import (
	"errors"
	"fmt"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/engine"
)

// ErrTaskNotFound is returned when completing an id that is not in the backlog.
var ErrTaskNotFound = errors.New("task not found")

// Backlog is an in-memory task list fed by an engine. It is not safe for
// concurrent use.
type Backlog struct {
	engine *engine.Engine
	tasks  []engine.Task
}

// NewBacklog seeds a backlog with the engine's initial tasks.
func NewBacklog(e *engine.Engine) *Backlog {
	return &Backlog{engine: e, tasks: e.GenerateInitialTasks()}
}

// Tasks returns every task, completed ones included, in insertion order.
func (b *Backlog) Tasks() []engine.Task {
	return append([]engine.Task(nil), b.tasks...)
}

// Open returns the tasks that are not completed.
func (b *Backlog) Open() []engine.Task {
	var open []engine.Task
	for _, t := range b.tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return open
}

// Add creates a task in category (random when empty) and appends it.
func (b *Backlog) Add(category catalog.CategoryID) engine.Task {
	t := b.engine.CreateTask(category, "")
	b.tasks = append(b.tasks, t)
	return t
}

// Complete marks the task with id completed and appends its follow-ups.
func (b *Backlog) Complete(id string) (engine.Task, []engine.Task, error) {
	for i, t := range b.tasks {
		if t.ID != id {
			continue
		}
		if t.Completed {
			return t, nil, fmt.Errorf("task %s already completed", id)
		}
		done, spawned := b.engine.Complete(t)
		b.tasks[i] = done
		b.tasks = append(b.tasks, spawned...)
		return done, spawned, nil
	}
	return engine.Task{}, nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// Step completes the next task. ok is false when nothing is open.
func (b *Backlog) Step() (done engine.Task, spawned []engine.Task, ok bool) {
	next, ok := NextTask(b.tasks)
	if !ok {
		return engine.Task{}, nil, false
	}
	done, spawned, err := b.Complete(next.ID)
	if err != nil {
		return engine.Task{}, nil, false
	}
	return done, spawned, true
}
