package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/rng"
)

// Tier identifies which policy produced a follow-up.
type Tier int

const (
	TierContinuation Tier = iota + 1 // follow-up of the originating template
	TierBridge                       // follow-up handed to another category
	TierFresh                        // new task from the factory
)

func (t Tier) String() string {
	switch t {
	case TierContinuation:
		return "continuation"
	case TierBridge:
		return "bridge"
	case TierFresh:
		return "fresh"
	default:
		return "unknown"
	}
}

const (
	maxFollowUps          = 3
	continuationThreshold = 0.70
	bridgeThreshold       = 0.90
	sameCategoryBias      = 0.5
)

// SpawnFollowUps returns 1-3 tasks to add to the backlog after completed is done.
//
// Each slot draws r in [0,1): below 0.70 continues the originating template's
// workflow, below 0.90 bridges to another category, otherwise creates a fresh
// task. An exhausted tier falls through to the next one, and no follow-up
// pattern is used twice in one call.
func (e *Engine) SpawnFollowUps(completed Task) []Task {
	count := 1 + rng.Intn(e.src, maxFollowUps)
	tmpl, hasTemplate := e.catalog.FindTemplate(completed.Template(), completed.Category)
	used := make(map[string]bool)

	log := e.log.WithField("task", completed.ID)
	if !hasTemplate {
		log.WithField("template", completed.Template()).Debug("originating template not found, spawning fresh tasks")
	}

	spawned := make([]Task, 0, count)
	for i := 0; i < count; i++ {
		var (
			task Task
			tier Tier
		)
		if hasTemplate {
			task, tier = e.spawnFromTemplate(completed, tmpl, used)
		} else {
			task, tier = e.freshFollowUp(completed), TierFresh
		}
		log.WithFields(logrus.Fields{
			"tier":     tier.String(),
			"category": task.Category,
			"template": task.Template(),
		}).Debug("spawned follow-up")
		spawned = append(spawned, task)
	}
	return spawned
}

func (e *Engine) spawnFromTemplate(completed Task, tmpl catalog.WorkflowTemplate, used map[string]bool) (Task, Tier) {
	r := e.src.Float64()
	if r < continuationThreshold {
		if fu, ok := e.pickFollowUp(tmpl.FollowUps, used, continuationPool(completed.Category)); ok {
			return e.followUpTask(completed, fu), TierContinuation
		}
	}
	if r < bridgeThreshold {
		if fu, ok := e.pickFollowUp(tmpl.FollowUps, used, bridgePool(completed.Category)); ok {
			return e.followUpTask(completed, fu), TierBridge
		}
	}
	return e.freshFollowUp(completed), TierFresh
}

type poolFunc func(unused []catalog.FollowUp) []catalog.FollowUp

// continuationPool prefers unused follow-ups staying in the completed task's
// category and falls back to any unused follow-up.
func continuationPool(category catalog.CategoryID) poolFunc {
	return func(unused []catalog.FollowUp) []catalog.FollowUp {
		if same := filterCategory(unused, category, true); len(same) > 0 {
			return same
		}
		return unused
	}
}

// bridgePool keeps unused follow-ups targeting a different category.
func bridgePool(category catalog.CategoryID) poolFunc {
	return func(unused []catalog.FollowUp) []catalog.FollowUp {
		return filterCategory(unused, category, false)
	}
}

func filterCategory(fus []catalog.FollowUp, category catalog.CategoryID, same bool) []catalog.FollowUp {
	var out []catalog.FollowUp
	for _, fu := range fus {
		if (fu.Category == category) == same {
			out = append(out, fu)
		}
	}
	return out
}

// pickFollowUp chooses uniformly from pool(unused) and marks the choice used.
func (e *Engine) pickFollowUp(all []catalog.FollowUp, used map[string]bool, pool poolFunc) (catalog.FollowUp, bool) {
	var unused []catalog.FollowUp
	for _, fu := range all {
		if !used[fu.Title] {
			unused = append(unused, fu)
		}
	}
	fu, ok := rng.Pick(e.src, pool(unused))
	if ok {
		used[fu.Title] = true
	}
	return fu, ok
}

// followUpTask carries the parent's context forward unchanged and attaches the
// best matching template of the target category.
func (e *Engine) followUpTask(parent Task, fu catalog.FollowUp) Task {
	ctx := parent.Context.Clone()
	title := e.resolve(fu.Title, ctx)
	priority := e.followUpPriority(fu.Priority, parent.Priority)
	task := e.newTask(fu.Category, title, priority, parent.ID, "", ctx)

	if next, _, ok := e.matcher.Best(title, fu.Category); ok {
		task.TemplateKey = optional(next.Key)
	}
	return task
}

// freshFollowUp creates an unrelated task, half the time in the parent's
// category. The parent id is kept for lineage only.
func (e *Engine) freshFollowUp(parent Task) Task {
	var category catalog.CategoryID
	if e.src.Float64() < sameCategoryBias {
		category = parent.Category
	}
	task := e.CreateTask(category, parent.ID)
	task.Priority = e.followUpPriority("", parent.Priority)
	return task
}

// Complete marks task completed and returns it with its follow-ups. A task
// that is already completed is returned unchanged with no follow-ups.
func (e *Engine) Complete(task Task) (Task, []Task) {
	if task.Completed {
		return task, nil
	}
	at := e.now().UTC()
	task.Completed = true
	task.CompletedAt = &at
	return task, e.SpawnFollowUps(task)
}
