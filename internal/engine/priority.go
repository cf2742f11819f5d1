package engine

import "github.com/pablasso/backlog/internal/catalog"

const inheritPriorityChance = 0.4

// randomPriority draws from the weighted distribution in catalog.Priorities.
func (e *Engine) randomPriority() catalog.Priority {
	total := 0
	for _, level := range catalog.Priorities {
		total += level.Weight
	}
	r := e.src.Float64() * float64(total)
	for _, level := range catalog.Priorities {
		r -= float64(level.Weight)
		if r < 0 {
			return level.ID
		}
	}
	return catalog.Priorities[len(catalog.Priorities)-1].ID
}

// followUpPriority applies the override, else inherits from the parent 40% of
// the time, else draws a weighted priority.
func (e *Engine) followUpPriority(override, parent catalog.Priority) catalog.Priority {
	if override != "" {
		return override
	}
	if e.src.Float64() < inheritPriorityChance && parent.Valid() {
		return parent
	}
	return e.randomPriority()
}
