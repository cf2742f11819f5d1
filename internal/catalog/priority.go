package catalog

import (
	"fmt"
	"strings"
)

// Priority is the urgency of a task.
type Priority string

const (
	Critical Priority = "critical"
	High     Priority = "high"
	Medium   Priority = "medium"
	Low      Priority = "low"
)

// PriorityLevel describes a Priority. Weight is the percentage used when a
// priority is drawn at random.
type PriorityLevel struct {
	ID     Priority
	Label  string
	Color  string
	Weight int
}

// Priorities lists every priority from most to least urgent.
var Priorities = []PriorityLevel{
	{ID: Critical, Label: "Critical", Color: "#DC2626", Weight: 10},
	{ID: High, Label: "High", Color: "#F97316", Weight: 25},
	{ID: Medium, Label: "Medium", Color: "#EAB308", Weight: 40},
	{ID: Low, Label: "Low", Color: "#9CA3AF", Weight: 25},
}

// Valid reports whether p is one of Priorities.
func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// Rank orders priorities, 0 being most urgent. Unknown priorities rank -1.
func (p Priority) Rank() int {
	for i, level := range Priorities {
		if level.ID == p {
			return i
		}
	}
	return -1
}

// Level returns the metadata for p.
func (p Priority) Level() (PriorityLevel, bool) {
	if i := p.Rank(); i >= 0 {
		return Priorities[i], true
	}
	return PriorityLevel{}, false
}

// ParsePriority validates and normalizes a priority value.
func ParsePriority(value string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(value)))
	if p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("invalid priority %q (valid: critical, high, medium, low)", value)
}
