// Package analysis summarizes a backlog: open work per category and priority,
// and how deep follow-up chains have grown.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/engine"
)

// Summary is a snapshot of a backlog.
type Summary struct {
	Total      int
	Open       int
	Completed  int
	Roots      int // tasks without a parent
	MaxDepth   int // longest parent chain; a root has depth 0
	ByCategory map[catalog.CategoryID]int
	ByPriority map[catalog.Priority]int
}

// Summarize counts tasks. Category and priority counts include open tasks only.
func Summarize(tasks []engine.Task) Summary {
	s := Summary{
		Total:      len(tasks),
		ByCategory: make(map[catalog.CategoryID]int),
		ByPriority: make(map[catalog.Priority]int),
	}

	parents := make(map[string]string, len(tasks))
	for _, t := range tasks {
		parents[t.ID] = t.Parent()
		if t.Parent() == "" {
			s.Roots++
		}
		if t.Completed {
			s.Completed++
			continue
		}
		s.Open++
		s.ByCategory[t.Category]++
		s.ByPriority[t.Priority]++
	}

	for _, t := range tasks {
		if d := depth(t.ID, parents); d > s.MaxDepth {
			s.MaxDepth = d
		}
	}
	return s
}

// depth counts parent links from id. A parent missing from the backlog counts
// as one level; cycles stop at the first repeated id.
func depth(id string, parents map[string]string) int {
	seen := map[string]bool{id: true}
	d := 0
	for {
		parent, ok := parents[id]
		if !ok || parent == "" || seen[parent] {
			return d
		}
		if _, known := parents[parent]; !known {
			return d + 1
		}
		seen[parent] = true
		id = parent
		d++
	}
}

// Lineage returns the chain of tasks from the root down to id, following
// parent ids within tasks. Unknown ids yield nil.
func Lineage(tasks []engine.Task, id string) []engine.Task {
	byID := make(map[string]engine.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var chain []engine.Task
	seen := make(map[string]bool)
	for id != "" && !seen[id] {
		t, ok := byID[id]
		if !ok {
			break
		}
		seen[id] = true
		chain = append(chain, t)
		id = t.Parent()
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// FormatSummary renders s for terminal output.
func FormatSummary(s Summary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tasks: %d (%d open, %d completed)\n", s.Total, s.Open, s.Completed)
	fmt.Fprintf(&sb, "Roots: %d, deepest chain: %d\n", s.Roots, s.MaxDepth)

	if s.Open == 0 {
		return sb.String()
	}

	sb.WriteString("\nOpen by category:\n")
	for _, c := range catalog.Categories {
		if n := s.ByCategory[c.ID]; n > 0 {
			fmt.Fprintf(&sb, "  %-12s %d\n", c.Label, n)
		}
	}
	// Categories outside the known set, sorted for stable output
	var other []string
	for id := range s.ByCategory {
		if !id.Valid() {
			other = append(other, string(id))
		}
	}
	sort.Strings(other)
	for _, id := range other {
		fmt.Fprintf(&sb, "  %-12s %d\n", id, s.ByCategory[catalog.CategoryID(id)])
	}

	sb.WriteString("\nOpen by priority:\n")
	for _, p := range catalog.Priorities {
		if n := s.ByPriority[p.ID]; n > 0 {
			fmt.Fprintf(&sb, "  %-12s %d\n", p.Label, n)
		}
	}
	return sb.String()
}
