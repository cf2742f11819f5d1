package engine

import (
	"testing"
	"time"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/placeholder"
	"github.com/pablasso/backlog/internal/rng"
	"github.com/pablasso/backlog/internal/testutil"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// proposalCatalog has a sales proposal template with one same-category and one
// operations follow-up.
func proposalCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(map[catalog.CategoryID][]catalog.WorkflowTemplate{
		catalog.Sales: {
			{
				Key:   "sales-proposal",
				Title: "Prepare proposal for {company}",
				Keys:  []string{"company"},
				FollowUps: []catalog.FollowUp{
					{Title: "Send contract to {company}", Category: catalog.Sales},
					{Title: "Schedule kickoff with {company} operations team", Category: catalog.Operations},
				},
			},
			{
				Key:       "sales-call",
				Title:     "Call {company} about renewal",
				Keys:      []string{"company"},
				FollowUps: []catalog.FollowUp{{Title: "Log call notes for {company}", Category: catalog.Sales}},
			},
		},
		catalog.Operations: {
			{
				Key:       "ops-kickoff",
				Title:     "Run kickoff for {company}",
				Keys:      []string{"company"},
				FollowUps: []catalog.FollowUp{{Title: "Send kickoff recap to {company}", Category: catalog.Sales}},
			},
		},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func newTestEngine(t *testing.T, src rng.Source, opts ...Option) *Engine {
	t.Helper()
	base := []Option{
		WithSource(src),
		WithClock(testutil.FixedClock(testNow)),
		WithIDFunc(testutil.SequentialIDs("task")),
	}
	return New(append(base, opts...)...)
}

func completedProposal() Task {
	key := "sales-proposal"
	done := testNow
	return Task{
		ID:          "parent-1",
		Title:       "Prepare proposal for Acme Corp",
		Category:    catalog.Sales,
		Priority:    catalog.Medium,
		DueDate:     testNow.Add(72 * time.Hour),
		CreatedAt:   testNow.Add(-time.Hour),
		Completed:   true,
		CompletedAt: &done,
		TemplateKey: &key,
		Context:     placeholder.Context{"company": "Acme Corp"},
	}
}

func assertDueWindow(t *testing.T, task Task, now time.Time) {
	t.Helper()
	if !task.DueDate.After(now) {
		t.Fatalf("task %s: due %v not after %v", task.ID, task.DueDate, now)
	}
	if !task.DueDate.Before(now.Add(14 * 24 * time.Hour)) {
		t.Fatalf("task %s: due %v not before now+14d", task.ID, task.DueDate)
	}
}
