package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pablasso/backlog/internal/catalog"
	"github.com/pablasso/backlog/internal/rng"
	"github.com/pablasso/backlog/internal/testutil"
)

func TestGenerateInitialTasks_CountAndCoverage(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		e := newTestEngine(t, rng.NewSeeded(seed))
		tasks := e.GenerateInitialTasks()

		if len(tasks) < 8+2 || len(tasks) > 8+4 {
			t.Fatalf("seed %d: expected 10-12 tasks, got %d", seed, len(tasks))
		}
		seen := make(map[catalog.CategoryID]bool)
		for _, task := range tasks {
			seen[task.Category] = true
			assertDueWindow(t, task, testNow)
			if task.TemplateKey == nil {
				t.Fatalf("seed %d: expected template key on %q", seed, task.Title)
			}
			if task.Completed || task.CompletedAt != nil || task.ParentID != nil {
				t.Fatalf("seed %d: expected fresh root task, got %+v", seed, task)
			}
		}
		for _, c := range catalog.Categories {
			if !seen[c.ID] {
				t.Fatalf("seed %d: category %s not covered", seed, c.ID)
			}
		}
	}
}

func TestCreateTask_ContextCoversTemplateKeys(t *testing.T) {
	e := newTestEngine(t, rng.NewSeeded(11))
	for i := 0; i < 200; i++ {
		task := e.CreateTask("", "")
		tmpl, ok := e.Catalog().FindTemplate(task.Template(), task.Category)
		if !ok {
			t.Fatalf("expected template %q to exist", task.Template())
		}
		for _, k := range tmpl.Keys {
			if _, ok := task.Context[k]; !ok {
				t.Fatalf("task %q missing context key %s", task.Title, k)
			}
		}
		if task.Category != tmpl.Category {
			t.Fatalf("expected category %s, got %s", tmpl.Category, task.Category)
		}
		if !task.Priority.Valid() {
			t.Fatalf("invalid priority %q", task.Priority)
		}
	}
}

func TestCreateTask_ResolvesTitle(t *testing.T) {
	e := newTestEngine(t, testutil.Script(), WithCatalog(proposalCatalog(t)))
	task := e.CreateTask(catalog.Sales, "parent-9")

	if task.Title != "Prepare proposal for Globex" {
		t.Fatalf("expected resolved title, got %q", task.Title)
	}
	if task.Parent() != "parent-9" {
		t.Fatalf("expected parent parent-9, got %q", task.Parent())
	}
	if task.Priority != catalog.Critical {
		t.Fatalf("expected lowest draw to pick critical, got %s", task.Priority)
	}
	if !task.CreatedAt.Equal(testNow) {
		t.Fatalf("expected createdAt %v, got %v", testNow, task.CreatedAt)
	}
	if want := testNow.Add(24 * time.Hour); !task.DueDate.Equal(want) {
		t.Fatalf("expected due %v, got %v", want, task.DueDate)
	}
}

func TestCreateTask_FallbackForCategoryWithoutTemplates(t *testing.T) {
	e := newTestEngine(t, rng.NewSeeded(1), WithCatalog(proposalCatalog(t)))
	task := e.CreateTask(catalog.HR, "")

	if task.Title != fallbackTitle {
		t.Fatalf("expected fallback title, got %q", task.Title)
	}
	if task.Category != catalog.HR {
		t.Fatalf("expected category hr, got %s", task.Category)
	}
	if task.TemplateKey != nil {
		t.Fatalf("expected no template key, got %q", task.Template())
	}
	if task.Context == nil || len(task.Context) != 0 {
		t.Fatalf("expected empty non-nil context, got %v", task.Context)
	}
}

func TestDueDate_UpperEdge(t *testing.T) {
	e := newTestEngine(t, testutil.Script(0.9999999999999999))
	due := e.dueDate(testNow)
	if !due.Before(testNow.Add(14 * 24 * time.Hour)) {
		t.Fatalf("expected due strictly before now+14d, got %v", due)
	}
}

func TestGenerateID(t *testing.T) {
	a := New(WithSource(rng.NewSeeded(3)))
	b := New(WithSource(rng.NewSeeded(3)))

	idA, idB := a.GenerateID(), b.GenerateID()
	if _, err := uuid.Parse(idA); err != nil {
		t.Fatalf("expected a UUID, got %q: %v", idA, err)
	}
	if idA != idB {
		t.Fatalf("expected seeded ids to match, got %q and %q", idA, idB)
	}
	if next := a.GenerateID(); next == idA {
		t.Fatalf("expected distinct ids, got %q twice", next)
	}
}
