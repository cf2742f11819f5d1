package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/backlog/internal/demo"
	"github.com/pablasso/backlog/internal/engine"
	"github.com/pablasso/backlog/internal/rng"
	"github.com/pablasso/backlog/internal/testutil"
)

func newTestModel(t *testing.T, autoplay bool) Model {
	t.Helper()
	e := engine.New(
		engine.WithSource(rng.NewSeeded(11)),
		engine.WithClock(testutil.FixedClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))),
		engine.WithIDFunc(testutil.SequentialIDs("t")),
	)
	m := New(Options{Engine: e, Autoplay: autoplay, Config: demo.Config{Interval: time.Millisecond}})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModel_CompleteAddsFollowUps(t *testing.T) {
	m := newTestModel(t, false)
	openBefore := len(m.backlog.Open())
	first := m.backlog.Open()[0]

	m, _ = press(t, m, "x")

	all := m.backlog.Tasks()
	if !all[0].Completed || all[0].ID != first.ID {
		t.Fatalf("expected %s to be completed", first.ID)
	}
	spawned := len(all) - (openBefore)
	if spawned < 1 || spawned > 3 {
		t.Fatalf("expected 1-3 follow-ups, got %d", spawned)
	}
	if !strings.Contains(m.event, "Completed") {
		t.Fatalf("expected completion event, got %q", m.event)
	}
}

func TestModel_EnterCompletesSelected(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = press(t, m, "j")
	target := m.backlog.Open()[1]

	m, _ = press(t, m, "enter")

	for _, task := range m.backlog.Open() {
		if task.ID == target.ID {
			t.Fatalf("expected %s to be completed", target.ID)
		}
	}
}

func TestModel_CursorMovement(t *testing.T) {
	m := newTestModel(t, false)

	m, _ = press(t, m, "k")
	if m.cursor != 0 {
		t.Fatalf("expected cursor to stay at 0, got %d", m.cursor)
	}
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "j")
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.cursor)
	}

	for i := 0; i < 50; i++ {
		m, _ = press(t, m, "j")
	}
	if want := len(m.backlog.Open()) - 1; m.cursor != want {
		t.Fatalf("expected cursor clamped to %d, got %d", want, m.cursor)
	}
}

func TestModel_NewTask(t *testing.T) {
	m := newTestModel(t, false)
	before := len(m.backlog.Tasks())

	m, _ = press(t, m, "n")

	if len(m.backlog.Tasks()) != before+1 {
		t.Fatalf("expected one task added")
	}
	if !strings.HasPrefix(m.event, "Added") {
		t.Fatalf("expected add event, got %q", m.event)
	}
}

func TestModel_AutoplayTick(t *testing.T) {
	m := newTestModel(t, true)
	if m.Init() == nil {
		t.Fatalf("expected Init to schedule a tick when autoplay is on")
	}

	updated, cmd := m.Update(tickMsg{gen: m.gen})
	m = updated.(Model)

	if m.steps != 1 {
		t.Fatalf("expected one completion, got %d", m.steps)
	}
	if cmd == nil {
		t.Fatalf("expected the next tick to be scheduled")
	}
}

func TestModel_StaleTickIgnored(t *testing.T) {
	m := newTestModel(t, true)
	stale := m.gen

	m, _ = press(t, m, "a") // off
	m, _ = press(t, m, "a") // on again, new generation

	updated, cmd := m.Update(tickMsg{gen: stale})
	m = updated.(Model)
	if m.steps != 0 || cmd != nil {
		t.Fatalf("expected stale tick to be ignored, got steps=%d", m.steps)
	}
}

func TestModel_AutoplayStopsAtMaxSteps(t *testing.T) {
	m := newTestModel(t, true)
	m.config.MaxSteps = 2

	for i := 0; i < 2; i++ {
		updated, _ := m.Update(tickMsg{gen: m.gen})
		m = updated.(Model)
	}
	if m.autoplay {
		t.Fatalf("expected autoplay to stop after max steps")
	}
	if m.steps != 2 {
		t.Fatalf("expected 2 steps, got %d", m.steps)
	}
}

func TestModel_ManualIgnoresTick(t *testing.T) {
	m := newTestModel(t, false)
	if m.Init() != nil {
		t.Fatalf("expected no tick without autoplay")
	}
	updated, _ := m.Update(tickMsg{gen: m.gen})
	if updated.(Model).steps != 0 {
		t.Fatalf("expected no completion without autoplay")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = press(t, m, "?")
	if !m.help.ShowAll {
		t.Fatalf("expected full help")
	}
	if !strings.Contains(m.View(), "down") {
		t.Fatalf("expected full help to list navigation keys")
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, false)
	view := m.View()

	for _, want := range []string{"B A C K L O G", "open", "done", "manual", "complete"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestModel_View_TerminalTooSmall(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		expectSmall bool
	}{
		{name: "exactly minimum size", width: MinTerminalWidth, height: MinTerminalHeight},
		{name: "width too small", width: MinTerminalWidth - 1, height: MinTerminalHeight, expectSmall: true},
		{name: "height too small", width: MinTerminalWidth, height: MinTerminalHeight - 1, expectSmall: true},
		{name: "larger than minimum", width: 100, height: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, false)
			updated, _ := m.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			view := updated.(Model).View()

			if got := strings.Contains(view, "Terminal too small"); got != tt.expectSmall {
				t.Fatalf("expected small=%v, got view:\n%s", tt.expectSmall, view)
			}
		})
	}
}

func TestModel_ScrollKeepsCursorVisible(t *testing.T) {
	m := newTestModel(t, false)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: MinTerminalHeight})
	m = updated.(Model)
	rows := m.listHeight()

	for i := 0; i < rows+2; i++ {
		m, _ = press(t, m, "j")
	}
	if m.cursor < m.offset || m.cursor >= m.offset+rows {
		t.Fatalf("cursor %d outside window [%d,%d)", m.cursor, m.offset, m.offset+rows)
	}
}
