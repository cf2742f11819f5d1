package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/pablasso/backlog/internal/config"
	"github.com/pablasso/backlog/internal/demo"
	"github.com/pablasso/backlog/internal/engine"
	"github.com/pablasso/backlog/internal/testutil"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// setupCommand pins settings and the clock, and returns a command wired to
// in/out buffers.
func setupCommand(t *testing.T, stdin string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	prevSettings, prevNow := settings, now
	settings = config.Config{Seed: 7, LogFormat: config.LogFormatText, Preset: demo.PresetQuick}
	now = testutil.FixedClock(testNow)
	t.Cleanup(func() {
		settings, now = prevSettings, prevNow
	})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	return cmd, &out
}

func decodeLines(t *testing.T, data string) []engine.Task {
	t.Helper()
	var tasks []engine.Task
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		var task engine.Task
		if err := json.Unmarshal([]byte(line), &task); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func TestFormatDue(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "past", duration: -time.Hour, want: "overdue"},
		{name: "under a minute", duration: 30 * time.Second, want: "now"},
		{name: "minutes", duration: 5 * time.Minute, want: "in 5m"},
		{name: "59 minutes", duration: 59 * time.Minute, want: "in 59m"},
		{name: "hours", duration: 5 * time.Hour, want: "in 5h"},
		{name: "23 hours", duration: 23 * time.Hour, want: "in 23h"},
		{name: "one day", duration: 24 * time.Hour, want: "in 1d"},
		{name: "thirteen days", duration: 13*24*time.Hour + 5*time.Hour, want: "in 13d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDue(testNow, testNow.Add(tt.duration)); got != tt.want {
				t.Errorf("formatDue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("expected 01234567, got %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

func TestRunSeed_Table(t *testing.T) {
	cmd, out := setupCommand(t, "")
	seedJSON = false

	if err := runSeed(cmd, nil); err != nil {
		t.Fatalf("runSeed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "CATEGORY") {
		t.Fatalf("expected header row, got %q", lines[0])
	}
	if rows := len(lines) - 1; rows < 10 || rows > 12 {
		t.Fatalf("expected 10-12 rows, got %d", rows)
	}
}

func TestRunSeed_JSONIsReproducible(t *testing.T) {
	run := func() string {
		cmd, out := setupCommand(t, "")
		seedJSON = true
		t.Cleanup(func() { seedJSON = false })
		if err := runSeed(cmd, nil); err != nil {
			t.Fatalf("runSeed: %v", err)
		}
		return out.String()
	}

	first := run()
	var tasks []engine.Task
	if err := json.Unmarshal([]byte(first), &tasks); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(tasks) < 10 || len(tasks) > 12 {
		t.Fatalf("expected 10-12 tasks, got %d", len(tasks))
	}
	if second := run(); second != first {
		t.Fatalf("expected identical output for the same seed")
	}
}

func TestRunSpawn_CompletedTaskLine(t *testing.T) {
	input := `{"id":"p-1","title":"Prepare proposal for Acme Corp","category":"sales","priority":"medium",` +
		`"dueDate":"2025-03-12T09:30:00Z","createdAt":"2025-03-10T08:30:00Z","completed":true,` +
		`"completedAt":"2025-03-10T09:30:00Z","parentId":null,"templateKey":"sales-proposal","context":{"company":"Acme Corp"}}`
	cmd, out := setupCommand(t, input+"\n")

	if err := runSpawn(cmd, nil); err != nil {
		t.Fatalf("runSpawn: %v", err)
	}

	tasks := decodeLines(t, out.String())
	if tasks[0].ID != "p-1" || !tasks[0].Completed {
		t.Fatalf("expected completed input task first, got %+v", tasks[0])
	}
	spawned := tasks[1:]
	if len(spawned) < 1 || len(spawned) > 3 {
		t.Fatalf("expected 1-3 follow-ups, got %d", len(spawned))
	}
	for _, task := range spawned {
		if task.Parent() != "p-1" {
			t.Fatalf("expected parent p-1, got %q", task.Parent())
		}
		if task.Completed {
			t.Fatalf("expected open follow-up")
		}
	}
}

func TestRunSpawn_ArrayMarksOpenTasksCompleted(t *testing.T) {
	input := `[{"id":"a","title":"Fix login bug","category":"engineering","priority":"high","completed":false},
	{"id":"b","title":"Answer ticket","category":"support","priority":"low","completed":false}]`
	cmd, out := setupCommand(t, input)

	if err := runSpawn(cmd, nil); err != nil {
		t.Fatalf("runSpawn: %v", err)
	}

	seen := make(map[string]bool)
	for _, task := range decodeLines(t, out.String()) {
		if task.ID == "a" || task.ID == "b" {
			if !task.Completed || task.CompletedAt == nil || !task.CompletedAt.Equal(testNow) {
				t.Fatalf("expected %s completed at %v, got %+v", task.ID, testNow, task)
			}
			seen[task.ID] = true
		}
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("expected both input tasks in output")
	}
}

func TestRunSpawn_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "  \n", want: "no tasks"},
		{name: "malformed line", input: "{not json}\n", want: "line 1"},
		{name: "empty array", input: "[]", want: "no tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := setupCommand(t, tt.input)
			err := runSpawn(cmd, nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to mention %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRunChain(t *testing.T) {
	cmd, out := setupCommand(t, "")
	chainSteps, chainCategory = 5, "finance"
	t.Cleanup(func() { chainSteps, chainCategory = 10, "" })

	if err := runChain(cmd, nil); err != nil {
		t.Fatalf("runChain: %v", err)
	}

	text := out.String()
	if got := strings.Count(text, " done "); got != 5 {
		t.Fatalf("expected 5 completed steps in lineage, got %d:\n%s", got, text)
	}
	if !strings.Contains(text, "  1. done finance") {
		t.Fatalf("expected chain to start in finance, got:\n%s", text)
	}
	if !strings.Contains(text, "  6. open") {
		t.Fatalf("expected the open tail of the chain, got:\n%s", text)
	}
	if !strings.Contains(text, "deepest chain: 5") {
		t.Fatalf("expected summary with depth 5, got:\n%s", text)
	}
}

func TestRunChain_InvalidFlags(t *testing.T) {
	cmd, _ := setupCommand(t, "")
	t.Cleanup(func() { chainSteps, chainCategory = 10, "" })

	chainSteps, chainCategory = 0, ""
	if err := runChain(cmd, nil); err == nil {
		t.Fatalf("expected error for zero steps")
	}

	chainSteps, chainCategory = 3, "legal"
	if err := runChain(cmd, nil); err == nil || !strings.Contains(err.Error(), "invalid category") {
		t.Fatalf("expected invalid category error, got %v", err)
	}
}

func TestRunCatalog(t *testing.T) {
	cmd, out := setupCommand(t, "")
	if err := runCatalog(cmd, nil); err != nil {
		t.Fatalf("runCatalog: %v", err)
	}
	for _, want := range []string{"Marketing", "Support", "Prepare proposal for {company}", "-> "} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestRunCatalog_SingleCategory(t *testing.T) {
	cmd, out := setupCommand(t, "")
	if err := runCatalog(cmd, []string{"Finance"}); err != nil {
		t.Fatalf("runCatalog: %v", err)
	}
	if !strings.Contains(out.String(), "Finance") || strings.Contains(out.String(), "Marketing") {
		t.Fatalf("expected only finance, got:\n%s", out.String())
	}

	if err := runCatalog(cmd, []string{"legal"}); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestRunPlay_Headless(t *testing.T) {
	cmd, out := setupCommand(t, "")
	playHeadless, playSteps, playPreset = true, 2, "quick"
	t.Cleanup(func() { playHeadless, playSteps, playPreset = false, 0, "medium" })
	cmd.Flags().StringVar(&playPreset, "preset", "medium", "")
	if err := cmd.Flags().Set("preset", "quick"); err != nil {
		t.Fatalf("set preset: %v", err)
	}

	if err := runPlay(cmd, nil); err != nil {
		t.Fatalf("runPlay: %v", err)
	}
	if !strings.Contains(out.String(), "[2] done") || strings.Contains(out.String(), "[3] done") {
		t.Fatalf("expected exactly two steps, got:\n%s", out.String())
	}
}

func TestRunPlay_InvalidPreset(t *testing.T) {
	cmd, _ := setupCommand(t, "")
	t.Cleanup(func() { playPreset = "medium" })
	cmd.Flags().StringVar(&playPreset, "preset", "medium", "")
	if err := cmd.Flags().Set("preset", "turbo"); err != nil {
		t.Fatalf("set preset: %v", err)
	}

	if err := runPlay(cmd, nil); err == nil {
		t.Fatalf("expected error for invalid preset")
	}
}

func TestLoadSettings_FlagsOverrideEnvironment(t *testing.T) {
	testutil.SetupTestDir(t)
	t.Setenv(config.EnvSeed, "9")
	t.Setenv(config.EnvLogFormat, "text")
	prev := settings
	t.Cleanup(func() { settings = prev })

	cmd := &cobra.Command{}
	cmd.SetErr(&bytes.Buffer{})
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "")
	cmd.Flags().StringVar(&logFormatFlag, "log-format", "text", "")
	if err := cmd.Flags().Set("seed", "5"); err != nil {
		t.Fatalf("set seed: %v", err)
	}
	if err := cmd.Flags().Set("log-format", "json"); err != nil {
		t.Fatalf("set log-format: %v", err)
	}

	if err := loadSettings(cmd, nil); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if settings.Seed != 5 {
		t.Fatalf("expected flag seed 5, got %d", settings.Seed)
	}
	if settings.LogFormat != config.LogFormatJSON {
		t.Fatalf("expected json log format, got %q", settings.LogFormat)
	}
}

func TestLoadSettings_EnvironmentWhenFlagUnset(t *testing.T) {
	testutil.SetupTestDir(t)
	t.Setenv(config.EnvSeed, "9")
	prev := settings
	t.Cleanup(func() { settings = prev })

	cmd := &cobra.Command{}
	cmd.SetErr(&bytes.Buffer{})
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "")

	if err := loadSettings(cmd, nil); err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if settings.Seed != 9 {
		t.Fatalf("expected env seed 9, got %d", settings.Seed)
	}
}

func TestNewEngine_SeedIsReproducible(t *testing.T) {
	cfg := config.Config{Seed: 3}
	a := NewEngine(cfg, logger, testutil.FixedClock(testNow)).GenerateInitialTasks()
	b := NewEngine(cfg, logger, testutil.FixedClock(testNow)).GenerateInitialTasks()
	if a[0].ID != b[0].ID || a[0].Title != b[0].Title {
		t.Fatalf("expected identical first task, got %q and %q", a[0].Title, b[0].Title)
	}
}
