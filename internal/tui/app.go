package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/backlog/internal/analysis"
	"github.com/pablasso/backlog/internal/demo"
	"github.com/pablasso/backlog/internal/engine"
	"github.com/pablasso/backlog/internal/tui/components"
	"github.com/pablasso/backlog/internal/tui/styles"
)

const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15

	headerHeight = 3 // title, meter, blank line
	footerHeight = 4 // blank line, last event, status bar, help
)

// tickMsg drives autoplay. gen ties a tick to the autoplay session that
// scheduled it so toggling autoplay never leaves two tickers running.
type tickMsg struct {
	gen int
}

// Model is the Bubble Tea model for the backlog screen.
type Model struct {
	backlog *demo.Backlog
	config  demo.Config
	keys    keyMap
	help    help.Model

	cursor   int // index into the open tasks
	offset   int // first visible row
	autoplay bool
	gen      int
	steps    int
	event    string

	width  int
	height int
}

// New builds the model and its initial backlog.
func New(opts Options) Model {
	if opts.Engine == nil {
		opts.Engine = engine.New()
	}
	if opts.Config.Interval <= 0 {
		opts.Config, _ = demo.NewConfig(demo.PresetMedium, opts.Config.MaxSteps)
	}
	return Model{
		backlog:  demo.NewBacklog(opts.Engine),
		config:   opts.Config,
		keys:     defaultKeyMap(),
		help:     help.New(),
		autoplay: opts.Autoplay,
		event:    "Pick a task and press x to complete it.",
	}
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.autoplay {
		return m.tick()
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.config.Interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scroll()
		return m, nil

	case tickMsg:
		if !m.autoplay || msg.gen != m.gen {
			return m, nil
		}
		done, spawned, ok := m.backlog.Step()
		if !ok {
			m.autoplay = false
			m.event = "Nothing left to do."
			return m, nil
		}
		m.recordCompletion(done, spawned)
		if m.config.MaxSteps > 0 && m.steps >= m.config.MaxSteps {
			m.autoplay = false
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.backlog.Open())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Complete):
		open := m.backlog.Open()
		if m.cursor >= len(open) {
			return m, nil
		}
		done, spawned, err := m.backlog.Complete(open[m.cursor].ID)
		if err != nil {
			m.event = styles.ErrorStyle.Render(err.Error())
			return m, nil
		}
		m.recordCompletion(done, spawned)
	case key.Matches(msg, m.keys.New):
		t := m.backlog.Add("")
		m.event = fmt.Sprintf("Added %s", t.Title)
	case key.Matches(msg, m.keys.Autoplay):
		m.autoplay = !m.autoplay
		if m.autoplay {
			m.gen++
			m.scroll()
			return m, m.tick()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.scroll()
	return m, nil
}

func (m *Model) recordCompletion(done engine.Task, spawned []engine.Task) {
	m.steps++
	m.event = fmt.Sprintf("Completed %q, %d follow-up(s) added", done.Title, len(spawned))
	if n := len(m.backlog.Open()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	rows := m.listHeight()
	if rows <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if n := len(m.backlog.Open()); m.offset > max(n-rows, 0) {
		m.offset = max(n-rows, 0)
	}
}

func (m Model) listHeight() int {
	return m.height - headerHeight - footerHeight
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	open := m.backlog.Open()
	summary := analysis.Summarize(m.backlog.Tasks())

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("B A C K L O G"))
	b.WriteString("\n")
	b.WriteString(components.Completion{Done: summary.Completed, Total: summary.Total, Width: 20}.View())
	b.WriteString("\n\n")

	rows := m.listHeight()
	list := m.renderList(open, rows)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", components.Scrollbar(rows, len(open), m.offset)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().MaxWidth(m.width).Render(m.event))
	b.WriteString("\n")

	mode := "manual"
	if m.autoplay {
		mode = fmt.Sprintf("autoplay %s", m.config.Interval)
	}
	bar := components.StatusBar{
		Items: []string{
			fmt.Sprintf("%d open", summary.Open),
			fmt.Sprintf("%d done", summary.Completed),
			fmt.Sprintf("chain depth %d", summary.MaxDepth),
		},
		Right: mode,
	}
	b.WriteString(bar.Render(m.width))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderList(open []engine.Task, rows int) string {
	width := m.width - 2 // scrollbar and gap
	lines := make([]string, 0, rows)
	for i := m.offset; i < len(open) && len(lines) < rows; i++ {
		lines = append(lines, m.renderRow(open[i], i == m.cursor, width))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(t engine.Task, selected bool, width int) string {
	marker := "  "
	title := t.Title
	if selected {
		marker = styles.SelectedStyle.Render("> ")
		title = styles.SelectedStyle.Render(title)
	}
	row := fmt.Sprintf("%s%s %s %s %s",
		marker,
		styles.Category(t.Category).Render(fmt.Sprintf("%-11s", t.Category.Label())),
		styles.Priority(t.Priority).Render(fmt.Sprintf("%-8s", t.Priority)),
		styles.SubtleStyle.Render(t.DueDate.Format("Jan 02")),
		title,
	)
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

func (m Model) renderTerminalTooSmall() string {
	msg := fmt.Sprintf("Terminal too small\n\nMinimum: %dx%d\nCurrent: %dx%d",
		MinTerminalWidth, MinTerminalHeight, m.width, m.height)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styles.ErrorStyle.Render(msg))
}
