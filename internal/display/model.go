package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/thermo/internal/feed"
	"github.com/rileyhilliard/thermo/internal/ui"
)

// DefaultStep is the percentage the up and down keys move the fill by.
const DefaultStep = 5.0

// Model is the Bubble Tea model for the watch display. All gauge mutation
// happens in Update.
type Model struct {
	scene   *Scene
	history *history
	help    help.Model
	title   string
	step    float64

	readings int
	feedDone bool
	feedErr  error
	ticking  bool
	quitting bool
}

// NewModel creates a display model around scene. A non-positive step uses
// DefaultStep.
func NewModel(scene *Scene, title string, step float64) Model {
	if step <= 0 {
		step = DefaultStep
	}
	return Model{
		scene:   scene,
		history: newHistory(DefaultHistorySize),
		help:    help.New(),
		title:   title,
		step:    step,
	}
}

// Init implements tea.Model. The display waits for the feed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case ReadingMsg:
		m.readings++
		m.scene.Apply(msg.Reading)
		m.history.push(m.scene.Level())
		cmd := m.animate()
		return m, cmd

	case FeedDoneMsg:
		m.feedDone = true
		m.feedErr = msg.Err

	case frameMsg:
		if m.scene.Step() {
			return m, m.frameCmd()
		}
		m.ticking = false
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Up):
		return m.fillTo(m.scene.Level() + m.step)

	case key.Matches(msg, keys.Down):
		return m.fillTo(m.scene.Level() - m.step)

	case key.Matches(msg, keys.Jump):
		digit := msg.String()[0] - '0'
		return m.fillTo(float64(digit) * 10)
	}
	return m, nil
}

// fillTo moves the gauge by hand. Manual moves go into the history like
// feed readings but do not count as readings.
func (m Model) fillTo(pct float64) (tea.Model, tea.Cmd) {
	m.scene.Apply(feed.Reading{Kind: feed.KindPercent, Value: pct})
	m.history.push(m.scene.Level())
	cmd := m.animate()
	return m, cmd
}

// animate starts the frame ticker unless it is already running.
func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.scene.Animating() {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.scene.Interval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// View renders the header, the gauge, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.RenderHeader(ui.HeaderInfo{
		Title: m.title,
		Width: max(m.scene.Columns(), 20),
	}))
	b.WriteString(gaugeStyle.Render(m.scene.Render()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	parts := []string{levelStyle.Render(fmt.Sprintf("%3.0f%%", m.scene.Level()))}
	if spark := ui.RenderSparkline(m.history.values(), DefaultHistorySize); spark != "" {
		parts = append(parts, spark)
	}
	parts = append(parts, statusStyle.Render(fmt.Sprintf("%d readings", m.readings)))

	switch {
	case m.feedErr != nil:
		parts = append(parts, errorStyle.Render(ui.SymbolFail+" feed: "+m.feedErr.Error()))
	case m.feedDone:
		parts = append(parts, doneStyle.Render(ui.SymbolSuccess+" feed closed"))
	default:
		parts = append(parts, statusStyle.Render(ui.SymbolPending+" waiting for input"))
	}
	return strings.Join(parts, "  ")
}
