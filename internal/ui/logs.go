package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ebisu/internal/agent"
)

// LogsView shows the running feed of agent events.
type LogsView struct {
	vp      viewport.Model
	spin    spinner.Model
	events  []agent.Event
	status  string
	busy    bool
	width   int
	height  int
	maxKept int
}

var _ PanelView = (*LogsView)(nil)

// NewLogsView creates the logs panel.
func NewLogsView() *LogsView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Progress
	return &LogsView{
		vp:      viewport.New(0, 0),
		spin:    sp,
		status:  "idle",
		maxKept: 500,
	}
}

// Append records an event at the end of the feed.
func (l *LogsView) Append(ev agent.Event) {
	l.events = append(l.events, ev)
	if len(l.events) > l.maxKept {
		l.events = l.events[len(l.events)-l.maxKept:]
	}
	l.refresh()
}

// SetStatus updates the status line under the feed.
func (l *LogsView) SetStatus(status string) {
	l.status = status
}

// SetBusy toggles the spinner.
func (l *LogsView) SetBusy(busy bool) tea.Cmd {
	l.busy = busy
	if busy {
		return l.spin.Tick
	}
	return nil
}

// SetSize implements PanelView.
func (l *LogsView) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.vp.Width = width
	l.vp.Height = max(height-1, 1)
	l.refresh()
}

// Init implements View.
func (l *LogsView) Init() tea.Cmd { return nil }

// Update implements View.
func (l *LogsView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if _, ok := msg.(spinner.TickMsg); ok && l.busy {
		l.spin, cmd = l.spin.Update(msg)
		cmds = append(cmds, cmd)
	}
	l.vp, cmd = l.vp.Update(msg)
	cmds = append(cmds, cmd)
	return l, tea.Batch(cmds...)
}

// View implements View.
func (l *LogsView) View() string {
	statusLine := Styles.Status.Render(l.status)
	if l.busy {
		statusLine = l.spin.View() + " " + statusLine
	}
	if len(l.events) == 0 {
		return Styles.Empty.Render("No agent activity yet.") + "\n" + statusLine
	}
	return l.vp.View() + "\n" + statusLine
}

func (l *LogsView) refresh() {
	var b strings.Builder
	for _, ev := range l.events {
		line := ev.Timestamp.Format("15:04:05") + " " + ev.Message
		b.WriteString(styleFor(ev.Level).Render(wrap(line, l.width)) + "\n")
	}
	atBottom := l.vp.AtBottom()
	l.vp.SetContent(strings.TrimRight(b.String(), "\n"))
	if atBottom {
		l.vp.GotoBottom()
	}
}

func styleFor(level agent.Level) lipgloss.Style {
	switch level {
	case agent.LevelError:
		return Styles.Error
	case agent.LevelSuccess:
		return Styles.Success
	case agent.LevelProgress:
		return Styles.Progress
	default:
		return Styles.Normal
	}
}
