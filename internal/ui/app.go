package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"ebisu/internal/agent"
	"ebisu/internal/bridge"
	"ebisu/internal/layout"
	"ebisu/internal/panel"
)

// Messages produced by keybinds. Kept internal; the registry binds key
// sequences to commands that return these.
type (
	focusNextMsg   struct{}
	focusPrevMsg   struct{}
	closePanelMsg  struct{}
	addPanelMsg    struct{ id layout.PanelID }
	resizePanelMsg struct{ delta float64 }
)

func keyMsg(m tea.Msg) tea.Cmd {
	return func() tea.Msg { return m }
}

// AppModel is the root model. It owns the layout controller, the panel
// views, focus, keybinds, and the agent runner, and routes every message
// through a single Update so layout mutations never race.
type AppModel struct {
	controller *layout.Controller
	registry   *panel.Registry
	focus      *FocusManager
	keys       *KeyHandler
	workspace  *Workspace
	runner     agent.Runner
	log        *zap.Logger

	chat      *ChatView
	people    *PeopleView
	details   *DetailsView
	logs      *LogsView
	companies *CompaniesView
	jobs      *JobsView

	width  int
	height int
}

var _ View = (*AppModel)(nil)

// NewAppModel wires the full UI around a controller and an agent runner.
func NewAppModel(ctrl *layout.Controller, reg *panel.Registry, runner agent.Runner, log *zap.Logger) *AppModel {
	if log == nil {
		log = zap.NewNop()
	}

	app := &AppModel{
		controller: ctrl,
		registry:   reg,
		focus:      &FocusManager{},
		runner:     runner,
		log:        log,
		chat:       NewChatView(),
		people:     NewPeopleView(),
		details:    NewDetailsView(),
		logs:       NewLogsView(),
		companies:  NewCompaniesView(),
		jobs:       NewJobsView(),
	}

	views := map[layout.PanelID]PanelView{
		PanelChat:      app.chat,
		PanelPeople:    app.people,
		PanelDetails:   app.details,
		PanelLogs:      app.logs,
		PanelCompanies: app.companies,
		PanelJobs:      app.jobs,
	}
	app.workspace = NewWorkspace(views, reg, app.focus)
	app.focus.SetOrder(ctrl.VisiblePanels())
	app.keys = NewKeyHandler(app.defaultKeybinds())
	return app
}

func (a *AppModel) defaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()

	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("tab", keyMsg(focusNextMsg{}))
	reg.Bind("shift+tab", keyMsg(focusPrevMsg{}))

	reg.BindWithDesc("ctrl+b q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+b x", keyMsg(closePanelMsg{}), "close panel")
	reg.BindWithDesc("ctrl+b [", keyMsg(resizePanelMsg{delta: -10}), "shrink panel")
	reg.BindWithDesc("ctrl+b ]", keyMsg(resizePanelMsg{delta: 10}), "grow panel")

	reg.BindWithDesc("ctrl+b c", keyMsg(addPanelMsg{id: PanelChat}), "chat")
	reg.BindWithDesc("ctrl+b p", keyMsg(addPanelMsg{id: PanelPeople}), "people")
	reg.BindWithDesc("ctrl+b d", keyMsg(addPanelMsg{id: PanelDetails}), "details")
	reg.BindWithDesc("ctrl+b l", keyMsg(addPanelMsg{id: PanelLogs}), "intelligence")
	reg.BindWithDesc("ctrl+b o", keyMsg(addPanelMsg{id: PanelCompanies}), "companies")
	reg.BindWithDesc("ctrl+b j", keyMsg(addPanelMsg{id: PanelJobs}), "jobs")

	return reg
}

// Init implements View.
func (a *AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{a.chat.Init(), agent.Listen(a.runner)}
	return tea.Batch(cmds...)
}

// Update implements View.
func (a *AppModel) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.workspace.SetSize(a.controller.Root(), msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		if consumed, cmd := a.keys.Handle(msg); consumed {
			return a, cmd
		}
		return a.updateFocused(msg)

	case ActionMsg:
		return a, a.handleAction(msg)

	case focusNextMsg:
		a.focus.Next()
		return a, nil
	case focusPrevMsg:
		a.focus.Prev()
		return a, nil

	case closePanelMsg:
		id := a.focus.Current
		if cfg, ok := a.registry.Get(id); ok && !cfg.Closable {
			return a, nil
		}
		a.controller.RemovePanel(id)
		a.syncLayout()
		return a, nil

	case addPanelMsg:
		a.controller.AddPanel(msg.id, layout.SideRight)
		a.syncLayout()
		a.focus.SetFocus(msg.id)
		return a, nil

	case resizePanelMsg:
		a.resizeFocused(msg.delta)
		return a, nil

	case SubmitPromptMsg:
		a.chat.SetBusy(true)
		a.log.Info("prompt submitted", zap.String("prompt", msg.Prompt))
		return a, tea.Batch(a.logs.SetBusy(true), a.runner.Ask(context.Background(), msg.Prompt))

	case PersonSelectedMsg:
		a.details.SetPerson(msg.Person)
		a.showPanel(PanelDetails)
		return a, nil

	case spinner.TickMsg:
		// Spinner ticks belong to the logs panel whether or not it is
		// focused.
		next, cmd := a.logs.Update(msg)
		if lv, ok := next.(*LogsView); ok {
			a.logs = lv
		}
		return a, cmd

	case agent.EventMsg:
		a.logs.Append(agent.Event(msg))
		return a, agent.Listen(a.runner)
	case agent.StatusMsg:
		a.logs.SetStatus(string(msg))
		return a, agent.Listen(a.runner)
	case agent.PeopleMsg:
		a.people.SetPeople(msg)
		a.showPanel(PanelPeople)
		return a, agent.Listen(a.runner)
	case agent.OrganizationsMsg:
		a.companies.SetOrganizations(msg)
		a.showPanel(PanelCompanies)
		return a, agent.Listen(a.runner)
	case agent.JobsMsg:
		a.jobs.SetJobs(msg)
		a.showPanel(PanelJobs)
		return a, agent.Listen(a.runner)
	case agent.DoneMsg:
		a.chat.SetBusy(false)
		a.logs.SetBusy(false)
		if msg.Err != nil {
			a.chat.Append(false, "Something went wrong: "+msg.Err.Error())
		} else if msg.Count > 0 {
			a.chat.Append(false, fmt.Sprintf("Found %d results. Press tab to browse them.", msg.Count))
		} else {
			a.chat.Append(false, "Done. No results this time.")
		}
		return a, nil
	}

	return a.updateFocused(msg)
}

// handleAction applies one bridge command inside the event loop and
// unblocks the waiting HTTP handler.
func (a *AppModel) handleAction(msg ActionMsg) tea.Cmd {
	res := bridge.Dispatch(context.Background(), a.controller, msg.Command)
	a.syncLayout()
	a.log.Info("bridge action",
		zap.String("action", string(msg.Command.Op)),
		zap.String("panel", string(msg.Command.Panel)),
		zap.Bool("success", res.Success))
	if msg.Reply != nil {
		msg.Reply <- res
	}
	return nil
}

// updateFocused routes a message to the focused panel's view.
func (a *AppModel) updateFocused(msg tea.Msg) (View, tea.Cmd) {
	id := a.focus.Current
	if id == "" {
		return a, nil
	}
	v := a.workspace.ViewFor(id)
	next, cmd := v.Update(msg)
	if pv, ok := next.(PanelView); ok {
		a.workspace.views[id] = pv
	}
	return a, cmd
}

func (a *AppModel) resizeFocused(delta float64) {
	id := a.focus.Current
	if id == "" {
		return
	}
	path, ok := layout.FindPath(a.controller.Root(), id)
	if !ok || len(path) == 0 {
		return
	}
	node, ok := layout.NodeAt(a.controller.Root(), path[:len(path)-1])
	if !ok {
		return
	}
	split, ok := node.(*layout.Split)
	if !ok {
		return
	}
	// Ratio is the first branch's share; growing a second-branch panel
	// means shrinking the ratio.
	pct := split.Ratio + delta
	if path[len(path)-1] == layout.BranchSecond {
		pct = split.Ratio - delta
	}
	a.controller.ResizePanel(id, pct)
	a.syncLayout()
}

// showPanel makes a panel visible if it is not already, placing it on the
// right, and re-measures the tree.
func (a *AppModel) showPanel(id layout.PanelID) {
	if !a.controller.IsVisible(id) {
		a.controller.AddPanel(id, layout.SideRight)
	}
	a.syncLayout()
}

func (a *AppModel) syncLayout() {
	a.focus.SetOrder(a.controller.VisiblePanels())
	a.workspace.SetSize(a.controller.Root(), a.width, a.height-1)
}

// View implements View.
func (a *AppModel) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "loading…"
	}
	body := a.workspace.Render(a.controller.Root())
	return body + "\n" + a.statusLine()
}

func (a *AppModel) statusLine() string {
	if a.keys.LeaderWaiting {
		hints := a.keys.Registry.LeaderHints(a.keys.Buffer())
		return Styles.Hint.Render(a.keys.Buffer() + "  " + strings.Join(hints, "  "))
	}
	left := Styles.Hint.Render("tab focus  ctrl+b keybinds  ctrl+c quit")
	focused := string(a.focus.Current)
	if cfg, ok := a.registry.Get(a.focus.Current); ok {
		focused = cfg.Title
	}
	right := Styles.Status.Render(focused)
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// appModelAdapter bridges AppModel's View interface to tea.Model.
type appModelAdapter struct {
	app View
}

// NewProgramModel wraps the app model for tea.NewProgram.
func NewProgramModel(app *AppModel) tea.Model {
	return appModelAdapter{app: app}
}

func (m appModelAdapter) Init() tea.Cmd { return m.app.Init() }

func (m appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.app.Update(msg)
	return appModelAdapter{app: next}, cmd
}

func (m appModelAdapter) View() string { return m.app.View() }
