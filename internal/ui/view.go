package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// PanelView is a View that renders inside a layout rectangle. SetSize is
// called with the content area (inside the panel border) whenever the
// layout or the terminal size changes.
type PanelView interface {
	View
	SetSize(width, height int)
}
