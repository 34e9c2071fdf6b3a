package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ebisu/internal/layout"
)

// PlaceholderView stands in for a panel id that was placed in the layout
// but has no registered view. The layout keeps working; the cell just
// says what is missing.
type PlaceholderView struct {
	id layout.PanelID
}

var _ PanelView = (*PlaceholderView)(nil)

// NewPlaceholderView creates a placeholder for id.
func NewPlaceholderView(id layout.PanelID) *PlaceholderView {
	return &PlaceholderView{id: id}
}

// SetSize implements PanelView.
func (p *PlaceholderView) SetSize(width, height int) {}

// Init implements View.
func (p *PlaceholderView) Init() tea.Cmd { return nil }

// Update implements View.
func (p *PlaceholderView) Update(msg tea.Msg) (View, tea.Cmd) { return p, nil }

// View implements View.
func (p *PlaceholderView) View() string {
	return Styles.Empty.Render(fmt.Sprintf("No view registered for panel %q.", p.id))
}
