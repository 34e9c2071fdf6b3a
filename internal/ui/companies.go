package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ebisu/internal/apollo"
)

// orgItem implements list.Item for a company-search hit.
type orgItem struct {
	apollo.Organization
}

func (o orgItem) FilterValue() string { return o.Name }

func (o orgItem) Title() string {
	line := o.Name
	if o.Industry != "" {
		line += "  " + o.Industry
	}
	return line
}

func (o orgItem) Description() string {
	desc := o.Domain
	if o.Employees > 0 {
		if desc != "" {
			desc += "  "
		}
		desc += fmt.Sprintf("%d employees", o.Employees)
	}
	if o.Revenue != "" {
		if desc != "" {
			desc += "  "
		}
		desc += o.Revenue
	}
	return desc
}

// CompaniesView lists company-search results.
type CompaniesView struct {
	list list.Model
	orgs []apollo.Organization
}

var _ PanelView = (*CompaniesView)(nil)

// NewCompaniesView creates the companies panel.
func NewCompaniesView() *CompaniesView {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = Styles.Selected
	delegate.Styles.SelectedDesc = Styles.Selected
	delegate.Styles.NormalTitle = Styles.Normal
	delegate.Styles.NormalDesc = Styles.Muted

	l := list.New(nil, delegate, 0, 0)
	l.Title = "No results yet"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent))

	return &CompaniesView{list: l}
}

// SetOrganizations replaces the listed results.
func (c *CompaniesView) SetOrganizations(orgs []apollo.Organization) {
	c.orgs = orgs
	items := make([]list.Item, len(orgs))
	for i, org := range orgs {
		items[i] = orgItem{org}
	}
	c.list.SetItems(items)
	c.list.Title = fmt.Sprintf("%d companies", len(orgs))
	c.list.ResetSelected()
}

// Selected returns the currently highlighted company.
func (c *CompaniesView) Selected() (apollo.Organization, bool) {
	idx := c.list.Index()
	if idx < 0 || idx >= len(c.orgs) {
		return apollo.Organization{}, false
	}
	return c.orgs[idx], true
}

// SetSize implements PanelView.
func (c *CompaniesView) SetSize(width, height int) {
	c.list.SetSize(width, height)
}

// Init implements View.
func (c *CompaniesView) Init() tea.Cmd { return nil }

// Update implements View.
func (c *CompaniesView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	c.list, cmd = c.list.Update(msg)
	return c, cmd
}

// View implements View.
func (c *CompaniesView) View() string {
	if len(c.orgs) == 0 {
		return Styles.Empty.Render("Ask the agent to search for companies.")
	}
	return c.list.View()
}
