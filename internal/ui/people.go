package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ebisu/internal/apollo"
)

// personItem implements list.Item for a people-search hit.
type personItem struct {
	apollo.Person
}

func (p personItem) FilterValue() string { return p.Name }

func (p personItem) Title() string {
	line := p.Name
	if p.Person.Title != "" {
		line += "  " + p.Person.Title
	}
	if p.Organization != nil && p.Organization.Name != "" {
		line += " @ " + p.Organization.Name
	}
	return line
}

func (p personItem) Description() string {
	desc := p.Location
	if p.Email != "" {
		if desc != "" {
			desc += "  "
		}
		desc += p.Email
	}
	return desc
}

// PeopleView lists people-search results; enter opens the selected person
// in the details panel.
type PeopleView struct {
	list   list.Model
	people []apollo.Person
}

var _ PanelView = (*PeopleView)(nil)

// NewPeopleView creates the people panel.
func NewPeopleView() *PeopleView {
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

	return &PeopleView{list: l}
}

// SetPeople replaces the listed results.
func (p *PeopleView) SetPeople(people []apollo.Person) {
	p.people = people
	items := make([]list.Item, len(people))
	for i, person := range people {
		items[i] = personItem{person}
	}
	p.list.SetItems(items)
	p.list.Title = fmt.Sprintf("%d people", len(people))
	p.list.ResetSelected()
}

// Selected returns the currently highlighted person.
func (p *PeopleView) Selected() (apollo.Person, bool) {
	idx := p.list.Index()
	if idx < 0 || idx >= len(p.people) {
		return apollo.Person{}, false
	}
	return p.people[idx], true
}

// SetSize implements PanelView.
func (p *PeopleView) SetSize(width, height int) {
	p.list.SetSize(width, height)
}

// Init implements View.
func (p *PeopleView) Init() tea.Cmd { return nil }

// Update implements View.
func (p *PeopleView) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if person, ok := p.Selected(); ok {
			return p, func() tea.Msg { return PersonSelectedMsg{Person: person} }
		}
		return p, nil
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View implements View.
func (p *PeopleView) View() string {
	if len(p.people) == 0 {
		return Styles.Empty.Render("Ask the agent to search for people.")
	}
	return p.list.View()
}
