package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ebisu/internal/apollo"
)

// DetailsView shows the dossier for the selected person.
type DetailsView struct {
	vp     viewport.Model
	person *apollo.Person
	width  int
}

var _ PanelView = (*DetailsView)(nil)

// NewDetailsView creates the details panel.
func NewDetailsView() *DetailsView {
	return &DetailsView{vp: viewport.New(0, 0)}
}

// SetPerson replaces the shown dossier.
func (d *DetailsView) SetPerson(p apollo.Person) {
	d.person = &p
	d.refresh()
}

// SetSize implements PanelView.
func (d *DetailsView) SetSize(width, height int) {
	d.width = width
	d.vp.Width = width
	d.vp.Height = height
	d.refresh()
}

// Init implements View.
func (d *DetailsView) Init() tea.Cmd { return nil }

// Update implements View.
func (d *DetailsView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DetailsView) View() string {
	if d.person == nil {
		return Styles.Empty.Render("Select a person to see their dossier.")
	}
	return d.vp.View()
}

func (d *DetailsView) refresh() {
	if d.person == nil {
		return
	}
	p := d.person
	var b strings.Builder

	b.WriteString(Styles.Title.Render(p.Name) + "\n")
	field(&b, "Title", p.Title)
	field(&b, "Headline", p.Headline)
	field(&b, "Location", p.Location)
	field(&b, "Email", p.Email)
	field(&b, "Status", p.EmailStatus)
	field(&b, "LinkedIn", p.LinkedinURL)

	if org := p.Organization; org != nil {
		b.WriteString("\n" + Styles.Status.Render("Company") + "\n")
		field(&b, "Name", org.Name)
		field(&b, "Domain", org.Domain)
		field(&b, "Industry", org.Industry)
		if org.Employees > 0 {
			field(&b, "Employees", fmt.Sprintf("%d", org.Employees))
		}
		field(&b, "Revenue", org.Revenue)
	}

	if len(p.EmploymentHistory) > 0 {
		b.WriteString("\n" + Styles.Status.Render("History") + "\n")
		for _, job := range p.EmploymentHistory {
			line := fmt.Sprintf("  %s — %s (%s to %s)",
				job.Title, job.OrganizationName, job.StartDate, job.EndDate)
			b.WriteString(wrap(line, d.width) + "\n")
		}
	}

	d.vp.SetContent(b.String())
	d.vp.GotoTop()
}

func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(Styles.Muted.Render(label+": ") + value + "\n")
}
