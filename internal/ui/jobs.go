package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ebisu/internal/apollo"
)

// jobItem implements list.Item for a job posting.
type jobItem struct {
	apollo.JobPosting
}

func (j jobItem) FilterValue() string { return j.JobPosting.Title }

func (j jobItem) Title() string { return j.JobPosting.Title }

func (j jobItem) Description() string {
	desc := j.Location
	if j.PostedDate != "" {
		if desc != "" {
			desc += "  "
		}
		desc += "posted " + j.PostedDate
	}
	return desc
}

// JobsView lists open job postings for a company.
type JobsView struct {
	list list.Model
	jobs []apollo.JobPosting
}

var _ PanelView = (*JobsView)(nil)

// NewJobsView creates the jobs panel.
func NewJobsView() *JobsView {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = Styles.Selected
	delegate.Styles.SelectedDesc = Styles.Selected
	delegate.Styles.NormalTitle = Styles.Normal
	delegate.Styles.NormalDesc = Styles.Muted

	l := list.New(nil, delegate, 0, 0)
	l.Title = "No postings yet"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent))

	return &JobsView{list: l}
}

// SetJobs replaces the listed postings.
func (j *JobsView) SetJobs(jobs []apollo.JobPosting) {
	j.jobs = jobs
	items := make([]list.Item, len(jobs))
	for i, job := range jobs {
		items[i] = jobItem{job}
	}
	j.list.SetItems(items)
	j.list.Title = fmt.Sprintf("%d job postings", len(jobs))
	j.list.ResetSelected()
}

// SetSize implements PanelView.
func (j *JobsView) SetSize(width, height int) {
	j.list.SetSize(width, height)
}

// Init implements View.
func (j *JobsView) Init() tea.Cmd { return nil }

// Update implements View.
func (j *JobsView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	j.list, cmd = j.list.Update(msg)
	return j, cmd
}

// View implements View.
func (j *JobsView) View() string {
	if len(j.jobs) == 0 {
		return Styles.Empty.Render("No job postings loaded.")
	}
	return j.list.View()
}
