package ui

import (
	"ebisu/internal/layout"
	"ebisu/internal/panel"
)

// Panel ids known to the workspace. The layout tree can reference any
// string id; these are the ones with registered renderers.
const (
	PanelChat      layout.PanelID = "chat"
	PanelPeople    layout.PanelID = "people"
	PanelDetails   layout.PanelID = "details"
	PanelLogs      layout.PanelID = "logs"
	PanelCompanies layout.PanelID = "companies"
	PanelJobs      layout.PanelID = "jobs"
)

// DefaultRegistry registers every built-in panel. companies and jobs start
// unplaced; the agent (or a keybind) can bring them in.
func DefaultRegistry() *panel.Registry {
	r := panel.NewRegistry()
	r.Register(
		panel.Config{ID: PanelChat, Title: "Chat", Icon: "💬", Focusable: true, MinWidth: 24, MinHeight: 5},
		panel.Config{ID: PanelPeople, Title: "People", Icon: "👥", Closable: true, Focusable: true, MinWidth: 30, MinHeight: 5},
		panel.Config{ID: PanelDetails, Title: "Details", Icon: "📋", Closable: true, Focusable: true, MinWidth: 24, MinHeight: 5},
		panel.Config{ID: PanelLogs, Title: "Intelligence", Icon: "📡", Closable: true, Focusable: true, MinWidth: 24, MinHeight: 4},
		panel.Config{ID: PanelCompanies, Title: "Companies", Icon: "🏢", Closable: true, Focusable: true, MinWidth: 30, MinHeight: 5},
		panel.Config{ID: PanelJobs, Title: "Job Postings", Icon: "🧲", Closable: true, Focusable: true, MinWidth: 30, MinHeight: 5},
	)
	return r
}

// DefaultArrangement is the session's starting layout: two columns of two
// panels each, split 50/50. Not persisted; every session starts here.
func DefaultArrangement() layout.Node {
	return &layout.Split{
		Dir: layout.Row,
		First: &layout.Split{
			Dir:    layout.Column,
			First:  layout.Leaf{Panel: PanelChat},
			Second: layout.Leaf{Panel: PanelLogs},
			Ratio:  50,
		},
		Second: &layout.Split{
			Dir:    layout.Column,
			First:  layout.Leaf{Panel: PanelPeople},
			Second: layout.Leaf{Panel: PanelDetails},
			Ratio:  50,
		},
		Ratio: 50,
	}
}
