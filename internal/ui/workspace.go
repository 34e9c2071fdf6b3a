package ui

import (
	"github.com/charmbracelet/lipgloss"

	"ebisu/internal/layout"
	"ebisu/internal/panel"
	"ebisu/internal/ui/textutil"
)

// frameCols and frameRows are the cells a panel frame consumes: left and
// right border, top and bottom border plus the title line.
const (
	frameCols = 2
	frameRows = 3
)

// Workspace renders the layout tree. Each leaf becomes a bordered cell
// with a title bar and the registered view's content; splits recurse with
// lipgloss joins.
type Workspace struct {
	views    map[layout.PanelID]PanelView
	registry *panel.Registry
	focus    *FocusManager
	width    int
	height   int
}

// NewWorkspace creates a workspace over the given views and registry.
func NewWorkspace(views map[layout.PanelID]PanelView, reg *panel.Registry, focus *FocusManager) *Workspace {
	return &Workspace{views: views, registry: reg, focus: focus}
}

// ViewFor returns the view rendered for a panel, creating a placeholder
// for ids with no registered view.
func (w *Workspace) ViewFor(id layout.PanelID) PanelView {
	if v, ok := w.views[id]; ok {
		return v
	}
	ph := NewPlaceholderView(id)
	w.views[id] = ph
	return ph
}

// SetSize records the workspace area and re-measures every visible panel.
func (w *Workspace) SetSize(root layout.Node, width, height int) {
	w.width = width
	w.height = height
	w.Measure(root)
}

// Measure pushes each panel's content size into its view. Call after any
// layout change; views that size lists and viewports depend on it.
func (w *Workspace) Measure(root layout.Node) {
	if root == nil || w.width <= 0 || w.height <= 0 {
		return
	}
	for id, r := range layout.Rects(root, w.width, w.height) {
		cw := max(r.W-frameCols, 1)
		ch := max(r.H-frameRows, 1)
		w.ViewFor(id).SetSize(cw, ch)
	}
}

// Render draws the whole tree at the workspace size.
func (w *Workspace) Render(root layout.Node) string {
	if root == nil || w.width <= 0 || w.height <= 0 {
		return ""
	}
	return w.renderNode(root, w.width, w.height)
}

func (w *Workspace) renderNode(n layout.Node, width, height int) string {
	switch n := n.(type) {
	case layout.Leaf:
		return w.renderPanel(n.Panel, width, height)
	case *layout.Split:
		if n.Dir == layout.Row {
			fw, sw := layout.SplitCells(width, n.Ratio)
			return lipgloss.JoinHorizontal(lipgloss.Top,
				w.renderNode(n.First, fw, height),
				w.renderNode(n.Second, sw, height))
		}
		fh, sh := layout.SplitCells(height, n.Ratio)
		return lipgloss.JoinVertical(lipgloss.Left,
			w.renderNode(n.First, width, fh),
			w.renderNode(n.Second, width, sh))
	}
	return ""
}

func (w *Workspace) renderPanel(id layout.PanelID, width, height int) string {
	focused := w.focus != nil && w.focus.Current == id

	border := Styles.Border
	title := Styles.Title
	if focused {
		border = Styles.BorderFocused
		title = Styles.TitleFocused
	}

	cw := max(width-frameCols, 1)
	ch := max(height-frameRows, 1)

	bar := w.titleBar(id, cw, title)
	body := lipgloss.NewStyle().Width(cw).Height(ch).MaxWidth(cw).MaxHeight(ch).
		Render(w.ViewFor(id).View())

	return border.Width(cw).Render(bar + "\n" + body)
}

func (w *Workspace) titleBar(id layout.PanelID, width int, style lipgloss.Style) string {
	label := string(id)
	if cfg, ok := w.registry.Get(id); ok {
		label = cfg.Title
		if cfg.Icon != "" {
			label = cfg.Icon + " " + label
		}
	}
	return style.Render(textutil.Truncate(label, width))
}
