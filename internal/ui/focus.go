package ui

import "ebisu/internal/layout"

// FocusManager tracks and rotates focus across the visible panels. Order
// follows the tree's pre-order traversal, so tab moves left-to-right,
// top-to-bottom through the workspace.
type FocusManager struct {
	Current layout.PanelID
	Order   []layout.PanelID
}

// SetOrder replaces the focus order after a layout change. If the focused
// panel is no longer visible, focus falls to the first panel.
func (f *FocusManager) SetOrder(order []layout.PanelID) {
	f.Order = order
	for _, id := range order {
		if id == f.Current {
			return
		}
	}
	if len(order) > 0 {
		f.Current = order[0]
	} else {
		f.Current = ""
	}
}

// Next advances focus to the next panel in order and returns it.
func (f *FocusManager) Next() layout.PanelID {
	return f.advance(1)
}

// Prev moves focus to the previous panel in order and returns it.
func (f *FocusManager) Prev() layout.PanelID {
	return f.advance(-1)
}

func (f *FocusManager) advance(step int) layout.PanelID {
	if len(f.Order) == 0 {
		return ""
	}
	idx := 0
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(f.Order)) % len(f.Order)
	f.Current = f.Order[idx]
	return f.Current
}

// SetFocus focuses the given panel. Returns true if the id is visible.
func (f *FocusManager) SetFocus(id layout.PanelID) bool {
	for _, o := range f.Order {
		if o == id {
			f.Current = id
			return true
		}
	}
	return false
}
