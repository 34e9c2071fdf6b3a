package layout

import "math"

// Rect is a panel's position and size in terminal cells, relative to the
// workspace origin. Used for rendering and for hit-testing mouse events.
type Rect struct {
	X, Y, W, H int
}

// Rects computes the on-screen rectangle of every visible panel for a
// workspace of the given size. A Row split divides width by its ratio, a
// Column split divides height. Each side of a split keeps at least one cell
// as long as the parent has cells to give, so deeply nested panels stay
// addressable even in tiny terminals.
func Rects(root Node, width, height int) map[PanelID]Rect {
	out := make(map[PanelID]Rect)
	if width <= 0 || height <= 0 {
		return out
	}
	assign(out, root, Rect{X: 0, Y: 0, W: width, H: height})
	return out
}

func assign(out map[PanelID]Rect, n Node, r Rect) {
	switch n := n.(type) {
	case Leaf:
		out[n.Panel] = r
	case *Split:
		if n.Dir == Row {
			fw := share(r.W, n.Ratio)
			assign(out, n.First, Rect{X: r.X, Y: r.Y, W: fw, H: r.H})
			assign(out, n.Second, Rect{X: r.X + fw, Y: r.Y, W: r.W - fw, H: r.H})
			return
		}
		fh := share(r.H, n.Ratio)
		assign(out, n.First, Rect{X: r.X, Y: r.Y, W: r.W, H: fh})
		assign(out, n.Second, Rect{X: r.X, Y: r.Y + fh, W: r.W, H: r.H - fh})
	}
}

// SplitCells divides total cells between a split's children by its ratio.
// Both sides keep at least one cell when total allows it.
func SplitCells(total int, ratio float64) (first, second int) {
	f := share(total, ratio)
	return f, total - f
}

// share splits total cells by a percentage, keeping both sides non-empty
// when total allows it.
func share(total int, ratio float64) int {
	first := int(math.Round(float64(total) * ratio / 100))
	if total >= 2 {
		if first < 1 {
			first = 1
		}
		if first > total-1 {
			first = total - 1
		}
	}
	if first < 0 {
		first = 0
	}
	if first > total {
		first = total
	}
	return first
}
