// Package layout implements the tiling workspace model: a binary tree of
// panel identifiers with pure, copy-on-write tree operations and a stateful
// Controller façade on top.
//
// Core abstractions:
//   - Node: either a Leaf (one panel) or a Split (direction + two children)
//   - Branch/Path: the first/second steps that locate a node from the root
//   - Controller: owns the current tree and exposes the mutation/query API
//
// All tree functions return new nodes and never mutate their input, so a
// previous root stays valid after any operation.
package layout

// PanelID identifies a panel placed in the workspace. IDs are expected to be
// unique among currently placed panels; the tree functions do not enforce
// this themselves.
type PanelID string

// Direction is the orientation of a Split.
type Direction string

const (
	Row    Direction = "row"    // children side by side
	Column Direction = "column" // children stacked
)

// Branch selects one child of a Split.
type Branch string

const (
	BranchFirst  Branch = "first"
	BranchSecond Branch = "second"
)

// Path locates a node relative to the root. An empty path is the root itself.
type Path []Branch

// Node is a position in the layout tree: a Leaf or a *Split.
type Node interface {
	node()
}

// Leaf wraps exactly one placed panel.
type Leaf struct {
	Panel PanelID
}

func (Leaf) node() {}

// Split divides the available space between two children. Ratio is the
// percentage of space given to First, in (0, 100).
type Split struct {
	Dir    Direction
	First  Node
	Second Node
	Ratio  float64
}

func (*Split) node() {}

// ClampRatio limits a split percentage to [1, 100].
func ClampRatio(pct float64) float64 {
	if pct < 1 {
		return 1
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// FindPath returns the path from root to the leaf holding id. The search is
// depth-first, self then first then second, so with a well-formed tree the
// result is unique. Returns false when id is not placed.
func FindPath(root Node, id PanelID) (Path, bool) {
	switch n := root.(type) {
	case Leaf:
		if n.Panel == id {
			return Path{}, true
		}
	case *Split:
		if p, ok := FindPath(n.First, id); ok {
			return append(Path{BranchFirst}, p...), true
		}
		if p, ok := FindPath(n.Second, id); ok {
			return append(Path{BranchSecond}, p...), true
		}
	}
	return nil, false
}

// NodeAt resolves a path against root. Returns false if the path runs off
// the tree.
func NodeAt(root Node, path Path) (Node, bool) {
	cur := root
	for _, b := range path {
		s, ok := cur.(*Split)
		if !ok {
			return nil, false
		}
		if b == BranchFirst {
			cur = s.First
		} else {
			cur = s.Second
		}
	}
	return cur, true
}

// VisibleIDs collects the placed panel ids in pre-order (first before
// second), which is also the focus traversal order.
func VisibleIDs(root Node) []PanelID {
	var ids []PanelID
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case Leaf:
			ids = append(ids, n.Panel)
		case *Split:
			walk(n.First)
			walk(n.Second)
		}
	}
	walk(root)
	return ids
}

// Contains reports whether id is placed somewhere under root.
func Contains(root Node, id PanelID) bool {
	_, ok := FindPath(root, id)
	return ok
}

// Remove deletes the leaf holding id. Removing a Split's direct or indirect
// last descendant promotes the surviving sibling into the Split's place; the
// Split's ratio is discarded. Removing the root leaf returns nil — the
// caller decides what an empty workspace shows. An absent id is a no-op and
// returns root unchanged.
func Remove(root Node, id PanelID) Node {
	switch n := root.(type) {
	case Leaf:
		if n.Panel == id {
			return nil
		}
		return root
	case *Split:
		if Contains(n.First, id) {
			r := Remove(n.First, id)
			if r == nil {
				return n.Second
			}
			return &Split{Dir: n.Dir, First: r, Second: n.Second, Ratio: n.Ratio}
		}
		if Contains(n.Second, id) {
			r := Remove(n.Second, id)
			if r == nil {
				return n.First
			}
			return &Split{Dir: n.Dir, First: n.First, Second: r, Ratio: n.Ratio}
		}
	}
	return root
}

// SetRatio replaces the ratio of the Split directly above the leaf holding
// id. The percentage is clamped to [1, 100]. No-op when id is absent or is
// the root leaf (there is no parent Split to adjust).
func SetRatio(root Node, id PanelID, pct float64) Node {
	path, ok := FindPath(root, id)
	if !ok || len(path) == 0 {
		return root
	}
	return setRatioAt(root, path, ClampRatio(pct))
}

func setRatioAt(n Node, path Path, pct float64) Node {
	s := n.(*Split)
	if len(path) == 1 {
		return &Split{Dir: s.Dir, First: s.First, Second: s.Second, Ratio: pct}
	}
	if path[0] == BranchFirst {
		return &Split{Dir: s.Dir, First: setRatioAt(s.First, path[1:], pct), Second: s.Second, Ratio: s.Ratio}
	}
	return &Split{Dir: s.Dir, First: s.First, Second: setRatioAt(s.Second, path[1:], pct), Ratio: s.Ratio}
}
