package layout

// Side is where AddPanel places a new panel relative to the whole current
// layout.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// DefaultSide is used when an untrusted position string doesn't parse.
const DefaultSide = SideRight

// ParseSide maps a free-form position string to a Side, falling back to
// DefaultSide. The agent bridge feeds model-generated strings through here.
func ParseSide(s string) Side {
	switch Side(s) {
	case SideLeft, SideRight, SideTop, SideBottom:
		return Side(s)
	}
	return DefaultSide
}

// addShare is the percentage of space a newly added panel receives.
const addShare = 30

// Controller owns the current layout tree for one application session and
// is the only writer to it. It is not safe for concurrent use: UI key
// handling and agent-bridge commands must both reach it through the same
// event loop.
type Controller struct {
	root         Node
	defaultPanel PanelID
	version      uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaultPanel sets the panel shown when the last panel is removed.
func WithDefaultPanel(id PanelID) Option {
	return func(c *Controller) { c.defaultPanel = id }
}

// New creates a Controller over an initial arrangement. initial must be
// non-nil.
func New(initial Node, opts ...Option) *Controller {
	c := &Controller{root: initial, defaultPanel: PanelID("chat")}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Root returns the current tree. Callers must treat it as read-only.
func (c *Controller) Root() Node { return c.root }

// Version increments on every mutating operation that changed the tree.
// The UI compares versions to decide when to rebuild panel geometry.
func (c *Controller) Version() uint64 { return c.version }

// DefaultPanel returns the configured remove-everything fallback panel.
func (c *Controller) DefaultPanel() PanelID { return c.defaultPanel }

// AddPanel places id at the given side of the entire current layout. The
// new panel gets a 30% share; the previous arrangement keeps the rest. A
// panel that is already placed is moved, not duplicated: the existing leaf
// is removed before the insert, so an id never appears at two leaves.
func (c *Controller) AddPanel(id PanelID, side Side) {
	prev := Remove(c.root, id)
	if prev == nil {
		// id was the only panel; "moving" it makes it the whole layout.
		c.setRoot(Leaf{Panel: id})
		return
	}

	dir := Column
	if side == SideLeft || side == SideRight {
		dir = Row
	}
	leaf := Leaf{Panel: id}
	if side == SideLeft || side == SideTop {
		c.setRoot(&Split{Dir: dir, First: leaf, Second: prev, Ratio: addShare})
		return
	}
	c.setRoot(&Split{Dir: dir, First: prev, Second: leaf, Ratio: 100 - addShare})
}

// RemovePanel closes id. Closing the last panel never empties the
// workspace: the configured default panel takes its place. Unknown ids are
// a no-op.
func (c *Controller) RemovePanel(id PanelID) {
	next := Remove(c.root, id)
	if next == nil {
		next = Leaf{Panel: c.defaultPanel}
	}
	c.setRoot(next)
}

// ResizePanel replaces the ratio on the split directly above id with the
// given percentage, clamped to [1, 100]. Unknown ids and the root leaf are
// no-ops.
func (c *Controller) ResizePanel(id PanelID, pct float64) {
	next := SetRatio(c.root, id, ClampRatio(pct))
	if next != c.root {
		c.setRoot(next)
	}
}

// VisiblePanels returns the placed panel ids in pre-order.
func (c *Controller) VisiblePanels() []PanelID {
	return VisibleIDs(c.root)
}

// IsVisible reports whether id is currently placed.
func (c *Controller) IsVisible(id PanelID) bool {
	return Contains(c.root, id)
}

func (c *Controller) setRoot(n Node) {
	c.root = n
	c.version++
}
