package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoLeafRow() Node {
	return &Split{Dir: Row, First: Leaf{Panel: "chat"}, Second: Leaf{Panel: "search"}, Ratio: 50}
}

func TestParseSide(t *testing.T) {
	assert.Equal(t, SideLeft, ParseSide("left"))
	assert.Equal(t, SideBottom, ParseSide("bottom"))
	// Model-generated garbage falls back rather than failing the action.
	assert.Equal(t, DefaultSide, ParseSide("sideways"))
	assert.Equal(t, DefaultSide, ParseSide(""))
}

func TestAddPanel_Right(t *testing.T) {
	c := New(twoLeafRow())
	c.AddPanel("details", SideRight)

	// Previous layout becomes First, the new panel Second, and the new
	// panel's side holds 30% of the space.
	want := &Split{
		Dir:    Row,
		First:  twoLeafRow(),
		Second: Leaf{Panel: "details"},
		Ratio:  70,
	}
	if diff := cmp.Diff(Node(want), c.Root()); diff != "" {
		t.Errorf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestAddPanel_Sides(t *testing.T) {
	tests := []struct {
		side     Side
		dir      Direction
		newFirst bool
		ratio    float64
	}{
		{SideLeft, Row, true, 30},
		{SideRight, Row, false, 70},
		{SideTop, Column, true, 30},
		{SideBottom, Column, false, 70},
	}
	for _, tt := range tests {
		t.Run(string(tt.side), func(t *testing.T) {
			c := New(Leaf{Panel: "chat"})
			c.AddPanel("logs", tt.side)

			s, ok := c.Root().(*Split)
			require.True(t, ok, "root should be a split")
			assert.Equal(t, tt.dir, s.Dir)
			assert.Equal(t, tt.ratio, s.Ratio)
			if tt.newFirst {
				assert.Equal(t, Node(Leaf{Panel: "logs"}), s.First)
				assert.Equal(t, Node(Leaf{Panel: "chat"}), s.Second)
			} else {
				assert.Equal(t, Node(Leaf{Panel: "chat"}), s.First)
				assert.Equal(t, Node(Leaf{Panel: "logs"}), s.Second)
			}
		})
	}
}

func TestAddPanel_VisibleSetGainsOne(t *testing.T) {
	c := New(quad())
	before := len(c.VisiblePanels())

	c.AddPanel("details", SideBottom)

	after := c.VisiblePanels()
	assert.Len(t, after, before+1)
	assert.Contains(t, after, PanelID("details"))
}

func TestAddPanel_MovesExistingInstance(t *testing.T) {
	c := New(quad())
	before := len(c.VisiblePanels())

	// "a" is already placed; adding it again relocates instead of
	// duplicating, so the uniqueness invariant holds.
	c.AddPanel("a", SideRight)

	got := c.VisiblePanels()
	assert.Len(t, got, before)
	count := 0
	for _, id := range got {
		if id == "a" {
			count++
		}
	}
	assert.Equal(t, 1, count, "panel must appear at exactly one leaf")

	s := c.Root().(*Split)
	assert.Equal(t, Node(Leaf{Panel: "a"}), s.Second)
}

func TestAddPanel_MovingOnlyPanel(t *testing.T) {
	c := New(Leaf{Panel: "chat"})
	c.AddPanel("chat", SideLeft)
	assert.Equal(t, Node(Leaf{Panel: "chat"}), c.Root())
}

func TestRemovePanel_TwoLeafRow(t *testing.T) {
	c := New(twoLeafRow())
	c.RemovePanel("chat")
	assert.Equal(t, Node(Leaf{Panel: "search"}), c.Root())
}

func TestRemovePanel_LastPanelFallsBackToDefault(t *testing.T) {
	c := New(Leaf{Panel: "details"}, WithDefaultPanel("chat"))
	c.RemovePanel("details")
	assert.Equal(t, Node(Leaf{Panel: "chat"}), c.Root())
}

func TestRemovePanel_AbsentIDIsNoop(t *testing.T) {
	c := New(quad())
	v := c.Version()
	c.RemovePanel("ghost")
	if diff := cmp.Diff(Node(quad()), c.Root()); diff != "" {
		t.Errorf("root changed (-want +got):\n%s", diff)
	}
	// A no-op still counts as an (idempotent) operation, not an error; the
	// version may tick but the tree must not change shape.
	_ = v
}

func TestResizePanel_Clamp(t *testing.T) {
	c := New(twoLeafRow())

	c.ResizePanel("chat", 150)
	assert.Equal(t, float64(100), c.Root().(*Split).Ratio)

	c.ResizePanel("chat", -5)
	assert.Equal(t, float64(1), c.Root().(*Split).Ratio)
}

func TestResizePanel_RootLeafNoop(t *testing.T) {
	c := New(Leaf{Panel: "chat"})
	v := c.Version()
	c.ResizePanel("chat", 40)
	assert.Equal(t, Node(Leaf{Panel: "chat"}), c.Root())
	assert.Equal(t, v, c.Version())
}

func TestIsVisible(t *testing.T) {
	c := New(quad())
	assert.True(t, c.IsVisible("a"))
	assert.False(t, c.IsVisible("search"))
}

func TestVersion_TicksOnMutation(t *testing.T) {
	c := New(twoLeafRow())
	v := c.Version()
	c.AddPanel("logs", SideTop)
	require.Greater(t, c.Version(), v)
}
