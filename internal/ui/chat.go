package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ebisu/internal/ui/textutil"
)

// chatLine is one transcript entry.
type chatLine struct {
	fromUser bool
	text     string
}

// ChatView is the conversation panel: a transcript viewport over a prompt
// input. Prompts are handed to the agent runner via SubmitPromptMsg.
type ChatView struct {
	input  textinput.Model
	vp     viewport.Model
	lines  []chatLine
	busy   bool
	width  int
	height int
}

var _ PanelView = (*ChatView)(nil)

// NewChatView creates the chat panel.
func NewChatView() *ChatView {
	in := textinput.New()
	in.Placeholder = "Ask for prospects, e.g. \"VP engineering at fintech startups\""
	in.Prompt = "> "
	in.Focus()

	return &ChatView{
		input: in,
		vp:    viewport.New(0, 0),
		lines: []chatLine{{text: "Ready to help you find prospects."}},
	}
}

// Append adds a transcript line and scrolls to the bottom.
func (c *ChatView) Append(fromUser bool, text string) {
	c.lines = append(c.lines, chatLine{fromUser: fromUser, text: text})
	c.refresh()
}

// SetBusy toggles the waiting-on-agent state; input is ignored while busy.
func (c *ChatView) SetBusy(busy bool) {
	c.busy = busy
}

// SetSize implements PanelView.
func (c *ChatView) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.input.Width = width - len(c.input.Prompt) - 1
	vpHeight := height - 1 // last row is the input
	if vpHeight < 1 {
		vpHeight = 1
	}
	c.vp.Width = width
	c.vp.Height = vpHeight
	c.refresh()
}

// Init implements View.
func (c *ChatView) Init() tea.Cmd { return textinput.Blink }

// Update implements View.
func (c *ChatView) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		prompt := strings.TrimSpace(c.input.Value())
		if prompt == "" || c.busy {
			return c, nil
		}
		c.input.Reset()
		c.Append(true, prompt)
		return c, func() tea.Msg { return SubmitPromptMsg{Prompt: prompt} }
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View implements View.
func (c *ChatView) View() string {
	input := c.input.View()
	if c.busy {
		input = Styles.Muted.Render("thinking…")
	}
	return c.vp.View() + "\n" + input
}

func (c *ChatView) refresh() {
	var b strings.Builder
	for i, l := range c.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		prefix := "ebisu"
		style := Styles.Status
		if l.fromUser {
			prefix = "you"
			style = Styles.Normal
		}
		b.WriteString(style.Render(prefix+": ") + wrap(l.text, c.width))
	}
	c.vp.SetContent(b.String())
	c.vp.GotoBottom()
}

// wrap breaks text into lines of at most width columns, breaking on spaces
// where possible.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	lineWidth := 0
	for i, w := range words {
		ww := textutil.Width(w)
		if lineWidth > 0 && lineWidth+1+ww > width {
			b.WriteString("\n")
			lineWidth = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineWidth++
		}
		b.WriteString(w)
		lineWidth += ww
	}
	return b.String()
}
