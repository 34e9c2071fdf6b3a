package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingMsg struct{}

func ping() tea.Msg { return pingMsg{} }

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyHandlerDirectBinding(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("tab", ping)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(key("tab"))
	require.True(t, consumed)
	require.NotNil(t, cmd)
	assert.Equal(t, pingMsg{}, cmd())
}

func TestKeyHandlerLeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+b x", ping)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(key("ctrl+b"))
	require.True(t, consumed)
	require.Nil(t, cmd)
	assert.True(t, h.LeaderWaiting)

	consumed, cmd = h.Handle(key("x"))
	require.True(t, consumed)
	require.NotNil(t, cmd)
	assert.False(t, h.LeaderWaiting)
	assert.Equal(t, pingMsg{}, cmd())
}

func TestKeyHandlerEscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+b x", ping)
	h := NewKeyHandler(reg)

	h.Handle(key("ctrl+b"))
	consumed, cmd := h.Handle(key("esc"))
	require.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)

	// x on its own is not bound
	consumed, _ = h.Handle(key("x"))
	assert.False(t, consumed)
}

func TestKeyHandlerUnknownSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+b x", ping)
	h := NewKeyHandler(reg)

	h.Handle(key("ctrl+b"))
	consumed, cmd := h.Handle(key("z"))
	require.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandlerUnboundKeyPassesThrough(t *testing.T) {
	h := NewKeyHandler(NewKeybindRegistry())
	consumed, cmd := h.Handle(key("a"))
	assert.False(t, consumed)
	assert.Nil(t, cmd)
}

func TestLeaderHintsSorted(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+b x", ping, "close panel")
	reg.BindWithDesc("ctrl+b c", ping, "chat")
	reg.BindWithDesc("ctrl+b p", ping, "people")

	hints := reg.LeaderHints("ctrl+b")
	require.Len(t, hints, 3)
	assert.Equal(t, "c chat", hints[0])
	assert.Equal(t, "p people", hints[1])
	assert.Equal(t, "x close panel", hints[2])
}

func TestHasPrefix(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+b x", ping)

	assert.True(t, reg.HasPrefix("ctrl+b"))
	assert.False(t, reg.HasPrefix("ctrl+b x"))
	assert.False(t, reg.HasPrefix("ctrl+a"))
}
