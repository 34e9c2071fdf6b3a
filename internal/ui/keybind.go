package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands. Sequences are
// space-separated tea key strings: "ctrl+b x" means ctrl+b then x. Single
// keys ("tab", "ctrl+c") bind directly.
//
// The leader is ctrl+b rather than a printable key because the chat panel
// owns ordinary typing.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key sequence to a command, overwriting any existing
// binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the hint
// line.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.bindings[seq] = cmd
	if desc != "" {
		r.descriptions[seq] = desc
	}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[seq]
}

// HasPrefix reports whether any binding continues past seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := seq + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns "key  description" pairs for the sequences reachable
// from the current leader buffer, sorted by key, for the hint line shown
// while the leader is waiting.
func (r *KeybindRegistry) LeaderHints(currentSeq string) []string {
	prefix := currentSeq + " "
	hints := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(seq, prefix))
		if len(rest) == 0 {
			continue
		}
		key := rest[0]
		if len(rest) > 1 {
			hints[key] = key + "…"
		} else if d := r.descriptions[seq]; d != "" {
			hints[key] = d
		} else {
			hints[key] = seq
		}
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+" "+hints[k])
	}
	return out
}

// KeyHandler manages leader-key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	Leader        string // tea key string, "ctrl+b"
	LeaderWaiting bool
	buffer        []string
}

// NewKeyHandler creates a handler with ctrl+b as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, Leader: "ctrl+b"}
}

// Buffer returns the pending sequence while the leader is waiting.
func (h *KeyHandler) Buffer() string {
	return strings.Join(h.buffer, " ")
}

// Handle processes a KeyMsg. Returns (consumed, cmd). When consumed is
// true the key must not be passed on to the focused panel.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" && h.LeaderWaiting {
		h.reset()
		return true, nil
	}

	if s == h.Leader {
		h.LeaderWaiting = true
		h.buffer = []string{h.Leader}
		return true, nil
	}

	if h.LeaderWaiting {
		h.buffer = append(h.buffer, s)
		seq := h.Buffer()
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(s); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.buffer = nil
}
