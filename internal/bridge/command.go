// Package bridge is the surface the external agent drives the workspace
// through. Natural-language intents arrive as untyped JSON action payloads;
// the bridge validates them into typed commands at the boundary and
// dispatches them with a plain switch.
package bridge

import (
	"fmt"

	"ebisu/internal/jsonutil"
	"ebisu/internal/layout"
)

// Op names an agent-invokable layout operation.
type Op string

const (
	OpAddPanel        Op = "addPanel"
	OpRemovePanel     Op = "removePanel"
	OpResizePanel     Op = "resizePanel"
	OpCheckVisibility Op = "checkPanelVisibility"
)

// Command is a validated layout action.
type Command struct {
	Op      Op
	Panel   layout.PanelID
	Side    layout.Side // addPanel only
	Percent float64     // resizePanel only, already clamped
}

// Result is returned to the calling agent, which relays Message to the end
// user. Visible is set for checkPanelVisibility only.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Visible *bool  `json:"visible,omitempty"`
}

// DecodeCommand validates a raw action payload:
//
//	{"action":"resizePanel","panelId":"people","percentage":60}
//
// Unknown actions and missing panel ids are decode errors. An unparseable
// position falls back to the default side, and percentages are clamped, so
// a sloppy model argument degrades instead of failing the action.
func DecodeCommand(payload []byte) (Command, error) {
	var m map[string]interface{}
	if err := jsonutil.UnmarshalWithContext(payload, &m, "decode action"); err != nil {
		return Command{}, err
	}

	op := Op(jsonutil.GetString(m, "action"))
	switch op {
	case OpAddPanel, OpRemovePanel, OpResizePanel, OpCheckVisibility:
	default:
		return Command{}, fmt.Errorf("unknown action %q", jsonutil.GetString(m, "action"))
	}

	id := jsonutil.GetString(m, "panelId")
	if id == "" {
		return Command{}, fmt.Errorf("action %s: missing panelId", op)
	}

	cmd := Command{Op: op, Panel: layout.PanelID(id)}
	switch op {
	case OpAddPanel:
		cmd.Side = layout.ParseSide(jsonutil.GetString(m, "position"))
	case OpResizePanel:
		pct, ok := jsonutil.GetNumber(m, "percentage")
		if !ok {
			return Command{}, fmt.Errorf("action %s: missing or non-numeric percentage", op)
		}
		cmd.Percent = layout.ClampRatio(pct)
	}
	return cmd, nil
}
