package bridge

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"ebisu/internal/layout"
	"ebisu/internal/telemetry"
)

// LayoutService is what the bridge needs from the workspace; satisfied by
// *layout.Controller.
type LayoutService interface {
	AddPanel(id layout.PanelID, side layout.Side)
	RemovePanel(id layout.PanelID)
	ResizePanel(id layout.PanelID, pct float64)
	VisiblePanels() []layout.PanelID
	IsVisible(id layout.PanelID) bool
}

// Dispatch executes a validated command against the layout. Every command
// produces a Result; not-found conditions are reported in the message but
// are never failures, matching the best-effort layout semantics.
func Dispatch(ctx context.Context, svc LayoutService, cmd Command) Result {
	_, span := telemetry.Tracer().Start(ctx, "bridge.Dispatch",
		oteltrace.WithAttributes(
			attribute.String("action.op", string(cmd.Op)),
			attribute.String("action.panel", string(cmd.Panel)),
		))
	defer span.End()

	switch cmd.Op {
	case OpAddPanel:
		svc.AddPanel(cmd.Panel, cmd.Side)
		return Result{
			Success: true,
			Message: fmt.Sprintf("Panel %q added at the %s", cmd.Panel, cmd.Side),
		}

	case OpRemovePanel:
		if !svc.IsVisible(cmd.Panel) {
			return Result{
				Success: true,
				Message: fmt.Sprintf("Panel %q is not visible; nothing to remove", cmd.Panel),
			}
		}
		svc.RemovePanel(cmd.Panel)
		return Result{
			Success: true,
			Message: fmt.Sprintf("Panel %q removed", cmd.Panel),
		}

	case OpResizePanel:
		if !svc.IsVisible(cmd.Panel) {
			return Result{
				Success: true,
				Message: fmt.Sprintf("Panel %q is not visible; nothing to resize", cmd.Panel),
			}
		}
		svc.ResizePanel(cmd.Panel, cmd.Percent)
		return Result{
			Success: true,
			Message: fmt.Sprintf("Panel %q resized to %.0f%%", cmd.Panel, cmd.Percent),
		}

	case OpCheckVisibility:
		visible := svc.IsVisible(cmd.Panel)
		msg := fmt.Sprintf("Panel %q is not currently visible", cmd.Panel)
		if visible {
			msg = fmt.Sprintf("Panel %q is currently visible", cmd.Panel)
		}
		return Result{Success: true, Message: msg, Visible: &visible}
	}

	// DecodeCommand rejects unknown ops; this covers hand-built commands.
	return Result{Success: false, Message: fmt.Sprintf("unknown action %q", cmd.Op)}
}
