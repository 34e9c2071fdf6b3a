// Package ui renders the tiling workspace with Bubble Tea.
//
// Core abstractions:
//   - View: a UI region with its own model, update, and view (Elm-style)
//   - PanelView: a View that can be resized to a layout rectangle
//   - Workspace: renders the layout tree, one PanelView per leaf
//   - FocusManager: tracks and rotates focus across visible panels
//   - KeybindRegistry/KeyHandler: leader-key sequences (ctrl+b prefix)
//
// The AppModel owns the layout controller and is the single writer to it:
// keystrokes and agent-bridge commands both mutate the layout inside
// Update, on the Bubble Tea event loop.
package ui
