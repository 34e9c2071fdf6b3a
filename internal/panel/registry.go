// Package panel maps panel identifiers to renderable-panel metadata. The
// layout tree stores ids only; everything a renderer needs to draw a panel
// chrome lives here.
package panel

import (
	"sort"

	"ebisu/internal/layout"
)

// Config describes one registrable panel. Size hints are in terminal cells;
// zero means no constraint.
type Config struct {
	ID        layout.PanelID
	Title     string
	Icon      string
	Closable  bool
	Focusable bool
	MinWidth  int
	MinHeight int
}

// Registry holds panel configurations keyed by id. It only feeds rendering
// lookups; registering or unregistering a panel never touches the layout
// tree, so a placed-but-unregistered id simply renders as a placeholder.
type Registry struct {
	configs map[layout.PanelID]Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[layout.PanelID]Config)}
}

// Register merges the given configs into the registry, overwriting any
// existing entry with the same id.
func (r *Registry) Register(cfgs ...Config) {
	for _, c := range cfgs {
		r.configs[c.ID] = c
	}
}

// Unregister removes the entry for id if present.
func (r *Registry) Unregister(id layout.PanelID) {
	delete(r.configs, id)
}

// Get returns the config for id.
func (r *Registry) Get(id layout.PanelID) (Config, bool) {
	c, ok := r.configs[id]
	return c, ok
}

// IDs returns all registered ids in sorted order.
func (r *Registry) IDs() []layout.PanelID {
	ids := make([]layout.PanelID, 0, len(r.configs))
	for id := range r.configs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
