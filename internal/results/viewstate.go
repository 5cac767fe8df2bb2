// Copyright Inventory Capture Inc., 2026. All rights reserved.

package results

// Expansion tracks per-group expand/collapse state. Group keys default to
// collapsed; top-level category sections default to expanded. State is reset
// whenever a new search response is applied — it never carries across
// distinct queries.
type Expansion struct {
	open map[string]bool
}

// NewExpansion returns empty expansion state.
func NewExpansion() *Expansion {
	return &Expansion{open: make(map[string]bool)}
}

// IsOpen reports whether key is expanded, falling back to def when the user
// has not toggled it.
func (e *Expansion) IsOpen(key string, def bool) bool {
	if v, ok := e.open[key]; ok {
		return v
	}
	return def
}

// Toggle flips the state of key relative to its default.
func (e *Expansion) Toggle(key string, def bool) {
	e.open[key] = !e.IsOpen(key, def)
}

// Reset discards all toggles, restoring defaults.
func (e *Expansion) Reset() {
	e.open = make(map[string]bool)
}
