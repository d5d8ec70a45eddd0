package gridcss

import (
	"fmt"
	"strings"
)

// LayoutMode selects the rule-emission strategy for a grid.
type LayoutMode uint8

const (
	// LayoutFloat lays rows out with floated children and clearing rules.
	LayoutFloat LayoutMode = iota
	// LayoutFlexbox lays rows out with flex containers.
	LayoutFlexbox
)

// String returns the configuration name of the mode: "float" or "flexbox".
func (m LayoutMode) String() string {
	if m == LayoutFlexbox {
		return "flexbox"
	}
	return "float"
}

// ParseLayoutMode parses a configuration value into a LayoutMode.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float":
		return LayoutFloat, nil
	case "flexbox":
		return LayoutFlexbox, nil
	}
	return LayoutFloat, fmt.Errorf("unknown layout mode %q (want float or flexbox)", s)
}

// Configuration defaults applied when gutters and layout are left unset.
const (
	DefaultGutters = "20px"
	DefaultLayout  = "float"
)

// Options carries the ambient layout defaults consumed by the emitters.
// Callers resolve them once (configuration, per-grid overrides) before
// emission; the emitters never mutate them.
type Options struct {
	Gutter Dimension  // spacing between adjacent cells, non-negative
	Layout LayoutMode // emission strategy unless an operation dictates one
}

// DefaultOptions returns the package defaults: a 20px gutter and float
// layout.
func DefaultOptions() Options {
	return Options{Gutter: Length(20, "px"), Layout: LayoutFloat}
}
