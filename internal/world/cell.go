// Package world provides the tile grid, cell types and world/cell coordinate math.
package world

import (
	"fmt"
	"strings"
)

// Cell is a bitmask of layer flags. The zero value is bare ground (Water).
// A cell can carry several layers at once; exclusive semantics is the case
// where only one bit is ever set.
type Cell uint8

const (
	// Water is the empty cell: no layer flags set.
	Water Cell = 0
	// Sand is the sand layer flag.
	Sand Cell = 1 << 0
	// Grass is the grass layer flag.
	Grass Cell = 1 << 1
)

// Has reports whether every bit of layer is set on the cell.
// Has(Water) is true only for an empty cell.
func (c Cell) Has(layer Cell) bool {
	if layer == Water {
		return c == Water
	}
	return c&layer == layer
}

// IsEmpty returns true if no layer flag is set.
func (c Cell) IsEmpty() bool {
	return c == Water
}

// String returns a human-readable name such as "sand" or "sand|grass".
func (c Cell) String() string {
	if c == Water {
		return "water"
	}
	var parts []string
	rest := c
	if c&Sand != 0 {
		parts = append(parts, "sand")
		rest &^= Sand
	}
	if c&Grass != 0 {
		parts = append(parts, "grass")
		rest &^= Grass
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseCell converts a cell type name (case-insensitive) to a Cell.
func ParseCell(name string) (Cell, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "water", "empty", "":
		return Water, nil
	case "sand":
		return Sand, nil
	case "grass":
		return Grass, nil
	default:
		return Water, fmt.Errorf("unknown cell type %q", name)
	}
}

// PaintMode selects how a painted type combines with the existing cell value.
type PaintMode int

const (
	// PaintOverlay ORs the painted layer into the cell; painting Water clears it.
	PaintOverlay PaintMode = iota
	// PaintReplace overwrites the cell with the painted value.
	PaintReplace
)

// String returns a human-readable mode name.
func (m PaintMode) String() string {
	switch m {
	case PaintOverlay:
		return "overlay"
	case PaintReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// ParsePaintMode converts "overlay" or "replace" to a PaintMode.
func ParsePaintMode(s string) (PaintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overlay", "":
		return PaintOverlay, nil
	case "replace":
		return PaintReplace, nil
	default:
		return PaintOverlay, fmt.Errorf("unknown paint mode %q", s)
	}
}

// Apply returns the value a cell holding c would have after painting insert.
func (m PaintMode) Apply(c, insert Cell) Cell {
	if m == PaintReplace {
		return insert
	}
	if insert == Water {
		return Water
	}
	return c | insert
}
