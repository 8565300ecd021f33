package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilewalk/internal/world"
)

// LayerStyle is a paintable cell type with its display colour.
type LayerStyle struct {
	Name  string
	Flag  world.Cell
	Color tcell.Color
}

// LayerRegistry holds the paintable cell types in brush order, water first.
type LayerRegistry struct {
	styles []LayerStyle
	byFlag map[world.Cell]int
}

// NewLayerRegistry creates a registry from a validated world definition.
// Layers with unparsable flags or colours are skipped.
func NewLayerRegistry(cfg *WorldConfig) *LayerRegistry {
	r := &LayerRegistry{byFlag: make(map[world.Cell]int)}
	r.add(LayerStyle{Name: "water", Flag: world.Water, Color: cfg.WaterColor()})
	for _, l := range cfg.Layers {
		flag, err := world.ParseCell(l.Flag)
		if err != nil {
			continue
		}
		color, err := ParseColor(l.Color)
		if err != nil {
			continue
		}
		r.add(LayerStyle{Name: l.Name, Flag: flag, Color: color})
	}
	return r
}

func (r *LayerRegistry) add(s LayerStyle) {
	if _, ok := r.byFlag[s.Flag]; ok {
		return
	}
	r.byFlag[s.Flag] = len(r.styles)
	r.styles = append(r.styles, s)
}

// GetByFlag returns the style for the given flag, or nil if not found.
func (r *LayerRegistry) GetByFlag(flag world.Cell) *LayerStyle {
	i, ok := r.byFlag[flag]
	if !ok {
		return nil
	}
	return &r.styles[i]
}

// GetByName returns the style with the given name, or nil if not found.
func (r *LayerRegistry) GetByName(name string) *LayerStyle {
	for i := range r.styles {
		if r.styles[i].Name == name {
			return &r.styles[i]
		}
	}
	return nil
}

// Next returns the flag after flag in brush order, wrapping around.
// Unknown flags return the first entry.
func (r *LayerRegistry) Next(flag world.Cell) world.Cell {
	if len(r.styles) == 0 {
		return world.Water
	}
	i, ok := r.byFlag[flag]
	if !ok {
		return r.styles[0].Flag
	}
	return r.styles[(i+1)%len(r.styles)].Flag
}

// All returns all styles in brush order.
func (r *LayerRegistry) All() []LayerStyle {
	return r.styles
}

// Count returns the number of styles in the registry.
func (r *LayerRegistry) Count() int {
	return len(r.styles)
}
