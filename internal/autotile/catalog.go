// Package autotile turns grid cells into tile-draw commands, one marching-squares
// tile per 2x2 block of cells and layer.
package autotile

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/samdwyer/tilewalk/internal/world"
)

var (
	// ErrInvalidLayer is returned for layers whose flag is zero, not a single bit, or duplicated.
	ErrInvalidLayer = errors.New("invalid layer")
	// ErrUnknownRuleLayer is returned when an occlusion rule names a layer not in the catalog.
	ErrUnknownRuleLayer = errors.New("occlusion rule references unknown layer")
)

// TileSize is the edge length of one tile image in the tileset, in pixels.
const TileSize = 64

// Lookup maps a 4-bit corner index to the (u, v) pixel offset of a tile in a tileset.
type Lookup [16][2]int

// DefaultLookup is the layout of the 4x4 transition tilesets.
var DefaultLookup = Lookup{
	{0, 192},   // 0: empty
	{192, 192}, // 1: TL
	{0, 128},   // 2: TR
	{64, 128},  // 3: TL TR
	{0, 0},     // 4: BL
	{192, 128}, // 5: TL BL
	{128, 192}, // 6: TR BL
	{192, 64},  // 7: TL TR BL
	{64, 192},  // 8: BR
	{0, 64},    // 9: TL BR
	{64, 0},    // 10: TR BR
	{128, 128}, // 11: TL TR BR
	{192, 0},   // 12: BL BR
	{128, 0},   // 13: TL BL BR
	{64, 64},   // 14: TR BL BR
	{128, 64},  // 15: full
}

// Layer is one independent cell flag with its own tileset.
type Layer struct {
	Name string
	Flag world.Cell
}

// OcclusionRule drops the Lower layer's tile at any block the Upper layer fully covers.
type OcclusionRule struct {
	Upper world.Cell
	Lower world.Cell
}

// Catalog describes the layers to tile, in draw order, and how they occlude each other.
type Catalog struct {
	Layers []Layer
	Rules  []OcclusionRule
	Lookup Lookup

	// AnchorOffset shifts every block's world position on both axes.
	// Tile art is centred on cell corners, hence the default of -CellSize/2.
	AnchorOffset float64
}

// NewCatalog validates and builds a catalog.
func NewCatalog(layers []Layer, rules []OcclusionRule, lookup Lookup, anchorOffset float64) (*Catalog, error) {
	seen := make(map[world.Cell]bool, len(layers))
	for _, l := range layers {
		if l.Flag == world.Water || bits.OnesCount8(uint8(l.Flag)) != 1 {
			return nil, fmt.Errorf("layer %q flag %#x: %w", l.Name, uint8(l.Flag), ErrInvalidLayer)
		}
		if seen[l.Flag] {
			return nil, fmt.Errorf("layer %q flag %#x duplicated: %w", l.Name, uint8(l.Flag), ErrInvalidLayer)
		}
		seen[l.Flag] = true
	}
	for _, r := range rules {
		if !seen[r.Upper] || !seen[r.Lower] {
			return nil, fmt.Errorf("rule %v over %v: %w", r.Upper, r.Lower, ErrUnknownRuleLayer)
		}
	}

	return &Catalog{
		Layers:       layers,
		Rules:        rules,
		Lookup:       lookup,
		AnchorOffset: anchorOffset,
	}, nil
}

// DefaultCatalog returns sand and grass, with grass hiding sand where it covers a block.
func DefaultCatalog() *Catalog {
	cat, err := NewCatalog(
		[]Layer{
			{Name: "sand", Flag: world.Sand},
			{Name: "grass", Flag: world.Grass},
		},
		[]OcclusionRule{{Upper: world.Grass, Lower: world.Sand}},
		DefaultLookup,
		-world.CellSize/2,
	)
	if err != nil {
		panic(err)
	}
	return cat
}

// occluded reports whether layer's tile is hidden at a block with the given per-layer indexes.
func (c *Catalog) occluded(layer world.Cell, indexes []uint8) bool {
	for _, r := range c.Rules {
		if r.Lower != layer {
			continue
		}
		for i, l := range c.Layers {
			if l.Flag == r.Upper && indexes[i] == 15 {
				return true
			}
		}
	}
	return false
}
