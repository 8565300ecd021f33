package autotile

import (
	"github.com/samdwyer/tilewalk/internal/world"
)

// Command is one tile to draw: a tileset region for one layer at one world position.
type Command struct {
	Layer string
	Flag  world.Cell
	Row   int   // Block anchor row (top-left cell)
	Col   int   // Block anchor column
	Index uint8 // Corner occupancy, 0-15

	WorldX, WorldY        float64
	U, V                  int
	TileWidth, TileHeight int
}

// CornerIndex computes the marching-squares index of a 2x2 block for one layer:
// bit 0 top-left, bit 1 top-right, bit 2 bottom-left, bit 3 bottom-right.
func CornerIndex(tl, tr, bl, br, layer world.Cell) uint8 {
	var idx uint8
	if tl&layer != 0 {
		idx |= 1
	}
	if tr&layer != 0 {
		idx |= 2
	}
	if bl&layer != 0 {
		idx |= 4
	}
	if br&layer != 0 {
		idx |= 8
	}
	return idx
}

// Retile computes the draw commands for the whole grid. Blocks are emitted in
// row-major order of their anchor cell and, within a block, in catalog layer order.
// The result depends only on the grid content and the catalog.
func Retile(g *world.Grid, cat *Catalog) []Command {
	if g.Rows() < 2 || g.Cols() < 2 {
		return nil
	}
	cmds := make([]Command, 0, (g.Rows()-1)*(g.Cols()-1)*len(cat.Layers))
	indexes := make([]uint8, len(cat.Layers))
	for i := 0; i < g.Rows()-1; i++ {
		for j := 0; j < g.Cols()-1; j++ {
			cmds = cat.appendBlock(cmds, indexes, i, j, blockCorners(g, i, j))
		}
	}
	return cmds
}

// corners holds the four cell values of a block: TL, TR, BL, BR.
type corners [4]world.Cell

func blockCorners(g *world.Grid, i, j int) corners {
	return corners{g.At(i, j), g.At(i, j+1), g.At(i+1, j), g.At(i+1, j+1)}
}

// appendBlock appends the commands for the block anchored at (i, j).
// indexes is scratch space with one slot per catalog layer.
func (c *Catalog) appendBlock(dst []Command, indexes []uint8, i, j int, k corners) []Command {
	for n, l := range c.Layers {
		indexes[n] = CornerIndex(k[0], k[1], k[2], k[3], l.Flag)
	}

	x := float64(j*world.CellSize) + c.AnchorOffset
	y := float64(i*world.CellSize) + c.AnchorOffset
	for n, l := range c.Layers {
		if c.occluded(l.Flag, indexes) {
			continue
		}
		uv := c.Lookup[indexes[n]]
		dst = append(dst, Command{
			Layer:      l.Name,
			Flag:       l.Flag,
			Row:        i,
			Col:        j,
			Index:      indexes[n],
			WorldX:     x,
			WorldY:     y,
			U:          uv[0],
			V:          uv[1],
			TileWidth:  TileSize,
			TileHeight: TileSize,
		})
	}
	return dst
}
