package autotile

import (
	"context"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilewalk/internal/telemetry"
	"github.com/samdwyer/tilewalk/internal/world"
)

// block is the cached output for one 2x2 block.
type block struct {
	key   corners
	valid bool
	cmds  []Command
}

// Stats describes the work done by the last Tiler.Commands call.
type Stats struct {
	Dirty      int // Blocks that were marked dirty
	Recomputed int // Dirty blocks whose corners actually changed
	Total      int // Blocks in the grid
}

// Tiler keeps per-block results between edits and only recomputes blocks
// touched by invalidated cells. Its output always equals Retile's for the
// same grid and catalog.
//
// A Tiler is not safe for concurrent use.
type Tiler struct {
	grid    *world.Grid
	catalog *Catalog

	rows, cols int // Block grid dimensions
	blocks     []block
	dirty      mapset.Set[int]
	cmds       []Command
	stale      bool
	stats      Stats
	indexes    []uint8
}

// NewTiler creates a tiler over g. Everything starts dirty.
func NewTiler(g *world.Grid, cat *Catalog) *Tiler {
	t := &Tiler{
		grid:    g,
		catalog: cat,
		rows:    max(g.Rows()-1, 0),
		cols:    max(g.Cols()-1, 0),
		indexes: make([]uint8, len(cat.Layers)),
	}
	t.blocks = make([]block, t.rows*t.cols)
	t.InvalidateAll()
	return t
}

// Invalidate marks the blocks that include cell (row, col) as a corner.
func (t *Tiler) Invalidate(row, col int) {
	for i := row - 1; i <= row; i++ {
		for j := col - 1; j <= col; j++ {
			if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
				continue
			}
			t.dirty.Put(i*t.cols + j)
		}
	}
	t.stale = true
}

// InvalidateAll marks every block dirty.
func (t *Tiler) InvalidateAll() {
	t.dirty = mapset.New[int]()
	for n := range t.blocks {
		t.dirty.Put(n)
	}
	t.stale = true
}

// Commands returns the draw commands for the current grid, recomputing dirty blocks.
// The returned slice is owned by the Tiler and valid until the next call.
func (t *Tiler) Commands(ctx context.Context) []Command {
	if !t.stale {
		return t.cmds
	}

	tracer := telemetry.Tracer("autotile")
	_, span := tracer.Start(ctx, "tiler.commands")
	defer span.End()

	stats := Stats{Dirty: t.dirty.Size(), Total: len(t.blocks)}
	t.dirty.Each(func(n int) {
		i, j := n/t.cols, n%t.cols
		k := blockCorners(t.grid, i, j)
		b := &t.blocks[n]
		if b.valid && b.key == k {
			return
		}
		b.cmds = t.catalog.appendBlock(b.cmds[:0], t.indexes, i, j, k)
		b.key = k
		b.valid = true
		stats.Recomputed++
	})
	t.dirty = mapset.New[int]()

	t.cmds = t.cmds[:0]
	for n := range t.blocks {
		t.cmds = append(t.cmds, t.blocks[n].cmds...)
	}
	t.stale = false
	t.stats = stats

	span.SetAttributes(
		attribute.Int("tiler.blocks_dirty", stats.Dirty),
		attribute.Int("tiler.blocks_recomputed", stats.Recomputed),
		attribute.Int("tiler.commands", len(t.cmds)),
	)
	return t.cmds
}

// Stats returns the counters from the last recomputation.
func (t *Tiler) Stats() Stats {
	return t.stats
}
