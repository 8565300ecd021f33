// Package collision resolves an axis-aligned box against the solid cells of a grid.
package collision

import (
	"math"

	"github.com/samdwyer/tilewalk/internal/world"
)

const cell = float64(world.CellSize)

// Result is the outcome of resolving a box position.
type Result struct {
	X, Y    float64
	Changed bool // True if any correction was applied
}

// Resolver corrects candidate box positions so they never overlap solid cells.
type Resolver struct {
	solid Solidity
}

// NewResolver creates a resolver using the given solidity rule.
// A nil rule falls back to DefaultSolidity.
func NewResolver(solid Solidity) *Resolver {
	if solid == nil {
		solid = DefaultSolidity()
	}
	return &Resolver{solid: solid}
}

// IsSolid reports whether the cell at (row, col) blocks movement.
func (r *Resolver) IsSolid(g *world.Grid, row, col int) bool {
	return r.solid.solidAt(g, row, col)
}

// Move resolves box displaced by (dx, dy).
func (r *Resolver) Move(g *world.Grid, box Box, dx, dy float64) Result {
	return r.Resolve(g, box, box.X+dx, box.Y+dy)
}

// Resolve returns the corrected position for box placed at (x, y).
//
// Only the cells under the box's bounding cell rectangle are examined, in
// row-major order, each against the position left by the previous one. The
// caller must apply only the final position.
func (r *Resolver) Resolve(g *world.Grid, box Box, x, y float64) Result {
	res := Result{X: x, Y: y}
	if g.Empty() {
		return res
	}

	w, h := box.Width, box.Height
	rows, cols := g.Rows(), g.Cols()

	minCol, minRow, maxCol, maxRow := cellSpan(x, y, w, h)
	if maxRow < 0 || maxCol < 0 || minCol >= cols || minRow >= rows {
		return res
	}

	// Keep the box inside the world as if it were walled in on every side.
	// A box that does not reach into the world is left where it is.
	worldW, worldH := world.WorldSize(rows, cols)
	if x+w <= 0 || x >= worldW || y+h <= 0 || y >= worldH {
		return res
	}
	if cx := containAxis(x, w, worldW); cx != x {
		x = cx
		res.Changed = true
	}
	if cy := containAxis(y, h, worldH); cy != y {
		y = cy
		res.Changed = true
	}
	if res.Changed {
		minCol, minRow, maxCol, maxRow = cellSpan(x, y, w, h)
	}

	minCol = max(minCol, 0)
	maxCol = min(cols-1, maxCol)
	minRow = max(minRow, 0)
	maxRow = min(rows-1, maxRow)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			var changed bool
			x, y, changed = r.resolveCell(g, row, col, x, y, w, h)
			res.Changed = res.Changed || changed
		}
	}

	res.X, res.Y = x, y
	return res
}

// resolveCell pushes the box out of a single solid cell, never towards a solid neighbour.
func (r *Resolver) resolveCell(g *world.Grid, row, col int, x, y, w, h float64) (float64, float64, bool) {
	if !r.IsSolid(g, row, col) {
		return x, y, false
	}

	cellX := float64(col) * cell
	cellY := float64(row) * cell

	upSolid := r.IsSolid(g, row-1, col)
	downSolid := r.IsSolid(g, row+1, col)
	leftSolid := r.IsSolid(g, row, col-1)
	rightSolid := r.IsSolid(g, row, col+1)

	overlapX := math.Max(x+w-cellX, cellX+cell-x)
	overlapY := math.Max(y+h-cellY, cellY+cell-y)
	verticalFirst := overlapX < overlapY

	changed := false
	vertical := func() {
		if !(x+w > cellX && x < cellX+cell) {
			return
		}
		if !upSolid && y+h > cellY && y < cellY {
			y = cellY - h
			changed = true
		}
		if !downSolid && y < cellY+cell && y+h > cellY+cell {
			y = cellY + cell
			changed = true
		}
	}
	horizontal := func() {
		if !(y+h > cellY && y < cellY+cell) {
			return
		}
		if !leftSolid && x+w > cellX && x < cellX {
			x = cellX - w
			changed = true
		}
		if !rightSolid && x < cellX+cell && x+w > cellX+cell {
			x = cellX + cell
			changed = true
		}
	}

	if verticalFirst {
		vertical()
		horizontal()
	} else {
		horizontal()
		vertical()
	}
	return x, y, changed
}

// cellSpan returns the bounding cell rectangle of a box, inclusive on both ends.
func cellSpan(x, y, w, h float64) (minCol, minRow, maxCol, maxRow int) {
	minCol = int(math.Floor(x / cell))
	minRow = int(math.Floor(y / cell))
	maxCol = int(math.Ceil((x + w) / cell))
	maxRow = int(math.Ceil((y + h) / cell))
	return
}

// containAxis clamps a span of the given size into [0, limit]. A span larger
// than the world is pinned to 0.
func containAxis(pos, size, limit float64) float64 {
	if size >= limit || pos < 0 {
		return 0
	}
	if pos+size > limit {
		return limit - size
	}
	return pos
}
