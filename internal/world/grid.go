package world

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid is created with negative rows or columns.
var ErrInvalidDimensions = errors.New("grid dimensions must not be negative")

// Grid is a fixed-size, row-major array of cells.
// Its shape never changes after creation; content changes one cell at a time.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a rows x cols grid filled with Water.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// MustNewGrid is like NewGrid but panics on invalid dimensions.
func MustNewGrid(rows, cols int) *Grid {
	g, err := NewGrid(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Empty returns true if the grid has no cells.
func (g *Grid) Empty() bool {
	return g.rows == 0 || g.cols == 0
}

// InBounds returns true if (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the cell at (row, col). ok is false outside the grid;
// collision treats such coordinates as solid.
func (g *Grid) Get(row, col int) (c Cell, ok bool) {
	if !g.InBounds(row, col) {
		return Water, false
	}
	return g.cells[row*g.cols+col], true
}

// At returns the cell at (row, col), or Water outside the grid.
func (g *Grid) At(row, col int) Cell {
	c, _ := g.Get(row, col)
	return c
}

// Set overwrites the cell at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, v Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = v
}

// Paint applies insert to the cell at (row, col) using mode and reports
// whether the stored value changed. Out-of-bounds paints change nothing.
func (g *Grid) Paint(row, col int, insert Cell, mode PaintMode) bool {
	if !g.InBounds(row, col) {
		return false
	}
	i := row*g.cols + col
	old := g.cells[i]
	next := mode.Apply(old, insert)
	if next == old {
		return false
	}
	g.cells[i] = next
	return true
}

// Fill sets every cell to v.
func (g *Grid) Fill(v Cell) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Snapshot returns a deep copy of the grid.
func (g *Grid) Snapshot() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether two grids have the same shape and content.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Bounds returns the rectangle covering the whole grid.
func (g *Grid) Bounds() CellRect {
	return CellRect{Row: 0, Col: 0, Rows: g.rows, Cols: g.cols}
}
