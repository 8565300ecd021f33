package world

import "math"

// CellSize is the edge length of one cell in world units.
const CellSize = 64

// WorldToCell returns the cell containing world point (x, y).
// The result may lie outside any grid.
func WorldToCell(x, y float64) (row, col int) {
	return int(math.Floor(y / CellSize)), int(math.Floor(x / CellSize))
}

// CellToWorld returns the world position of the top-left corner of cell (row, col).
func CellToWorld(row, col int) (x, y float64) {
	return float64(col * CellSize), float64(row * CellSize)
}

// WorldSize returns the world-unit extent of a rows x cols grid.
func WorldSize(rows, cols int) (width, height float64) {
	return float64(cols * CellSize), float64(rows * CellSize)
}
