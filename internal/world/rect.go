package world

// CellRect is a rectangle of cells, inclusive of Row/Col and exclusive of Row+Rows/Col+Cols.
type CellRect struct {
	Row, Col   int // Top-left cell
	Rows, Cols int // Extent in cells
}

// Empty returns true if the rectangle covers no cells.
func (r CellRect) Empty() bool {
	return r.Rows <= 0 || r.Cols <= 0
}

// Contains returns true if the given cell is inside the rectangle.
func (r CellRect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.Rows && col >= r.Col && col < r.Col+r.Cols
}

// Intersects returns true if this rectangle overlaps another.
func (r CellRect) Intersects(other CellRect) bool {
	return r.Col < other.Col+other.Cols &&
		r.Col+r.Cols > other.Col &&
		r.Row < other.Row+other.Rows &&
		r.Row+r.Rows > other.Row
}

// Intersect returns the overlapping part of two rectangles, which may be empty.
func (r CellRect) Intersect(other CellRect) CellRect {
	top := max(r.Row, other.Row)
	left := max(r.Col, other.Col)
	if !r.Intersects(other) {
		return CellRect{Row: top, Col: left}
	}
	bottom := min(r.Row+r.Rows, other.Row+other.Rows)
	right := min(r.Col+r.Cols, other.Col+other.Cols)
	return CellRect{Row: top, Col: left, Rows: bottom - top, Cols: right - left}
}

// Each calls fn for every cell of the rectangle in row-major order.
func (r CellRect) Each(fn func(row, col int)) {
	for row := r.Row; row < r.Row+r.Rows; row++ {
		for col := r.Col; col < r.Col+r.Cols; col++ {
			fn(row, col)
		}
	}
}
