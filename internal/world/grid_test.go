package world

import (
	"context"
	"errors"
	"testing"
)

func TestNewGridRejectsNegativeDimensions(t *testing.T) {
	tests := []struct {
		rows, cols int
		wantErr    bool
	}{
		{0, 0, false},
		{3, 0, false},
		{50, 50, false},
		{-1, 5, true},
		{5, -1, true},
	}

	for _, tt := range tests {
		g, err := NewGrid(tt.rows, tt.cols)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewGrid(%d, %d): expected ErrInvalidDimensions, got %v", tt.rows, tt.cols, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewGrid(%d, %d): unexpected error %v", tt.rows, tt.cols, err)
		}
		if g.Rows() != tt.rows || g.Cols() != tt.cols {
			t.Errorf("NewGrid(%d, %d): got %dx%d", tt.rows, tt.cols, g.Rows(), g.Cols())
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := MustNewGrid(3, 4)
	g.Fill(Sand)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {100, 100}} {
		if _, ok := g.Get(p[0], p[1]); ok {
			t.Errorf("Get(%d, %d) should be out of bounds", p[0], p[1])
		}
		g.Set(p[0], p[1], Grass)
		if g.Paint(p[0], p[1], Grass, PaintOverlay) {
			t.Errorf("Paint(%d, %d) out of bounds should report no change", p[0], p[1])
		}
	}

	// Out-of-bounds writes must not wrap into neighbouring rows
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if c := g.At(row, col); c != Sand {
				t.Errorf("Cell (%d,%d) = %v, want sand", row, col, c)
			}
		}
	}
}

func TestPaintOverlay(t *testing.T) {
	g := MustNewGrid(2, 2)

	if !g.Paint(0, 0, Sand, PaintOverlay) {
		t.Fatal("Painting sand on water should change the cell")
	}
	if g.Paint(0, 0, Sand, PaintOverlay) {
		t.Error("Painting sand twice should report no change")
	}
	if !g.Paint(0, 0, Grass, PaintOverlay) {
		t.Fatal("Painting grass over sand should change the cell")
	}
	c := g.At(0, 0)
	if !c.Has(Sand) || !c.Has(Grass) {
		t.Errorf("Expected sand and grass, got %v", c)
	}
	if !g.Paint(0, 0, Water, PaintOverlay) {
		t.Fatal("Painting water should clear the cell")
	}
	if c := g.At(0, 0); c.Has(Sand) || c.Has(Grass) || !c.IsEmpty() {
		t.Errorf("Expected empty cell after water, got %v", c)
	}
	if g.Paint(0, 0, Water, PaintOverlay) {
		t.Error("Painting water on water should report no change")
	}
}

func TestPaintReplace(t *testing.T) {
	g := MustNewGrid(1, 1)
	g.Set(0, 0, Sand|Grass)

	if !g.Paint(0, 0, Grass, PaintReplace) {
		t.Fatal("Replace should change sand|grass to grass")
	}
	if c := g.At(0, 0); c != Grass {
		t.Errorf("Expected grass, got %v", c)
	}
	if g.Paint(0, 0, Grass, PaintReplace) {
		t.Error("Replacing grass with grass should report no change")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Water, "water"},
		{Sand, "sand"},
		{Grass, "grass"},
		{Sand | Grass, "sand|grass"},
		{Cell(1 << 3), "0x08"},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("Cell(%d).String() = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestParseCell(t *testing.T) {
	for name, want := range map[string]Cell{"Water": Water, "sand": Sand, " GRASS ": Grass} {
		got, err := ParseCell(name)
		if err != nil || got != want {
			t.Errorf("ParseCell(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseCell("lava"); err == nil {
		t.Error("ParseCell(lava) should fail")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := MustNewGrid(2, 2)
	snap := g.Snapshot()
	g.Set(1, 1, Sand)

	if snap.At(1, 1) != Water {
		t.Error("Snapshot should not see later writes")
	}
	if g.Equal(snap) {
		t.Error("Grids should differ after write")
	}
}

func TestWorldToCell(t *testing.T) {
	tests := []struct {
		x, y     float64
		row, col int
	}{
		{0, 0, 0, 0},
		{63.9, 63.9, 0, 0},
		{64, 0, 0, 1},
		{608, 640, 10, 9},
		{-0.1, -64, -1, -1},
		{-64.5, 10, 0, -2},
	}
	for _, tt := range tests {
		row, col := WorldToCell(tt.x, tt.y)
		if row != tt.row || col != tt.col {
			t.Errorf("WorldToCell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}

	x, y := CellToWorld(10, 9)
	if x != 576 || y != 640 {
		t.Errorf("CellToWorld(10, 9) = (%v, %v), want (576, 640)", x, y)
	}
}

func TestCellRect(t *testing.T) {
	r := CellRect{Row: 1, Col: 2, Rows: 2, Cols: 3}

	if !r.Contains(1, 2) || !r.Contains(2, 4) || r.Contains(3, 2) || r.Contains(1, 5) {
		t.Error("Contains returned wrong result at rectangle edges")
	}

	var visited [][2]int
	r.Each(func(row, col int) { visited = append(visited, [2]int{row, col}) })
	want := [][2]int{{1, 2}, {1, 3}, {1, 4}, {2, 2}, {2, 3}, {2, 4}}
	if len(visited) != len(want) {
		t.Fatalf("Each visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Each order[%d] = %v, want %v", i, visited[i], want[i])
		}
	}

	clipped := r.Intersect(CellRect{Row: 0, Col: 0, Rows: 2, Cols: 4})
	if clipped != (CellRect{Row: 1, Col: 2, Rows: 1, Cols: 2}) {
		t.Errorf("Intersect = %+v", clipped)
	}
	if !r.Intersect(CellRect{Row: 10, Col: 10, Rows: 1, Cols: 1}).Empty() {
		t.Error("Disjoint intersection should be empty")
	}

	overlaps := []struct {
		other CellRect
		want  bool
	}{
		{CellRect{Row: 0, Col: 0, Rows: 2, Cols: 3}, true},
		{CellRect{Row: 0, Col: 0, Rows: 1, Cols: 10}, false}, // touches the top edge
		{CellRect{Row: 1, Col: 5, Rows: 2, Cols: 2}, false},  // touches the right edge
		{CellRect{Row: 2, Col: 4, Rows: 5, Cols: 5}, true},
		{CellRect{Row: 1, Col: 2}, false},
	}
	for _, tt := range overlaps {
		if got := r.Intersects(tt.other); got != tt.want {
			t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
		}
	}
}

func TestGenerateIsland(t *testing.T) {
	g := MustNewGrid(DefaultRows, DefaultCols)
	Generate(context.Background(), g, Layout{Shape: ShapeIsland, Base: Water, Island: Sand})

	if c := g.At(DefaultRows/2, DefaultCols/2); c != Sand {
		t.Errorf("Island centre = %v, want sand", c)
	}
	for _, p := range [][2]int{{0, 0}, {0, DefaultCols - 1}, {DefaultRows - 1, 0}, {DefaultRows - 1, DefaultCols - 1}} {
		if c := g.At(p[0], p[1]); c != Water {
			t.Errorf("Corner (%d,%d) = %v, want water", p[0], p[1], c)
		}
	}

	// Same layout, same grid
	g2 := MustNewGrid(DefaultRows, DefaultCols)
	Generate(context.Background(), g2, Layout{Shape: ShapeIsland, Base: Water, Island: Sand})
	if !g.Equal(g2) {
		t.Error("Island generation should be deterministic")
	}
}

func TestGenerateUniform(t *testing.T) {
	g := MustNewGrid(4, 4)
	g.Set(2, 2, Sand)
	Generate(context.Background(), g, Layout{Shape: ShapeUniform, Base: Grass})
	g.Bounds().Each(func(row, col int) {
		if g.At(row, col) != Grass {
			t.Errorf("Cell (%d,%d) not filled", row, col)
		}
	})
}

func TestGenerateEmptyGrid(t *testing.T) {
	g := MustNewGrid(0, 0)
	Generate(context.Background(), g, Layout{Shape: ShapeIsland, Island: Sand})
	if !g.Empty() {
		t.Error("Empty grid should stay empty")
	}
}
