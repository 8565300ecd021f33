package sim

import "github.com/samdwyer/tilewalk/internal/world"

// Brush is the cell type and mode applied by paint requests.
type Brush struct {
	Type world.Cell
	Mode world.PaintMode
}

// ToggleMode switches between overlay and replace painting.
func (b *Brush) ToggleMode() {
	if b.Mode == world.PaintOverlay {
		b.Mode = world.PaintReplace
	} else {
		b.Mode = world.PaintOverlay
	}
}
