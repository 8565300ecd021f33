package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilewalk/internal/autotile"
	"github.com/samdwyer/tilewalk/internal/gamedata"
	"github.com/samdwyer/tilewalk/internal/sim"
	"github.com/samdwyer/tilewalk/internal/world"
)

// Each terminal column is half a cell wide and each row one cell tall; the
// upper and lower halves of a row are drawn separately with '▀', so one
// "pixel" covers a quarter cell.
const (
	pixelSize = world.CellSize / 2
	hudLines  = 1
)

// Camera is the top-left of the view in pixels. Y is always even so cells
// line up with terminal rows.
type Camera struct {
	PX, PY int
}

// Follow centres the camera on world point (x, y) for a view of the given terminal size.
func Follow(x, y float64, width, height int) Camera {
	px := int(math.Floor(x/pixelSize)) - width/2
	row := int(math.Floor(y/world.CellSize)) - height/2
	return Camera{PX: px, PY: row * 2}
}

// ScreenToWorld returns the world point at the centre of terminal cell (tx, ty).
func (c Camera) ScreenToWorld(tx, ty int) (float64, float64) {
	x := float64((c.PX+tx)*pixelSize) + pixelSize/2
	y := float64((c.PY/2+ty)*world.CellSize) + world.CellSize/2
	return x, y
}

// WorldToScreen returns the terminal cell containing world point (x, y).
func (c Camera) WorldToScreen(x, y float64) (tx, ty int) {
	tx = int(math.Floor(x/pixelSize)) - c.PX
	ty = int(math.Floor(y/world.CellSize)) - c.PY/2
	return tx, ty
}

// Renderer handles drawing the session to the screen.
type Renderer struct {
	screen   *Screen
	registry *gamedata.LayerRegistry
	water    tcell.Color
	void     tcell.Color

	pixels []tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, registry *gamedata.LayerRegistry) *Renderer {
	water := tcell.ColorNavy
	if s := registry.GetByFlag(world.Water); s != nil {
		water = s.Color
	}
	return &Renderer{
		screen:   screen,
		registry: registry,
		water:    water,
		void:     tcell.ColorBlack,
	}
}

// Frame is everything the renderer needs besides the session.
type Frame struct {
	Cursor    *[2]int // Terminal cell under the mouse, if any
	Paused    bool
	ShowHelp  bool
	StatusMsg string
}

// Render draws the tiles, the actor and the status line, and returns the camera used.
func (r *Renderer) Render(s *sim.Session, tiles []autotile.Command, f Frame) Camera {
	r.screen.Clear()
	width, height := r.screen.Size()
	mapHeight := max(height-hudLines, 0)

	cx, cy := s.Actor.Center()
	cam := Follow(cx, cy, width, mapHeight)

	r.drawTiles(s.Grid, tiles, cam, width, mapHeight)
	if f.Cursor != nil {
		r.drawCursor(s.Grid, cam, f.Cursor[0], f.Cursor[1], mapHeight)
	}
	r.drawActor(s, cam, width, mapHeight)
	r.drawStatus(s, f, height-1)

	r.screen.Show()
	return cam
}

// drawTiles rasterises the tile commands into quarter-cell pixels. Block (i, j)
// covers the four quarters around the corner shared by cells (i, j) and (i+1, j+1).
func (r *Renderer) drawTiles(g *world.Grid, tiles []autotile.Command, cam Camera, width, height int) {
	pw, ph := width, height*2
	if cap(r.pixels) < pw*ph {
		r.pixels = make([]tcell.Color, pw*ph)
	}
	r.pixels = r.pixels[:pw*ph]

	worldPW, worldPH := g.Cols()*2, g.Rows()*2
	for py := 0; py < ph; py++ {
		for px := 0; px < pw; px++ {
			wx, wy := px+cam.PX, py+cam.PY
			if wx >= 0 && wx < worldPW && wy >= 0 && wy < worldPH {
				r.pixels[py*pw+px] = r.water
			} else {
				r.pixels[py*pw+px] = r.void
			}
		}
	}

	for _, t := range tiles {
		style := r.registry.GetByFlag(t.Flag)
		if style == nil || t.Index == 0 {
			continue
		}
		baseX := 2*t.Col + 1 - cam.PX
		baseY := 2*t.Row + 1 - cam.PY
		for bit := 0; bit < 4; bit++ {
			if t.Index&(1<<bit) == 0 {
				continue
			}
			px, py := baseX+bit%2, baseY+bit/2
			if px < 0 || px >= pw || py < 0 || py >= ph {
				continue
			}
			r.pixels[py*pw+px] = style.Color
		}
	}

	for ty := 0; ty < height; ty++ {
		for tx := 0; tx < width; tx++ {
			upper := r.pixels[(2*ty)*pw+tx]
			lower := r.pixels[(2*ty+1)*pw+tx]
			r.screen.SetContent(tx, ty, '▀', tcell.StyleDefault.Foreground(upper).Background(lower))
		}
	}
}

// drawCursor outlines the cell under the terminal position (tx, ty).
func (r *Renderer) drawCursor(g *world.Grid, cam Camera, tx, ty, height int) {
	if ty < 0 || ty >= height {
		return
	}
	row, col := world.WorldToCell(cam.ScreenToWorld(tx, ty))
	if !g.InBounds(row, col) {
		return
	}
	left := 2*col - cam.PX
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	r.screen.SetContent(left, ty, '[', style)
	r.screen.SetContent(left+1, ty, ']', style)
}

func (r *Renderer) drawActor(s *sim.Session, cam Camera, width, height int) {
	cx, cy := s.Actor.Center()
	tx, ty := cam.WorldToScreen(cx, cy)
	if tx < 0 || tx >= width || ty < 0 || ty >= height {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
	if s.Actor.Swing.Swinging() {
		style = style.Foreground(tcell.ColorOrangeRed)
	}
	r.screen.SetContent(tx, ty, s.Actor.Symbol, style)
}

func (r *Renderer) drawStatus(s *sim.Session, f Frame, y int) {
	if y < 0 {
		return
	}
	brush := s.Brush.Type.String()
	if style := r.registry.GetByFlag(s.Brush.Type); style != nil {
		brush = style.Name
	}
	x, ay := s.Actor.Position()
	msg := fmt.Sprintf(" brush:%s mode:%s pos:(%.0f,%.0f) tick:%d", brush, s.Brush.Mode, x, ay, s.Ticks())
	if f.Paused {
		msg += " [paused]"
	}
	if f.ShowHelp {
		msg += "  arrows:move click:paint 1-3/b:brush m:mode space:swing p:pause q:quit"
	}
	if f.StatusMsg != "" {
		msg += "  " + f.StatusMsg
	}
	r.RenderMessage(msg, y)
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
