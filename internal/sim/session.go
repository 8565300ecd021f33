// Package sim owns the world state of one play session and runs its fixed-step simulation.
package sim

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilewalk/internal/autotile"
	"github.com/samdwyer/tilewalk/internal/collision"
	"github.com/samdwyer/tilewalk/internal/entity"
	"github.com/samdwyer/tilewalk/internal/gamedata"
	"github.com/samdwyer/tilewalk/internal/telemetry"
	"github.com/samdwyer/tilewalk/internal/world"
)

// Session is the complete world state: the grid, the actor and the derived tiles.
// It is passed explicitly to whoever drives it and is not safe for concurrent use;
// see Locked.
type Session struct {
	Grid     *world.Grid
	Actor    *entity.Actor
	Resolver *collision.Resolver
	Tiler    *autotile.Tiler
	Catalog  *autotile.Catalog
	Registry *gamedata.LayerRegistry
	Clock    *Clock
	Brush    Brush

	speed float64
	ticks uint64
}

// NewSession builds a session from a validated world definition.
func NewSession(ctx context.Context, cfg *gamedata.WorldConfig) (*Session, error) {
	tracer := telemetry.Tracer("sim")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	grid, err := world.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return nil, fmt.Errorf("session grid: %w", err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		return nil, fmt.Errorf("session layout: %w", err)
	}
	world.Generate(ctx, grid, layout)

	solid, err := cfg.SolidityRule()
	if err != nil {
		return nil, fmt.Errorf("session solidity: %w", err)
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("session catalog: %w", err)
	}
	actor, err := entity.NewActor(cfg.Actor.X, cfg.Actor.Y, cfg.Actor.Width, cfg.Actor.Height)
	if err != nil {
		return nil, fmt.Errorf("session actor: %w", err)
	}
	actor.Symbol = cfg.ActorSymbol()
	brushType, brushMode, err := cfg.BrushDefaults()
	if err != nil {
		return nil, fmt.Errorf("session brush: %w", err)
	}

	s := &Session{
		Grid:     grid,
		Actor:    actor,
		Resolver: collision.NewResolver(solid),
		Tiler:    autotile.NewTiler(grid, cat),
		Catalog:  cat,
		Registry: gamedata.NewLayerRegistry(cfg),
		Clock:    NewClock(cfg.Sim.TickRate, cfg.Sim.MaxCatchUp),
		Brush:    Brush{Type: brushType, Mode: brushMode},
		speed:    cfg.Actor.Speed,
	}

	span.SetAttributes(
		attribute.String("actor.id", actor.ID.String()),
		attribute.Int("grid.rows", grid.Rows()),
		attribute.Int("grid.cols", grid.Cols()),
		attribute.Int("catalog.layers", len(cat.Layers)),
	)
	return s, nil
}

// Step runs one simulation tick: the held input becomes a displacement, the
// resolver corrects it, and only the final position is applied to the actor.
func (s *Session) Step(in Input) collision.Result {
	s.ticks++
	if s.Actor.Swing.Swinging() {
		s.Actor.Swing.Step(s.Clock.Step().Seconds())
	}

	x, y := s.Actor.Position()
	d := in.Displacement(s.speed)
	if d.X() == 0 && d.Y() == 0 {
		return collision.Result{X: x, Y: y}
	}

	s.Actor.Face(d.X(), d.Y())
	res := s.Resolver.Move(s.Grid, s.Actor.Box, d.X(), d.Y())
	s.Actor.MoveTo(res.X, res.Y)
	return res
}

// Ticks returns the number of ticks run so far.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// PaintAt paints the cell under world point (x, y) with the current brush and
// reports whether the grid changed.
func (s *Session) PaintAt(ctx context.Context, x, y float64) bool {
	row, col := world.WorldToCell(x, y)
	return s.PaintCell(ctx, row, col)
}

// PaintCell paints cell (row, col) with the current brush. Changed cells mark
// their tile blocks dirty; unchanged or out-of-bounds cells do nothing.
func (s *Session) PaintCell(ctx context.Context, row, col int) bool {
	if !s.Grid.Paint(row, col, s.Brush.Type, s.Brush.Mode) {
		return false
	}
	s.Tiler.Invalidate(row, col)

	_, span := telemetry.Tracer("sim").Start(ctx, "session.paint")
	span.SetAttributes(
		attribute.Int("cell.row", row),
		attribute.Int("cell.col", col),
		attribute.String("cell.value", s.Grid.At(row, col).String()),
		attribute.String("brush.mode", s.Brush.Mode.String()),
	)
	span.End()
	return true
}

// Tiles returns the current tile-draw commands.
func (s *Session) Tiles(ctx context.Context) []autotile.Command {
	return s.Tiler.Commands(ctx)
}

// CycleBrush selects the next paintable type.
func (s *Session) CycleBrush() world.Cell {
	s.Brush.Type = s.Registry.Next(s.Brush.Type)
	return s.Brush.Type
}

// Locked serialises every operation on a Session behind one mutex, for hosts
// that paint and tick from different goroutines.
type Locked struct {
	mu sync.Mutex
	s  *Session
}

// NewLocked wraps s.
func NewLocked(s *Session) *Locked {
	return &Locked{s: s}
}

// Step runs one tick under the lock.
func (l *Locked) Step(in Input) collision.Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Step(in)
}

// PaintAt paints under the lock.
func (l *Locked) PaintAt(ctx context.Context, x, y float64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.PaintAt(ctx, x, y)
}

// Tiles returns a copy of the current commands, taken under the lock.
func (l *Locked) Tiles(ctx context.Context) []autotile.Command {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]autotile.Command(nil), l.s.Tiles(ctx)...)
}

// Do runs fn with exclusive access to the session.
func (l *Locked) Do(fn func(s *Session)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.s)
}
