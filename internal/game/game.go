package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilewalk/internal/gamedata"
	"github.com/samdwyer/tilewalk/internal/prefs"
	"github.com/samdwyer/tilewalk/internal/sim"
	"github.com/samdwyer/tilewalk/internal/telemetry"
	"github.com/samdwyer/tilewalk/internal/ui"
	"github.com/samdwyer/tilewalk/internal/world"
)

// Game holds the session and everything needed to show and drive it.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *sim.Session
	hold     *ui.KeyHold
	prefs    *prefs.Store
	cfg      Config
	state    State
	running  bool

	camera   ui.Camera
	cursor   *[2]int
	showHelp bool
	status   string
}

// New creates a game on the terminal.
func New(ctx context.Context, cfg Config, worldCfg *gamedata.WorldConfig, store *prefs.Store) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(ctx, screen, cfg, worldCfg, store)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an existing screen.
func NewWithScreen(ctx context.Context, screen *ui.Screen, cfg Config, worldCfg *gamedata.WorldConfig, store *prefs.Store) (*Game, error) {
	cfg = cfg.withDefaults()
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	session, err := sim.NewSession(ctx, worldCfg)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = prefs.NewStore(nil)
	}

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, session.Registry),
		session:  session,
		hold:     ui.NewKeyHold(cfg.HoldWindow),
		prefs:    store,
		cfg:      cfg,
		state:    StateRunning,
		running:  true,
	}

	if p, ok := store.Load(); ok {
		if brush, mode, err := p.Brush(); err != nil {
			log.Printf("[Game] Ignoring saved brush: %v", err)
		} else {
			session.Brush = sim.Brush{Type: brush, Mode: mode}
			span.SetAttributes(attribute.Bool("prefs.restored", true))
		}
	}

	span.SetAttributes(
		attribute.Int("frame_rate", cfg.FrameRate),
		attribute.String("brush.type", session.Brush.Type.String()),
		attribute.String("brush.mode", session.Brush.Mode.String()),
	)
	return g, nil
}

// Session returns the game's session.
func (g *Game) Session() *sim.Session {
	return g.session
}

// State returns the current run state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// Run executes the main loop until the player quits or ctx is cancelled.
// Terminal events are read on their own goroutine; everything else,
// including the session, is only touched here.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.screen.Events(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FrameRate))
	defer ticker.Stop()

	last := time.Now()
	g.render(ctx)
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ctx, ev, time.Now())
		case now := <-ticker.C:
			g.update(now.Sub(last), now)
			last = now
			g.render(ctx)
		}
	}

	g.savePrefs()
	g.screen.Close()
	return nil
}

// update runs as many simulation ticks as elapsed time allows.
func (g *Game) update(elapsed time.Duration, now time.Time) int {
	if g.state == StatePaused {
		return 0
	}
	in := g.hold.Input(now)
	n := g.session.Clock.Advance(elapsed)
	for range n {
		g.session.Step(in)
	}
	return n
}

func (g *Game) render(ctx context.Context) {
	g.camera = g.renderer.Render(g.session, g.session.Tiles(ctx), ui.Frame{
		Cursor:    g.cursor,
		Paused:    g.state == StatePaused,
		ShowHelp:  g.showHelp,
		StatusMsg: g.status,
	})
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev, now)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey, now time.Time) {
	if g.hold.Press(ev.Key(), now) {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			g.running = false
		case '1', '2', '3':
			g.selectBrush(int(r - '1'))
		case 'b':
			g.session.CycleBrush()
			g.brushChanged()
		case 'm':
			g.session.Brush.ToggleMode()
			g.brushChanged()
		case ' ':
			g.session.Actor.Swing.Start()
		case 'p':
			g.togglePause()
		case 'h', '?':
			g.showHelp = !g.showHelp
		}
	}
}

// handleMouseEvent paints the cell under the pointer while the primary button is down.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	x, y := ev.Position()
	_, height := g.screen.Size()
	if y >= height-1 {
		g.cursor = nil
		return
	}
	g.cursor = &[2]int{x, y}

	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	wx, wy := g.camera.ScreenToWorld(x, y)
	if g.session.PaintAt(ctx, wx, wy) {
		row, col := world.WorldToCell(wx, wy)
		g.status = fmt.Sprintf("painted (%d,%d) %s", row, col, g.session.Grid.At(row, col))
	}
}

// selectBrush picks the nth registered type, water first.
func (g *Game) selectBrush(n int) {
	styles := g.session.Registry.All()
	if n < 0 || n >= len(styles) {
		return
	}
	g.session.Brush.Type = styles[n].Flag
	g.brushChanged()
}

func (g *Game) brushChanged() {
	g.status = fmt.Sprintf("brush %s %s", g.session.Brush.Type, g.session.Brush.Mode)
	g.savePrefs()
}

func (g *Game) togglePause() {
	if g.state == StatePaused {
		g.state = StateRunning
	} else {
		g.state = StatePaused
		g.hold.Release()
	}
	g.status = g.state.String()
}

func (g *Game) savePrefs() {
	if err := g.prefs.Save(g.session.Brush.Type, g.session.Brush.Mode); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
