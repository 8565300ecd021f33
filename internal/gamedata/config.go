package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilewalk/internal/autotile"
	"github.com/samdwyer/tilewalk/internal/collision"
	"github.com/samdwyer/tilewalk/internal/world"
)

// ErrInvalidConfig is returned when a world definition fails validation.
var ErrInvalidConfig = errors.New("invalid world config")

// WorldFile is the embedded default world definition.
const WorldFile = "world.yaml"

// WorldConfig is the world definition loaded from YAML.
type WorldConfig struct {
	Grid      GridConfig     `yaml:"grid"`
	Actor     ActorConfig    `yaml:"actor"`
	Sim       SimConfig      `yaml:"sim"`
	Solidity  SolidityConfig `yaml:"solidity"`
	Brush     BrushConfig    `yaml:"brush"`
	Tiles     TilesConfig    `yaml:"tiles"`
	Water     WaterConfig    `yaml:"water"`
	Layers    []LayerDef     `yaml:"layers"`
	Occlusion []OcclusionDef `yaml:"occlusion"`
}

// GridConfig sets the grid size and its initial fill.
type GridConfig struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	Shape        string  `yaml:"shape"`
	Base         string  `yaml:"base"`
	Island       string  `yaml:"island"`
	IslandRadius float64 `yaml:"islandRadius"`
}

// ActorConfig sets the actor's starting collider and speed.
type ActorConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Symbol string  `yaml:"symbol"`
}

// SimConfig sets the fixed timestep.
type SimConfig struct {
	TickRate   int `yaml:"tickRate"`
	MaxCatchUp int `yaml:"maxCatchUp"`
}

// SolidityConfig selects which cells block movement.
type SolidityConfig struct {
	Mode string `yaml:"mode"` // passable | blocked
	Cell string `yaml:"cell"`
}

// BrushConfig is the initial paint brush.
type BrushConfig struct {
	Type string `yaml:"type"`
	Mode string `yaml:"mode"`
}

// TilesConfig holds the tileset layout shared by all layers.
type TilesConfig struct {
	AnchorOffset float64  `yaml:"anchorOffset"`
	Lookup       [][2]int `yaml:"lookup"`
}

// WaterConfig is how empty cells are shown.
type WaterConfig struct {
	Color string `yaml:"color"`
	Glyph string `yaml:"glyph"`
}

// LayerDef defines one tile layer.
type LayerDef struct {
	Name  string `yaml:"name"`
	Flag  string `yaml:"flag"`
	Color string `yaml:"color"`
}

// OcclusionDef hides the lower layer where the upper one fully covers a block.
type OcclusionDef struct {
	Upper string `yaml:"upper"`
	Lower string `yaml:"lower"`
}

// LoadWorldConfig loads a world definition from path, or the embedded default
// when path is empty, and validates it.
func LoadWorldConfig(path string) (*WorldConfig, error) {
	var (
		cfg WorldConfig
		err error
	)
	if path == "" {
		cfg, err = Load[WorldConfig](WorldFile)
	} else {
		cfg, err = LoadFile[WorldConfig](path)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoadWorldConfig loads the embedded world definition, panicking on error.
func MustLoadWorldConfig() *WorldConfig {
	cfg, err := LoadWorldConfig("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the definition for values the simulation cannot run with.
func (c *WorldConfig) Validate() error {
	if c.Grid.Rows < 0 || c.Grid.Cols < 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	}
	if _, err := c.Layout(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		return fmt.Errorf("%w: actor size %vx%v", ErrInvalidConfig, c.Actor.Width, c.Actor.Height)
	}
	if c.Grid.Rows > 0 && c.Grid.Cols > 0 {
		w, h := world.WorldSize(c.Grid.Rows, c.Grid.Cols)
		if c.Actor.X < 0 || c.Actor.Y < 0 || c.Actor.X+c.Actor.Width > w || c.Actor.Y+c.Actor.Height > h {
			return fmt.Errorf("%w: actor at (%v, %v) outside the %vx%v world",
				ErrInvalidConfig, c.Actor.X, c.Actor.Y, w, h)
		}
	}
	if c.Actor.Speed < 0 {
		return fmt.Errorf("%w: actor speed %v", ErrInvalidConfig, c.Actor.Speed)
	}
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidConfig, c.Sim.TickRate)
	}
	if _, err := c.SolidityRule(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, _, err := c.BrushDefaults(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, l := range c.Layers {
		if _, err := ParseColor(l.Color); err != nil {
			return fmt.Errorf("%w: layer %s: %v", ErrInvalidConfig, l.Name, err)
		}
	}
	return nil
}

// Layout converts the grid section to a world.Layout.
func (c *WorldConfig) Layout() (world.Layout, error) {
	shape, err := world.ParseShape(c.Grid.Shape)
	if err != nil {
		return world.Layout{}, err
	}
	base, err := world.ParseCell(c.Grid.Base)
	if err != nil {
		return world.Layout{}, fmt.Errorf("grid base: %w", err)
	}
	island, err := world.ParseCell(c.Grid.Island)
	if err != nil {
		return world.Layout{}, fmt.Errorf("grid island: %w", err)
	}
	return world.Layout{
		Shape:        shape,
		Base:         base,
		Island:       island,
		IslandRadius: c.Grid.IslandRadius,
	}, nil
}

// SolidityRule builds the collision rule.
func (c *WorldConfig) SolidityRule() (collision.Solidity, error) {
	return collision.ParseSolidity(c.Solidity.Mode, c.Solidity.Cell)
}

// BrushDefaults returns the initial brush type and paint mode.
func (c *WorldConfig) BrushDefaults() (world.Cell, world.PaintMode, error) {
	t, err := world.ParseCell(c.Brush.Type)
	if err != nil {
		return world.Water, world.PaintOverlay, fmt.Errorf("brush type: %w", err)
	}
	m, err := world.ParsePaintMode(c.Brush.Mode)
	if err != nil {
		return world.Water, world.PaintOverlay, fmt.Errorf("brush mode: %w", err)
	}
	return t, m, nil
}

// Catalog builds the autotile catalog from the layer, occlusion and tiles sections.
// An empty lookup falls back to autotile.DefaultLookup.
func (c *WorldConfig) Catalog() (*autotile.Catalog, error) {
	layers := make([]autotile.Layer, 0, len(c.Layers))
	for _, l := range c.Layers {
		flag, err := world.ParseCell(l.Flag)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", l.Name, err)
		}
		layers = append(layers, autotile.Layer{Name: l.Name, Flag: flag})
	}

	rules := make([]autotile.OcclusionRule, 0, len(c.Occlusion))
	for _, o := range c.Occlusion {
		upper, err := world.ParseCell(o.Upper)
		if err != nil {
			return nil, fmt.Errorf("occlusion upper: %w", err)
		}
		lower, err := world.ParseCell(o.Lower)
		if err != nil {
			return nil, fmt.Errorf("occlusion lower: %w", err)
		}
		rules = append(rules, autotile.OcclusionRule{Upper: upper, Lower: lower})
	}

	lookup := autotile.DefaultLookup
	switch len(c.Tiles.Lookup) {
	case 0:
	case len(lookup):
		for i, uv := range c.Tiles.Lookup {
			lookup[i] = uv
		}
	default:
		return nil, fmt.Errorf("tile lookup has %d entries, want %d", len(c.Tiles.Lookup), len(lookup))
	}

	return autotile.NewCatalog(layers, rules, lookup, c.Tiles.AnchorOffset)
}

// WaterColor returns the display colour for empty cells.
func (c *WorldConfig) WaterColor() tcell.Color {
	color, err := ParseColor(c.Water.Color)
	if err != nil {
		return tcell.ColorNavy
	}
	return color
}

// WaterGlyph returns the display rune for empty cells.
func (c *WorldConfig) WaterGlyph() rune {
	return firstRune(c.Water.Glyph, '~')
}

// ActorSymbol returns the display rune for the actor.
func (c *WorldConfig) ActorSymbol() rune {
	return firstRune(c.Actor.Symbol, '@')
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
