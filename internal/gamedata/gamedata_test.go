package gamedata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilewalk/internal/autotile"
	"github.com/samdwyer/tilewalk/internal/world"
)

func TestLoadEmbeddedWorld(t *testing.T) {
	cfg, err := LoadWorldConfig("")
	if err != nil {
		t.Fatalf("Failed to load world config: %v", err)
	}

	if cfg.Grid.Rows != 50 || cfg.Grid.Cols != 50 {
		t.Errorf("Expected 50x50 grid, got %dx%d", cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Sim.TickRate != 60 {
		t.Errorf("Expected 60 ticks per second, got %d", cfg.Sim.TickRate)
	}
	if cfg.Actor.Speed != 3 {
		t.Errorf("Expected speed 3, got %v", cfg.Actor.Speed)
	}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(cat.Layers) != 2 || cat.Layers[0].Flag != world.Sand || cat.Layers[1].Flag != world.Grass {
		t.Errorf("Unexpected layers %+v", cat.Layers)
	}
	if cat.Lookup != autotile.DefaultLookup {
		t.Error("Embedded lookup should match the default tileset layout")
	}
	if cat.AnchorOffset != -32 {
		t.Errorf("Expected anchor offset -32, got %v", cat.AnchorOffset)
	}
	if len(cat.Rules) != 1 || cat.Rules[0].Upper != world.Grass || cat.Rules[0].Lower != world.Sand {
		t.Errorf("Unexpected rules %+v", cat.Rules)
	}

	brush, mode, err := cfg.BrushDefaults()
	if err != nil || brush != world.Sand || mode != world.PaintOverlay {
		t.Errorf("BrushDefaults = %v, %v, %v", brush, mode, err)
	}

	solid, err := cfg.SolidityRule()
	if err != nil {
		t.Fatalf("SolidityRule: %v", err)
	}
	if solid(world.Water) || !solid(world.Sand) {
		t.Error("Default rule should make only water passable")
	}
}

func TestLoadWorldConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	content := `
grid: {rows: 8, cols: 6, shape: island, base: water, island: grass}
actor: {x: 1, y: 2, width: 16, height: 16, speed: 2}
sim: {tickRate: 30}
solidity: {mode: blocked, cell: water}
brush: {type: grass, mode: replace}
layers:
  - {name: grass, flag: grass, color: green}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWorldConfig(path)
	if err != nil {
		t.Fatalf("LoadWorldConfig: %v", err)
	}
	layout, _ := cfg.Layout()
	if layout.Shape != world.ShapeIsland || layout.Island != world.Grass {
		t.Errorf("Unexpected layout %+v", layout)
	}
	cat, _ := cfg.Catalog()
	if cat.Lookup != autotile.DefaultLookup {
		t.Error("Missing lookup should fall back to the default")
	}
	if cfg.ActorSymbol() != '@' || cfg.WaterGlyph() != '~' {
		t.Error("Missing glyphs should fall back to defaults")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WorldConfig)
	}{
		{"negative rows", func(c *WorldConfig) { c.Grid.Rows = -1 }},
		{"bad shape", func(c *WorldConfig) { c.Grid.Shape = "donut" }},
		{"zero actor", func(c *WorldConfig) { c.Actor.Width = 0 }},
		{"actor left of world", func(c *WorldConfig) { c.Actor.X = -33 }},
		{"actor past bottom", func(c *WorldConfig) { c.Actor.Y = float64(c.Grid.Rows*world.CellSize) - 16 }},
		{"zero tick rate", func(c *WorldConfig) { c.Sim.TickRate = 0 }},
		{"bad solidity", func(c *WorldConfig) { c.Solidity.Mode = "sticky" }},
		{"bad brush", func(c *WorldConfig) { c.Brush.Type = "lava" }},
		{"bad layer", func(c *WorldConfig) { c.Layers[0].Flag = "lava" }},
		{"bad color", func(c *WorldConfig) { c.Layers[0].Color = "#zzzzzz" }},
		{"short lookup", func(c *WorldConfig) { c.Tiles.Lookup = c.Tiles.Lookup[:3] }},
		{"unknown rule layer", func(c *WorldConfig) { c.Layers = c.Layers[:1] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := MustLoadWorldConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want tcell.Color
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0)},
		{"00ff00", tcell.NewRGBColor(0, 255, 0)},
		{"#00f", tcell.NewRGBColor(0, 0, 255)},
		{"navy", tcell.ColorNavy},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "not-a-colour"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestLayerRegistry(t *testing.T) {
	reg := NewLayerRegistry(MustLoadWorldConfig())

	if reg.Count() != 3 {
		t.Fatalf("Expected water, sand and grass, got %d", reg.Count())
	}
	if s := reg.GetByName("grass"); s == nil || s.Flag != world.Grass {
		t.Errorf("GetByName(grass) = %+v", s)
	}
	if s := reg.GetByFlag(world.Water); s == nil || s.Name != "water" {
		t.Errorf("GetByFlag(water) = %+v", s)
	}
	if reg.GetByFlag(world.Cell(1<<5)) != nil {
		t.Error("Unknown flag should return nil")
	}

	// Brush cycling wraps around
	order := []world.Cell{world.Water, world.Sand, world.Grass, world.Water}
	for i := 0; i < len(order)-1; i++ {
		if got := reg.Next(order[i]); got != order[i+1] {
			t.Errorf("Next(%v) = %v, want %v", order[i], got, order[i+1])
		}
	}
}
