// Package prefs persists editor preferences (the paint brush) between sessions.
// The grid itself is never saved.
package prefs

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/tilewalk/internal/world"
)

const (
	// AppName is the gdata application directory name.
	AppName = "tilewalk"

	prefsObject   = "prefs"
	prefsProperty = "brush"
)

// Prefs is the persisted editor state.
type Prefs struct {
	BrushType string `yaml:"brushType"`
	BrushMode string `yaml:"brushMode"`
}

// Brush converts the stored names back to a cell type and paint mode.
func (p Prefs) Brush() (world.Cell, world.PaintMode, error) {
	t, err := world.ParseCell(p.BrushType)
	if err != nil {
		return world.Water, world.PaintOverlay, err
	}
	m, err := world.ParsePaintMode(p.BrushMode)
	if err != nil {
		return world.Water, world.PaintOverlay, err
	}
	return t, m, nil
}

// Store loads and saves Prefs. A Store without a gdata manager keeps
// preferences in memory only.
type Store struct {
	manager *gdata.Manager
	prefs   Prefs
	loaded  bool
}

// Open opens the platform data directory for AppName. On failure the
// returned store is memory-only and the error explains why.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewStore(nil), fmt.Errorf("open preference storage: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps a gdata manager, which may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Load returns the saved preferences. ok is false when nothing was saved
// or the saved data could not be read.
func (s *Store) Load() (p Prefs, ok bool) {
	if s.loaded {
		return s.prefs, true
	}
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return Prefs{}, false
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		log.Printf("[Prefs] Warning: failed to load preferences: %v", err)
		return Prefs{}, false
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		log.Printf("[Prefs] Warning: failed to parse preferences: %v", err)
		return Prefs{}, false
	}

	s.prefs = p
	s.loaded = true
	return p, true
}

// Save stores the brush. Memory-only stores just remember it.
func (s *Store) Save(brush world.Cell, mode world.PaintMode) error {
	s.prefs = Prefs{BrushType: brush.String(), BrushMode: mode.String()}
	s.loaded = true
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
