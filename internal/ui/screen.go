// Package ui provides the terminal host for tilewalk using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
	closed bool
}

// NewScreen creates and initializes a new terminal screen with mouse reporting on.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return newScreen(s), nil
}

// NewSimulationScreen creates an in-memory screen of the given size, for tests.
func NewSimulationScreen(width, height int) (*Screen, tcell.SimulationScreen, error) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		return nil, nil, err
	}
	s.SetSize(width, height)
	return newScreen(s), s, nil
}

func newScreen(s tcell.Screen) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}
}

// Close finalizes the screen and restores terminal state. Later calls do nothing.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
// It returns nil once the screen has been closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Events forwards terminal events to ch until the screen is closed or done is closed.
func (s *Screen) Events(ch chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case ch <- ev:
		case <-done:
			return
		}
	}
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
