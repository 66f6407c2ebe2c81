package input

import "github.com/diegok/pachinko/internal/geom"

// DefaultHoldFrames keeps a key down for ~133ms at 60Hz after its last event
const DefaultHoldFrames = 8

// State implements Poller from discrete events. Terminals report presses and
// auto-repeats but never releases, so a key counts as down until HoldFrames
// frames pass without another event for it. Mouse buttons have real releases.
type State struct {
	HoldFrames int

	held    map[Key]int
	buttons map[Key]bool
	pressed map[Key]bool
	cursor  geom.Vec2
}

// NewState creates an empty input state
func NewState(holdFrames int) *State {
	if holdFrames < 1 {
		holdFrames = DefaultHoldFrames
	}
	return &State{
		HoldFrames: holdFrames,
		held:       make(map[Key]int),
		buttons:    make(map[Key]bool),
		pressed:    make(map[Key]bool),
	}
}

// Press records a key press or repeat
func (s *State) Press(k Key) {
	if !s.IsKeyDown(k) {
		s.pressed[k] = true
	}
	s.held[k] = s.HoldFrames
}

// SetButton records a mouse button's current state
func (s *State) SetButton(k Key, down bool) {
	if down && !s.buttons[k] {
		s.pressed[k] = true
	}
	s.buttons[k] = down
}

// SetCursor stores the normalised cursor position
func (s *State) SetCursor(uv geom.Vec2) {
	s.cursor = uv
}

// IsKeyDown reports whether k is held
func (s *State) IsKeyDown(k Key) bool {
	return s.held[k] > 0 || s.buttons[k]
}

// WasKeyJustPressed reports whether k went down this frame
func (s *State) WasKeyJustPressed(k Key) bool {
	return s.pressed[k]
}

// CursorNormalized returns the last cursor position
func (s *State) CursorNormalized() geom.Vec2 {
	return s.cursor
}

// EndFrame clears just-pressed keys and ages held ones
func (s *State) EndFrame() {
	clear(s.pressed)
	for k, frames := range s.held {
		if frames <= 1 {
			delete(s.held, k)
			continue
		}
		s.held[k] = frames - 1
	}
}
