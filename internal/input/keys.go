// Package input tracks keyboard and mouse state between frames.
package input

import "github.com/diegok/pachinko/internal/geom"

// Key identifies a keyboard key or mouse button
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyLeftBracket
	KeyRightBracket
	KeyF6
	KeyF7
	KeyF8
	KeyLeftMouse
	KeyRightMouse
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Letter returns the key for an ASCII letter in either case
func Letter(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A'), true
	}
	return KeyNone, false
}

// Poller is the per-frame input query surface used by game modes
type Poller interface {
	IsKeyDown(k Key) bool
	WasKeyJustPressed(k Key) bool
	// CursorNormalized returns the cursor in [0,1]², origin bottom-left
	CursorNormalized() geom.Vec2
}
