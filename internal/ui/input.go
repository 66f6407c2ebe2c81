package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/input"
)

// KeyFromEvent maps a terminal key event onto the game's key set
func KeyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	return KeyFromCode(ev.Key(), ev.Rune())
}

// KeyFromCode maps a tcell key code, and its rune for KeyRune, onto the game's key set
func KeyFromCode(key tcell.Key, r rune) (input.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyF6:
		return input.KeyF6, true
	case tcell.KeyF7:
		return input.KeyF7, true
	case tcell.KeyF8:
		return input.KeyF8, true
	case tcell.KeyRune:
		return runeKey(r)
	}
	return input.KeyNone, false
}

func runeKey(r rune) (input.Key, bool) {
	switch r {
	case ' ':
		return input.KeySpace, true
	case '[':
		return input.KeyLeftBracket, true
	case ']':
		return input.KeyRightBracket, true
	}
	return input.Letter(r)
}

// ApplyMouse records button state and the cursor position for a mouse event
func ApplyMouse(state *input.State, ev *tcell.EventMouse, screenW, screenH int) {
	x, y := ev.Position()
	state.SetCursor(CursorUV(x, y, screenW, screenH))
	buttons := ev.Buttons()
	state.SetButton(input.KeyLeftMouse, buttons&tcell.Button1 != 0)
	state.SetButton(input.KeyRightMouse, buttons&tcell.Button2 != 0)
}

// CursorUV converts a cell position to [0,1]² with the origin at the bottom left
func CursorUV(x, y, screenW, screenH int) geom.Vec2 {
	if screenW <= 0 || screenH <= 0 {
		return geom.Vec2{}
	}
	return geom.Vec2{
		(float64(x) + 0.5) / float64(screenW),
		1 - (float64(y)+0.5)/float64(screenH),
	}
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
