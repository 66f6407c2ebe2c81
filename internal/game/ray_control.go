package game

import (
	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/input"
)

const (
	RaySpeed    = 400.0 // World units per second
	PlayerSpeed = 300.0
)

// keyDirection sums the held keys of a four-key cluster into a unit-ish vector
func keyDirection(in input.Poller, up, down, left, right input.Key) geom.Vec2 {
	var dir geom.Vec2
	if in.IsKeyDown(up) {
		dir[1]++
	}
	if in.IsKeyDown(down) {
		dir[1]--
	}
	if in.IsKeyDown(left) {
		dir[0]--
	}
	if in.IsKeyDown(right) {
		dir[0]++
	}
	return geom.Normalize2(dir)
}

// steerRay moves the ray's endpoints: ESDF moves the start, IJKL the end,
// arrows both. Mouse buttons drop an endpoint at the cursor.
func steerRay(start, end *geom.Vec2, in input.Poller, bounds geom.AABB2, dt float64) {
	step := RaySpeed * dt
	startDir := keyDirection(in, input.KeyE, input.KeyD, input.KeyS, input.KeyF)
	endDir := keyDirection(in, input.KeyI, input.KeyK, input.KeyJ, input.KeyL)
	bothDir := keyDirection(in, input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight)

	*start = start.Add(startDir.Add(bothDir).Mul(step))
	*end = end.Add(endDir.Add(bothDir).Mul(step))

	if in.IsKeyDown(input.KeyLeftMouse) {
		*start = bounds.PointAtUV(in.CursorNormalized())
	}
	if in.IsKeyDown(input.KeyRightMouse) {
		*end = bounds.PointAtUV(in.CursorNormalized())
	}
}
