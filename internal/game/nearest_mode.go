package game

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/input"
)

const shapeMargin = 50.0

// NearestPoint shows the nearest point on each test shape to a movable player point
type NearestPoint struct {
	settings Settings
	rng      *rand.Rand

	Player   geom.Vec2
	Disc     geom.Disc2
	Box      geom.AABB2
	Oriented geom.OBB2
	Capsule  geom.Capsule2
	Segment  geom.LineSegment2
	Line     geom.LineSegment2
	Triangle geom.Triangle2
}

func NewNearestPoint(settings Settings, rng *rand.Rand) *NearestPoint {
	m := &NearestPoint{settings: settings, rng: rng, Player: settings.Center()}
	m.Randomize()
	return m
}

func (m *NearestPoint) Name() string {
	return "Nearest Point"
}

// Randomize places every shape somewhere on screen
func (m *NearestPoint) Randomize() {
	w, h := m.settings.Width, m.settings.Height
	r := m.rng
	inset := func() geom.Vec2 {
		return geom.Vec2{randomInRange(r, shapeMargin, w-shapeMargin), randomInRange(r, shapeMargin, h-shapeMargin)}
	}
	anywhere := func() geom.Vec2 {
		return geom.Vec2{randomInRange(r, 0, w), randomInRange(r, 0, h)}
	}

	m.Disc = geom.Disc2{Center: inset(), Radius: randomInRange(r, 10, 100)}

	mins := inset()
	maxWidth := geom.Clamp(w-shapeMargin-mins.X(), 10, 200)
	maxHeight := geom.Clamp(h-shapeMargin-mins.Y(), 10, 200)
	m.Box = geom.AABB2{Mins: mins, Maxs: mins.Add(geom.Vec2{randomInRange(r, 10, maxWidth), randomInRange(r, 10, maxHeight)})}

	half := geom.Vec2{randomInRange(r, 10, 50), randomInRange(r, 10, 50)}
	m.Oriented = geom.NewOBB2(inset(), randomInRange(r, 0, 360), half)

	m.Capsule = geom.Capsule2{Start: inset(), End: inset(), Radius: randomInRange(r, 15, 45)}
	m.Segment = geom.LineSegment2{Start: anywhere(), End: anywhere()}

	beyond := func() geom.Vec2 {
		return geom.Vec2{randomInRange(r, -1000, w+1000), randomInRange(r, -1000, h+1000)}
	}
	m.Line = geom.LineSegment2{Start: beyond(), End: beyond()}

	// Triangle corners are kept to a fixed window of the default world
	var tri geom.Triangle2
	for i := range tri.Points {
		tri.Points[i] = geom.Vec2{
			randomInRange(r, w*0.4375, w*0.625),
			randomInRange(r, h*0.375, h*0.875),
		}
	}
	m.Triangle = tri
}

func (m *NearestPoint) Update(dt float64, in input.Poller) {
	if in.WasKeyJustPressed(input.KeyF8) {
		m.Randomize()
	}
	dir := keyDirection(in, input.KeyE, input.KeyD, input.KeyS, input.KeyF).
		Add(keyDirection(in, input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight))
	m.Player = m.Player.Add(geom.Normalize2(dir).Mul(PlayerSpeed * dt))
	if in.IsKeyDown(input.KeyLeftMouse) {
		m.Player = m.settings.Bounds().PointAtUV(in.CursorNormalized())
	}
}

// NearestPoints returns the nearest point on each shape, in draw order
func (m *NearestPoint) NearestPoints() []geom.Vec2 {
	p := m.Player
	return []geom.Vec2{
		m.Disc.NearestPoint(p),
		m.Box.NearestPoint(p),
		m.Oriented.NearestPoint(p),
		m.Capsule.NearestPoint(p),
		m.Segment.NearestPoint(p),
		m.Line.NearestPointOnInfiniteLine(p),
		m.Triangle.NearestPoint(p),
	}
}

// Closest returns the index into NearestPoints of the point nearest the player
func (m *NearestPoint) Closest(points []geom.Vec2) int {
	best := -1
	bestDistSq := 0.0
	for i, pt := range points {
		d := geom.DistanceSquared2(pt, m.Player)
		if best < 0 || d < bestDistSq {
			best, bestDistSq = i, d
		}
	}
	return best
}

func (m *NearestPoint) Render(c Canvas) {
	p := m.Player
	fill := func(inside bool) colorful.Color {
		if inside {
			return ColorLightBlue
		}
		return ColorSteel
	}

	c.FillDisc(m.Disc, fill(m.Disc.Contains(p)))
	c.FillAABB(m.Box, fill(m.Box.Contains(p)))
	c.FillOBB(m.Oriented, fill(m.Oriented.Contains(p)))
	c.FillCapsule(m.Capsule, fill(m.Capsule.Contains(p)))
	c.FillTriangle(m.Triangle, fill(m.Triangle.Contains(p)))
	c.Line(m.Segment.Start, m.Segment.End, ColorSteel)
	c.Line(m.Line.Start, m.Line.End, ColorSteel)

	points := m.NearestPoints()
	closest := m.Closest(points)
	for i, pt := range points {
		color := ColorOrange
		if i == closest {
			color = ColorGreen
		}
		c.Line(p, pt, ColorDarkGray)
		c.Point(pt, color)
	}
	c.Point(p, ColorWhite)

	c.Text(1, "ESDF/arrows/left mouse move the point, F8 randomize", ColorWhite)
}
