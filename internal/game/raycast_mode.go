package game

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/input"
)

const (
	raycastShapeCount = 12
	normalDrawLength  = 100.0
	maxSegmentLength  = 200.0
)

// Raycast casts a steerable ray against a set of randomised shapes of one kind
type Raycast[S any] struct {
	name     string
	settings Settings
	rng      *rand.Rand

	RayStart geom.Vec2
	RayEnd   geom.Vec2
	Shapes   []S

	// axisSnap enables V and H, which line the end up with the start
	axisSnap bool

	spawn func(r *rand.Rand, s Settings) S
	cast  func(start, fwd geom.Vec2, maxDist float64, shape S) geom.RaycastResult2D
	draw  func(c Canvas, shape S, color colorful.Color)
}

func newRaycast[S any](name string, settings Settings, rng *rand.Rand,
	spawn func(*rand.Rand, Settings) S,
	cast func(geom.Vec2, geom.Vec2, float64, S) geom.RaycastResult2D,
	draw func(Canvas, S, colorful.Color),
) *Raycast[S] {
	m := &Raycast[S]{
		name:     name,
		settings: settings,
		rng:      rng,
		RayStart: settings.Center(),
		RayEnd:   geom.Vec2{settings.Width * 0.5625, settings.Height * 0.375},
		spawn:    spawn,
		cast:     cast,
		draw:     draw,
	}
	m.Randomize()
	return m
}

// NewRaycastDiscs casts against discs anywhere on screen
func NewRaycastDiscs(settings Settings, rng *rand.Rand) *Raycast[geom.Disc2] {
	return newRaycast("Raycast vs Discs", settings, rng,
		func(r *rand.Rand, s Settings) geom.Disc2 {
			return geom.Disc2{
				Center: geom.Vec2{randomInRange(r, 0, s.Width), randomInRange(r, 0, s.Height)},
				Radius: randomInRange(r, 10, 170),
			}
		},
		geom.RaycastVsDisc2D,
		func(c Canvas, d geom.Disc2, color colorful.Color) { c.FillDisc(d, color) },
	)
}

// NewRaycastSegments casts against line segments whose endpoints are rolled
// anywhere on screen; long segments are shortened towards their start.
func NewRaycastSegments(settings Settings, rng *rand.Rand) *Raycast[geom.LineSegment2] {
	return newRaycast("Raycast vs Line Segments", settings, rng,
		func(r *rand.Rand, s Settings) geom.LineSegment2 {
			start := geom.Vec2{randomInRange(r, 0, s.Width), randomInRange(r, 0, s.Height)}
			end := geom.Vec2{randomInRange(r, 0, s.Width), randomInRange(r, 0, s.Height)}
			return geom.LineSegment2{Start: start, End: start.Add(geom.ClampLength2(end.Sub(start), maxSegmentLength))}
		},
		geom.RaycastVsLineSegment2D,
		func(c Canvas, s geom.LineSegment2, color colorful.Color) { c.Line(s.Start, s.End, color) },
	)
}

// NewRaycastAABB2s casts against axis aligned boxes
func NewRaycastAABB2s(settings Settings, rng *rand.Rand) *Raycast[geom.AABB2] {
	m := newRaycast("Raycast vs AABB2s", settings, rng,
		func(r *rand.Rand, s Settings) geom.AABB2 {
			mins := geom.Vec2{randomInRange(r, 0, s.Width-shapeMargin), randomInRange(r, 0, s.Height-shapeMargin)}
			return geom.AABB2{Mins: mins, Maxs: mins.Add(geom.Vec2{randomInRange(r, 20, 200), randomInRange(r, 20, 150)})}
		},
		geom.RaycastVsAABB2D,
		func(c Canvas, b geom.AABB2, color colorful.Color) { c.FillAABB(b, color) },
	)
	m.axisSnap = true
	return m
}

func (m *Raycast[S]) Name() string {
	return m.name
}

// Randomize replaces every shape
func (m *Raycast[S]) Randomize() {
	m.Shapes = m.Shapes[:0]
	for i := 0; i < raycastShapeCount; i++ {
		m.Shapes = append(m.Shapes, m.spawn(m.rng, m.settings))
	}
}

func (m *Raycast[S]) Update(dt float64, in input.Poller) {
	if in.WasKeyJustPressed(input.KeyF8) {
		m.Randomize()
	}
	steerRay(&m.RayStart, &m.RayEnd, in, m.settings.Bounds(), dt)

	if m.axisSnap {
		if in.WasKeyJustPressed(input.KeyV) {
			m.RayEnd[0] = m.RayStart.X()
		}
		if in.WasKeyJustPressed(input.KeyH) {
			m.RayEnd[1] = m.RayStart.Y()
		}
	}
}

// Cast returns the nearest impact and the index of the shape it hit, or -1
func (m *Raycast[S]) Cast() (geom.RaycastResult2D, int) {
	fwd := m.RayEnd.Sub(m.RayStart)
	maxDist := fwd.Len()
	results := make([]geom.RaycastResult2D, len(m.Shapes))
	for i, shape := range m.Shapes {
		results[i] = m.cast(m.RayStart, fwd, maxDist, shape)
	}
	nearest := geom.NearestHit2D(results)
	if nearest < 0 {
		ray, _ := geom.RayBetween2(m.RayStart, m.RayEnd)
		return geom.RaycastResult2D{RayStart: ray.Start, RayFwdNormal: ray.Fwd, RayMaxLength: ray.MaxDist}, -1
	}
	return results[nearest], nearest
}

func (m *Raycast[S]) Render(c Canvas) {
	hit, hitIndex := m.Cast()
	for i, shape := range m.Shapes {
		color := ColorSteel
		if i == hitIndex {
			color = ColorLightBlue
		}
		m.draw(c, shape, color)
	}

	if hitIndex < 0 {
		c.Arrow(m.RayStart, m.RayEnd, ColorWhite)
	} else {
		c.Arrow(m.RayStart, m.RayEnd, ColorDarkGray)
		c.Arrow(m.RayStart, hit.ImpactPos, ColorOrange)
		c.Arrow(hit.ImpactPos, hit.ImpactPos.Add(hit.ImpactNormal.Mul(normalDrawLength)), ColorCyan)
		c.Point(hit.ImpactPos, ColorWhite)
	}

	help := "ESDF start, IJKL end, arrows both, mouse buttons place, F8 randomize"
	if m.axisSnap {
		help += ", V/H snap end to start"
	}
	c.Text(1, help, ColorWhite)
}
