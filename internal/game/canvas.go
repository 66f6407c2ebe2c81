package game

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/input"
)

// Canvas receives draw requests in world coordinates. Text rows count down
// from the top of the view.
type Canvas interface {
	FillDisc(d geom.Disc2, c colorful.Color)
	FillCapsule(cp geom.Capsule2, c colorful.Color)
	FillOBB(b geom.OBB2, c colorful.Color)
	FillAABB(b geom.AABB2, c colorful.Color)
	FillTriangle(t geom.Triangle2, c colorful.Color)
	Ring(d geom.Disc2, c colorful.Color)
	Line(from, to geom.Vec2, c colorful.Color)
	Arrow(from, to geom.Vec2, c colorful.Color)
	Point(p geom.Vec2, c colorful.Color)
	Text(row int, text string, c colorful.Color)
}

// Mode is one interactive scene selectable with F6/F7
type Mode interface {
	Name() string
	Update(dt float64, in input.Poller)
	Render(c Canvas)
}

// TimeScaler is implemented by modes that run the clock at a different base speed
type TimeScaler interface {
	TimeScale() float64
}

// ContactReporter is implemented by modes that simulate collisions
type ContactReporter interface {
	DrainContacts() Contacts
}
