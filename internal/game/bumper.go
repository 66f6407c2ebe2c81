package game

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/physics"
)

// BumperKind is the fixed shape of a bumper
type BumperKind int

const (
	BumperDisc BumperKind = iota
	BumperCapsule
	BumperOBB
)

func (k BumperKind) String() string {
	switch k {
	case BumperDisc:
		return "disc"
	case BumperCapsule:
		return "capsule"
	case BumperOBB:
		return "obb"
	}
	return "unknown"
}

// Bumper is a fixed obstacle. Only the shape named by Kind is meaningful.
type Bumper struct {
	Kind       BumperKind
	Disc       geom.Disc2
	Capsule    geom.Capsule2
	Box        geom.OBB2
	Elasticity float64
	Color      colorful.Color
}

// NewDiscBumper creates a disc bumper
func NewDiscBumper(d geom.Disc2, elasticity float64) Bumper {
	return Bumper{Kind: BumperDisc, Disc: d, Elasticity: elasticity}
}

// NewCapsuleBumper creates a capsule bumper
func NewCapsuleBumper(c geom.Capsule2, elasticity float64) Bumper {
	return Bumper{Kind: BumperCapsule, Capsule: c, Elasticity: elasticity}
}

// NewOBBBumper creates an oriented box bumper
func NewOBBBumper(b geom.OBB2, elasticity float64) Bumper {
	return Bumper{Kind: BumperOBB, Box: b, Elasticity: elasticity}
}

// Bounce resolves body against the bumper's shape and reports contact
func (b *Bumper) Bounce(body *physics.Body) bool {
	switch b.Kind {
	case BumperDisc:
		return physics.BounceDiscOffFixedDisc2D(body, b.Disc, b.Elasticity)
	case BumperCapsule:
		return physics.BounceDiscOffFixedCapsule2D(body, b.Capsule, b.Elasticity)
	case BumperOBB:
		return physics.BounceDiscOffFixedOBB2D(body, b.Box, b.Elasticity)
	}
	return false
}

// Contains reports whether p is inside the bumper
func (b *Bumper) Contains(p geom.Vec2) bool {
	switch b.Kind {
	case BumperDisc:
		return b.Disc.Contains(p)
	case BumperCapsule:
		return b.Capsule.Contains(p)
	case BumperOBB:
		return b.Box.Contains(p)
	}
	return false
}

// Draw fills the bumper's shape
func (b *Bumper) Draw(c Canvas) {
	switch b.Kind {
	case BumperDisc:
		c.FillDisc(b.Disc, b.Color)
	case BumperCapsule:
		c.FillCapsule(b.Capsule, b.Color)
	case BumperOBB:
		c.FillOBB(b.Box, b.Color)
	}
}
