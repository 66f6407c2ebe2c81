package game

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/physics"
)

const (
	DefaultBallElasticity = 0.9
	ElasticityStep        = 0.05
	MinBallRadius         = 0.5 // Floor for misconfigured radius ranges
)

// Ball is a dynamic disc moved by gravity and collisions
type Ball struct {
	physics.Body
	Color colorful.Color
}

// NewBall creates a ball with the default elasticity
func NewBall(pos, vel geom.Vec2, radius float64, color colorful.Color) *Ball {
	if radius < MinBallRadius {
		radius = MinBallRadius
	}
	return &Ball{
		Body: physics.Body{
			Pos:        pos,
			Vel:        vel,
			Radius:     radius,
			Elasticity: DefaultBallElasticity,
		},
		Color: color,
	}
}

// Move advances the ball by its velocity over dt
func (b *Ball) Move(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

// Accelerate adds acceleration over dt to the velocity
func (b *Ball) Accelerate(acceleration geom.Vec2, dt float64) {
	b.Vel = b.Vel.Add(acceleration.Mul(dt))
}

// ClampElasticity keeps elasticity inside [0, 1]
func (b *Ball) ClampElasticity() {
	b.Elasticity = geom.ClampZeroToOne(b.Elasticity)
}
