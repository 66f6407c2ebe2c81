package game

import (
	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/physics"
)

// AudibleImpactSpeed is the smallest velocity change counted as a contact
const AudibleImpactSpeed = 30.0

// Contacts counts the audible impacts since the last drain
type Contacts struct {
	Balls   int
	Bumpers int
	Walls   int

	// BumperElasticity belongs to the most recently struck bumper
	BumperElasticity float64
}

// Any reports whether at least one impact was recorded
func (c Contacts) Any() bool {
	return c.Balls+c.Bumpers+c.Walls > 0
}

// Step advances the scene by dt: integrate, balls vs balls, balls vs bumpers,
// then walls.
func (s *Scene) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.integrate(dt)
	s.ballsVsBalls()
	s.ballsVsBumpers()
	s.ballsVsWalls()
}

func (s *Scene) integrate(dt float64) {
	gravity := geom.Vec2{0, -s.Settings.Gravity}
	for _, b := range s.Balls {
		b.Accelerate(gravity, dt)
		b.Move(dt)
	}
}

func (s *Scene) ballsVsBalls() {
	for i := 0; i < len(s.Balls); i++ {
		for j := i + 1; j < len(s.Balls); j++ {
			a, b := s.Balls[i], s.Balls[j]
			before := a.Vel
			if physics.BounceDiscsOffEachOther2D(&a.Body, &b.Body) && audible(before, a.Vel) {
				s.contacts.Balls++
			}
		}
	}
}

func (s *Scene) ballsVsBumpers() {
	for _, ball := range s.Balls {
		for i := range s.Bumpers {
			bumper := &s.Bumpers[i]
			before := ball.Vel
			if bumper.Bounce(&ball.Body) && audible(before, ball.Vel) {
				s.contacts.Bumpers++
				s.contacts.BumperElasticity = bumper.Elasticity
			}
		}
	}
}

// ballsVsWalls runs the north/south pass for every ball, then the east/west
// pass. There is no ceiling.
func (s *Scene) ballsVsWalls() {
	cfg := s.Settings
	for _, ball := range s.Balls {
		if ball.Pos.Y() >= ball.Radius {
			continue
		}
		if s.BottomWarp {
			if ball.Pos.Y() < -ball.Radius {
				ball.Pos[1] = cfg.Height + ball.Radius + cfg.ExtraWarpHeight
			}
			continue
		}
		s.bounceOffWall(ball, geom.Vec2{ball.Pos.X(), 0}, geom.Vec2{0, 1})
	}

	for _, ball := range s.Balls {
		switch {
		case ball.Pos.X() < ball.Radius:
			s.bounceOffWall(ball, geom.Vec2{0, ball.Pos.Y()}, geom.Vec2{1, 0})
		case ball.Pos.X() > cfg.Width-ball.Radius:
			s.bounceOffWall(ball, geom.Vec2{cfg.Width, ball.Pos.Y()}, geom.Vec2{-1, 0})
		}
	}
}

func (s *Scene) bounceOffWall(ball *Ball, point, normal geom.Vec2) {
	before := ball.Vel
	if physics.BounceDiscOffFixedSurface2D(&ball.Body, point, normal, s.Settings.WallElasticity) && audible(before, ball.Vel) {
		s.contacts.Walls++
	}
}

func audible(before, after geom.Vec2) bool {
	return geom.DistanceSquared2(before, after) > AudibleImpactSpeed*AudibleImpactSpeed
}
