package game

import (
	"math/rand"

	"github.com/diegok/pachinko/internal/geom"
)

// Bumpers are kept this far from the world edges
const bumperMargin = 50.0

// Scene owns the balls, the bumpers and the spawn ray
type Scene struct {
	Settings   Settings
	Balls      []*Ball
	Bumpers    []Bumper
	RayStart   geom.Vec2
	RayEnd     geom.Vec2
	BottomWarp bool

	rng      *rand.Rand
	contacts Contacts
}

// NewScene creates an empty scene with the spawn ray in its default place
func NewScene(settings Settings, rng *rand.Rand) *Scene {
	return &Scene{
		Settings:   settings,
		RayStart:   settings.Center(),
		RayEnd:     geom.Vec2{settings.Width * 0.5625, settings.Height * 0.375},
		BottomWarp: true,
		rng:        rng,
	}
}

// Randomize clears all balls and bumpers and rolls a new bumper layout
func (s *Scene) Randomize() {
	cfg := s.Settings
	s.Balls = s.Balls[:0]
	s.Bumpers = s.Bumpers[:0]

	for i := 0; i < cfg.NumDiscBumpers; i++ {
		center := geom.Vec2{
			randomInRange(s.rng, 0, cfg.Width),
			randomInRange(s.rng, 0, cfg.Height),
		}
		radius := randomInRange(s.rng, cfg.MinDiscBumperRadius, cfg.MaxDiscBumperRadius)
		s.addBumper(NewDiscBumper(geom.Disc2{Center: center, Radius: radius}, s.rollBumperElasticity()))
	}

	for i := 0; i < cfg.NumCapsuleBumpers; i++ {
		center := geom.Vec2{
			randomInRange(s.rng, bumperMargin, cfg.Width-bumperMargin),
			randomInRange(s.rng, bumperMargin, cfg.Height-bumperMargin),
		}
		angle := randomInRange(s.rng, 0, 360)
		length := randomInRange(s.rng, cfg.MinCapsuleBumperLength, cfg.MaxCapsuleBumperLength)
		halfBone := geom.PolarDegrees(angle, length/2)
		capsule := geom.Capsule2{
			Start:  center.Sub(halfBone),
			End:    center.Add(halfBone),
			Radius: randomInRange(s.rng, cfg.MinCapsuleBumperRadius, cfg.MaxCapsuleBumperRadius),
		}
		s.addBumper(NewCapsuleBumper(capsule, s.rollBumperElasticity()))
	}

	for i := 0; i < cfg.NumOBBBumpers; i++ {
		halfWidth := randomInRange(s.rng, cfg.MinOBBBumperHalfWidth, cfg.MaxOBBBumperHalfWidth)
		halfHeight := randomInRange(s.rng, cfg.MinOBBBumperHalfWidth, cfg.MaxOBBBumperHalfWidth)
		center := geom.Vec2{
			randomInRange(s.rng, bumperMargin+halfWidth, cfg.Width-bumperMargin-halfWidth),
			randomInRange(s.rng, bumperMargin+halfHeight, cfg.Height-bumperMargin-halfHeight),
		}
		angle := randomInRange(s.rng, 0, 360)
		box := geom.NewOBB2(center, angle, geom.Vec2{halfWidth, halfHeight})
		s.addBumper(NewOBBBumper(box, s.rollBumperElasticity()))
	}
}

func (s *Scene) rollBumperElasticity() float64 {
	return randomInRange(s.rng, s.Settings.MinBumperElasticity, s.Settings.MaxBumperElasticity)
}

func (s *Scene) addBumper(b Bumper) {
	b.Color = BumperColor(b.Elasticity, s.Settings.MinBumperElasticity, s.Settings.MaxBumperElasticity)
	s.Bumpers = append(s.Bumpers, b)
}

// SpawnBall adds a ball at the ray start moving along the ray
func (s *Scene) SpawnBall() *Ball {
	radius := randomInRange(s.rng, s.Settings.MinBallRadius, s.Settings.MaxBallRadius)
	color := BallColor(randomInRange(s.rng, 0, 0.9))
	ball := NewBall(s.RayStart, s.RayEnd.Sub(s.RayStart), radius, color)
	s.Balls = append(s.Balls, ball)
	return ball
}

// AdjustElasticity shifts every ball's elasticity by delta, staying in [0, 1]
func (s *Scene) AdjustElasticity(delta float64) {
	for _, b := range s.Balls {
		b.Elasticity += delta
		b.ClampElasticity()
	}
}

// ClampElasticity pulls every ball's elasticity back into [0, 1]
func (s *Scene) ClampElasticity() {
	for _, b := range s.Balls {
		b.ClampElasticity()
	}
}

// DrainContacts returns and resets the contacts recorded since the last call
func (s *Scene) DrainContacts() Contacts {
	c := s.contacts
	s.contacts = Contacts{}
	return c
}
