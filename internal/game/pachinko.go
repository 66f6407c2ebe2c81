package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/input"
	"github.com/diegok/pachinko/internal/physics"
)

// PachinkoTimeScale is the clock speed the Pachinko mode asks for
const PachinkoTimeScale = 2.0

// Pachinko drops balls through a field of bumpers
type Pachinko struct {
	Scene   *Scene
	Stepper *physics.Stepper

	lastSteps int
}

// NewPachinko builds the mode with a freshly randomised bumper layout
func NewPachinko(settings Settings, rng *rand.Rand, fixedStep bool) *Pachinko {
	p := &Pachinko{
		Scene:   NewScene(settings, rng),
		Stepper: physics.NewStepper(settings.FixedTimeStep, settings.MaxStepsPerFrame),
	}
	p.Stepper.SetFixed(fixedStep)
	p.Randomize()
	return p
}

func (p *Pachinko) Name() string {
	return "Pachinko Machine (2D)"
}

func (p *Pachinko) TimeScale() float64 {
	return PachinkoTimeScale
}

func (p *Pachinko) DrainContacts() Contacts {
	return p.Scene.DrainContacts()
}

// Randomize rolls a new bumper layout and removes all balls
func (p *Pachinko) Randomize() {
	p.Scene.Randomize()
	log.Printf("pachinko: %d bumpers", len(p.Scene.Bumpers))
}

func (p *Pachinko) Update(dt float64, in input.Poller) {
	s := p.Scene

	if in.WasKeyJustPressed(input.KeyF8) {
		p.Randomize()
	}
	if in.WasKeyJustPressed(input.KeyG) {
		s.AdjustElasticity(-ElasticityStep)
	}
	if in.WasKeyJustPressed(input.KeyH) {
		s.AdjustElasticity(ElasticityStep)
	}
	s.ClampElasticity()
	if in.WasKeyJustPressed(input.KeyB) {
		s.BottomWarp = !s.BottomWarp
	}
	if in.WasKeyJustPressed(input.KeyP) {
		p.Stepper.Toggle()
	}
	if p.Stepper.Fixed() {
		if in.WasKeyJustPressed(input.KeyRightBracket) {
			p.Stepper.Grow()
		}
		if in.WasKeyJustPressed(input.KeyLeftBracket) {
			p.Stepper.Shrink()
		}
	}

	steerRay(&s.RayStart, &s.RayEnd, in, s.Settings.Bounds(), dt)

	if in.WasKeyJustPressed(input.KeySpace) || in.IsKeyDown(input.KeyN) {
		s.SpawnBall()
	}

	p.lastSteps = p.Stepper.Advance(dt, s.Step)
}

func (p *Pachinko) Render(c Canvas) {
	s := p.Scene
	for i := range s.Bumpers {
		s.Bumpers[i].Draw(c)
	}
	for _, b := range s.Balls {
		c.FillDisc(b.Disc(), b.Color)
	}

	c.Arrow(s.RayStart, s.RayEnd, ColorGold)
	c.Ring(geom.Disc2{Center: s.RayStart, Radius: s.Settings.MinBallRadius}, ColorAliceBlue)
	c.Ring(geom.Disc2{Center: s.RayStart, Radius: s.Settings.MaxBallRadius}, ColorAliceBlue)

	c.Text(1, "F8 randomize, Space/N spawn ball, G/H elasticity, B warp, P timestep, [ ] step size", ColorWhite)
	c.Text(2, p.status(), ColorWhite)
}

func (p *Pachinko) status() string {
	s := p.Scene
	timestep := "variable timestep"
	if p.Stepper.Fixed() {
		timestep = fmt.Sprintf("fixed timestep %.4fs (%d steps)", p.Stepper.Period(), p.lastSteps)
	}
	elasticity := "-"
	if len(s.Balls) > 0 {
		elasticity = fmt.Sprintf("%.2f", s.Balls[0].Elasticity)
	}
	warp := "off"
	if s.BottomWarp {
		warp = "on"
	}
	return fmt.Sprintf("%d balls, %s, elasticity %s, bottom warp %s", len(s.Balls), timestep, elasticity, warp)
}
