package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Step period limits and the runtime adjustment factor
const (
	MinPeriod               = 0.0005
	MaxPeriod               = 0.25
	PeriodFactor            = 1.1
	DefaultPeriod           = 0.005
	DefaultMaxStepsPerFrame = 8
)

// Stepper decides how many simulation steps run per frame. In variable mode
// each frame is one step of the frame's delta. In fixed mode frame time is
// accumulated and drained in steps of Period, at most MaxSteps per frame.
type Stepper struct {
	fixed       bool
	period      float64
	maxSteps    int
	accumulator float64
}

// NewStepper creates a variable-step stepper with the given fixed period
func NewStepper(period float64, maxSteps int) *Stepper {
	if maxSteps < 1 {
		maxSteps = DefaultMaxStepsPerFrame
	}
	s := &Stepper{maxSteps: maxSteps}
	s.SetPeriod(period)
	return s
}

// Fixed reports whether the stepper is in fixed-step mode
func (s *Stepper) Fixed() bool {
	return s.fixed
}

// SetFixed switches modes; entering fixed mode starts from an empty accumulator
func (s *Stepper) SetFixed(fixed bool) {
	if fixed && !s.fixed {
		s.accumulator = 0
	}
	s.fixed = fixed
}

// Toggle flips between fixed and variable mode
func (s *Stepper) Toggle() {
	s.SetFixed(!s.fixed)
}

// Period returns the fixed step size in seconds
func (s *Stepper) Period() float64 {
	return s.period
}

// SetPeriod sets the fixed step size, clamped to [MinPeriod, MaxPeriod]
func (s *Stepper) SetPeriod(period float64) {
	if math.IsNaN(period) || period <= 0 {
		period = DefaultPeriod
	}
	s.period = mgl64.Clamp(period, MinPeriod, MaxPeriod)
}

// Grow lengthens the fixed step by PeriodFactor
func (s *Stepper) Grow() {
	s.SetPeriod(s.period * PeriodFactor)
}

// Shrink shortens the fixed step by PeriodFactor
func (s *Stepper) Shrink() {
	s.SetPeriod(s.period / PeriodFactor)
}

// Accumulated returns the time carried to the next frame
func (s *Stepper) Accumulated() float64 {
	return s.accumulator
}

// Advance runs step for the frame delta dt and returns the number of steps
// taken. In fixed mode any backlog left after MaxSteps is dropped to less
// than one period.
func (s *Stepper) Advance(dt float64, step func(dt float64)) int {
	if !s.fixed {
		step(dt)
		return 1
	}

	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.period && steps < s.maxSteps {
		step(s.period)
		s.accumulator -= s.period
		steps++
	}
	if s.accumulator >= s.period {
		s.accumulator = math.Mod(s.accumulator, s.period)
	}
	return steps
}
