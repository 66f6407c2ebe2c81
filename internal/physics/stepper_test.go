package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepper_VariableRunsOneStep(t *testing.T) {
	s := NewStepper(0.01, 8)

	var got []float64
	steps := s.Advance(0.035, func(dt float64) { got = append(got, dt) })

	if steps != 1 {
		t.Errorf("expected 1 step, got %d", steps)
	}
	require.Equal(t, []float64{0.035}, got)
	require.Zero(t, s.Accumulated(), "variable mode never accumulates")
}

func TestStepper_FixedAccumulator(t *testing.T) {
	s := NewStepper(0.01, 8)
	s.SetFixed(true)

	var got []float64
	steps := s.Advance(0.035, func(dt float64) { got = append(got, dt) })

	if steps != 3 {
		t.Errorf("expected 3 steps, got %d", steps)
	}
	require.Equal(t, []float64{0.01, 0.01, 0.01}, got)
	require.InDelta(t, 0.005, s.Accumulated(), 1e-9)

	steps = s.Advance(0.004, func(float64) {})
	if steps != 0 {
		t.Errorf("expected no step below one period, got %d", steps)
	}
	steps = s.Advance(0.0011, func(float64) {})
	if steps != 1 {
		t.Errorf("expected carried time to complete a step, got %d", steps)
	}
}

func TestStepper_CapsStepsPerFrame(t *testing.T) {
	s := NewStepper(0.01, 4)
	s.SetFixed(true)

	steps := s.Advance(1.0, func(float64) {})

	if steps != 4 {
		t.Errorf("expected 4 steps, got %d", steps)
	}
	require.Less(t, s.Accumulated(), s.Period())
}

func TestStepper_EnteringFixedResetsAccumulator(t *testing.T) {
	s := NewStepper(0.01, 8)
	s.SetFixed(true)
	s.Advance(0.006, func(float64) {})
	require.InDelta(t, 0.006, s.Accumulated(), 1e-12)

	s.Toggle()
	s.Advance(0.5, func(float64) {})
	require.InDelta(t, 0.006, s.Accumulated(), 1e-12, "variable mode leaves the accumulator alone")

	s.Toggle()
	require.True(t, s.Fixed())
	require.Zero(t, s.Accumulated())
}

func TestStepper_PeriodAdjustment(t *testing.T) {
	tests := []struct {
		name   string
		period float64
		want   float64
	}{
		{"in range", 0.005, 0.005},
		{"too small", 0.00001, MinPeriod},
		{"too large", 3, MaxPeriod},
		{"zero uses default", 0, DefaultPeriod},
		{"negative uses default", -1, DefaultPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStepper(tt.period, 8)
			require.InDelta(t, tt.want, s.Period(), 1e-12)
		})
	}

	s := NewStepper(0.01, 8)
	s.Grow()
	require.InDelta(t, 0.011, s.Period(), 1e-12)
	s.Shrink()
	s.Shrink()
	require.InDelta(t, 0.01/1.1, s.Period(), 1e-12)

	for i := 0; i < 200; i++ {
		s.Shrink()
	}
	require.InDelta(t, MinPeriod, s.Period(), 1e-12)
}

func TestNewStepper_DefaultMaxSteps(t *testing.T) {
	s := NewStepper(0.01, 0)
	s.SetFixed(true)

	steps := s.Advance(10, func(float64) {})

	if steps != DefaultMaxStepsPerFrame {
		t.Errorf("expected %d steps, got %d", DefaultMaxStepsPerFrame, steps)
	}
}
