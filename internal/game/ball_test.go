package game

import (
	"testing"

	"github.com/diegok/pachinko/internal/geom"
)

func TestNewBall_Defaults(t *testing.T) {
	ball := NewBall(geom.Vec2{10, 20}, geom.Vec2{1, -2}, 8, ColorBlue)

	if ball.Elasticity != DefaultBallElasticity {
		t.Errorf("expected elasticity %f, got %f", DefaultBallElasticity, ball.Elasticity)
	}
	if ball.Radius != 8 {
		t.Errorf("expected radius 8, got %f", ball.Radius)
	}
	if ball.Pos != (geom.Vec2{10, 20}) {
		t.Errorf("expected pos (10,20), got %v", ball.Pos)
	}
}

func TestNewBall_RadiusFloor(t *testing.T) {
	ball := NewBall(geom.Vec2{}, geom.Vec2{}, 0, ColorBlue)
	if ball.Radius != MinBallRadius {
		t.Errorf("expected radius %f, got %f", MinBallRadius, ball.Radius)
	}
}

func TestBall_AccelerateThenMove(t *testing.T) {
	ball := NewBall(geom.Vec2{10, 20}, geom.Vec2{4, 0}, 5, ColorBlue)

	ball.Accelerate(geom.Vec2{0, -100}, 0.5)
	ball.Move(0.5)

	if ball.Vel != (geom.Vec2{4, -50}) {
		t.Errorf("expected vel (4,-50), got %v", ball.Vel)
	}
	if ball.Pos != (geom.Vec2{12, -5}) {
		t.Errorf("expected pos (12,-5), got %v", ball.Pos)
	}
}

func TestBall_ClampElasticity(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.1, 0},
		{0.5, 0.5},
		{1.2, 1},
	}

	for _, tt := range tests {
		ball := NewBall(geom.Vec2{}, geom.Vec2{}, 5, ColorBlue)
		ball.Elasticity = tt.in
		ball.ClampElasticity()
		if ball.Elasticity != tt.want {
			t.Errorf("clamp(%f): expected %f, got %f", tt.in, tt.want, ball.Elasticity)
		}
	}
}
