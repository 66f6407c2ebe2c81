package game

import (
	"github.com/diegok/pachinko/internal/config"
	"github.com/diegok/pachinko/internal/geom"
	"github.com/diegok/pachinko/internal/physics"
)

// Settings holds the tuning values read from the game config at startup
type Settings struct {
	Width, Height float64
	Gravity       float64

	FixedTimeStep    float64
	MaxStepsPerFrame int

	MinBallRadius, MaxBallRadius float64

	NumDiscBumpers                           int
	MinDiscBumperRadius, MaxDiscBumperRadius float64

	NumCapsuleBumpers                              int
	MinCapsuleBumperLength, MaxCapsuleBumperLength float64
	MinCapsuleBumperRadius, MaxCapsuleBumperRadius float64

	NumOBBBumpers                                int
	MinOBBBumperHalfWidth, MaxOBBBumperHalfWidth float64

	WallElasticity                           float64
	MinBumperElasticity, MaxBumperElasticity float64
	ExtraWarpHeight                          float64
}

// LoadSettings reads every tuning key. Pachinko values that are missing or
// malformed fall back to zero, which yields empty or degenerate scenes rather
// than errors; world size and timing fall back to the built-in values.
func LoadSettings(b *config.Blackboard) Settings {
	return Settings{
		Width:            b.Float("worldWidth", 1600),
		Height:           b.Float("worldHeight", 800),
		Gravity:          b.Float("pachinkoGravity", 100),
		FixedTimeStep:    b.Float("pachinkoFixedTimeStep", physics.DefaultPeriod),
		MaxStepsPerFrame: b.Int("pachinkoMaxStepsPerFrame", physics.DefaultMaxStepsPerFrame),

		MinBallRadius: b.Float("pachinkoMinBallRadius", 0),
		MaxBallRadius: b.Float("pachinkoMaxBallRadius", 0),

		NumDiscBumpers:      b.Int("pachinkoNumDiscBumpers", 0),
		MinDiscBumperRadius: b.Float("pachinkoMinDiscBumperRadius", 0),
		MaxDiscBumperRadius: b.Float("pachinkoMaxDiscBumperRadius", 0),

		NumCapsuleBumpers:      b.Int("pachinkoNumCapsuleBumpers", 0),
		MinCapsuleBumperLength: b.Float("pachinkoMinCapsuleBumperLength", 0),
		MaxCapsuleBumperLength: b.Float("pachinkoMaxCapsuleBumperLength", 0),
		MinCapsuleBumperRadius: b.Float("pachinkoMinCapsuleBumperRadius", 0),
		MaxCapsuleBumperRadius: b.Float("pachinkoMaxCapsuleBumperRadius", 0),

		NumOBBBumpers:         b.Int("pachinkoNumObbBumpers", 0),
		MinOBBBumperHalfWidth: b.Float("pachinkoMinObbBumperWidth", 0),
		MaxOBBBumperHalfWidth: b.Float("pachinkoMaxObbBumperWidth", 0),

		WallElasticity:      b.Float("pachinkoWallElasticity", 0),
		MinBumperElasticity: b.Float("pachinkoMinBumperElasticity", 0),
		MaxBumperElasticity: b.Float("pachinkoMaxBumperElasticity", 0),
		ExtraWarpHeight:     b.Float("pachinkoExtraWarpHeight", 0),
	}
}

// DefaultSettings returns the built-in configuration
func DefaultSettings() Settings {
	return LoadSettings(config.DefaultBlackboard())
}

// Bounds returns the world rectangle
func (s Settings) Bounds() geom.AABB2 {
	return geom.AABB2{Maxs: geom.Vec2{s.Width, s.Height}}
}

// Center returns the middle of the world
func (s Settings) Center() geom.Vec2 {
	return geom.Vec2{s.Width / 2, s.Height / 2}
}
