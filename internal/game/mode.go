package game

import (
	"math/rand"

	"github.com/diegok/pachinko/internal/config"
)

// ModeID enumerates the selectable modes in F6/F7 order
type ModeID int

const (
	ModeNearestPoint ModeID = iota
	ModeRaycastDiscs
	ModeRaycastSegments
	ModeRaycastAABB2s
	ModePachinko

	modeCount
)

// Next wraps around to the first mode after the last
func (id ModeID) Next() ModeID {
	return (id + 1) % modeCount
}

// Prev wraps around to the last mode before the first
func (id ModeID) Prev() ModeID {
	return (id + modeCount - 1) % modeCount
}

func (id ModeID) String() string {
	if id < 0 || id >= modeCount {
		return "unknown"
	}
	return config.ModeNames[id]
}

// ModeFromName maps a command line mode name to its ID
func ModeFromName(name string) (ModeID, bool) {
	for i, n := range config.ModeNames {
		if n == name && ModeID(i) < modeCount {
			return ModeID(i), true
		}
	}
	return ModePachinko, false
}

// NewMode creates a fresh instance of the mode
func NewMode(id ModeID, settings Settings, rng *rand.Rand, fixedStep bool) Mode {
	switch id {
	case ModeNearestPoint:
		return NewNearestPoint(settings, rng)
	case ModeRaycastDiscs:
		return NewRaycastDiscs(settings, rng)
	case ModeRaycastSegments:
		return NewRaycastSegments(settings, rng)
	case ModeRaycastAABB2s:
		return NewRaycastAABB2s(settings, rng)
	default:
		return NewPachinko(settings, rng, fixedStep)
	}
}
