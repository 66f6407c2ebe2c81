package game

import (
	"math/rand"
	"time"
)

// NewRand returns a generator for scene randomisation. Seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// randomInRange rolls uniformly in [lo, hi]; reversed bounds are fine
func randomInRange(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
