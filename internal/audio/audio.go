// Package audio plays short synthesized cues for simulation contacts.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/pachinko/internal/geom"
)

const (
	sampleRate = beep.SampleRate(44100)

	MinBumperPitch = 220.0
	MaxBumperPitch = 880.0
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// withVolume scales s by a linear volume in [0, 1]
func withVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a sine tone of the given length, or nil for an unplayable pitch
func tone(freq float64, duration time.Duration, vol float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return withVolume(beep.Take(sampleRate.N(duration), sine), vol)
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// BumperPitch maps a bumper's elasticity onto a tone; bouncier bumpers ring higher
func BumperPitch(elasticity float64) float64 {
	return geom.RangeMapClamped(elasticity, 0, 1, MinBumperPitch, MaxBumperPitch)
}

func play(s beep.Streamer) {
	if !initialized || s == nil {
		return
	}
	speaker.Play(s)
}

// PlayBallHit plays the sound for two balls colliding
func PlayBallHit() {
	play(tone(1320, 25*time.Millisecond, 0.3))
}

// PlayBumperHit plays a tone pitched by the struck bumper's elasticity
func PlayBumperHit(elasticity float64) {
	play(tone(BumperPitch(elasticity), 40*time.Millisecond, 0.4))
}

// PlayWallBounce plays the sound for a ball hitting a side wall or the floor
func PlayWallBounce() {
	play(squareWave(440, 30*time.Millisecond))
}
