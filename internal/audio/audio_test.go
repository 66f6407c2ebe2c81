package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

func drain(s beep.Streamer) (samples int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			if sample[0] > peak {
				peak = sample[0]
			}
		}
		samples += n
		if !ok {
			return samples, peak
		}
	}
}

func TestBumperPitch(t *testing.T) {
	tests := []struct {
		elasticity float64
		want       float64
	}{
		{0, MinBumperPitch},
		{1, MaxBumperPitch},
		{0.5, 550},
		{2, MaxBumperPitch},
		{-1, MinBumperPitch},
	}

	for _, tt := range tests {
		if got := BumperPitch(tt.elasticity); got != tt.want {
			t.Errorf("BumperPitch(%f) = %f, want %f", tt.elasticity, got, tt.want)
		}
	}
}

func TestSquareWave_Length(t *testing.T) {
	n, peak := drain(squareWave(440, 30*time.Millisecond))

	if want := sampleRate.N(30 * time.Millisecond); n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
	if peak != 0.2 {
		t.Errorf("expected peak 0.2, got %f", peak)
	}
}

func TestTone_LengthAndVolume(t *testing.T) {
	s := tone(440, 20*time.Millisecond, 0.5)
	if s == nil {
		t.Fatal("expected a tone")
	}

	n, peak := drain(s)

	if want := sampleRate.N(20 * time.Millisecond); n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
	if peak <= 0 || peak > 0.5+1e-9 {
		t.Errorf("expected peak within half volume, got %f", peak)
	}
}

func TestTone_UnplayablePitch(t *testing.T) {
	if s := tone(float64(sampleRate), 10*time.Millisecond, 1); s != nil {
		t.Error("expected nil for a pitch at the sample rate")
	}
}

func TestPlayWithoutInit(t *testing.T) {
	// must be a no-op when the speaker was never opened
	PlayBallHit()
	PlayBumperHit(0.7)
	PlayWallBounce()
}
