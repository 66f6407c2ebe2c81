// Package clock measures frame time for the game loop.
package clock

import "time"

// MaxFrameDelta caps the unscaled length of one frame in seconds
const MaxFrameDelta = 0.1

// Clock turns successive Tick calls into a scaled frame delta and a running
// total. It is owned by the frame loop and is not safe for concurrent use.
type Clock struct {
	provider TimeProvider
	last     time.Time
	started  bool

	timeScale float64
	delta     float64
	total     float64
	frameRate float64
}

// New creates a clock reading from provider
func New(provider TimeProvider) *Clock {
	if provider == nil {
		provider = SystemTime{}
	}
	return &Clock{provider: provider, timeScale: 1}
}

// Tick starts a new frame. The first tick only records the start time.
func (c *Clock) Tick() {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		c.delta = 0
		return
	}

	raw := now.Sub(c.last).Seconds()
	c.last = now
	if raw < 0 {
		raw = 0
	}
	if raw > 0 {
		c.frameRate = 1 / raw
	}
	if raw > MaxFrameDelta {
		raw = MaxFrameDelta
	}
	c.delta = raw * c.timeScale
	c.total += c.delta
}

// DeltaSeconds returns the scaled length of the last frame
func (c *Clock) DeltaSeconds() float64 {
	return c.delta
}

// TotalSeconds returns the scaled time accumulated over all frames
func (c *Clock) TotalSeconds() float64 {
	return c.total
}

// FrameRate returns frames per second measured on the last unclamped frame
func (c *Clock) FrameRate() float64 {
	return c.frameRate
}

// TimeScale returns the current multiplier
func (c *Clock) TimeScale() float64 {
	return c.timeScale
}

// SetTimeScale sets the multiplier applied to following frames; negative
// values are treated as zero
func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.timeScale = scale
}
