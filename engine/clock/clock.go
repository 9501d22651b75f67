// Package clock converts host frame timestamps into a stable time-step.
package clock

// fpsSamples is the moving-average window for the FPS estimate.
const fpsSamples = 32

// FPSCounter smooths instantaneous frame deltas into an fps estimate.
type FPSCounter struct {
	samples [fpsSamples]int64
	idx     int
	count   int
	sum     int64
	last    int64
	started bool
}

// Update feeds a monotonic nanosecond timestamp and returns the smoothed fps.
// The first call has no prior sample and reports 0.
func (c *FPSCounter) Update(now int64) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	delta := now - c.last
	c.last = now
	if delta <= 0 {
		// Non-monotonic or duplicate timestamp; contributes nothing.
		return c.fps()
	}

	if c.count == fpsSamples {
		c.sum -= c.samples[c.idx]
	} else {
		c.count++
	}
	c.samples[c.idx] = delta
	c.sum += delta
	c.idx = (c.idx + 1) % fpsSamples

	return c.fps()
}

func (c *FPSCounter) fps() int {
	if c.count == 0 || c.sum <= 0 {
		return 0
	}
	avg := c.sum / int64(c.count)
	if avg <= 0 {
		return 0
	}
	return int(1e9 / avg)
}

// Reset discards all samples.
func (c *FPSCounter) Reset() {
	*c = FPSCounter{}
}

// Clock owns the per-tick timebase: tick counter, smoothed fps, and the
// time-per-frame step handed to update logic.
type Clock struct {
	counter FPSCounter
	tick    uint64
	fps     int
}

// TickStart advances the clock for a new frame and returns tpf in seconds.
//
// Readings below 5 fps or above 55 fps are forced to 60: very low values come
// from stalls or startup, near-60 jitter comes from host delivery noise, and
// both produce an unstable step. The result is always in (0, 1].
func (c *Clock) TickStart(now int64) float64 {
	c.tick++

	c.fps = c.counter.Update(now)
	if c.fps < 5 || c.fps > 55 {
		c.fps = 60
	}

	return 1.0 / float64(c.fps)
}

// Tick returns the number of frames observed so far.
func (c *Clock) Tick() uint64 { return c.tick }

// FPS returns the effective fps used for the most recent tick.
func (c *Clock) FPS() int { return c.fps }
