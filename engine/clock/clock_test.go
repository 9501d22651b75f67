package clock

import "testing"

const ms = int64(1e6)

func TestTickStartFirstFrame(t *testing.T) {
	var c Clock
	tpf := c.TickStart(0)
	if tpf != 1.0/60.0 {
		t.Fatalf("first frame tpf = %v, want 1/60", tpf)
	}
	if c.Tick() != 1 {
		t.Fatalf("tick = %d, want 1", c.Tick())
	}
	if c.FPS() != 60 {
		t.Fatalf("fps = %d, want clamped 60", c.FPS())
	}
}

func TestTickStartSteadySixtyHz(t *testing.T) {
	var c Clock
	now := int64(0)
	for i := 0; i < 100; i++ {
		tpf := c.TickStart(now)
		if tpf <= 0 || tpf > 1 {
			t.Fatalf("tick %d: tpf %v out of (0,1]", i, tpf)
		}
		now += 16666667 // ~60 fps
	}
	// 59-60 fps measured; both sides of 55 clamp to 60.
	if c.FPS() != 60 {
		t.Fatalf("fps = %d, want 60", c.FPS())
	}
}

func TestTickStartClampsLowFPS(t *testing.T) {
	var c Clock
	now := int64(0)
	for i := 0; i < fpsSamples+1; i++ {
		c.TickStart(now)
		now += 500 * ms // 2 fps
	}
	if c.FPS() != 60 {
		t.Fatalf("fps = %d, want clamp to 60 for 2 fps input", c.FPS())
	}
}

func TestTickStartMidrangeFPSNotClamped(t *testing.T) {
	var c Clock
	now := int64(0)
	for i := 0; i < fpsSamples+1; i++ {
		c.TickStart(now)
		now += 33333333 // 30 fps
	}
	if got := c.FPS(); got != 30 {
		t.Fatalf("fps = %d, want 30 (unclamped)", got)
	}
	tpf := c.TickStart(now)
	want := 1.0 / float64(c.FPS())
	if tpf != want {
		t.Fatalf("tpf = %v, want %v", tpf, want)
	}
}

func TestTickStartNonMonotonicTimestamps(t *testing.T) {
	var c Clock
	c.TickStart(100 * ms)
	c.TickStart(50 * ms) // goes backwards
	tpf := c.TickStart(50 * ms) // zero delta
	if tpf <= 0 || tpf > 1 {
		t.Fatalf("tpf %v out of (0,1] after clock anomalies", tpf)
	}
	if c.FPS() != 60 {
		t.Fatalf("fps = %d, want 60 after anomalies", c.FPS())
	}
}

func TestFPSCounterMovingAverage(t *testing.T) {
	var f FPSCounter
	if got := f.Update(0); got != 0 {
		t.Fatalf("first update fps = %d, want 0", got)
	}
	now := int64(0)
	var got int
	for i := 0; i < fpsSamples*2; i++ {
		now += 100 * ms // 10 fps
		got = f.Update(now)
	}
	if got != 10 {
		t.Fatalf("smoothed fps = %d, want 10", got)
	}

	f.Reset()
	if got := f.Update(now + 100*ms); got != 0 {
		t.Fatalf("fps after reset = %d, want 0", got)
	}
}
