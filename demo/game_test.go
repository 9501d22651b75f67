package demo

import (
	"testing"
	"time"

	"ember/engine/app"
	"ember/engine/settings"
	"ember/hal"
)

type stubLogger struct{}

func (stubLogger) WriteLineString(string) {}
func (stubLogger) WriteLineBytes([]byte)  {}

type stubFramebuffer struct {
	w, h int
	buf  []byte
}

func (f *stubFramebuffer) Width() int              { return f.w }
func (f *stubFramebuffer) Height() int             { return f.h }
func (f *stubFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *stubFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *stubFramebuffer) Buffer() []byte          { return f.buf }
func (f *stubFramebuffer) ClearRGB(r, g, b uint8)  {}
func (f *stubFramebuffer) Present() error          { return nil }

type stubDisplay struct {
	fb    *stubFramebuffer
	close chan struct{}
}

func (d *stubDisplay) Framebuffer() hal.Framebuffer   { return d.fb }
func (d *stubDisplay) CloseRequests() <-chan struct{} { return d.close }

type stubKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *stubKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type stubInput struct {
	kbd *stubKeyboard
}

func (i *stubInput) Keyboard() hal.Keyboard { return i.kbd }

type stubClock struct {
	now int64
}

func (c *stubClock) Now() int64 { return c.now }

type stubAudio struct{}

func (stubAudio) Start(uint32) error  { return nil }
func (stubAudio) Stop() error         { return nil }
func (stubAudio) SetVolume(uint8)     {}
func (stubAudio) WriteSample(int16)   {}
func (stubAudio) PendingSamples() int { return 0 }

type stubHAL struct {
	display *stubDisplay
	input   *stubInput
	clk     *stubClock
}

func newStubHAL(w, h int) *stubHAL {
	return &stubHAL{
		display: &stubDisplay{
			fb:    &stubFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)},
			close: make(chan struct{}, 1),
		},
		input: &stubInput{kbd: &stubKeyboard{ch: make(chan hal.KeyEvent, 16)}},
		clk:   &stubClock{},
	}
}

func (h *stubHAL) Logger() hal.Logger   { return stubLogger{} }
func (h *stubHAL) Display() hal.Display { return h.display }
func (h *stubHAL) Input() hal.Input     { return h.input }
func (h *stubHAL) Clock() hal.Clock     { return h.clk }
func (h *stubHAL) Audio() hal.Audio     { return stubAudio{} }

func startGame(t *testing.T) (*app.App, *stubHAL, func() error) {
	t.Helper()

	cfg := settings.Default()
	cfg.Width = 64
	cfg.Height = 64
	cfg.Menus = false
	cfg.Intro = false
	cfg.Audio = false
	cfg.SavePath = ""

	h := newStubHAL(cfg.Width, cfg.Height)
	g := New()
	a := app.New(cfg, h, g, g)
	if err := a.Bootstrap(); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	var now int64
	step := func() error {
		now += 16_666_666
		h.clk.now = now
		return a.Step(now)
	}

	deadline := time.Now().Add(2 * time.Second)
	for a.Machine().Current() != app.StatePlaying {
		if time.Now().After(deadline) {
			t.Fatalf("never reached playing, state=%s", a.Machine().Current())
		}
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		time.Sleep(time.Millisecond)
	}
	return a, h, step
}

func TestGameStartsWithPlayerAndDefaults(t *testing.T) {
	a, _, _ := startGame(t)

	play := a.Machine().Play()
	players := play.World().EntitiesByType("player")
	if len(players) != 1 {
		t.Fatalf("players = %d, want 1", len(players))
	}
	if got := play.Vars().Int("lives"); got != 3 {
		t.Fatalf("lives = %d, want 3", got)
	}
	if got := play.Vars().Int("score"); got != 0 {
		t.Fatalf("score = %d, want 0", got)
	}
}

func TestBlocksSpawnAndScoreAccumulates(t *testing.T) {
	a, _, step := startGame(t)
	play := a.Machine().Play()

	// ~2 gameplay seconds at 60 fps.
	for i := 0; i < 125; i++ {
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	if got := len(play.World().EntitiesByType("block")); got == 0 {
		t.Fatal("no blocks spawned after two seconds")
	}
	if got := play.Vars().Int("score"); got < 1 {
		t.Fatalf("score = %d after two seconds, want >= 1", got)
	}
}

func TestPlayerStaysInsideBounds(t *testing.T) {
	a, h, step := startGame(t)
	play := a.Machine().Play()

	h.input.kbd.ch <- hal.KeyEvent{Code: hal.KeyLeft, Press: true}
	for i := 0; i < 120; i++ {
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	p := play.World().EntitiesByType("player")[0]
	if p.X != 0 {
		t.Fatalf("player x = %v after holding left, want 0", p.X)
	}

	h.input.kbd.ch <- hal.KeyEvent{Code: hal.KeyLeft, Press: false}
	h.input.kbd.ch <- hal.KeyEvent{Code: hal.KeyRight, Press: true}
	for i := 0; i < 120; i++ {
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if want := 64 - p.W; p.X != want {
		t.Fatalf("player x = %v after holding right, want %v", p.X, want)
	}
}

func TestCollisionCostsALife(t *testing.T) {
	a, _, step := startGame(t)
	play := a.Machine().Play()

	p := play.World().EntitiesByType("player")[0]
	b := play.World().Spawn("block", p.X, p.Y)
	b.W, b.H = 12, 12

	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := play.Vars().Int("lives"); got != 2 {
		t.Fatalf("lives = %d after collision, want 2", got)
	}
	if got := len(play.World().EntitiesByType("block")); got != 0 {
		t.Fatalf("block survived collision, count = %d", got)
	}
}
