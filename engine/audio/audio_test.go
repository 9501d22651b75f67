package audio

import "testing"

type fakeSink struct {
	started bool
	stopped bool
	rate    uint32
	samples int
}

func (s *fakeSink) Start(rate uint32) error { s.started = true; s.rate = rate; return nil }
func (s *fakeSink) Stop() error             { s.stopped = true; return nil }
func (s *fakeSink) SetVolume(uint8)         {}
func (s *fakeSink) WriteSample(int16)       { s.samples++ }
func (s *fakeSink) PendingSamples() int     { return 0 }

func TestPlayToneGeneratesSamples(t *testing.T) {
	sink := &fakeSink{}
	p := NewPlayer(sink)
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}

	p.PlayTone(440, 0.1, 0.5)
	if p.ActiveTones() != 1 {
		t.Fatalf("active = %d, want 1", p.ActiveTones())
	}

	p.OnUpdate(1.0 / 60.0)
	want := int(sampleRate / 60)
	if sink.samples < want-1 || sink.samples > want+1 {
		t.Fatalf("samples = %d, want ~%d", sink.samples, want)
	}
}

func TestToneExpires(t *testing.T) {
	p := NewPlayer(&fakeSink{})
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}

	p.PlayTone(440, 0.05, 1)
	for i := 0; i < 6; i++ {
		p.OnUpdate(0.016)
	}
	if p.ActiveTones() != 0 {
		t.Fatalf("tone still active after its duration: %d", p.ActiveTones())
	}
}

func TestInvalidTonesIgnored(t *testing.T) {
	p := NewPlayer(&fakeSink{})
	p.PlayTone(0, 1, 1)
	p.PlayTone(440, 0, 1)
	if p.ActiveTones() != 0 {
		t.Fatalf("invalid tones were scheduled: %d", p.ActiveTones())
	}
}

func TestStopDropsVoices(t *testing.T) {
	sink := &fakeSink{}
	p := NewPlayer(sink)
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}
	p.PlayTone(440, 10, 1)
	if err := p.Stop(); err != nil {
		t.Fatal(err)
	}
	if !sink.stopped {
		t.Fatal("sink not stopped")
	}
	if p.ActiveTones() != 0 {
		t.Fatal("voices survived stop")
	}
}
