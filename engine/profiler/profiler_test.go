package profiler

import (
	"strings"
	"testing"
)

type memLogger struct {
	lines []string
}

func (l *memLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *memLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestUpdateAccumulates(t *testing.T) {
	p := New()
	p.Update(60, 2_000_000)
	p.Update(30, 8_000_000)
	p.Update(60, 4_000_000)

	if p.Frames() != 3 {
		t.Fatalf("frames = %d, want 3", p.Frames())
	}

	s := p.Summary()
	for _, want := range []string{"frames=3", "avg_fps=50", "min_fps=30", "max_frame=8.00ms"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary %q missing %q", s, want)
		}
	}
}

func TestInfoReflectsLastFrame(t *testing.T) {
	p := New()
	p.Update(60, 1_500_000)
	if got := p.Info(); !strings.Contains(got, "FPS 60") || !strings.Contains(got, "1.50ms") {
		t.Fatalf("info = %q", got)
	}
}

func TestPrintWritesSummaryOnce(t *testing.T) {
	p := New()
	p.Update(60, 1_000_000)

	log := &memLogger{}
	p.Print(log)
	if len(log.lines) != 1 {
		t.Fatalf("logged %d lines, want 1", len(log.lines))
	}
}

func TestSummaryNoFrames(t *testing.T) {
	p := New()
	if got := p.Summary(); !strings.Contains(got, "no frames") {
		t.Fatalf("summary = %q", got)
	}
}
