// Package profiler collects per-tick frame diagnostics.
//
// The profiler is a pure observer: it receives (fps, frame cost) after each
// tick, can render a one-line overlay, and prints a summary once on exit.
// It never influences the tick itself.
package profiler

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"

	"ember/engine/scene"
	"ember/hal"
)

// Profiler accumulates frame statistics.
type Profiler struct {
	frames     uint64
	fpsSum     uint64
	minFPS     int
	maxFrameNS int64
	sumFrameNS int64

	lastFPS     int
	lastFrameNS int64

	font tinyfont.Fonter
}

// New returns an empty profiler using the default overlay font.
func New() *Profiler {
	return &Profiler{minFPS: -1, font: &tinyfont.Picopixel}
}

// SetFont overrides the overlay font.
func (p *Profiler) SetFont(f tinyfont.Fonter) {
	if f != nil {
		p.font = f
	}
}

// Update records one frame's fps reading and wall-clock cost.
func (p *Profiler) Update(fps int, frameNanos int64) {
	p.frames++
	p.fpsSum += uint64(fps)
	if p.minFPS < 0 || fps < p.minFPS {
		p.minFPS = fps
	}
	if frameNanos > p.maxFrameNS {
		p.maxFrameNS = frameNanos
	}
	p.sumFrameNS += frameNanos

	p.lastFPS = fps
	p.lastFrameNS = frameNanos
}

// Frames returns the number of recorded frames.
func (p *Profiler) Frames() uint64 { return p.frames }

// Info returns the one-line overlay text for the current frame.
func (p *Profiler) Info() string {
	return fmt.Sprintf("FPS %d  frame %.2fms", p.lastFPS, float64(p.lastFrameNS)/1e6)
}

// Summary returns the whole-run report printed on exit.
func (p *Profiler) Summary() string {
	if p.frames == 0 {
		return "profiler: no frames recorded"
	}
	avgFPS := p.fpsSum / p.frames
	avgMS := float64(p.sumFrameNS) / float64(p.frames) / 1e6
	maxMS := float64(p.maxFrameNS) / 1e6
	return fmt.Sprintf(
		"profiler: frames=%d avg_fps=%d min_fps=%d avg_frame=%.2fms max_frame=%.2fms",
		p.frames, avgFPS, p.minFPS, avgMS, maxMS,
	)
}

// Print writes the summary to the logger.
func (p *Profiler) Print(log hal.Logger) {
	if log != nil {
		log.WriteLineString(p.Summary())
	}
}

// DrawOverlay renders the info line near the bottom of the framebuffer.
func (p *Profiler) DrawOverlay(fb hal.Framebuffer) {
	if fb == nil {
		return
	}
	t := scene.NewTarget(fb)
	tinyfont.WriteLine(t, p.font, 2, int16(fb.Height()-4), p.Info(), color.RGBA{R: 0xFF, A: 0xFF})
}
