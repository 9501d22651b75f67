// Package audio provides a small tone player. It synthesizes square waves
// into the host audio sink and is driven as an update listener, generating
// samples in step with frame time.
package audio

import "ember/hal"

const sampleRate = 22050

type voice struct {
	freq      float64
	remaining float64 // seconds
	phase     float64
	volume    float64
}

// Player mixes active tones into the host audio sink.
//
// OnUpdate generates exactly tpf seconds of audio, so the player never runs
// ahead of the simulation and never blocks the frame thread.
type Player struct {
	sink    hal.Audio
	voices  []voice
	started bool
}

// NewPlayer creates a player over the given sink.
func NewPlayer(sink hal.Audio) *Player {
	return &Player{sink: sink}
}

// Start opens the audio sink.
func (p *Player) Start() error {
	if p.sink == nil || p.started {
		return nil
	}
	if err := p.sink.Start(sampleRate); err != nil {
		return err
	}
	p.started = true
	return nil
}

// Stop closes the audio sink and drops active tones.
func (p *Player) Stop() error {
	p.voices = nil
	if p.sink == nil || !p.started {
		return nil
	}
	p.started = false
	return p.sink.Stop()
}

// PlayTone schedules a square-wave beep. Volume is 0..1.
func (p *Player) PlayTone(freq float64, seconds float64, volume float64) {
	if freq <= 0 || seconds <= 0 {
		return
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.voices = append(p.voices, voice{freq: freq, remaining: seconds, volume: volume})
}

// ActiveTones returns the number of tones still sounding.
func (p *Player) ActiveTones() int { return len(p.voices) }

// OnUpdate synthesizes tpf seconds of output.
func (p *Player) OnUpdate(tpf float64) {
	if !p.started || p.sink == nil {
		p.expire(tpf)
		return
	}

	n := int(tpf * sampleRate)
	for i := 0; i < n; i++ {
		var mix float64
		for vi := range p.voices {
			v := &p.voices[vi]
			v.phase += v.freq / sampleRate
			if v.phase >= 1 {
				v.phase -= 1
			}
			s := -1.0
			if v.phase < 0.5 {
				s = 1.0
			}
			mix += s * v.volume
		}
		if mix > 1 {
			mix = 1
		}
		if mix < -1 {
			mix = -1
		}
		p.sink.WriteSample(int16(mix * 0.25 * 32767))
	}

	p.expire(tpf)
}

func (p *Player) expire(tpf float64) {
	live := p.voices[:0]
	for _, v := range p.voices {
		v.remaining -= tpf
		if v.remaining > 0 {
			live = append(live, v)
		}
	}
	p.voices = live
}
