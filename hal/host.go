package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	disp   *hostDisplay
	kbd    *hostKeyboard
	clk    *hostClock
	aud    *hostAudio
}

// New returns a host HAL implementation backed by an in-memory framebuffer.
func New(width, height int) HAL {
	fb := newHostFramebuffer(width, height)
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     fb,
		disp:   newHostDisplay(fb),
		kbd:    newHostKeyboard(),
		clk:    newHostClock(),
		aud:    newHostAudio(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock     { return h.clk }
func (h *hostHAL) Audio() Audio     { return h.aud }

type hostDisplay struct {
	fb    *hostFramebuffer
	close chan struct{}
}

func newHostDisplay(fb *hostFramebuffer) *hostDisplay {
	return &hostDisplay{fb: fb, close: make(chan struct{}, 1)}
}

func (d *hostDisplay) Framebuffer() Framebuffer       { return d.fb }
func (d *hostDisplay) CloseRequests() <-chan struct{} { return d.close }

func (d *hostDisplay) requestClose() {
	select {
	case d.close <- struct{}{}:
	default:
	}
}

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
