package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrShutdown is returned by a frame step to request a clean host shutdown.
var ErrShutdown = errors.New("shutdown requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
	KeyTab
	KeyF1
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer and the window close signal.
type Display interface {
	Framebuffer() Framebuffer

	// CloseRequests delivers one value per user close request (window X button).
	// The host never blocks on delivery; requests may be dropped if unread.
	CloseRequests() <-chan struct{}
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Clock provides a monotonic nanosecond reading.
//
// Frame steps receive their timestamp from the same clock, so readings taken
// inside a step are comparable with the step timestamp.
type Clock interface {
	Now() int64
}

// Audio accepts raw PCM samples for immediate playback.
type Audio interface {
	Start(sampleRate uint32) error
	Stop() error
	SetVolume(vol uint8)
	WriteSample(sample int16)
	PendingSamples() int
}

// HAL provides the only contact point between the engine and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
	Audio() Audio
}
