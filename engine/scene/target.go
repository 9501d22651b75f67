package scene

import (
	"image/color"

	"tinygo.org/x/drivers"

	"ember/hal"
)

// Target renders into an RGB565 framebuffer.
//
// It implements drivers.Displayer so tinyfont can draw text through it.
type Target struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*Target)(nil)

// NewTarget wraps a framebuffer. Only RGB565 framebuffers are supported;
// other formats yield an inert target.
func NewTarget(fb hal.Framebuffer) *Target {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return &Target{}
	}
	return &Target{fb: fb}
}

// Size returns the target dimensions.
func (t *Target) Size() (x, y int16) {
	if t.fb == nil {
		return 0, 0
	}
	return int16(t.fb.Width()), int16(t.fb.Height())
}

// SetPixel writes one pixel, clipping out-of-bounds coordinates.
func (t *Target) SetPixel(x, y int16, c color.RGBA) {
	if t.fb == nil {
		return
	}
	if x < 0 || y < 0 || int(x) >= t.fb.Width() || int(y) >= t.fb.Height() {
		return
	}
	buf := t.fb.Buffer()
	off := int(y)*t.fb.StrideBytes() + int(x)*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// Display presents the framebuffer.
func (t *Target) Display() error {
	if t.fb == nil {
		return nil
	}
	return t.fb.Present()
}

// Clear fills the target with a color.
func (t *Target) Clear(c color.RGBA) {
	if t.fb == nil {
		return
	}
	t.fb.ClearRGB(c.R, c.G, c.B)
}

// FillRect fills an axis-aligned rectangle, clipped to the target.
func (t *Target) FillRect(x, y, w, h int, c color.RGBA) {
	if t.fb == nil || w <= 0 || h <= 0 {
		return
	}
	buf := t.fb.Buffer()
	stride := t.fb.StrideBytes()
	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for yy := y; yy < y+h; yy++ {
		if yy < 0 || yy >= t.fb.Height() {
			continue
		}
		row := yy * stride
		for xx := x; xx < x+w; xx++ {
			if xx < 0 || xx >= t.fb.Width() {
				continue
			}
			off := row + xx*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
