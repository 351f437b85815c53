package hal

import (
	"image/color"
	"sync/atomic"

	"picobutton-go/x/logx"
)

var _ AddressableLedStrip = (*Strip)(nil)

// PixelWriter pushes one frame to the LEDs. tinygo.org/x/drivers/ws2812.Device
// satisfies it.
type PixelWriter interface {
	WriteColors(buf []color.RGBA) error
}

// Strip paints a fixed-length frame. The frame is allocated once.
type Strip struct {
	w     PixelWriter
	frame []color.RGBA
	fails atomic.Uint32
}

func NewStrip(w PixelWriter, pixels int) *Strip {
	if pixels < 1 {
		pixels = 1
	}
	return &Strip{w: w, frame: make([]color.RGBA, pixels)}
}

// SetAll writes c to every pixel. Write errors are counted, not returned.
func (s *Strip) SetAll(c color.RGBA) {
	for i := range s.frame {
		s.frame[i] = c
	}
	if err := s.w.WriteColors(s.frame); err != nil {
		n := s.fails.Add(1)
		logx.Warn("hal", "strip write failed", logx.Int("failures", int(n)), logx.Str("err", err.Error()))
	}
}

// Failures is the number of writes the driver rejected.
func (s *Strip) Failures() uint32 { return s.fails.Load() }

// Len is the pixel count.
func (s *Strip) Len() int { return len(s.frame) }
