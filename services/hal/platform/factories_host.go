//go:build !rp2040 && !rp2350

package platform

import (
	"image/color"
	"sync"

	"picobutton-go/services/hal"
	"picobutton-go/types"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements hal.IRQPin for host builds. Set and Drive model an
// external level change; a matching edge runs the IRQ handler synchronously
// in the caller, standing in for interrupt context.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	driven  bool
	modeOut bool
	irqEdge types.Edge
	irqFunc func()
}

func (p *FakePin) ConfigureInput(pull types.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	if !p.driven {
		p.level = pull == types.PullUp
	}
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	p.driven = true
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edgeFrom(old, level))
	p.mu.Unlock()
	if want && irq != nil {
		irq()
	}
}

// Drive sets the externally applied level (a button press is Drive(false)).
func (p *FakePin) Drive(level bool) { p.Set(level) }

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

// IsOutput reports whether the pin was last configured as an output.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

func (p *FakePin) SetIRQ(edge types.Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = types.EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

func edgeFrom(old, new bool) types.Edge {
	switch {
	case !old && new:
		return types.EdgeRising
	case old && !new:
		return types.EdgeFalling
	default:
		return types.EdgeNone
	}
}

func irqWanted(cfg, seen types.Edge) bool {
	if seen == types.EdgeNone {
		return false
	}
	switch cfg {
	case types.EdgeBoth:
		return true
	default:
		return cfg == seen
	}
}

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	if n < 0 || n > 28 {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Pin returns the *FakePin for n, creating it if needed. Pre-driving a pin
// before Setup models a button held at boot.
func (f *HostPinFactory) Pin(n int) *FakePin {
	p, ok := f.ByNumber(n)
	if !ok {
		return nil
	}
	return p.(*FakePin)
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() hal.PinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}

// ----------------------------- Strip (host) ----------------------------------

// FakeStrip records frames in place of a WS2812 chain.
type FakeStrip struct {
	mu     sync.Mutex
	last   []color.RGBA
	frames int
}

func (s *FakeStrip) WriteColors(buf []color.RGBA) error {
	s.mu.Lock()
	s.last = append(s.last[:0], buf...)
	s.frames++
	s.mu.Unlock()
	return nil
}

// Last returns a copy of the most recent frame.
func (s *FakeStrip) Last() []color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]color.RGBA(nil), s.last...)
}

// Frames is the number of frames written.
func (s *FakeStrip) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func newPixelWriter(int) (hal.PixelWriter, error) { return &FakeStrip{}, nil }

// Host logs go to stderr via zerolog; a log UART has no meaning here.
func setupLogOutput(types.Board) error { return nil }
