//go:build rp2040 || rp2350

package platform

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/ws2812"

	"picobutton-go/errcode"
	"picobutton-go/services/hal"
	"picobutton-go/types"
	"picobutton-go/x/logx"
)

// DefaultPinFactory maps logical numbers directly to machine.Pin(n). This
// matches Pico/Pico 2 GP numbering.
func DefaultPinFactory() hal.PinFactory { return rp2PinFactory{} }

// ---- GPIO implementation (includes IRQ support) ----

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (hal.GPIOPin, bool) {
	// Constrain to RP2's user GPIOs (GP0..GP28).
	if n < 0 || n > 28 {
		return nil, false
	}
	r := &rp2Pin{p: machine.Pin(n), n: n}
	r.cb = r.onChange
	return r, true
}

type rp2Pin struct {
	p machine.Pin
	n int

	handler func()
	cb      func(machine.Pin) // bound once; SetIRQ runs on every edge wait
}

func (r *rp2Pin) ConfigureInput(pull types.Pull) error {
	var mode machine.PinMode
	switch pull {
	case types.PullUp:
		mode = machine.PinInputPullup
	case types.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Number() int    { return r.n }

// The handler runs in the GPIO interrupt.
func (r *rp2Pin) SetIRQ(edge types.Edge, handler func()) error {
	r.handler = handler
	return r.p.SetInterrupt(toPinChange(edge), r.cb)
}

// ClearIRQ disables both edge enables. The port only clears the bits named
// in the change mask, and SetIRQ arms a different edge on the next wait.
func (r *rp2Pin) ClearIRQ() error {
	err := r.p.SetInterrupt(machine.PinToggle, nil)
	r.handler = nil
	return err
}

func (r *rp2Pin) onChange(machine.Pin) {
	if h := r.handler; h != nil {
		h()
	}
}

func toPinChange(e types.Edge) machine.PinChange {
	switch e {
	case types.EdgeRising:
		return machine.PinRising
	case types.EdgeFalling:
		return machine.PinFalling
	case types.EdgeBoth:
		return machine.PinToggle
	default:
		// Zero value is a no-op/disabled.
		var zero machine.PinChange
		return zero
	}
}

// ---- WS2812 ----

func newPixelWriter(n int) (hal.PixelWriter, error) {
	pin := machine.Pin(n)
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dev := ws2812.New(pin)
	return &dev, nil
}

// ---- Log UART ----

func setupLogOutput(b types.Board) error {
	var hw *uartx.UART
	switch b.LogUART {
	case "":
		return nil
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return errcode.UnknownBus
	}
	// Defaults inside uartx apply if zero.
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: b.LogBaud,
		TX:       machine.Pin(b.LogTX),
		RX:       machine.Pin(b.LogRX),
	}); err != nil {
		return err
	}
	logx.SetOutput(hw)
	return nil
}
