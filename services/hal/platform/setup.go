// Package platform brings up the board's peripherals once, before the
// scheduler starts. Bring-up failures are errcode.ConfigurationError.
package platform

import (
	"image/color"
	"strconv"

	"picobutton-go/errcode"
	"picobutton-go/services/hal"
	"picobutton-go/types"
	"picobutton-go/x/logx"
)

// Peripherals are the configured drivers handed to the control task.
type Peripherals struct {
	Button *hal.Input
	LED    *hal.Output
	Strip  *hal.Strip
	Timer  *hal.Timer

	// Pins is the factory the peripherals were claimed from; host tools use
	// it to reach the fake pins.
	Pins hal.PinFactory
	// Pixels is the raw strip writer.
	Pixels hal.PixelWriter
}

// Setup brings up b on the default pin factory and system clock.
func Setup(b types.Board) (*Peripherals, error) {
	return SetupWith(b, DefaultPinFactory(), hal.SystemClock())
}

// SetupWith brings up b on explicit pins and clock.
func SetupWith(b types.Board, pins hal.PinFactory, clk hal.Clock) (*Peripherals, error) {
	const op = "platform.setup"

	pull, ok := types.ParsePull(b.ButtonPull)
	if !ok {
		return nil, errcode.Config(op, "unknown pull "+strconv.Quote(b.ButtonPull))
	}
	bp, err := claim(pins, b.ButtonPin)
	if err != nil {
		return nil, err
	}
	irq, ok := bp.(hal.IRQPin)
	if !ok {
		return nil, errcode.Config(op, "button pin GP"+strconv.Itoa(b.ButtonPin)+" has no interrupt support")
	}
	button, err := hal.NewInput(irq, pull)
	if err != nil {
		return nil, &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "button", Err: err}
	}

	lp, err := claim(pins, b.LEDPin)
	if err != nil {
		return nil, err
	}
	led, err := hal.NewOutput(lp, b.LEDActiveLow)
	if err != nil {
		return nil, &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "led", Err: err}
	}

	pw, err := newPixelWriter(b.StripPin)
	if err != nil {
		return nil, &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "strip", Err: err}
	}
	strip := hal.NewStrip(pw, b.StripPixels)
	strip.SetAll(color.RGBA{}) // start dark

	if err := setupLogOutput(b); err != nil {
		return nil, &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "log uart", Err: err}
	}

	logx.Info("platform", "peripherals ready",
		logx.Str("board", b.Name),
		logx.Int("button", b.ButtonPin),
		logx.Int("led", b.LEDPin),
		logx.Int("strip", b.StripPin),
	)
	return &Peripherals{
		Button: button,
		LED:    led,
		Strip:  strip,
		Timer:  hal.NewTimer(clk),
		Pins:   pins,
		Pixels: pw,
	}, nil
}

func claim(pins hal.PinFactory, n int) (hal.GPIOPin, error) {
	p, ok := pins.ByNumber(n)
	if !ok {
		return nil, &errcode.E{C: errcode.ConfigurationError, Op: "platform.claim", Msg: "GP" + strconv.Itoa(n), Err: errcode.UnknownPin}
	}
	return p, nil
}
