package hal

import (
	"image/color"

	"picobutton-go/sched"
	"picobutton-go/types"
)

// ---- GPIO abstractions ----

type GPIOPin interface {
	ConfigureInput(pull types.Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// IRQPin extends GPIOPin with interrupts. The handler runs in interrupt
// context and must not block.
type IRQPin interface {
	GPIOPin
	SetIRQ(edge types.Edge, handler func()) error
	ClearIRQ() error
}

// PinFactory supplies GPIO pins by the configured number scheme.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// ---- Driver contracts consumed by the control task ----

// DigitalInput samples a pin and produces edge waits.
type DigitalInput interface {
	ReadLevel() types.Level
	WaitForFallingEdge() sched.Operation
	WaitForRisingEdge() sched.Operation
}

// DigitalOutput drives a pin synchronously.
type DigitalOutput interface {
	SetHigh()
	SetLow()
}

// AddressableLedStrip paints every pixel one colour. Fire-and-forget.
type AddressableLedStrip interface {
	SetAll(c color.RGBA)
}

// MillisecondTimer produces deadline waits.
type MillisecondTimer interface {
	After(ms uint32) sched.Operation
}
