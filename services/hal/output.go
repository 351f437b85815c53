package hal

var _ DigitalOutput = (*Output)(nil)

// Output is a DigitalOutput. Levels are logical: an active-low LED is
// inverted on the wire, so SetHigh always means "on".
type Output struct {
	pin       GPIOPin
	activeLow bool
}

// NewOutput configures pin as an output, initially inactive.
func NewOutput(pin GPIOPin, activeLow bool) (*Output, error) {
	if err := pin.ConfigureOutput(activeLow); err != nil {
		return nil, err
	}
	return &Output{pin: pin, activeLow: activeLow}, nil
}

func (o *Output) SetHigh() { o.pin.Set(!o.activeLow) }
func (o *Output) SetLow()  { o.pin.Set(o.activeLow) }

// IsHigh reports the logical level.
func (o *Output) IsHigh() bool { return o.pin.Get() != o.activeLow }
