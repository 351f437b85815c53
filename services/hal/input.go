package hal

import (
	"sync/atomic"

	"picobutton-go/sched"
	"picobutton-go/types"
)

var _ DigitalInput = (*Input)(nil)

// Input is a DigitalInput on an interrupt-capable pin. One edge wait can be
// outstanding at a time.
type Input struct {
	pin IRQPin
	isr func()

	want  atomic.Uint32 // armed types.Edge; EdgeNone when idle
	fired atomic.Bool
	waker atomic.Pointer[sched.Waker]
}

// NewInput configures pin as an input with the given bias.
func NewInput(pin IRQPin, pull types.Pull) (*Input, error) {
	if err := pin.ConfigureInput(pull); err != nil {
		return nil, err
	}
	in := &Input{pin: pin}
	in.isr = in.onIRQ // bound once; arming must not allocate
	return in, nil
}

func (in *Input) ReadLevel() types.Level { return types.LevelOf(in.pin.Get()) }

func (in *Input) WaitForFallingEdge() sched.Operation {
	return sched.EdgeWait(in, in.pin.Number(), types.EdgeFalling)
}

func (in *Input) WaitForRisingEdge() sched.Operation {
	return sched.EdgeWait(in, in.pin.Number(), types.EdgeRising)
}

// PollOp implements sched.Source.
//
// Arming order is waker, then IRQ, then a level re-sample: an edge landing
// between the caller's last read and the IRQ being enabled leaves the pin at
// its post-edge level and completes the wait.
func (in *Input) PollOp(op *sched.Operation, w *sched.Waker) sched.Poll {
	if !op.Armed {
		in.fired.Store(false)
		in.waker.Store(w)
		in.want.Store(uint32(op.Edge))
		if err := in.pin.SetIRQ(op.Edge, in.isr); err != nil {
			panic("hal: edge interrupt could not be armed")
		}
		op.Armed = true
		if lvl, ok := op.Edge.After(); ok && in.ReadLevel() == lvl {
			in.disarm()
			return sched.Ready
		}
		return sched.Pending
	}
	if in.fired.Load() {
		in.disarm()
		return sched.Ready
	}
	in.waker.Store(w)
	// The ISR may have swapped out the old waker between the two loads.
	if in.fired.Load() {
		in.disarm()
		return sched.Ready
	}
	return sched.Pending
}

// onIRQ runs in interrupt context. An edge only counts when the pin sits at
// the armed edge's post-edge level, so a bounce in the other direction (or a
// stale enable for it) leaves the wait pending.
func (in *Input) onIRQ() {
	want := types.Edge(in.want.Load())
	if want == types.EdgeNone {
		return
	}
	if lvl, ok := want.After(); ok && in.ReadLevel() != lvl {
		return
	}
	in.fired.Store(true)
	if w := in.waker.Swap(nil); w != nil {
		w.Wake()
	}
}

func (in *Input) disarm() {
	in.want.Store(uint32(types.EdgeNone))
	in.waker.Store(nil)
	_ = in.pin.ClearIRQ()
}
