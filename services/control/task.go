// Package control implements the button-to-LED cycle as a resumable task.
package control

import (
	"image/color"
	"sync/atomic"

	"picobutton-go/sched"
	"picobutton-go/services/hal"
	"picobutton-go/types"
	"picobutton-go/x/logx"
)

const tag = "control"

// DefaultDebounceMs is the settle time after a release.
const DefaultDebounceMs = 10

// DefaultColor is the strip colour while the button is held.
var DefaultColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

var off = color.RGBA{}

type Options struct {
	Color      color.RGBA
	DebounceMs uint32
}

// Task lights the LED and strip while an active-low button is held.
//
// It is a sched.Task: Poll runs synchronous states inline and returns only
// when parked on an edge or timer wait. A button already held when a cycle
// starts counts as a press.
type Task struct {
	in    hal.DigitalInput
	led   hal.DigitalOutput
	strip hal.AddressableLedStrip
	timer hal.MillisecondTimer

	color    color.RGBA
	debounce uint32

	state State
	op    sched.Operation

	// Published for readers outside the scheduler context.
	snap   atomic.Uint32
	cycles atomic.Uint32
}

var _ sched.Task = (*Task)(nil)

func New(in hal.DigitalInput, led hal.DigitalOutput, strip hal.AddressableLedStrip, timer hal.MillisecondTimer, opt Options) *Task {
	if opt.DebounceMs == 0 {
		opt.DebounceMs = DefaultDebounceMs
	}
	if opt.Color == (color.RGBA{}) {
		opt.Color = DefaultColor
	}
	return &Task{
		in:       in,
		led:      led,
		strip:    strip,
		timer:    timer,
		color:    opt.Color,
		debounce: opt.DebounceMs,
	}
}

// Poll implements sched.Task.
func (t *Task) Poll(w *sched.Waker) {
	for {
		switch t.state {
		case EvaluateInitial:
			t.publish()
			if t.in.ReadLevel() == types.Low {
				logx.Debug(tag, "button already held")
				t.enter(LedOn)
			} else {
				t.enter(WaitPress)
			}

		case WaitPress:
			t.publish()
			if !t.await(w) {
				return
			}
			t.enter(Pressed)

		case Pressed:
			t.publish()
			t.enter(LedOn)

		case LedOn:
			t.led.SetHigh()
			t.strip.SetAll(t.color)
			t.publish()
			logx.Info(tag, "led on", logx.Int("cycle", int(t.cycles.Load())))
			t.enter(WaitRelease)

		case WaitRelease:
			t.publish()
			if !t.await(w) {
				return
			}
			t.enter(LedOff)

		case LedOff:
			t.led.SetLow()
			t.strip.SetAll(off)
			t.publish()
			logx.Info(tag, "led off", logx.Int("cycle", int(t.cycles.Load())))
			t.enter(Debounce)

		case Debounce:
			t.publish()
			if !t.await(w) {
				return
			}
			t.cycles.Add(1)
			t.enter(EvaluateInitial)

		default:
			panic("control: invalid state")
		}
	}
}

// await arms the wait for the current state on first use and polls it. It
// reports true once the wait has completed and been discarded.
func (t *Task) await(w *sched.Waker) bool {
	if !t.op.Active() {
		switch t.state {
		case WaitPress:
			t.op = t.in.WaitForFallingEdge()
		case WaitRelease:
			t.op = t.in.WaitForRisingEdge()
		case Debounce:
			t.op = t.timer.After(t.debounce)
		}
	}
	if t.op.Poll(w) == sched.Pending {
		return false
	}
	t.op.Clear()
	return true
}

func (t *Task) enter(s State) {
	logx.Debug(tag, "transition", logx.Str("from", t.state.String()), logx.Str("to", s.String()))
	t.state = s
}

// publish makes the current state visible to State once its output actions
// have run.
func (t *Task) publish() { t.snap.Store(uint32(t.state)) }

// State is safe to call from any goroutine. It trails the outputs: when it
// reports a state, that state's output actions have already run.
func (t *Task) State() State { return State(t.snap.Load()) }

// Cycles counts completed press/release/debounce cycles.
func (t *Task) Cycles() uint32 { return t.cycles.Load() }
