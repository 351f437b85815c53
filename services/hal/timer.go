package hal

import (
	"sync/atomic"
	"time"

	"picobutton-go/sched"
	"picobutton-go/x/timex"
)

var _ MillisecondTimer = (*Timer)(nil)

// Alarm is a one-shot that can be re-armed. *time.Timer satisfies it.
type Alarm interface {
	Reset(d time.Duration) bool
}

// Clock supplies monotonic milliseconds and a re-armable alarm.
type Clock interface {
	NowMs() int64
	NewAlarm(fire func()) Alarm
}

type systemClock struct{}

// SystemClock is the runtime clock: timex.MonoMs plus a time.Timer.
func SystemClock() Clock { return systemClock{} }

func (systemClock) NowMs() int64 { return timex.MonoMs() }

func (systemClock) NewAlarm(fire func()) Alarm {
	t := time.AfterFunc(time.Hour, fire)
	t.Stop()
	return t
}

// Timer is a MillisecondTimer backed by a single alarm. One wait can be
// outstanding at a time.
type Timer struct {
	clock Clock
	alarm Alarm

	deadline atomic.Int64
	fired    atomic.Bool
	waker    atomic.Pointer[sched.Waker]
}

func NewTimer(c Clock) *Timer {
	if c == nil {
		c = SystemClock()
	}
	t := &Timer{clock: c}
	t.alarm = c.NewAlarm(t.onAlarm)
	return t
}

func (t *Timer) After(ms uint32) sched.Operation {
	return sched.TimerWait(t, t.clock.NowMs()+int64(ms))
}

// PollOp implements sched.Source.
func (t *Timer) PollOp(op *sched.Operation, w *sched.Waker) sched.Poll {
	now := t.clock.NowMs()
	if !op.Armed {
		if now >= op.Deadline {
			return sched.Ready
		}
		t.deadline.Store(op.Deadline)
		t.fired.Store(false)
		t.waker.Store(w)
		op.Armed = true
		t.alarm.Reset(timex.Ms(uint32(op.Deadline - now)))
		return sched.Pending
	}
	if t.fired.Load() || now >= op.Deadline {
		t.waker.Store(nil)
		return sched.Ready
	}
	t.waker.Store(w)
	if t.fired.Load() {
		t.waker.Store(nil)
		return sched.Ready
	}
	return sched.Pending
}

func (t *Timer) onAlarm() {
	if t.clock.NowMs() < t.deadline.Load() {
		return // superseded
	}
	t.fired.Store(true)
	if w := t.waker.Swap(nil); w != nil {
		w.Wake()
	}
}
