package hal

import (
	"errors"
	"image/color"
	"sync"
	"time"

	"picobutton-go/sched"
	"picobutton-go/types"
)

// fakeIRQPin implements IRQPin; drive() models an external level change and
// runs the handler when the configured edge matches.
type fakeIRQPin struct {
	mu      sync.Mutex
	level   bool
	number  int
	pull    types.Pull
	out     bool
	edge    types.Edge
	handler func()
	arms    int
}

func (p *fakeIRQPin) ConfigureInput(pull types.Pull) error {
	p.mu.Lock()
	p.pull = pull
	p.mu.Unlock()
	return nil
}
func (p *fakeIRQPin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.out, p.level = true, initial
	p.mu.Unlock()
	return nil
}
func (p *fakeIRQPin) Set(b bool)  { p.mu.Lock(); p.level = b; p.mu.Unlock() }
func (p *fakeIRQPin) Get() bool   { p.mu.Lock(); defer p.mu.Unlock(); return p.level }
func (p *fakeIRQPin) Number() int { return p.number }
func (p *fakeIRQPin) SetIRQ(e types.Edge, h func()) error {
	p.mu.Lock()
	p.edge, p.handler = e, h
	p.arms++
	p.mu.Unlock()
	return nil
}
func (p *fakeIRQPin) ClearIRQ() error {
	p.mu.Lock()
	p.edge, p.handler = types.EdgeNone, nil
	p.mu.Unlock()
	return nil
}

// glitch runs the handler at the current level, as a pin whose enable for
// the opposite edge is still set would on a bounce.
func (p *fakeIRQPin) glitch() {
	p.mu.Lock()
	h := p.handler
	p.mu.Unlock()
	if h != nil {
		h()
	}
}

func (p *fakeIRQPin) drive(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	var seen types.Edge
	switch {
	case !old && level:
		seen = types.EdgeRising
	case old && !level:
		seen = types.EdgeFalling
	}
	h := p.handler
	want := p.edge == seen || (p.edge == types.EdgeBoth && seen != types.EdgeNone)
	p.mu.Unlock()
	if want && seen != types.EdgeNone && h != nil {
		h()
	}
}

// fakeClock is a manual Clock; advance fires a due alarm synchronously.
type fakeClock struct {
	mu    sync.Mutex
	now   int64
	alarm *fakeAlarm
}

type fakeAlarm struct {
	c    *fakeClock
	fire func()
	at   int64
	set  bool
}

func (c *fakeClock) NowMs() int64 { c.mu.Lock(); defer c.mu.Unlock(); return c.now }

func (c *fakeClock) NewAlarm(fire func()) Alarm {
	a := &fakeAlarm{c: c, fire: fire}
	c.alarm = a
	return a
}

func (a *fakeAlarm) Reset(d time.Duration) bool {
	a.c.mu.Lock()
	was := a.set
	a.at = a.c.now + d.Milliseconds()
	a.set = true
	a.c.mu.Unlock()
	return was
}

func (c *fakeClock) advance(ms int64) {
	c.mu.Lock()
	c.now += ms
	a := c.alarm
	due := a != nil && a.set && c.now >= a.at
	if due {
		a.set = false
	}
	c.mu.Unlock()
	if due {
		a.fire()
	}
}

// recWriter records frames handed to the strip.
type recWriter struct {
	frames [][]color.RGBA
	fail   bool
}

func (w *recWriter) WriteColors(buf []color.RGBA) error {
	if w.fail {
		return errors.New("dma busy")
	}
	w.frames = append(w.frames, append([]color.RGBA(nil), buf...))
	return nil
}

type nopTask struct{}

func (nopTask) Poll(*sched.Waker) {}

// parkedWaker returns a waker whose task has been polled and is now parked.
func parkedWaker() (*sched.Scheduler, *sched.Waker) {
	s := sched.New(nil)
	id, _ := s.Spawn(nopTask{})
	s.Step()
	return s, s.Waker(id)
}
