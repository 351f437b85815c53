package sched

import "context"

// Idler parks the main context while the run queue is empty.
//
// Wait returns once Notify has been called since the previous Wait returned
// (or ctx is done). Notify must be safe from interrupt context and must
// never block.
type Idler interface {
	Wait(ctx context.Context)
	Notify()
}

// ChanIdler is an Idler over a one-slot channel. Notifications coalesce, and
// one that lands between the empty check and Wait is not lost.
//
// Under TinyGo a goroutine blocked on a channel with nothing else runnable
// sends the core into the runtime's wait-for-event sleep.
type ChanIdler struct {
	ch chan struct{}
}

func NewChanIdler() *ChanIdler { return &ChanIdler{ch: make(chan struct{}, 1)} }

func (i *ChanIdler) Notify() {
	select {
	case i.ch <- struct{}{}:
	default:
	}
}

func (i *ChanIdler) Wait(ctx context.Context) {
	select {
	case <-i.ch:
	case <-ctx.Done():
	}
}
