package sched

// Waker re-admits one parked task to the run queue. It is a back-reference
// owned by the scheduler's task table; drivers only borrow it.
//
// Wake is safe from interrupt context. Duplicate wakes before the next poll
// collapse in the RunQueue.
type Waker struct {
	s  *Scheduler
	id TaskID
}

func (w *Waker) Wake() {
	if w == nil || w.s == nil {
		return
	}
	w.s.wake(w.id)
}
