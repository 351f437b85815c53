package sched

import (
	"context"
	"sync/atomic"

	"picobutton-go/errcode"
)

// DefaultCapacity is the task table size: the firmware runs exactly one task.
const DefaultCapacity = 1

// Task is a resumable computation. Poll runs until the task either parks on
// an Operation (having handed w to its source) or has nothing left to do
// this round. Tasks never complete.
type Task interface {
	Poll(w *Waker)
}

// Stats is a snapshot of scheduler counters.
type Stats struct {
	Polls uint32 // task polls
	Idles uint32 // entries into the idle wait
	Wakes uint32 // wakes that changed the run queue
}

type Option func(*Scheduler)

// WithCapacity sizes the task table (and run queue) to n.
func WithCapacity(n int) Option { return func(s *Scheduler) { s.capacity = n } }

type slot struct {
	task  Task
	waker Waker
}

// Scheduler owns the run queue and task table for the program's lifetime.
type Scheduler struct {
	capacity int
	q        *RunQueue
	idle     Idler
	slots    []slot
	n        int

	polls atomic.Uint32
	idles atomic.Uint32
	wakes atomic.Uint32
}

// New builds a scheduler. A nil idler selects a ChanIdler.
func New(idle Idler, opts ...Option) *Scheduler {
	s := &Scheduler{capacity: DefaultCapacity, idle: idle}
	for _, o := range opts {
		o(s)
	}
	if s.idle == nil {
		s.idle = NewChanIdler()
	}
	s.q = NewRunQueue(s.capacity)
	s.slots = make([]slot, s.capacity)
	for i := range s.slots {
		s.slots[i].waker = Waker{s: s, id: TaskID(i)}
	}
	return s
}

// Spawn registers t and marks it ready. It must be called from the main
// context before Run. A full task table is a SpawnFailure.
func (s *Scheduler) Spawn(t Task) (TaskID, error) {
	if t == nil {
		return 0, &errcode.E{C: errcode.SpawnFailure, Op: "sched.spawn", Msg: "nil task"}
	}
	if s.n == len(s.slots) {
		return 0, &errcode.E{C: errcode.SpawnFailure, Op: "sched.spawn", Msg: "task table full"}
	}
	id := TaskID(s.n)
	s.slots[id].task = t
	s.n++
	s.q.Enqueue(id)
	return id, nil
}

// Step dequeues one ready task and polls it. It reports false when the run
// queue was empty.
func (s *Scheduler) Step() bool {
	id, ok := s.q.Dequeue()
	if !ok {
		return false
	}
	sl := &s.slots[id]
	if sl.task == nil {
		panic("sched: woke an empty task slot")
	}
	s.polls.Add(1)
	sl.task.Poll(&sl.waker)
	return true
}

// Run drives ready tasks and idles whenever the queue is empty. It returns
// only when ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Step() {
			continue
		}
		s.idles.Add(1)
		s.idle.Wait(ctx)
	}
}

// Waker returns the waker bound to task id.
func (s *Scheduler) Waker(id TaskID) *Waker {
	if int(id) >= s.n {
		return nil
	}
	return &s.slots[id].waker
}

// Queue exposes the run queue for inspection.
func (s *Scheduler) Queue() *RunQueue { return s.q }

func (s *Scheduler) Stats() Stats {
	return Stats{Polls: s.polls.Load(), Idles: s.idles.Load(), Wakes: s.wakes.Load()}
}

func (s *Scheduler) wake(id TaskID) {
	if s.q.Enqueue(id) {
		s.wakes.Add(1)
		s.idle.Notify()
	}
}
