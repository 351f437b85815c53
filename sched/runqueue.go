package sched

// TaskID indexes the scheduler's fixed task table.
type TaskID uint8

// RunQueue is a FIFO of ready tasks. A task is present at most once:
// enqueueing a queued task is a no-op. Enqueue is safe from interrupt
// context; Dequeue belongs to the main context.
type RunQueue struct {
	cs     critical
	ring   []TaskID
	queued []bool
	head   int
	n      int
}

// NewRunQueue allocates storage for capacity distinct tasks. The queue never
// grows afterwards.
func NewRunQueue(capacity int) *RunQueue {
	if capacity <= 0 || capacity > 256 {
		panic("sched: run queue capacity must be 1..256")
	}
	return &RunQueue{
		ring:   make([]TaskID, capacity),
		queued: make([]bool, capacity),
	}
}

// Enqueue appends id unless it is already queued. It reports whether the
// queue changed.
func (q *RunQueue) Enqueue(id TaskID) bool {
	if int(id) >= len(q.queued) {
		panic("sched: enqueue of unknown task")
	}
	s := q.cs.enter()
	if q.queued[id] {
		q.cs.exit(s)
		return false
	}
	if q.n == len(q.ring) {
		// Unreachable while membership is unique and ring size == task count.
		q.cs.exit(s)
		panic("sched: run queue overflow")
	}
	q.queued[id] = true
	q.ring[(q.head+q.n)%len(q.ring)] = id
	q.n++
	q.cs.exit(s)
	return true
}

// Dequeue removes and returns the head, or false when empty.
func (q *RunQueue) Dequeue() (TaskID, bool) {
	s := q.cs.enter()
	if q.n == 0 {
		q.cs.exit(s)
		return 0, false
	}
	id := q.ring[q.head]
	q.head = (q.head + 1) % len(q.ring)
	q.n--
	q.queued[id] = false
	q.cs.exit(s)
	return id, true
}

func (q *RunQueue) IsEmpty() bool { return q.Len() == 0 }

func (q *RunQueue) Len() int {
	s := q.cs.enter()
	n := q.n
	q.cs.exit(s)
	return n
}
