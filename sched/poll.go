package sched

import "picobutton-go/types"

// Poll is the outcome of polling an Operation.
type Poll uint8

const (
	Pending Poll = iota
	Ready
)

func (p Poll) String() string {
	if p == Ready {
		return "ready"
	}
	return "pending"
}

// OpKind tags the Operation variant.
type OpKind uint8

const (
	OpNone OpKind = iota
	OpEdge
	OpTimer
)

func (k OpKind) String() string {
	switch k {
	case OpEdge:
		return "edge"
	case OpTimer:
		return "timer"
	default:
		return "none"
	}
}

// Source is implemented by drivers that complete Operations.
//
// PollOp returns Ready once the condition holds. On Pending the source must
// hold on to w and call w.Wake exactly once when the condition becomes true.
// A later PollOp on the same operation replaces the stored waker.
type Source interface {
	PollOp(op *Operation, w *Waker) Poll
}

// Operation is a pending external condition: an edge on a pin or a timer
// deadline. It is a plain value so a task can store it inline.
type Operation struct {
	Kind     OpKind
	Pin      int        // OpEdge
	Edge     types.Edge // OpEdge
	Deadline int64      // OpTimer, monotonic ms

	// Armed is set by the source once its wake path is registered.
	Armed bool

	src Source
}

// EdgeWait builds an edge operation completed by src.
func EdgeWait(src Source, pin int, e types.Edge) Operation {
	return Operation{Kind: OpEdge, Pin: pin, Edge: e, src: src}
}

// TimerWait builds a deadline operation completed by src.
func TimerWait(src Source, deadlineMs int64) Operation {
	return Operation{Kind: OpTimer, Deadline: deadlineMs, src: src}
}

// Poll asks the owning source whether the condition holds. The zero
// Operation is always Ready.
func (op *Operation) Poll(w *Waker) Poll {
	if op.Kind == OpNone || op.src == nil {
		return Ready
	}
	return op.src.PollOp(op, w)
}

// Active reports whether op holds a condition that has not been consumed.
func (op *Operation) Active() bool { return op.Kind != OpNone }

// Clear discards op once it has reported Ready.
func (op *Operation) Clear() { *op = Operation{} }
