package hal

import (
	"testing"

	"picobutton-go/sched"
	"picobutton-go/types"
)

func TestInputFallingEdgeWakesOnce(t *testing.T) {
	pin := &fakeIRQPin{number: 16, level: true}
	in, err := NewInput(pin, types.PullUp)
	if err != nil {
		t.Fatalf("NewInput: %v", err)
	}
	if pin.pull != types.PullUp {
		t.Fatalf("pull = %v", pin.pull)
	}
	s, w := parkedWaker()

	op := in.WaitForFallingEdge()
	if op.Kind != sched.OpEdge || op.Pin != 16 || op.Edge != types.EdgeFalling {
		t.Fatalf("unexpected op: %+v", op)
	}
	if got := op.Poll(w); got != sched.Pending {
		t.Fatalf("first poll = %v, want pending", got)
	}
	if !s.Queue().IsEmpty() {
		t.Fatal("no wake expected before the edge")
	}

	pin.drive(false) // press
	if s.Queue().Len() != 1 {
		t.Fatalf("queue len = %d after edge, want 1", s.Queue().Len())
	}
	// Bounce: more edges before the task runs must not add entries.
	pin.drive(true)
	pin.drive(false)
	if s.Queue().Len() != 1 {
		t.Fatalf("queue len = %d after bounce, want 1", s.Queue().Len())
	}

	if got := op.Poll(w); got != sched.Ready {
		t.Fatalf("poll after edge = %v, want ready", got)
	}
	if pin.handler != nil {
		t.Fatal("IRQ should be disarmed once the wait completes")
	}
}

func TestInputRisingEdgeIgnoresFalling(t *testing.T) {
	pin := &fakeIRQPin{number: 16, level: false}
	in, _ := NewInput(pin, types.PullUp)
	s, w := parkedWaker()

	op := in.WaitForRisingEdge()
	if op.Poll(w) != sched.Pending {
		t.Fatal("expected pending while held low")
	}
	pin.drive(false) // no transition
	if !s.Queue().IsEmpty() {
		t.Fatal("no wake expected without a rising edge")
	}
	pin.drive(true)
	if s.Queue().Len() != 1 {
		t.Fatal("rising edge should wake the task")
	}
	if op.Poll(w) != sched.Ready {
		t.Fatal("expected ready after rising edge")
	}
}

func TestInputEdgeBeforeArmIsReady(t *testing.T) {
	// Level already at the post-edge value when the wait is armed.
	pin := &fakeIRQPin{number: 16, level: false}
	in, _ := NewInput(pin, types.PullUp)
	_, w := parkedWaker()

	op := in.WaitForFallingEdge()
	if got := op.Poll(w); got != sched.Ready {
		t.Fatalf("poll = %v, want ready", got)
	}
	if pin.handler != nil {
		t.Fatal("IRQ should be disarmed")
	}
}

func TestInputRepollWithoutEdgeStaysPending(t *testing.T) {
	pin := &fakeIRQPin{number: 3, level: true}
	in, _ := NewInput(pin, types.PullNone)
	_, w := parkedWaker()

	op := in.WaitForFallingEdge()
	op.Poll(w)
	if op.Poll(w) != sched.Pending {
		t.Fatal("spurious poll must stay pending")
	}
	if pin.arms != 1 {
		t.Fatalf("IRQ armed %d times, want 1", pin.arms)
	}
	if in.ReadLevel() != types.High {
		t.Fatal("ReadLevel should report high")
	}
}

func TestInputIgnoresWrongDirectionEdge(t *testing.T) {
	// Button held: a rising wait is armed while the pin reads low.
	pin := &fakeIRQPin{number: 16, level: false}
	in, _ := NewInput(pin, types.PullUp)
	s, w := parkedWaker()

	op := in.WaitForRisingEdge()
	if op.Poll(w) != sched.Pending {
		t.Fatal("expected pending while held low")
	}
	pin.glitch() // falling bounce delivered to the handler
	if !s.Queue().IsEmpty() {
		t.Fatal("falling edge must not wake a rising wait")
	}
	if op.Poll(w) != sched.Pending {
		t.Fatal("falling edge must not complete a rising wait")
	}

	pin.drive(true)
	if s.Queue().Len() != 1 || op.Poll(w) != sched.Ready {
		t.Fatal("the real release should still complete the wait")
	}
}
