//go:build !rp2040 && !rp2350

package app

import (
	"context"
	"image/color"
	"testing"
	"time"

	"picobutton-go/services/config"
	"picobutton-go/services/control"
	"picobutton-go/services/hal"
	"picobutton-go/services/hal/platform"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

type harness struct {
	app    *App
	pins   *platform.HostPinFactory
	strip  *platform.FakeStrip
	cancel context.CancelFunc
	done   chan error
}

func start(t *testing.T, held bool) *harness {
	t.Helper()
	b := config.Default()
	pins := &platform.HostPinFactory{}
	if held {
		pins.Pin(b.ButtonPin).Drive(false)
	}
	p, err := platform.SetupWith(b, pins, hal.SystemClock())
	if err != nil {
		t.Fatalf("SetupWith: %v", err)
	}
	a, err := New(b, p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{app: a, pins: pins, strip: p.Pixels.(*platform.FakeStrip), cancel: cancel, done: make(chan error, 1)}
	go func() { h.done <- a.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-h.done:
		case <-time.After(time.Second):
			t.Error("scheduler did not stop")
		}
	})
	return h
}

func (h *harness) ledOn() bool { return h.pins.Pin(h.app.Board.LEDPin).Get() }
func (h *harness) stripLit() bool {
	last := h.strip.Last()
	return len(last) == 1 && last[0] == (color.RGBA{R: 255, A: 255})
}

func TestEndToEndPressRelease(t *testing.T) {
	h := start(t, false)
	button := h.pins.Pin(h.app.Board.ButtonPin)

	waitFor(t, "WaitPress", func() bool { return h.app.Task.State() == control.WaitPress })
	if h.ledOn() {
		t.Fatal("LED lit before any press")
	}

	button.Drive(false)
	waitFor(t, "LED on", func() bool { return h.app.Task.State() == control.WaitRelease && h.ledOn() && h.stripLit() })

	button.Drive(true)
	waitFor(t, "next cycle", func() bool { return h.app.Task.Cycles() == 1 && h.app.Task.State() == control.WaitPress })
	if h.ledOn() || h.stripLit() {
		t.Fatal("outputs should be dark after release")
	}
}

func TestEndToEndHeldAtBoot(t *testing.T) {
	h := start(t, true)
	button := h.pins.Pin(h.app.Board.ButtonPin)

	waitFor(t, "LED on without an edge", func() bool { return h.app.Task.State() == control.WaitRelease && h.ledOn() })

	button.Drive(true)
	waitFor(t, "cycle complete", func() bool { return h.app.Task.Cycles() == 1 })
	if h.ledOn() {
		t.Fatal("LED should be off after release")
	}
}

func TestSchedulerIdlesBetweenEvents(t *testing.T) {
	h := start(t, false)
	waitFor(t, "WaitPress", func() bool { return h.app.Task.State() == control.WaitPress })
	waitFor(t, "idle", func() bool { return h.app.Sched.Stats().Idles >= 1 })

	polls := h.app.Sched.Stats().Polls
	time.Sleep(20 * time.Millisecond)
	if got := h.app.Sched.Stats().Polls; got != polls {
		t.Fatalf("polled %d times while parked with no events", got-polls)
	}
}
