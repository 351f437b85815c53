package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"

	"picobutton-go/services/app"
	"picobutton-go/services/control"
	"picobutton-go/services/hal/platform"
)

type stepKind uint8

const (
	stepPress stepKind = iota
	stepRelease
	stepWait
	stepExpectLED
	stepExpectState
	stepExpectCycles
)

// Step is one parsed script line.
type Step struct {
	Line  int
	kind  stepKind
	dur   time.Duration
	on    bool
	state control.State
	n     uint32
}

// ParseScript reads one command per line:
//
//	press | release
//	wait <duration>
//	expect led on|off
//	expect state <StateName>
//	expect cycles <n>
//
// Blank lines and lines starting with # are skipped.
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		args, err := shlex.Split(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		st, err := parseStep(args)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		st.Line = line
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func parseStep(args []string) (Step, error) {
	switch args[0] {
	case "press", "release":
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%s takes no arguments", args[0])
		}
		if args[0] == "press" {
			return Step{kind: stepPress}, nil
		}
		return Step{kind: stepRelease}, nil
	case "wait":
		if len(args) != 2 {
			return Step{}, fmt.Errorf("usage: wait <duration>")
		}
		d, err := time.ParseDuration(args[1])
		if err != nil || d < 0 {
			return Step{}, fmt.Errorf("bad duration %q", args[1])
		}
		return Step{kind: stepWait, dur: d}, nil
	case "expect":
		if len(args) != 3 {
			return Step{}, fmt.Errorf("usage: expect led|state|cycles <value>")
		}
		return parseExpect(args[1], args[2])
	}
	return Step{}, fmt.Errorf("unknown command %q", args[0])
}

func parseExpect(what, val string) (Step, error) {
	switch what {
	case "led":
		switch val {
		case "on":
			return Step{kind: stepExpectLED, on: true}, nil
		case "off":
			return Step{kind: stepExpectLED}, nil
		}
		return Step{}, fmt.Errorf("expect led wants on|off, got %q", val)
	case "state":
		s, ok := control.ParseState(val)
		if !ok {
			return Step{}, fmt.Errorf("unknown state %q", val)
		}
		return Step{kind: stepExpectState, state: s}, nil
	case "cycles":
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return Step{}, fmt.Errorf("bad cycle count %q", val)
		}
		return Step{kind: stepExpectCycles, n: uint32(n)}, nil
	}
	return Step{}, fmt.Errorf("cannot expect %q", what)
}

type runner struct {
	app    *app.App
	pins   *platform.HostPinFactory
	settle time.Duration
}

func (r *runner) run(ctx context.Context, steps []Step) error {
	button := r.pins.Pin(r.app.Board.ButtonPin)
	led := r.pins.Pin(r.app.Board.LEDPin)
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch st.kind {
		case stepPress:
			button.Drive(false)
		case stepRelease:
			button.Drive(true)
		case stepWait:
			select {
			case <-time.After(st.dur):
			case <-ctx.Done():
				return ctx.Err()
			}
		case stepExpectLED:
			ledOn := func() bool { return led.Get() != r.app.Board.LEDActiveLow }
			if !r.eventually(func() bool { return ledOn() == st.on }) {
				return fmt.Errorf("line %d: led is %s", st.Line, onOff(ledOn()))
			}
		case stepExpectState:
			if !r.eventually(func() bool { return r.app.Task.State() == st.state }) {
				return fmt.Errorf("line %d: state is %s, want %s", st.Line, r.app.Task.State(), st.state)
			}
		case stepExpectCycles:
			if !r.eventually(func() bool { return r.app.Task.Cycles() == st.n }) {
				return fmt.Errorf("line %d: cycles = %d, want %d", st.Line, r.app.Task.Cycles(), st.n)
			}
		}
	}
	return nil
}

func (r *runner) eventually(cond func() bool) bool {
	deadline := time.Now().Add(r.settle)
	for {
		if cond() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
