// Package app wires the board's peripherals, the control task and the
// scheduler together. Everything here runs once, before the scheduler loop.
package app

import (
	"context"
	"image/color"

	"picobutton-go/sched"
	"picobutton-go/services/config"
	"picobutton-go/services/control"
	"picobutton-go/services/hal/platform"
	"picobutton-go/types"
	"picobutton-go/x/logx"
)

type App struct {
	Board  types.Board
	Sched  *sched.Scheduler
	Task   *control.Task
	Periph *platform.Peripherals
}

// Start validates b, brings up the default platform and builds the app.
func Start(b types.Board) (*App, error) {
	if err := config.Validate(b); err != nil {
		return nil, err
	}
	p, err := platform.Setup(b)
	if err != nil {
		return nil, err
	}
	return New(b, p)
}

// New spawns the control task over already configured peripherals.
func New(b types.Board, p *platform.Peripherals) (*App, error) {
	task := control.New(p.Button, p.LED, p.Strip, p.Timer, control.Options{
		Color:      color.RGBA{R: b.Color.R, G: b.Color.G, B: b.Color.B, A: 255},
		DebounceMs: b.DebounceMs,
	})
	s := sched.New(sched.NewChanIdler())
	id, err := s.Spawn(task)
	if err != nil {
		return nil, err
	}
	logx.Info("app", "control task spawned", logx.Int("task", int(id)), logx.Int("debounce_ms", int(b.DebounceMs)))
	return &App{Board: b, Sched: s, Task: task, Periph: p}, nil
}

// Run drives the scheduler until ctx is done. Firmware never cancels.
func (a *App) Run(ctx context.Context) error {
	logx.Info("app", "scheduler running")
	err := a.Sched.Run(ctx)
	st := a.Sched.Stats()
	logx.Info("app", "scheduler stopped",
		logx.Int64("polls", int64(st.Polls)),
		logx.Int64("idles", int64(st.Idles)),
		logx.Int64("wakes", int64(st.Wakes)),
	)
	return err
}
