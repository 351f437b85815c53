package main

import (
	"context"
	"time"

	"picobutton-go/errcode"
	"picobutton-go/services/app"
	"picobutton-go/services/config"
	"picobutton-go/types"
	"picobutton-go/x/logx"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot", boardName)

	b, err := selectBoard(boardName)
	if err != nil {
		halt(err)
	}
	a, err := app.Start(b)
	if err != nil {
		halt(err)
	}
	_ = a.Run(context.Background())
}

// selectBoard resolves the built-in board the firmware was built for.
func selectBoard(name string) (types.Board, error) {
	b, err := config.ForBoard(name)
	if err != nil {
		return b, err
	}
	return b, config.Validate(b)
}

// startupClass names a startup error for the halt log line.
func startupClass(err error) string {
	if errcode.IsFatal(err) {
		return string(errcode.Of(err))
	}
	return "unexpected: " + string(errcode.Of(err))
}

// halt parks the core after a startup error. There is no retry: both fatal
// classes mean the wiring or the build is wrong.
func halt(err error) {
	logx.Error("main", "startup failed", err, logx.Str("class", startupClass(err)))
	select {}
}
