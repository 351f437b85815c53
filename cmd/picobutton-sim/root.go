package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"picobutton-go/services/app"
	"picobutton-go/services/config"
	"picobutton-go/services/hal"
	"picobutton-go/services/hal/platform"
	"picobutton-go/types"
	"picobutton-go/x/logx"
)

var (
	flagConfig   string
	flagBoard    string
	flagLogLevel string
	flagScript   string
	flagHeld     bool
	flagSettle   time.Duration
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "picobutton-sim",
		Short: "Run the button/LED control loop against simulated pins",
		Long: "picobutton-sim brings up the firmware's scheduler and control task on host\n" +
			"fake pins and replays a script of press/release/wait/expect lines.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetOutput(cmd.ErrOrStderr())
			logx.SetLevel(flagLogLevel)
		},
		RunE:         runSim,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	addSimFlags(root.Flags())

	return root
}

func addSimFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "YAML board file (overrides --board)")
	fs.StringVar(&flagBoard, "board", config.DefaultBoard, "Built-in board name")
	fs.StringVarP(&flagScript, "script", "s", "-", "Script file, - for stdin")
	fs.BoolVar(&flagHeld, "held", false, "Hold the button down at boot")
	fs.DurationVar(&flagSettle, "settle", 250*time.Millisecond, "How long an expect line may wait for its condition")
}

func loadBoard() (types.Board, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	b, err := config.ForBoard(flagBoard)
	if err != nil {
		return b, err
	}
	return b, config.Validate(b)
}

func openScript(cmd *cobra.Command) (io.ReadCloser, error) {
	if flagScript == "" || flagScript == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(flagScript)
}

func runSim(cmd *cobra.Command, _ []string) error {
	b, err := loadBoard()
	if err != nil {
		return err
	}

	rc, err := openScript(cmd)
	if err != nil {
		return err
	}
	steps, err := ParseScript(rc)
	rc.Close()
	if err != nil {
		return err
	}

	factory := &platform.HostPinFactory{}
	if flagHeld {
		factory.Pin(b.ButtonPin).Drive(false)
	}
	p, err := platform.SetupWith(b, factory, hal.SystemClock())
	if err != nil {
		return err
	}
	a, err := app.New(b, p)
	if err != nil {
		return err
	}
	pins, ok := p.Pins.(*platform.HostPinFactory)
	if !ok {
		return fmt.Errorf("simulator needs host pins, got %T", p.Pins)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	r := &runner{app: a, pins: pins, settle: flagSettle}
	runErr := r.run(ctx, steps)
	cancel()
	<-done

	if runErr != nil {
		return runErr
	}
	st := a.Sched.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d steps, %d cycles, %d polls, %d idles\n",
		len(steps), a.Task.Cycles(), st.Polls, st.Idles)
	return nil
}
