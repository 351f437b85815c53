//go:build !tinygo

package logx

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "15:04:05.000"

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, LevelInfo)
	level  = LevelInfo
	out    io.Writer = os.Stderr
)

func newLogger(w io.Writer, l Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat, NoColor: true}
	return zerolog.New(cw).Level(toZerolog(l)).With().Timestamp().Logger()
}

func toZerolog(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetOutput redirects log lines to w.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	mu.Lock()
	out = w
	logger = newLogger(out, level)
	mu.Unlock()
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
func SetLevel(name string) {
	mu.Lock()
	level = ParseLevel(name)
	logger = newLogger(out, level)
	mu.Unlock()
}

func emit(l Level, tag, msg string, err error, kv []KV) {
	mu.RLock()
	lg := logger
	mu.RUnlock()

	var ev *zerolog.Event
	switch l {
	case LevelDebug:
		ev = lg.Debug()
	case LevelWarn:
		ev = lg.Warn()
	case LevelError:
		ev = lg.Error()
	default:
		ev = lg.Info()
	}
	if ev == nil {
		return
	}
	ev = ev.Str("tag", tag)
	for _, f := range kv {
		if f.isInt {
			ev = ev.Int64(f.Key, f.Int)
		} else {
			ev = ev.Str(f.Key, f.Str)
		}
	}
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
