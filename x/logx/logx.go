// Package logx is the logging front end shared by firmware and host builds.
// TinyGo builds print through the runtime (or a UART writer); host builds use zerolog.
package logx

// Level orders log severities.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// KV is one structured field. Only strings and integers are carried so the
// MCU backend can print without fmt.
type KV struct {
	Key   string
	Str   string
	Int   int64
	isInt bool
}

func Str(k, v string) KV        { return KV{Key: k, Str: v} }
func Int(k string, v int) KV     { return KV{Key: k, Int: int64(v), isInt: true} }
func Int64(k string, v int64) KV { return KV{Key: k, Int: v, isInt: true} }

// ParseLevel maps a level name to a Level. Unknown names select info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "trace":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

func Debug(tag, msg string, kv ...KV)            { emit(LevelDebug, tag, msg, nil, kv) }
func Info(tag, msg string, kv ...KV)             { emit(LevelInfo, tag, msg, nil, kv) }
func Warn(tag, msg string, kv ...KV)             { emit(LevelWarn, tag, msg, nil, kv) }
func Error(tag, msg string, err error, kv ...KV) { emit(LevelError, tag, msg, err, kv) }
