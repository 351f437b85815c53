//go:build tinygo

package logx

import "io"

var (
	out   io.Writer // nil: runtime println (USB CDC)
	level = LevelInfo

	// Line buffer for the writer path. Only the main context logs.
	scratch [128]byte
)

// SetOutput routes log lines to w (e.g. a UART). nil restores println.
func SetOutput(w io.Writer) { out = w }

// SetLevel sets the minimum level by name.
func SetLevel(name string) { level = ParseLevel(name) }

func emit(l Level, tag, msg string, err error, kv []KV) {
	if l < level {
		return
	}
	if out == nil {
		print("[", tag, "] ", msg)
		for _, f := range kv {
			if f.isInt {
				print(" ", f.Key, "=", f.Int)
			} else {
				print(" ", f.Key, "=", f.Str)
			}
		}
		if err != nil {
			print(" err=", err.Error())
		}
		println()
		return
	}

	line := appendLine(scratch[:0], tag, msg, err, kv)
	_, _ = out.Write(line)
}
