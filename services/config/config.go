// Package config resolves and validates the board configuration before the
// scheduler starts. Every rejection is an errcode.ConfigurationError.
package config

import (
	"strconv"

	"picobutton-go/errcode"
	"picobutton-go/types"
)

const (
	DefaultBoard = "pico"

	// RP2 user GPIOs are GP0..GP28.
	GPIOMin = 0
	GPIOMax = 28

	MaxPixels     = 64
	MaxDebounceMs = 1000
)

// EmbeddedConfigLookup allows overriding how board configs are resolved.
var EmbeddedConfigLookup = func(name string) (types.Board, bool) {
	b, ok := embeddedConfigs[name]
	return b, ok
}

// Default returns the built-in configuration for the default board.
func Default() types.Board {
	b, _ := EmbeddedConfigLookup(DefaultBoard)
	return b
}

// ForBoard returns the built-in configuration for name.
func ForBoard(name string) (types.Board, error) {
	b, ok := EmbeddedConfigLookup(name)
	if !ok {
		return types.Board{}, errcode.Config("config.board", "no built-in config for board "+name)
	}
	return b, nil
}

// Validate checks pin ranges, pin conflicts and operating limits.
func Validate(b types.Board) error {
	const op = "config.validate"
	pins := []struct {
		name string
		n    int
	}{
		{"button_pin", b.ButtonPin},
		{"led_pin", b.LEDPin},
		{"strip_pin", b.StripPin},
	}
	for _, p := range pins {
		if p.n < GPIOMin || p.n > GPIOMax {
			return &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: p.name + " " + strconv.Itoa(p.n) + " out of range", Err: errcode.UnknownPin}
		}
	}
	for i := range pins {
		for j := i + 1; j < len(pins); j++ {
			if pins[i].n == pins[j].n {
				return &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: pins[i].name + " and " + pins[j].name + " share GP" + strconv.Itoa(pins[i].n), Err: errcode.PinInUse}
			}
		}
	}
	if _, ok := types.ParsePull(b.ButtonPull); !ok {
		return errcode.Config(op, "unknown button_pull "+strconv.Quote(b.ButtonPull))
	}
	if b.StripPixels < 1 || b.StripPixels > MaxPixels {
		return errcode.Config(op, "strip_pixels must be 1.."+strconv.Itoa(MaxPixels))
	}
	if b.DebounceMs < 1 || b.DebounceMs > MaxDebounceMs {
		return errcode.Config(op, "debounce_ms must be 1.."+strconv.Itoa(MaxDebounceMs))
	}
	switch b.LogUART {
	case "":
	case "uart0", "uart1":
		if b.LogTX < GPIOMin || b.LogTX > GPIOMax || b.LogRX < GPIOMin || b.LogRX > GPIOMax {
			return &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "log uart pins out of range", Err: errcode.UnknownPin}
		}
		for _, p := range pins {
			if p.n == b.LogTX || p.n == b.LogRX {
				return &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "log uart pins collide with " + p.name, Err: errcode.PinInUse}
			}
		}
	default:
		return &errcode.E{C: errcode.ConfigurationError, Op: op, Msg: "unknown log_uart " + strconv.Quote(b.LogUART), Err: errcode.UnknownBus}
	}
	return nil
}
