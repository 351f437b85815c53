package config

import "picobutton-go/types"

// -----------------------------------------------------------------------------
// Built-in board configurations
//
// Key: board name (matches Board.Name)
// Val: wiring and operating parameters for that board
// -----------------------------------------------------------------------------

var cfgPico = types.Board{
	Name:        "pico",
	ButtonPin:   16,
	ButtonPull:  "up",
	LEDPin:      25,
	StripPin:    17,
	StripPixels: 1,
	Color:       types.RGB{R: 255},
	DebounceMs:  10,
}

// Pico 2 wiring is identical; the board name only selects the target.
var cfgPico2 = func() types.Board {
	b := cfgPico
	b.Name = "pico2"
	return b
}()

var embeddedConfigs = map[string]types.Board{
	"pico":  cfgPico,
	"pico2": cfgPico2,
}
