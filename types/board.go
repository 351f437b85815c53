package types

// Board is the wiring and operating configuration of one controller.
// Pins are plain GPIO numbers; mapping to machine.Pin happens in the platform layer.
type Board struct {
	Name string `yaml:"name" json:"name"`

	ButtonPin  int    `yaml:"button_pin" json:"button_pin"`
	ButtonPull string `yaml:"button_pull" json:"button_pull"` // "up","down","none"

	LEDPin       int  `yaml:"led_pin" json:"led_pin"`
	LEDActiveLow bool `yaml:"led_active_low,omitempty" json:"led_active_low,omitempty"`

	StripPin    int `yaml:"strip_pin" json:"strip_pin"`
	StripPixels int `yaml:"strip_pixels" json:"strip_pixels"`

	Color RGB `yaml:"color" json:"color"`

	DebounceMs uint32 `yaml:"debounce_ms" json:"debounce_ms"`

	// Optional UART log sink ("" = runtime console).
	LogUART string `yaml:"log_uart,omitempty" json:"log_uart,omitempty"`
	LogBaud uint32 `yaml:"log_baud,omitempty" json:"log_baud,omitempty"`
	LogTX   int    `yaml:"log_tx,omitempty" json:"log_tx,omitempty"`
	LogRX   int    `yaml:"log_rx,omitempty" json:"log_rx,omitempty"`
}

// RGB is the "on" colour written to the addressable strip.
type RGB struct {
	R uint8 `yaml:"r" json:"r"`
	G uint8 `yaml:"g" json:"g"`
	B uint8 `yaml:"b" json:"b"`
}
