package types

// Level is a sampled digital input level.
type Level uint8

const (
	Low Level = iota
	High
)

func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// LevelOf converts a raw pin read into a Level.
func LevelOf(b bool) Level {
	if b {
		return High
	}
	return Low
}

// Edge selects a transition direction.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// After reports the level a pin settles at once the edge has happened.
// EdgeBoth and EdgeNone have no single post-edge level; ok is false.
func (e Edge) After() (lvl Level, ok bool) {
	switch e {
	case EdgeRising:
		return High, true
	case EdgeFalling:
		return Low, true
	}
	return Low, false
}

// Pull selects the input bias resistor.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// ParsePull maps a config name to a Pull.
func ParsePull(s string) (Pull, bool) {
	switch s {
	case "up":
		return PullUp, true
	case "down":
		return PullDown, true
	case "none", "":
		return PullNone, true
	}
	return PullNone, false
}
