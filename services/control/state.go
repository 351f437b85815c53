package control

// State is the position in the press/release cycle.
type State uint8

const (
	EvaluateInitial State = iota // sample the button
	WaitPress                    // falling-edge wait
	Pressed                      // informational
	LedOn                        // drive outputs active
	WaitRelease                  // rising-edge wait
	LedOff                       // drive outputs inactive
	Debounce                     // fixed timer wait, then wrap
)

const numStates = int(Debounce) + 1

var stateNames = [numStates]string{
	"EvaluateInitial", "WaitPress", "Pressed", "LedOn", "WaitRelease", "LedOff", "Debounce",
}

func (s State) String() string {
	if int(s) < numStates {
		return stateNames[s]
	}
	return "Unknown"
}

// ParseState maps a state name back to its value.
func ParseState(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(i), true
		}
	}
	return 0, false
}

// OutputsActive reports whether both outputs are lit while in s.
func (s State) OutputsActive() bool { return s == LedOn || s == WaitRelease }

// Suspends reports whether s parks on an external condition.
func (s State) Suspends() bool { return s == WaitPress || s == WaitRelease || s == Debounce }
