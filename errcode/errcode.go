package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK         Code = "ok"
	UnknownPin Code = "unknown_pin"
	PinInUse   Code = "pin_in_use"
	UnknownBus Code = "unknown_bus"

	// Fatal startup classes. Neither is recoverable once raised.
	ConfigurationError Code = "config_error"
	SpawnFailure       Code = "spawn_failed"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Config builds a ConfigurationError for op.
func Config(op, msg string) error {
	return &E{C: ConfigurationError, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		return Of(u.Unwrap())
	}
	return Error
}

// IsFatal reports whether err belongs to a startup class that must halt the firmware.
func IsFatal(err error) bool {
	switch Of(err) {
	case ConfigurationError, SpawnFailure:
		return true
	}
	return false
}
