package timex

import "time"

var epoch = time.Now()

// MonoMs returns milliseconds since process start on the monotonic clock.
// Deadlines compared against it are immune to wall-clock steps.
func MonoMs() int64 { return time.Since(epoch).Milliseconds() }

// Ms converts a millisecond count to a Duration.
func Ms(n uint32) time.Duration { return time.Duration(n) * time.Millisecond }
