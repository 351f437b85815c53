//go:build tinygo

package sched

import "runtime/interrupt"

// Single core: masking interrupts is sufficient and never blocks an ISR.
type critical struct{}

type csState = interrupt.State

func (*critical) enter() csState  { return interrupt.Disable() }
func (*critical) exit(s csState) { interrupt.Restore(s) }
