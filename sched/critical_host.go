//go:build !tinygo

package sched

import "sync"

// On host builds "interrupts" are goroutines, so a mutex stands in for
// masking interrupts.
type critical struct{ mu sync.Mutex }

type csState struct{}

func (c *critical) enter() csState { c.mu.Lock(); return csState{} }
func (c *critical) exit(csState)   { c.mu.Unlock() }
