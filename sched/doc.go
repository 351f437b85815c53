// Package sched is a cooperative, single-consumer executor for firmware.
//
// Tasks are polled from a fixed-capacity RunQueue by the main context. A task
// that cannot progress parks on an Operation and hands the driver a *Waker;
// the driver (usually from interrupt context) calls Wake once the awaited
// condition holds, which re-enqueues the task. With nothing queued the
// scheduler parks in Idler.Wait, the platform's low-power wait.
//
// Nothing in this package allocates after New returns.
package sched
