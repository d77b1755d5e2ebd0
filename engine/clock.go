package engine

import "time"

// Clock drives the simulation with at most one periodic timer armed at a time
// Arm always cancels the active timer before arming the new one
type Clock interface {
	// Arm cancels any active periodic timer, then invokes fn every period
	Arm(period time.Duration, fn func())
	// Disarm cancels the active periodic timer, never blocks
	Disarm()
	// Active reports whether a periodic timer is armed
	Active() bool
	// Period returns the armed period, zero when disarmed
	Period() time.Duration
	// After invokes fn once after d; the returned func cancels it
	After(d time.Duration, fn func()) (cancel func())
}
