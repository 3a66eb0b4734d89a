package engine

import "time"

// TickInterval is the logical simulation step. Physics advances in
// whole ticks of this size regardless of the display refresh rate.
const TickInterval = time.Second / 60

// MaxCatchUpTicks bounds how many ticks a single frame may drain.
// After a long stall (window hidden, laptop lid) the backlog past this
// cap is discarded instead of replayed, the same drift correction the
// frame scheduler applies.
const MaxCatchUpTicks = 6

// FixedStepper converts variable frame deltas into a whole number of
// fixed simulation ticks. Feeding it any sequence of deltas that sums
// to the same total elapsed time yields the same total tick count, so
// simulations driven by it are refresh-rate independent.
type FixedStepper struct {
	interval    time.Duration
	accumulated time.Duration
	maxCatchUp  int
}

// NewFixedStepper creates a stepper with the standard tick interval
func NewFixedStepper() *FixedStepper {
	return &FixedStepper{
		interval:   TickInterval,
		maxCatchUp: MaxCatchUpTicks,
	}
}

// NewFixedStepperWith creates a stepper with a custom interval and
// catch-up bound. Interval must be positive.
func NewFixedStepperWith(interval time.Duration, maxCatchUp int) *FixedStepper {
	if interval <= 0 {
		interval = TickInterval
	}
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &FixedStepper{
		interval:   interval,
		maxCatchUp: maxCatchUp,
	}
}

// Advance adds a frame delta and returns how many whole ticks the
// caller should run. Negative deltas are ignored. When the backlog
// exceeds the catch-up bound the excess is dropped.
func (s *FixedStepper) Advance(delta time.Duration) int {
	if delta < 0 {
		return 0
	}
	s.accumulated += delta

	ticks := int(s.accumulated / s.interval)
	if ticks > s.maxCatchUp {
		// Discard the runaway backlog, keep the sub-tick remainder
		s.accumulated -= time.Duration(ticks-s.maxCatchUp) * s.interval
		ticks = s.maxCatchUp
	}
	s.accumulated -= time.Duration(ticks) * s.interval
	return ticks
}

// Reset discards any accumulated partial time. Used when entering a
// fresh run so the first frame does not inherit a stale remainder.
func (s *FixedStepper) Reset() {
	s.accumulated = 0
}
