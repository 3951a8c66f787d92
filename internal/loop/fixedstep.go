// Package loop converts a host's variable frame timing into a fixed number
// of logical updates per second.
package loop

import "time"

// MaxCatchUp caps how many updates one Advance may return, so a long stall
// does not make the snake jump across the screen.
const MaxCatchUp = 5

// FixedStep accumulates elapsed time and reports how many fixed-length
// updates are due.
type FixedStep struct {
	interval time.Duration
	acc      time.Duration
}

// NewFixedStep returns a FixedStep producing ups updates per second.
// ups values below 1 are treated as 1.
func NewFixedStep(ups int) *FixedStep {
	return &FixedStep{interval: Interval(ups)}
}

// Interval returns the duration of one update at ups updates per second.
// It is never shorter than a nanosecond, however large ups is.
func Interval(ups int) time.Duration {
	return max(time.Nanosecond, time.Second/time.Duration(max(1, ups)))
}

// Advance adds dt to the accumulator and returns the number of updates due.
func (f *FixedStep) Advance(dt time.Duration) int {
	if dt > 0 {
		f.acc += dt
	}

	n := int(f.acc / f.interval)
	if n > MaxCatchUp {
		n = MaxCatchUp
		f.acc = 0
		return n
	}
	f.acc -= time.Duration(n) * f.interval
	return n
}
