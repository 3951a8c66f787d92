package loop

import (
	"math"
	"testing"
	"time"
)

func TestFixedStepSixtyHzHostAtEightUPS(t *testing.T) {
	f := NewFixedStep(8)
	frame := time.Second / 60

	total := 0
	for range 60 * 10 {
		total += f.Advance(frame)
	}

	// 600 host frames of 16.666ms lose a few ns to integer division.
	if total < 79 || total > 80 {
		t.Errorf("updates over 10s = %d, expected 80", total)
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	f := NewFixedStep(8)

	if n := f.Advance(100 * time.Millisecond); n != 0 {
		t.Errorf("Advance(100ms) = %d, expected 0", n)
	}
	if n := f.Advance(30 * time.Millisecond); n != 1 {
		t.Errorf("Advance(30ms) = %d, expected 1", n)
	}
	if n := f.Advance(120 * time.Millisecond); n != 1 {
		t.Errorf("Advance(120ms) = %d, expected 1 (5ms carried over)", n)
	}
}

func TestFixedStepCatchUpCap(t *testing.T) {
	f := NewFixedStep(8)

	if n := f.Advance(10 * time.Second); n != MaxCatchUp {
		t.Errorf("Advance(10s) = %d, expected %d", n, MaxCatchUp)
	}
	if n := f.Advance(time.Millisecond); n != 0 {
		t.Errorf("Advance after cap = %d, expected 0", n)
	}
}

func TestFixedStepIgnoresNegativeAndClampsRate(t *testing.T) {
	f := NewFixedStep(0)
	if n := f.Advance(-time.Second); n != 0 {
		t.Errorf("Advance(-1s) = %d, expected 0", n)
	}
	if n := f.Advance(900 * time.Millisecond); n != 0 {
		t.Errorf("Advance(900ms) at rate 0 = %d, expected 0 (treated as 1/s)", n)
	}
	if n := f.Advance(100 * time.Millisecond); n != 1 {
		t.Errorf("Advance(100ms) = %d, expected 1", n)
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		ups      int
		expected time.Duration
	}{
		{-5, time.Second},
		{0, time.Second},
		{8, 125 * time.Millisecond},
		{1_000_000_000, time.Nanosecond},
		{2_000_000_000, time.Nanosecond},
		{math.MaxInt, time.Nanosecond},
	}

	for _, tc := range tests {
		if got := Interval(tc.ups); got != tc.expected {
			t.Errorf("Interval(%d) = %v, expected %v", tc.ups, got, tc.expected)
		}
	}
}

func TestFixedStepHugeRateDoesNotPanic(t *testing.T) {
	f := NewFixedStep(2_000_000_000)

	if n := f.Advance(time.Second / 60); n != MaxCatchUp {
		t.Errorf("Advance() = %d, expected %d", n, MaxCatchUp)
	}
}
