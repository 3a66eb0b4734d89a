package engine

import (
	"testing"
	"time"
)

func TestStepperDrainsWholeTicks(t *testing.T) {
	s := NewFixedStepper()

	// One full frame at 60Hz is exactly one tick
	ticks := s.Advance(TickInterval)
	if ticks != 1 {
		t.Errorf("one interval: expected 1 tick, got %d", ticks)
	}

	// Half an interval produces nothing, remainder is kept
	ticks = s.Advance(TickInterval / 2)
	if ticks != 0 {
		t.Errorf("half interval: expected 0 ticks, got %d", ticks)
	}
	ticks = s.Advance(TickInterval / 2)
	if ticks != 1 {
		t.Errorf("second half interval: expected 1 tick from carry, got %d", ticks)
	}
}

func TestStepperRefreshRateIndependence(t *testing.T) {
	// Different frame-delta partitions of the same elapsed time must
	// produce the same total tick count.
	total := 500 * time.Millisecond

	partitions := [][]time.Duration{
		{total},
		{total / 2, total / 2},
		{total / 5, total / 5, total / 5, total / 5, total / 5},
		{3 * time.Millisecond, 97 * time.Millisecond, 250 * time.Millisecond, 150 * time.Millisecond},
	}

	want := -1
	for i, deltas := range partitions {
		s := NewFixedStepperWith(TickInterval, 1000)
		got := 0
		for _, d := range deltas {
			got += s.Advance(d)
		}
		if want == -1 {
			want = got
			continue
		}
		if got != want {
			t.Errorf("partition %d: expected %d total ticks, got %d", i, want, got)
		}
	}
	if want != 30 {
		t.Errorf("500ms at 60Hz: expected 30 ticks, got %d", want)
	}
}

func TestStepperBoundsCatchUp(t *testing.T) {
	s := NewFixedStepper()

	// A multi-second stall must not replay the whole backlog
	ticks := s.Advance(5 * time.Second)
	if ticks != MaxCatchUpTicks {
		t.Errorf("after stall: expected %d ticks, got %d", MaxCatchUpTicks, ticks)
	}

	// The dropped backlog must not leak into the next frame
	ticks = s.Advance(TickInterval / 4)
	if ticks != 0 {
		t.Errorf("frame after stall: expected 0 ticks, got %d", ticks)
	}
}

func TestStepperIgnoresNegativeDelta(t *testing.T) {
	s := NewFixedStepper()
	if ticks := s.Advance(-time.Second); ticks != 0 {
		t.Errorf("negative delta: expected 0 ticks, got %d", ticks)
	}
	if ticks := s.Advance(TickInterval); ticks != 1 {
		t.Errorf("after negative delta: expected 1 tick, got %d", ticks)
	}
}

func TestStepperReset(t *testing.T) {
	s := NewFixedStepper()
	s.Advance(TickInterval / 2)
	s.Reset()
	if ticks := s.Advance(TickInterval / 2); ticks != 0 {
		t.Errorf("reset should discard the partial remainder, got %d ticks", ticks)
	}
}
