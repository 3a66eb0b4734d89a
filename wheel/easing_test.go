package wheel

import (
	"math"
	"testing"
)

func TestCurveEndpointsExact(t *testing.T) {
	// the wobble envelope must zero out at both ends for any tuning,
	// otherwise the landed rotation drifts off the chosen target
	curves := []Curve{
		{DecayPower: 3, WobbleAmplitude: 0.006, WobbleCycles: 2.5},
		{DecayPower: 1, WobbleAmplitude: 0, WobbleCycles: 0},
		{DecayPower: 8, WobbleAmplitude: 0.05, WobbleCycles: 9.7},
		{DecayPower: 2.2, WobbleAmplitude: 0.03, WobbleCycles: 1.3},
	}
	for _, c := range curves {
		if got := c.At(0); got != 0 {
			t.Errorf("curve %+v: expected At(0)=0, got %v", c, got)
		}
		if got := c.At(1); got != 1 {
			t.Errorf("curve %+v: expected At(1)=1, got %v", c, got)
		}
	}
}

func TestCurveClampsOutOfRange(t *testing.T) {
	c := Curve{DecayPower: 3, WobbleAmplitude: 0.006, WobbleCycles: 2.5}
	if got := c.At(-0.5); got != 0 {
		t.Errorf("expected At(-0.5)=0, got %v", got)
	}
	if got := c.At(1.5); got != 1 {
		t.Errorf("expected At(1.5)=1, got %v", got)
	}
}

func TestCurveMonotonicWithoutWobble(t *testing.T) {
	c := Curve{DecayPower: 3}
	prev := c.At(0)
	for i := 1; i <= 100; i++ {
		cur := c.At(float64(i) / 100)
		if cur < prev {
			t.Fatalf("expected monotonic progress without wobble, At(%v)=%v < At(%v)=%v",
				float64(i)/100, cur, float64(i-1)/100, prev)
		}
		prev = cur
	}
}

func TestCurveSettlesNearEnd(t *testing.T) {
	c := Curve{DecayPower: 3, WobbleAmplitude: 0.006, WobbleCycles: 2.5}
	if diff := math.Abs(c.At(0.99) - 1); diff > 0.01 {
		t.Errorf("expected progress within 1%% of target at t=0.99, off by %v", diff)
	}
}
