// Package wheel implements the prize wheel: winner selection over the
// eligible roster, the spin animation, and the terminal renderer.
package wheel

import "math"

// Curve shapes spin progress over normalized time. The base term is a
// power ease-out; the wobble term adds a decaying oscillation near the
// end so the wheel appears to settle rather than stop dead.
//
// The (1-t)² envelope forces the wobble to zero at t=1 for any
// parameter values, so At(0)=0 and At(1)=1 always hold exactly and the
// final rotation never drifts off the chosen target.
type Curve struct {
	DecayPower      float64
	WobbleAmplitude float64
	WobbleCycles    float64
}

// At maps normalized time t in [0,1] to normalized progress. Inputs
// outside the range clamp to the endpoints.
func (c Curve) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	base := 1 - math.Pow(inv, c.DecayPower)
	wobble := c.WobbleAmplitude * math.Sin(c.WobbleCycles*2*math.Pi*t) * inv * inv
	return base + wobble
}
