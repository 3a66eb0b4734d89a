package wheel

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/engine"
)

// PointerAngle is the fixed screen angle of the pointer, straight up
const PointerAngle = -math.Pi / 2

// maxJitterFrac keeps the landing point inside the winning slice.
// Must stay below 0.5 or the decoded index could disagree with the
// chosen winner.
const maxJitterFrac = 0.38

var (
	ErrBusy      = errors.New("wheel: spin already in progress")
	ErrExhausted = errors.New("wheel: every name has been picked")
)

// Events reports what one Update produced
type Events struct {
	// Ticks counts slice boundaries that passed under the pointer
	Ticks int

	// Winner is non-empty exactly once, on the update that completes
	// the spin
	Winner string

	// Landed marks that same update
	Landed bool
}

// spin holds one animation in flight
type spin struct {
	start    time.Time
	duration time.Duration
	from     float64
	delta    float64
	winner   int
}

// Controller owns wheel state: the roster order, which names have been
// picked, the current rotation and any spin in flight. It is driven by
// explicit times so tests can step it deterministically.
type Controller struct {
	names  []string
	picked map[string]bool

	cfg   config.WheelConfig
	curve Curve
	rng   *engine.Rand

	rotation float64
	active   *spin
	winner   int

	flashUntil time.Time
	settledAt  time.Time
}

// NewController builds a controller over the roster names. picked
// carries lowercased names already drawn (nil for none); those wedges
// render dimmed and never win again until the history is cleared.
func NewController(names []string, picked map[string]bool, cfg config.WheelConfig, rng *engine.Rand) *Controller {
	if picked == nil {
		picked = make(map[string]bool)
	}
	return &Controller{
		names:  names,
		picked: picked,
		cfg:    cfg,
		curve: Curve{
			DecayPower:      cfg.DecayPower,
			WobbleAmplitude: cfg.WobbleAmplitude,
			WobbleCycles:    cfg.WobbleCycles,
		},
		rng:    rng,
		winner: -1,
	}
}

func (c *Controller) Names() []string { return c.names }

func (c *Controller) Rotation() float64 { return c.rotation }

func (c *Controller) IsSpinning() bool { return c.active != nil }

// WinnerIndex returns the settled winner, -1 while spinning or before
// any spin
func (c *Controller) WinnerIndex() int { return c.winner }

func (c *Controller) IsPicked(i int) bool {
	return c.picked[strings.ToLower(c.names[i])]
}

func (c *Controller) EligibleCount() int {
	n := 0
	for i := range c.names {
		if !c.IsPicked(i) {
			n++
		}
	}
	return n
}

// Exhausted reports that no eligible names remain
func (c *Controller) Exhausted() bool { return c.EligibleCount() == 0 }

// ResetPicked makes every name eligible again, as after a history
// clear
func (c *Controller) ResetPicked() {
	c.picked = make(map[string]bool)
	c.winner = -1
}

// SliceAngle is the angular width of one wedge
func (c *Controller) SliceAngle() float64 {
	if len(c.names) == 0 {
		return 2 * math.Pi
	}
	return 2 * math.Pi / float64(len(c.names))
}

// Spin picks a winner uniformly among eligible names and starts the
// animation toward it. The target rotation is chosen so the pointer
// lands inside the winner's slice after the configured number of full
// turns; the animation then simply interpolates there, so completion
// and selection cannot disagree.
func (c *Controller) Spin(now time.Time) error {
	if c.active != nil {
		return ErrBusy
	}

	eligible := make([]int, 0, len(c.names))
	for i := range c.names {
		if !c.IsPicked(i) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return ErrExhausted
	}

	winner := eligible[c.rng.Intn(len(eligible))]
	slice := c.SliceAngle()
	center := (float64(winner) + 0.5) * slice
	jitter := (c.rng.Float64()*2 - 1) * maxJitterFrac * slice

	// Final rotation must satisfy (PointerAngle - r) ≡ center+jitter
	// (mod 2π); align is the shortest forward distance that does.
	align := mod2pi(PointerAngle - center - jitter - c.rotation)

	extra := 0
	if span := int(math.Round(c.cfg.ExtraTurns)); span > 0 {
		extra = c.rng.Intn(span + 1)
	}
	delta := 2*math.Pi*float64(c.cfg.MinTurns+extra) + align

	c.active = &spin{
		start:    now,
		duration: time.Duration(c.cfg.SpinSeconds * float64(time.Second)),
		from:     c.rotation,
		delta:    delta,
		winner:   winner,
	}
	c.winner = -1
	return nil
}

// Update advances the animation to now. Outside a spin it is a no-op
// that returns zero Events.
func (c *Controller) Update(now time.Time) Events {
	var ev Events
	if c.active == nil {
		return ev
	}

	t := float64(now.Sub(c.active.start)) / float64(c.active.duration)
	next := c.active.from + c.active.delta*c.curve.At(t)

	ev.Ticks = c.boundariesCrossed(c.rotation, next)
	if ev.Ticks > 0 {
		c.flashUntil = now.Add(time.Duration(c.cfg.FlashMillis) * time.Millisecond)
	}
	c.rotation = next

	if t >= 1 {
		c.rotation = c.active.from + c.active.delta
		name := c.names[c.active.winner]
		c.picked[strings.ToLower(name)] = true
		c.winner = c.active.winner
		c.active = nil
		c.settledAt = now
		ev.Winner = name
		ev.Landed = true
	}
	return ev
}

// IndexUnderPointer decodes which slice the pointer sits over from the
// rotation alone
func (c *Controller) IndexUnderPointer() int {
	if len(c.names) == 0 {
		return -1
	}
	local := mod2pi(PointerAngle - c.rotation)
	idx := int(local / c.SliceAngle())
	if idx >= len(c.names) {
		idx = len(c.names) - 1
	}
	return idx
}

// FlashActive reports whether the pointer flash is still lit
func (c *Controller) FlashActive(now time.Time) bool {
	return now.Before(c.flashUntil)
}

// GlowPhase returns the winner glow intensity in [0,1], pulsing with
// the configured period. Zero when nothing has settled yet.
func (c *Controller) GlowPhase(now time.Time) float64 {
	if c.winner < 0 {
		return 0
	}
	elapsed := now.Sub(c.settledAt).Seconds()
	return 0.5 + 0.5*math.Sin(2*math.Pi*elapsed/c.cfg.GlowSeconds)
}

// boundariesCrossed counts wedge boundaries passing the pointer
// between two rotations. The wobble tail can briefly reverse, which
// still clicks, hence the absolute value.
func (c *Controller) boundariesCrossed(r0, r1 float64) int {
	slice := c.SliceAngle()
	u0 := math.Floor((r0 - PointerAngle) / slice)
	u1 := math.Floor((r1 - PointerAngle) / slice)
	n := int(u1 - u0)
	if n < 0 {
		n = -n
	}
	return n
}

func mod2pi(x float64) float64 {
	m := math.Mod(x, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m
}
