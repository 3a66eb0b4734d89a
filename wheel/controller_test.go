package wheel

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/engine"
)

var testNames = []string{"Ada", "Bix", "Cleo", "Dune", "Echo", "Fern"}

func testStart() time.Time {
	return time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
}

func newTestController(seed uint64, picked map[string]bool) *Controller {
	return NewController(testNames, picked, config.Default().Wheel, engine.NewRand(seed))
}

// completeSpin starts a spin and steps it at 60Hz until it lands,
// returning the winner and the summed boundary ticks.
func completeSpin(t *testing.T, c *Controller, start time.Time) (string, int) {
	t.Helper()
	if err := c.Spin(start); err != nil {
		t.Fatalf("spin: %v", err)
	}
	step := time.Second / 60
	now := start
	ticks := 0
	for i := 0; i < 60*120; i++ {
		now = now.Add(step)
		ev := c.Update(now)
		ticks += ev.Ticks
		if ev.Landed {
			return ev.Winner, ticks
		}
	}
	t.Fatal("spin never completed")
	return "", 0
}

func TestSpinSelectsOnlyEligible(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		c := newTestController(seed, map[string]bool{
			"ada": true, "bix": true, "cleo": true, "dune": true,
		})
		winner, _ := completeSpin(t, c, testStart())
		if winner != "Echo" && winner != "Fern" {
			t.Errorf("seed %d: expected winner among eligible names, got %q", seed, winner)
		}
	}
}

func TestNoRepeatUntilExhausted(t *testing.T) {
	c := newTestController(7, nil)
	seen := make(map[string]bool)
	now := testStart()
	for i := 0; i < len(testNames); i++ {
		winner, _ := completeSpin(t, c, now)
		if seen[winner] {
			t.Fatalf("spin %d repeated winner %q", i, winner)
		}
		seen[winner] = true
		now = now.Add(time.Minute)
	}
	if !c.Exhausted() {
		t.Error("expected exhausted wheel after every name won")
	}
	if err := c.Spin(now); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
}

func TestSpinWhileSpinningIsBusy(t *testing.T) {
	c := newTestController(3, nil)
	start := testStart()
	if err := c.Spin(start); err != nil {
		t.Fatalf("first spin: %v", err)
	}
	c.Update(start.Add(time.Second))
	if err := c.Spin(start.Add(time.Second)); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy during spin, got %v", err)
	}
}

func TestPointerDecodesWinner(t *testing.T) {
	// the landed rotation alone must identify the winner
	for seed := uint64(1); seed <= 25; seed++ {
		c := newTestController(seed, nil)
		winner, _ := completeSpin(t, c, testStart())
		idx := c.IndexUnderPointer()
		if testNames[idx] != winner {
			t.Errorf("seed %d: pointer decodes %q at rotation %v, but winner was %q",
				seed, testNames[idx], c.Rotation(), winner)
		}
		if c.WinnerIndex() != idx {
			t.Errorf("seed %d: WinnerIndex=%d disagrees with decoded index %d",
				seed, c.WinnerIndex(), idx)
		}
	}
}

func TestUpdateCadenceDoesNotChangeOutcome(t *testing.T) {
	// the animation is a pure function of absolute time, so a janky
	// frame rate may skip frames but never lands elsewhere
	a := newTestController(11, nil)
	b := newTestController(11, nil)
	start := testStart()

	winnerA, _ := completeSpin(t, a, start)

	if err := b.Spin(start); err != nil {
		t.Fatalf("spin: %v", err)
	}
	var winnerB string
	now := start
	cadence := []time.Duration{
		3 * time.Millisecond, 250 * time.Millisecond, 17 * time.Millisecond,
		500 * time.Millisecond, time.Millisecond,
	}
	for i := 0; winnerB == ""; i++ {
		if i > 100000 {
			t.Fatal("irregular spin never completed")
		}
		now = now.Add(cadence[i%len(cadence)])
		if ev := b.Update(now); ev.Landed {
			winnerB = ev.Winner
		}
	}

	if winnerA != winnerB {
		t.Errorf("expected same winner under any cadence: %q vs %q", winnerA, winnerB)
	}
	if diff := math.Abs(a.Rotation() - b.Rotation()); diff > 1e-9 {
		t.Errorf("expected same landed rotation, differs by %v", diff)
	}
}

func TestTicksTrackTravel(t *testing.T) {
	c := newTestController(5, nil)
	before := c.Rotation()
	_, ticks := completeSpin(t, c, testStart())
	travel := c.Rotation() - before
	expected := travel / c.SliceAngle()
	// wobble reversals can add a few extra crossings
	if float64(ticks) < expected-1 || float64(ticks) > expected+5 {
		t.Errorf("expected roughly %.0f boundary ticks for %.2f rad of travel, got %d",
			expected, travel, ticks)
	}
	if ticks == 0 {
		t.Error("a multi-turn spin must produce boundary ticks")
	}
}

func TestResetPickedRestoresEligibility(t *testing.T) {
	c := newTestController(9, nil)
	now := testStart()
	for i := 0; i < len(testNames); i++ {
		completeSpin(t, c, now)
		now = now.Add(time.Minute)
	}
	if !c.Exhausted() {
		t.Fatal("expected exhausted wheel")
	}
	c.ResetPicked()
	if c.Exhausted() {
		t.Error("reset should restore eligibility")
	}
	if c.EligibleCount() != len(testNames) {
		t.Errorf("expected %d eligible after reset, got %d", len(testNames), c.EligibleCount())
	}
	if c.WinnerIndex() != -1 {
		t.Error("reset should clear the settled winner")
	}
	if err := c.Spin(now); err != nil {
		t.Errorf("spin after reset: %v", err)
	}
}

func TestFlashWindow(t *testing.T) {
	c := newTestController(13, nil)
	start := testStart()
	if err := c.Spin(start); err != nil {
		t.Fatalf("spin: %v", err)
	}
	// one second in, the wheel is moving fast and must have crossed
	// boundaries, arming the flash
	now := start.Add(time.Second)
	ev := c.Update(now)
	if ev.Ticks == 0 {
		t.Fatal("expected boundary crossings one second into the spin")
	}
	if !c.FlashActive(now) {
		t.Error("flash should be lit immediately after a crossing")
	}
	if c.FlashActive(now.Add(time.Second)) {
		t.Error("flash should expire")
	}
}

func TestGlowOnlyAfterSettle(t *testing.T) {
	c := newTestController(17, nil)
	if got := c.GlowPhase(testStart()); got != 0 {
		t.Errorf("expected no glow before any spin, got %v", got)
	}
	completeSpin(t, c, testStart())
	phase := c.GlowPhase(testStart().Add(10 * time.Second))
	if phase < 0 || phase > 1 {
		t.Errorf("expected glow phase in [0,1], got %v", phase)
	}
}

func TestTwoNameRosterExhausts(t *testing.T) {
	c := NewController([]string{"Ada", "Bix"}, nil, config.Default().Wheel, engine.NewRand(21))
	now := testStart()

	first, _ := completeSpin(t, c, now)
	now = now.Add(time.Minute)
	second, _ := completeSpin(t, c, now)
	now = now.Add(time.Minute)

	if first == second {
		t.Errorf("two-name wheel repeated %q before exhausting", first)
	}
	if !c.Exhausted() {
		t.Error("expected exhausted wheel after both names won")
	}
	if err := c.Spin(now); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted on the third spin, got %v", err)
	}
}

func TestEmptyRosterIsExhausted(t *testing.T) {
	c := NewController(nil, nil, config.Default().Wheel, engine.NewRand(1))
	if !c.Exhausted() {
		t.Error("empty roster should report exhausted")
	}
	if err := c.Spin(testStart()); !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted for empty roster, got %v", err)
	}
}
