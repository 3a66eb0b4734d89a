package flappy

import (
	"math"
	"testing"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/engine"
)

func newTestGame(seed uint64) *Game {
	cfg := config.Default().Game
	g := NewGame(cfg.Profiles["normal"], cfg, engine.NewRand(seed))
	g.Resize(80, 24)
	return g
}

func TestReadyStateHoversWithoutPipes(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 600; i++ {
		g.Step()
	}
	if g.State() != StateReady {
		t.Errorf("expected StateReady without input, got %v", g.State())
	}
	if len(g.Pipes()) != 0 {
		t.Errorf("expected no pipes before the run starts, got %d", len(g.Pipes()))
	}
	if g.Score() != 0 {
		t.Errorf("expected score 0 before the run, got %d", g.Score())
	}
}

func TestFirstFlapStartsRun(t *testing.T) {
	g := newTestGame(1)
	g.Flap()
	if g.State() != StatePlaying {
		t.Fatalf("expected StatePlaying after first flap, got %v", g.State())
	}
}

func TestDeterministicRuns(t *testing.T) {
	// same seed and flap schedule must reproduce the run exactly
	run := func() (trace []float64, score int, state State) {
		g := newTestGame(42)
		g.Flap()
		for tick := 1; tick <= 900; tick++ {
			if tick%25 == 0 {
				g.Flap()
			}
			g.Step()
			if tick%50 == 0 {
				_, y, _ := g.Bird()
				trace = append(trace, y)
			}
		}
		return trace, g.Score(), g.State()
	}

	traceA, scoreA, stateA := run()
	traceB, scoreB, stateB := run()

	if scoreA != scoreB {
		t.Errorf("expected identical scores, got %d and %d", scoreA, scoreB)
	}
	if stateA != stateB {
		t.Errorf("expected identical end states, got %v and %v", stateA, stateB)
	}
	for i := range traceA {
		if traceA[i] != traceB[i] {
			t.Errorf("trace sample %d: expected %v, got %v", i, traceA[i], traceB[i])
		}
	}
}

func TestFlapReplacesVelocity(t *testing.T) {
	g := newTestGame(1)
	g.Flap()
	g.Step()
	_, _, vel := g.Bird()
	want := g.Profile().FlapImpulse + g.Profile().Gravity
	if math.Abs(vel-want) > 1e-9 {
		t.Errorf("expected velocity %v after flap tick, got %v", want, vel)
	}

	// a second flap mid-fall resets, not stacks
	for i := 0; i < 10; i++ {
		g.Step()
	}
	g.Flap()
	g.Step()
	_, _, vel = g.Bird()
	if math.Abs(vel-want) > 1e-9 {
		t.Errorf("expected flap to replace velocity with %v, got %v", want, vel)
	}
}

func TestTerminalVelocityCap(t *testing.T) {
	g := newTestGame(1)
	g.Flap()
	g.birdY = 3 // long fall ahead
	for i := 0; i < 200 && g.State() == StatePlaying; i++ {
		g.Step()
		if _, _, vel := g.Bird(); vel > g.Profile().TerminalVelocity+1e-9 {
			t.Fatalf("tick %d: velocity %v exceeds terminal %v", i, vel, g.Profile().TerminalVelocity)
		}
	}
}

func TestCeilingClampsWithoutDeath(t *testing.T) {
	g := newTestGame(1)
	g.Flap()
	g.Step()
	g.birdY = 1
	g.birdVel = -3
	g.Step()
	if g.State() != StatePlaying {
		t.Errorf("ceiling contact must not end the run, state %v", g.State())
	}
	_, y, vel := g.Bird()
	if y < birdH/2-1e-9 {
		t.Errorf("expected bird clamped to ceiling at %v, got %v", birdH/2, y)
	}
	if vel != 0 {
		t.Errorf("expected upward velocity cancelled at ceiling, got %v", vel)
	}
}

func TestGroundEndsRun(t *testing.T) {
	g := newTestGame(1)
	g.Flap()
	steps := 0
	for g.State() == StatePlaying {
		g.Step()
		steps++
		if steps > 2000 {
			t.Fatal("bird never reached the ground without flapping")
		}
	}
	if g.State() != StateDead {
		t.Fatalf("expected StateDead, got %v", g.State())
	}
	_, y, _ := g.Bird()
	if diff := math.Abs(y + birdH/2 - g.GroundY()); diff > 1e-6 {
		t.Errorf("expected bird resting on ground, off by %v", diff)
	}
}

func TestScoreIncrementsOncePerPipe(t *testing.T) {
	g := newTestGame(1)
	g.profile.SpawnTicks = 100000 // no extra pipes during the test
	g.Flap()
	g.Step()

	gap := g.Profile().GapSize
	gapY := g.GroundY()/2 - gap/2
	g.pipes.Spawn(g.birdX+10, gapY)

	hold := gapY + gap/2
	for i := 0; i < 600; i++ {
		g.birdY = hold
		g.birdVel = 0
		g.Step()
		if g.State() != StatePlaying {
			t.Fatalf("tick %d: run ended unexpectedly in state %v", i, g.State())
		}
	}
	if g.Score() != 1 {
		t.Errorf("expected exactly 1 point for one pipe, got %d", g.Score())
	}
	if len(g.Pipes()) != 0 {
		t.Errorf("expected pipe recycled after leaving the screen, got %d live", len(g.Pipes()))
	}
}

func TestCollisionForgiveness(t *testing.T) {
	g := newTestGame(1)
	g.profile.Forgiveness = 0.5
	g.Flap()
	g.Step()

	gapY := 10.0
	g.pipes.Spawn(g.birdX-1, gapY)

	// raw overlap shallower than forgiveness survives
	g.birdY = gapY + birdH/2 - 0.3
	if g.hitPipe() {
		t.Error("graze within forgiveness should not collide")
	}

	// overlap deeper than forgiveness collides
	g.birdY = gapY + birdH/2 - 0.7
	if !g.hitPipe() {
		t.Error("overlap beyond forgiveness should collide")
	}

	// same check against the bottom half
	gapBottom := gapY + g.Profile().GapSize
	g.birdY = gapBottom - birdH/2 + 0.3
	if g.hitPipe() {
		t.Error("bottom graze within forgiveness should not collide")
	}
	g.birdY = gapBottom - birdH/2 + 0.7
	if !g.hitPipe() {
		t.Error("bottom overlap beyond forgiveness should collide")
	}
}

func TestSpawnCadence(t *testing.T) {
	g := newTestGame(1)
	g.profile.ScrollSpeed = 0.01 // pipes never reach the bird
	g.Flap()

	interval := g.Profile().SpawnTicks
	for i := 0; i < interval+1; i++ {
		g.Step()
	}
	if got := len(g.Pipes()); got != 1 {
		t.Fatalf("expected 1 pipe after first interval, got %d", got)
	}
	for i := 0; i < interval; i++ {
		g.Step()
	}
	if got := len(g.Pipes()); got != 2 {
		t.Errorf("expected 2 pipes after second interval, got %d", got)
	}
}

func TestDeathFreezesWorld(t *testing.T) {
	g := newTestGame(1)
	g.Flap()
	g.Step()
	g.pipes.Spawn(60, 8)

	g.birdY = g.GroundY() // ground contact on next step
	g.Step()
	if g.State() != StateDead {
		t.Fatalf("expected StateDead, got %v", g.State())
	}
	frozenX := g.Pipes()[0].X
	score := g.Score()

	g.Flap() // ignored while dead
	for i := 0; i < 120; i++ {
		g.Step()
	}
	if g.State() != StateDead {
		t.Errorf("flap while dead must not restart, state %v", g.State())
	}
	if g.Pipes()[0].X != frozenX {
		t.Errorf("expected pipes frozen after death, moved from %v to %v", frozenX, g.Pipes()[0].X)
	}
	if g.Score() != score {
		t.Errorf("expected score frozen after death, went from %d to %d", score, g.Score())
	}
}

func TestSetProfileResetsRun(t *testing.T) {
	g := newTestGame(1)
	g.Flap()
	for i := 0; i < 50; i++ {
		g.Step()
	}
	g.score = 5
	g.pipes.Spawn(40, 8)

	g.SetProfile(config.Default().Game.Profiles["hard"])
	if g.State() != StateReady {
		t.Errorf("expected StateReady after difficulty change, got %v", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("expected score reset, got %d", g.Score())
	}
	if len(g.Pipes()) != 0 {
		t.Errorf("expected pipes cleared, got %d", len(g.Pipes()))
	}
	if g.Profile().Gravity != config.Default().Game.Profiles["hard"].Gravity {
		t.Error("expected hard profile active")
	}
}

func TestTiltFollowsVelocity(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 120; i++ {
		g.Step()
		if math.Abs(g.Tilt()) > 0.05 {
			t.Fatalf("tick %d: expected level pose while hovering, tilt %v", i, g.Tilt())
		}
	}

	// the flap impulse noses the bird up
	g.Flap()
	for i := 0; i < 3; i++ {
		g.Step()
	}
	if g.Tilt() >= 0 {
		t.Errorf("expected nose-up tilt right after a flap, got %v", g.Tilt())
	}

	// a long fall settles into a full dive
	g.birdY = 3
	for i := 0; i < 60 && g.State() == StatePlaying; i++ {
		g.Step()
		if tilt := g.Tilt(); tilt < -1 || tilt > 1 {
			t.Fatalf("tick %d: tilt %v outside [-1, 1]", i, tilt)
		}
	}
	if g.Tilt() < 0.9 {
		t.Errorf("expected near-full dive tilt after a long fall, got %v", g.Tilt())
	}
}

func TestResizeKeepsBirdInBounds(t *testing.T) {
	g := newTestGame(1)
	g.Flap()
	g.Step()
	g.birdY = 20

	g.Resize(40, 12)
	if g.State() != StatePlaying {
		t.Errorf("resize must not end the run, state %v", g.State())
	}
	_, y, _ := g.Bird()
	if y+birdH/2 > g.GroundY()+1e-9 {
		t.Errorf("expected bird clamped above ground %v, got y=%v", g.GroundY(), y)
	}
}
