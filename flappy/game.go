package flappy

import (
	"math"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/engine"
)

// State is the run lifecycle. Pausing is not a state here: the caller
// freezes game time instead, which stops ticks from arriving.
type State int

const (
	// StateReady waits for the first flap; the bird hovers
	StateReady State = iota

	// StatePlaying is a live run
	StatePlaying

	// StateDead shows the result; the bird finishes falling, the
	// world stops scrolling
	StateDead
)

// Bird collision extents in cells. The sprite is drawn to match.
const (
	birdW = 2.0
	birdH = 1.6
)

// spawnMargin keeps the gap clear of the ceiling and the ground
const spawnMargin = 2.0

// Game holds one run of the flyer. All motion happens in Step, one
// fixed tick at a time; the game never reads wall time, so a given
// seed and flap schedule always reproduce the same run.
type Game struct {
	profile config.Profile
	cfg     config.GameConfig
	rng     *engine.Rand

	width   float64
	height  float64
	groundY float64

	birdX   float64
	birdY   float64
	birdVel float64

	// tilt trails the vertical velocity so the sprite noses up on a
	// flap and over on a dive instead of snapping between poses
	tilt float64

	pipes           *PipePool
	ticksSinceSpawn int

	state      State
	score      int
	totalTicks uint64
	flapQueued bool

	// scroll accumulates world travel for the parallax layers. It
	// drifts slowly on the hover screen and freezes on death.
	scroll float64

	// hoverAnchor is the resting height the bird bobs around before
	// the run starts
	hoverAnchor float64
}

// NewGame creates a game for the given difficulty profile. Resize must
// be called before the first Step.
func NewGame(profile config.Profile, cfg config.GameConfig, rng *engine.Rand) *Game {
	return &Game{
		profile: profile,
		cfg:     cfg,
		rng:     rng,
		pipes:   NewPipePool(cfg.MaxPipes),
		state:   StateReady,
	}
}

// Resize sets the playfield in cells. The bird clamps into the new
// bounds and live pipes keep scrolling; a mid-run resize never resets
// the run.
func (g *Game) Resize(width, height int) {
	g.width = float64(width)
	g.height = float64(height)
	g.groundY = g.height - float64(g.cfg.GroundRows)
	if g.groundY < 4 {
		g.groundY = 4
	}
	g.birdX = math.Round(g.width * g.cfg.BirdXFrac)
	g.hoverAnchor = g.groundY * 0.45

	if g.state == StateReady {
		g.birdY = g.hoverAnchor
	}
	g.clampBird()
}

// Reset returns to the hover screen with a clean field. The score and
// pipes clear; the best score lives in the store, not here.
func (g *Game) Reset() {
	g.state = StateReady
	g.score = 0
	g.birdY = g.hoverAnchor
	g.birdVel = 0
	g.tilt = 0
	g.flapQueued = false
	g.ticksSinceSpawn = 0
	g.pipes.Clear()
}

// SetProfile swaps difficulty and resets the run; mixing physics
// mid-run would make the score meaningless
func (g *Game) SetProfile(p config.Profile) {
	g.profile = p
	g.Reset()
}

// Flap queues one impulse for the next tick. The first flap starts the
// run. Input while dead is dropped; restarting is an explicit action.
func (g *Game) Flap() {
	switch g.state {
	case StateReady:
		g.state = StatePlaying
		g.flapQueued = true
	case StatePlaying:
		g.flapQueued = true
	}
}

// Step advances exactly one tick
func (g *Game) Step() {
	g.totalTicks++

	switch g.state {
	case StateReady:
		// gentle bob so the screen reads as alive
		g.birdY = g.hoverAnchor + 0.8*math.Sin(float64(g.totalTicks)*0.1)
		g.scroll += g.profile.ScrollSpeed * 0.3

	case StatePlaying:
		g.stepPlaying()

	case StateDead:
		// the bird finishes its fall; the world is already frozen
		if g.birdY+birdH/2 < g.groundY {
			g.birdVel += g.profile.Gravity
			if g.birdVel > g.profile.TerminalVelocity {
				g.birdVel = g.profile.TerminalVelocity
			}
			g.birdY += g.birdVel
			g.clampBird()
		}
	}

	g.settleTilt()
}

// settleTilt eases the pose toward the current velocity. Hovering
// relaxes it back to level because the velocity there stays zero.
func (g *Game) settleTilt() {
	target := g.birdVel * 1.2
	if target > 1 {
		target = 1
	} else if target < -1 {
		target = -1
	}
	g.tilt += (target - g.tilt) * 0.22
}

func (g *Game) stepPlaying() {
	if g.flapQueued {
		g.birdVel = g.profile.FlapImpulse
		g.flapQueued = false
	}

	g.birdVel += g.profile.Gravity
	if g.birdVel > g.profile.TerminalVelocity {
		g.birdVel = g.profile.TerminalVelocity
	}
	g.birdY += g.birdVel
	g.scroll += g.profile.ScrollSpeed

	// ceiling clamps without killing; the ground kills
	if g.birdY-birdH/2 < 0 {
		g.birdY = birdH / 2
		g.birdVel = 0
	}
	if g.birdY+birdH/2 >= g.groundY {
		g.birdY = g.groundY - birdH/2
		g.die()
		return
	}

	g.scrollPipes()
	g.spawnPipes()

	if g.hitPipe() {
		g.die()
	}
}

func (g *Game) scrollPipes() {
	for i := 0; i < g.pipes.Len(); {
		p := g.pipes.At(i)
		p.X -= g.profile.ScrollSpeed

		if !p.Scored && p.X+g.cfg.PipeWidth < g.birdX {
			p.Scored = true
			g.score++
		}

		if p.X+g.cfg.PipeWidth < 0 {
			g.pipes.RemoveAt(i)
			continue
		}
		i++
	}
}

func (g *Game) spawnPipes() {
	g.ticksSinceSpawn++
	if g.ticksSinceSpawn < g.profile.SpawnTicks {
		return
	}
	lo := spawnMargin
	hi := g.groundY - g.profile.GapSize - spawnMargin
	if hi <= lo {
		// field too short for this gap; skip rather than spawn an
		// impossible pipe
		g.ticksSinceSpawn = 0
		return
	}
	if g.pipes.Spawn(g.width, g.rng.Range(lo, hi)) {
		g.ticksSinceSpawn = 0
	}
}

// hitPipe tests the forgiving bird box against both pipe halves
func (g *Game) hitPipe() bool {
	x0, y0, x1, y1 := g.birdBox()
	for _, p := range g.pipes.Active() {
		if x1 <= p.X || x0 >= p.X+g.cfg.PipeWidth {
			continue
		}
		if y0 < p.GapY || y1 > p.GapY+g.profile.GapSize {
			return true
		}
	}
	return false
}

// birdBox returns the collision rectangle after forgiveness shrinks
// every side. A floor keeps the box from inverting under extreme
// forgiveness values.
func (g *Game) birdBox() (x0, y0, x1, y1 float64) {
	halfW := math.Max(birdW/2-g.profile.Forgiveness, 0.1)
	halfH := math.Max(birdH/2-g.profile.Forgiveness, 0.1)
	return g.birdX - halfW, g.birdY - halfH, g.birdX + halfW, g.birdY + halfH
}

func (g *Game) die() {
	g.state = StateDead
	g.flapQueued = false
}

func (g *Game) clampBird() {
	if g.birdY-birdH/2 < 0 {
		g.birdY = birdH / 2
	}
	if g.birdY+birdH/2 > g.groundY {
		g.birdY = g.groundY - birdH/2
	}
}

func (g *Game) State() State            { return g.state }
func (g *Game) Score() int              { return g.score }
func (g *Game) Profile() config.Profile { return g.profile }
func (g *Game) GroundY() float64        { return g.groundY }
func (g *Game) Ticks() uint64           { return g.totalTicks }
func (g *Game) Scroll() float64         { return g.scroll }
func (g *Game) Pipes() []Pipe           { return g.pipes.Active() }

// Bird returns position and vertical velocity for the sprite
func (g *Game) Bird() (x, y, vel float64) {
	return g.birdX, g.birdY, g.birdVel
}

// Tilt is the smoothed pose in [-1, 1]; negative noses up
func (g *Game) Tilt() float64 {
	return g.tilt
}
