// Package app owns the top-level controller: which view has the
// screen, how input routes to the wheel and the game, and when state
// hits the disk. Rendering itself lives in the render pipeline; this
// package only decides what is visible.
package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/tmajcher/prizewheel/audio"
	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/engine"
	"github.com/tmajcher/prizewheel/flappy"
	"github.com/tmajcher/prizewheel/render"
	"github.com/tmajcher/prizewheel/roster"
	"github.com/tmajcher/prizewheel/store"
	"github.com/tmajcher/prizewheel/wheel"
)

// View identifies which screen owns input and rendering.
type View int

const (
	ViewWheel View = iota
	ViewHistory
	ViewLaunch
	ViewGame
)

const (
	// launchDuration covers the heart's flight from the footer to
	// center screen before the game takes over.
	launchDuration = 700 * time.Millisecond

	// deathRestartDelay keeps a late flap from skipping straight past
	// the game-over card.
	deathRestartDelay = 450 * time.Millisecond

	bannerRotateEvery = 8 * time.Second
)

// Options carries the wired subsystems into the controller. Log and
// Clock may be nil; they default to a no-op logger and wall time.
type Options struct {
	Config config.Config
	Roster roster.Roster
	Store  *store.Store
	State  store.State
	Sound  *audio.Manager
	Log    *zap.Logger
	Clock  engine.TimeProvider
	Seed   uint64
	Debug  bool
}

// App is the controller behind the main loop. All methods run on the
// loop goroutine; nothing here needs locking.
type App struct {
	screen tcell.Screen
	cfg    config.Config
	log    *zap.Logger
	sound  *audio.Manager
	store  *store.Store
	state  store.State
	roster roster.Roster

	// real is wall time; gameClock stands still while paused so the
	// flappy simulation freezes while the backdrop's wall-clock
	// breeze keeps the scene alive.
	real      engine.TimeProvider
	gameClock *engine.PausableClock
	stepper   *engine.FixedStepper
	lastGame  time.Time

	wheel *wheel.Controller
	game  *flappy.Game

	buf  *render.Buffer
	pipe *render.Pipeline
	bg   tcell.Color

	wheelR   *wheel.Renderer
	bgR      *flappy.Background
	sceneR   *flappy.Scene
	hudR     *flappy.HUD
	overlayR *flappy.Overlay
	chromeR  *chromeRenderer
	historyR *historyRenderer
	launchR  *launchRenderer
	pickerR  *pickerRenderer
	pauseR   *pauseRenderer

	view         View
	difficulty   string
	pickerOpen   bool
	pickerSel    int
	pickerPaused bool // picker paused the clock, so it resumes on close
	confirmClear bool
	winnerName   string
	launchedAt   time.Time
	diedAt       time.Time
	newBest      bool
	bannerIdx    int
	bannerAt     time.Time

	lastButtons tcell.ButtonMask

	width, height int
	frame         uint64
	debug         bool
	quitting      bool
}

func New(screen tcell.Screen, opts Options) *App {
	logger := opts.Log
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}

	a := &App{
		screen: screen,
		cfg:    opts.Config,
		log:    logger,
		sound:  opts.Sound,
		store:  opts.Store,
		state:  opts.State,
		roster: opts.Roster,
		real:   clock,
		debug:  opts.Debug,
	}

	a.gameClock = engine.NewPausableClock(clock)
	a.stepper = engine.NewFixedStepper()
	a.lastGame = a.gameClock.Now()
	a.bannerAt = clock.Now()

	a.difficulty = config.DefaultDifficulty
	if _, ok := opts.Config.Game.Profiles[opts.State.Difficulty]; ok {
		a.difficulty = opts.State.Difficulty
	}

	rng := engine.NewRand(opts.Seed)
	a.wheel = wheel.NewController(opts.Roster.Names, opts.State.PickedSet(), opts.Config.Wheel, rng)
	a.game = flappy.NewGame(opts.Config.Profile(a.difficulty), opts.Config.Game, rng)

	a.bg = render.MustHex(opts.Config.Theme.Background)
	colors := flappy.NewColors(opts.Config.Theme)

	a.wheelR = wheel.NewRenderer(a.wheel, opts.Config.Wheel, opts.Config.Theme, chromeTopRows, chromeBottomRows)
	a.bgR = flappy.NewBackground(a.game, opts.Config.Game, colors)
	if pool := shuffledBanners(opts.Roster.Banners, rng); len(pool) > 0 {
		a.bgR.Banners = pool
	}
	a.sceneR = flappy.NewScene(a.game, opts.Config.Game, colors)
	a.hudR = flappy.NewHUD(a.game, colors)
	a.hudR.Best = func() int { return a.state.BestFor(a.difficulty) }
	a.overlayR = flappy.NewOverlay(a.game, colors)
	a.overlayR.Difficulty = func() string { return a.difficulty }
	a.overlayR.Best = func() (int, bool) { return a.state.BestFor(a.difficulty), a.newBest }

	a.chromeR = newChromeRenderer(a)
	a.historyR = newHistoryRenderer(a)
	a.launchR = newLaunchRenderer(a)
	a.pickerR = newPickerRenderer(a)
	a.pauseR = newPauseRenderer(a)

	a.pipe = render.NewPipeline()
	a.pipe.Register(a.bgR, render.PriorityBackground)
	a.pipe.Register(a.wheelR, render.PriorityScene)
	a.pipe.Register(a.sceneR, render.PriorityScene)
	a.pipe.Register(a.chromeR, render.PriorityHUD)
	a.pipe.Register(a.hudR, render.PriorityHUD)
	a.pipe.Register(a.overlayR, render.PriorityOverlay)
	a.pipe.Register(a.historyR, render.PriorityOverlay)
	a.pipe.Register(a.pauseR, render.PriorityOverlay)
	a.pipe.Register(a.pickerR, render.PriorityOverlay)
	a.pipe.Register(a.launchR, render.PriorityOverlay)

	w, h := screen.Size()
	a.buf = render.NewBuffer(w, h)
	a.resize(w, h)

	return a
}

// update advances whichever view is live. Called once per frame tick.
func (a *App) update() {
	now := a.real.Now()

	if len(a.roster.Banners) > 1 && now.Sub(a.bannerAt) >= bannerRotateEvery {
		a.bannerIdx = (a.bannerIdx + 1) % len(a.roster.Banners)
		a.bannerAt = now
	}

	switch a.view {
	case ViewWheel:
		ev := a.wheel.Update(now)
		if ev.Ticks > 0 {
			a.sound.PlaySpinTick()
		}
		if ev.Landed {
			a.onWinner(ev.Winner, now)
		}
	case ViewLaunch:
		if now.Sub(a.launchedAt) >= launchDuration {
			a.enterGame()
		}
	case ViewGame:
		a.stepGame()
	}
}

// stepGame drains whole 60Hz ticks from the pausable clock. While
// paused the clock stands still, the delta is zero and no ticks run.
func (a *App) stepGame() {
	gnow := a.gameClock.Now()
	steps := a.stepper.Advance(gnow.Sub(a.lastGame))
	a.lastGame = gnow

	for i := 0; i < steps; i++ {
		prevScore := a.game.Score()
		prevState := a.game.State()
		a.game.Step()
		if a.game.Score() > prevScore {
			a.sound.PlayScore()
		}
		if prevState == flappy.StatePlaying && a.game.State() == flappy.StateDead {
			a.onDeath()
		}
	}
}

func (a *App) onWinner(name string, at time.Time) {
	a.winnerName = name
	a.state.RecordWin(name, at)
	a.persist()
	a.sound.PlayFanfare()
	a.log.Info("spin settled",
		zap.String("winner", name),
		zap.Int("remaining", a.wheel.EligibleCount()))
}

func (a *App) onDeath() {
	score := a.game.Score()
	a.diedAt = a.real.Now()
	a.newBest = a.state.UpdateBest(a.difficulty, score)
	if a.newBest {
		a.persist()
	}
	a.sound.PlayCrash()
	a.log.Info("run ended",
		zap.Int("score", score),
		zap.String("difficulty", a.difficulty),
		zap.Bool("best", a.newBest))
}

func (a *App) trySpin() {
	switch err := a.wheel.Spin(a.real.Now()); err {
	case nil:
		a.winnerName = ""
		a.confirmClear = false
		a.log.Debug("spin started", zap.Int("eligible", a.wheel.EligibleCount()))
	case wheel.ErrExhausted:
		// chrome is already showing the clear prompt
	case wheel.ErrBusy:
	}
}

func (a *App) enterLaunch() {
	if a.wheel.IsSpinning() {
		return
	}
	a.view = ViewLaunch
	a.launchedAt = a.real.Now()
	a.confirmClear = false
	a.sound.PlayLaunch()
	a.log.Debug("heart launched")
}

func (a *App) enterGame() {
	a.view = ViewGame
	a.game.Reset()
	a.newBest = false
	if a.gameClock.IsPaused() {
		a.gameClock.Resume()
	}
	a.stepper.Reset()
	a.lastGame = a.gameClock.Now()
}

func (a *App) exitGame() {
	a.view = ViewWheel
	a.pickerOpen = false
	a.pickerPaused = false
	if a.gameClock.IsPaused() {
		a.gameClock.Resume()
	}
	a.game.Reset()
}

func (a *App) togglePause() {
	if a.game.State() != flappy.StatePlaying {
		return
	}
	if a.gameClock.IsPaused() {
		a.gameClock.Resume()
	} else {
		a.gameClock.Pause()
	}
}

func (a *App) openPicker() {
	a.pickerOpen = true
	a.pickerSel = 0
	for i, name := range config.DifficultyOrder {
		if name == a.difficulty {
			a.pickerSel = i
		}
	}
	a.pickerPaused = !a.gameClock.IsPaused()
	if a.pickerPaused {
		a.gameClock.Pause()
	}
}

// closePicker dismisses the modal. A run paused before the picker
// opened stays paused; cancelling must not drop the bird unannounced.
func (a *App) closePicker() {
	a.pickerOpen = false
	if a.pickerPaused && a.gameClock.IsPaused() {
		a.gameClock.Resume()
	}
	a.pickerPaused = false
}

func (a *App) applyDifficulty(name string) {
	if name == a.difficulty {
		a.closePicker()
		return
	}
	a.difficulty = name
	a.state.Difficulty = name
	a.game.SetProfile(a.cfg.Profile(name))
	a.persist()
	a.log.Info("difficulty changed", zap.String("difficulty", name))

	// the profile reset left a fresh run, so any earlier pause is stale
	a.pickerOpen = false
	a.pickerPaused = false
	if a.gameClock.IsPaused() {
		a.gameClock.Resume()
	}
}

func (a *App) clearHistory() {
	cleared := len(a.state.History)
	a.state.ClearHistory()
	a.wheel.ResetPicked()
	a.winnerName = ""
	a.confirmClear = false
	a.persist()
	a.log.Info("history cleared", zap.Int("records", cleared))
}

func (a *App) persist() {
	if err := a.store.Save(a.state); err != nil {
		a.log.Error("state save failed", zap.Error(err))
	}
}

// heartPos is the cell the heart occupies in the wheel footer. The
// mouse hit test and the chrome renderer both derive it from here.
func (a *App) heartPos() (int, int) {
	return a.width - 3, a.height - 1
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.buf.Resize(w, h)
	a.game.Resize(w, h)
}

// shuffledBanners fixes the order the plane tows banners in for this
// session; every banner flies once before any repeats
func shuffledBanners(pool []string, rng *engine.Rand) []string {
	out := make([]string, len(pool))
	copy(out, pool)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
