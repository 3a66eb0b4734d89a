package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/tmajcher/prizewheel/app"
	"github.com/tmajcher/prizewheel/audio"
	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/logging"
	"github.com/tmajcher/prizewheel/roster"
	"github.com/tmajcher/prizewheel/store"
)

var (
	configFlag  = flag.String("config", "", "TOML tuning file; built-in defaults when empty")
	rosterFlag  = flag.String("roster", "", "names source: JSON file path or http(s) URL")
	bannersFlag = flag.String("banners", "", "banner lines source: JSON file path or http(s) URL")
	stateFlag   = flag.String("state", "", "state file; defaults under the user config dir")
	debugFlag   = flag.Bool("debug", false, "write debug logs and show frame diagnostics")
	seedFlag    = flag.Uint64("seed", 0, "RNG seed; 0 seeds from the clock")
	muteFlag    = flag.Bool("mute", false, "disable audio")
)

func main() {
	// Panic recovery: the terminal must come back even when a frame
	// panics, or the shell is left in raw mode with the alt screen up
	defer func() {
		if r := recover(); r != nil {
			app.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPRIZEWHEEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, cfgErr := config.Load(*configFlag)

	logger := logging.New(logging.Config{Debug: *debugFlag})
	defer logger.Sync()

	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", zap.Error(cfgErr))
	}

	names, err := roster.Load(*rosterFlag, *bannersFlag)
	if err != nil {
		logger.Warn("roster load incomplete, using built-ins", zap.Error(err))
	}

	statePath := *stateFlag
	if statePath == "" {
		statePath = defaultStatePath()
	}
	st := store.NewStore(statePath)
	state, err := st.Load()
	if err != nil {
		logger.Warn("state load failed, starting fresh", zap.Error(err))
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sound := audio.NewManager(!*muteFlag)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the widgets run fine without sound
		logger.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := app.New(screen, app.Options{
		Config: cfg,
		Roster: names,
		Store:  st,
		State:  state,
		Sound:  sound,
		Log:    logger,
		Seed:   seed,
		Debug:  *debugFlag,
	})

	logger.Info("starting",
		zap.Int("names", len(names.Names)),
		zap.String("state", st.Path()),
		zap.Uint64("seed", seed))

	if err := a.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "prizewheel: %v\n", err)
		os.Exit(1)
	}
}

// defaultStatePath keeps wins and best scores in the user config dir
// so they survive reinstalls.
func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "prizewheel-state.json"
	}
	return filepath.Join(dir, "prizewheel", "state.json")
}
