package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/tmajcher/prizewheel/render"
)

// frameInterval paces rendering at roughly 60 FPS. The flappy
// simulation steps on its own fixed 60Hz grid inside update, so frame
// pacing only affects smoothness, never physics.
const frameInterval = 16 * time.Millisecond

// Run drives the main loop until quit. Input arrives on a channel fed
// by a polling goroutine so the select below never blocks on the
// terminal.
func (a *App) Run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalized, loop is on its way out
				return
			}
			events <- ev
		}
	}()

	for !a.quitting {
		select {
		case ev := <-events:
			a.handleEvent(ev)
		case <-ticker.C:
			a.update()
			a.draw()
		}
	}

	a.persist()
	a.log.Info("exiting", zap.Uint64("frames", a.frame))
	return nil
}

// setVisibility flips renderer toggles to match the active view. Every
// renderer stays registered; only visibility changes.
func (a *App) setVisibility() {
	gameOn := a.view == ViewGame

	a.wheelR.SetVisible(a.view == ViewWheel || a.view == ViewLaunch)
	a.chromeR.SetVisible(a.view == ViewWheel)
	a.launchR.SetVisible(a.view == ViewLaunch)
	a.historyR.SetVisible(a.view == ViewHistory)

	a.bgR.SetVisible(gameOn)
	a.sceneR.SetVisible(gameOn)
	a.hudR.SetVisible(gameOn)
	a.overlayR.SetVisible(gameOn && !a.pickerOpen)
	a.pauseR.SetVisible(gameOn)
	a.pickerR.SetVisible(gameOn && a.pickerOpen)
}

func (a *App) draw() {
	real := a.real.Now()
	now := real
	if a.view == ViewGame {
		now = a.gameClock.Now()
	}

	a.setVisibility()
	a.buf.Clear(render.BgStyle(a.bg))
	a.pipe.RenderFrame(render.Context{
		Now:    now,
		Real:   real,
		Width:  a.width,
		Height: a.height,
		Debug:  a.debug,
		Frame:  a.frame,
	}, a.buf)
	a.buf.Flush(a.screen)
	a.frame++
}
