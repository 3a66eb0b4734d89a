package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/flappy"
)

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.resize(w, h)
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		a.quitting = true
		return
	}

	switch a.view {
	case ViewWheel:
		a.wheelKey(ev)
	case ViewHistory:
		a.historyKey(ev)
	case ViewGame:
		a.gameKey(ev)
	case ViewLaunch:
		// impatient input skips the ride
		a.enterGame()
	}
}

func (a *App) wheelKey(ev *tcell.EventKey) {
	if a.confirmClear {
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y') {
			a.clearHistory()
		} else {
			a.confirmClear = false
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		a.trySpin()
		return
	case tcell.KeyTab:
		a.view = ViewHistory
		return
	case tcell.KeyEscape:
		a.quitting = true
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case ' ':
		a.trySpin()
	case 'h', 'H':
		a.view = ViewHistory
	case 'c', 'C':
		if a.wheel.Exhausted() && len(a.state.History) > 0 {
			a.confirmClear = true
		}
	case 'g', 'G':
		// unlisted twin of the heart in the corner
		a.enterLaunch()
	case 'q', 'Q':
		a.quitting = true
	}
}

func (a *App) historyKey(ev *tcell.EventKey) {
	if a.confirmClear {
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y') {
			a.clearHistory()
		} else {
			a.confirmClear = false
		}
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyTab:
		a.view = ViewWheel
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'c', 'C':
		if len(a.state.History) > 0 {
			a.confirmClear = true
		}
	case 'h', 'H', 'q', 'Q':
		a.view = ViewWheel
	}
}

func (a *App) gameKey(ev *tcell.EventKey) {
	if a.pickerOpen {
		a.pickerKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		a.exitGame()
		return
	case tcell.KeyUp:
		a.flapOrRestart()
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case ' ':
		a.flapOrRestart()
	case 'p', 'P':
		a.togglePause()
	case 'd', 'D':
		a.openPicker()
	case 'q', 'Q':
		a.exitGame()
	}
}

func (a *App) pickerKey(ev *tcell.EventKey) {
	n := len(config.DifficultyOrder)

	switch ev.Key() {
	case tcell.KeyEscape:
		a.closePicker()
		return
	case tcell.KeyUp:
		a.pickerSel = (a.pickerSel + n - 1) % n
		return
	case tcell.KeyDown:
		a.pickerSel = (a.pickerSel + 1) % n
		return
	case tcell.KeyEnter:
		a.applyDifficulty(config.DifficultyOrder[a.pickerSel])
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch r := ev.Rune(); r {
	case 'k', 'K':
		a.pickerSel = (a.pickerSel + n - 1) % n
	case 'j', 'J':
		a.pickerSel = (a.pickerSel + 1) % n
	case ' ':
		a.applyDifficulty(config.DifficultyOrder[a.pickerSel])
	case 'd', 'D':
		a.closePicker()
	default:
		if r >= '1' && int(r-'1') < n {
			a.applyDifficulty(config.DifficultyOrder[r-'1'])
		}
	}
}

// flapOrRestart is the one-button control: flap while alive, restart
// once the game-over card has had a moment on screen.
func (a *App) flapOrRestart() {
	if a.gameClock.IsPaused() {
		return
	}
	if a.game.State() == flappy.StateDead {
		if a.real.Now().Sub(a.diedAt) >= deathRestartDelay {
			a.game.Reset()
			a.newBest = false
		}
		return
	}
	a.game.Flap()
	a.sound.PlayFlap()
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	clicked := buttons&tcell.ButtonPrimary != 0 && a.lastButtons&tcell.ButtonPrimary == 0
	a.lastButtons = buttons
	if !clicked {
		return
	}

	x, y := ev.Position()
	switch a.view {
	case ViewWheel:
		if a.confirmClear {
			a.confirmClear = false
			return
		}
		hx, hy := a.heartPos()
		if y == hy && x >= hx-1 && x <= hx+1 {
			a.enterLaunch()
			return
		}
		a.trySpin()
	case ViewGame:
		if a.pickerOpen {
			return
		}
		a.flapOrRestart()
	case ViewLaunch:
		a.enterGame()
	case ViewHistory:
	}
}
