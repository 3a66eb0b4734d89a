package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/render"
)

// pickerRenderer is the difficulty modal. The game clock is paused
// while it is open, so the scene behind it is frozen and dimmed.
type pickerRenderer struct {
	render.Toggle
	app *App

	card   tcell.Style
	border tcell.Style
	faint  tcell.Style
	pick   tcell.Style
}

func newPickerRenderer(a *App) *pickerRenderer {
	t := a.cfg.Theme
	cardBg := render.MustHex(t.CardBg)

	return &pickerRenderer{
		app:    a,
		card:   tcell.StyleDefault.Foreground(render.MustHex(t.CardText)).Background(cardBg),
		border: tcell.StyleDefault.Foreground(render.MustHex(t.CardBorder)).Background(cardBg),
		faint:  tcell.StyleDefault.Foreground(render.MustHex(t.CardText)).Background(cardBg).Dim(true),
		pick:   tcell.StyleDefault.Foreground(render.MustHex(t.Accent)).Background(cardBg).Bold(true),
	}
}

func (p *pickerRenderer) Render(ctx render.Context, buf *render.Buffer) {
	a := p.app
	order := config.DifficultyOrder

	buf.DimAll(0.6)

	cw := 36
	if cw > ctx.Width-2 {
		cw = ctx.Width - 2
	}
	ch := len(order) + 3
	x0 := (ctx.Width - cw) / 2
	y0 := (ctx.Height - ch) / 2
	if x0 < 0 || y0 < 0 {
		return
	}

	buf.Fill(x0, y0, cw, ch, ' ', p.card)
	buf.Box(x0, y0, cw, ch, p.border)
	title := " difficulty "
	buf.Text(x0+(cw-len(title))/2, y0, title, p.border.Bold(true))

	for i, name := range order {
		prof, ok := a.cfg.Game.Profiles[name]
		if !ok {
			continue
		}
		marker := "  "
		style := p.card
		if i == a.pickerSel {
			marker = "▸ "
			style = p.pick
		}
		active := " "
		if name == a.difficulty {
			active = "✓"
		}
		line := fmt.Sprintf("%s%-8s %s  gap %2.0f  speed %.2f", marker, name, active, prof.GapSize, prof.ScrollSpeed)
		buf.Text(x0+2, y0+1+i, clip(line, cw-4), style)
	}

	hint := "[enter] pick   [esc] cancel"
	buf.Text(x0+(cw-len(hint))/2, y0+ch-2, hint, p.faint)
}

// pauseRenderer shows the frozen-clock badge. Hidden while the picker
// owns the pause.
type pauseRenderer struct {
	render.Toggle
	app *App

	card   tcell.Style
	border tcell.Style
}

func newPauseRenderer(a *App) *pauseRenderer {
	t := a.cfg.Theme
	cardBg := render.MustHex(t.CardBg)

	return &pauseRenderer{
		app:    a,
		card:   tcell.StyleDefault.Foreground(render.MustHex(t.CardText)).Background(cardBg).Bold(true),
		border: tcell.StyleDefault.Foreground(render.MustHex(t.CardBorder)).Background(cardBg),
	}
}

func (p *pauseRenderer) Render(ctx render.Context, buf *render.Buffer) {
	a := p.app
	if !a.gameClock.IsPaused() || a.pickerOpen {
		return
	}

	buf.DimAll(0.7)

	line := "paused  ·  [p] resume"
	cw := len([]rune(line)) + 6
	x0 := (ctx.Width - cw) / 2
	y0 := ctx.Height/2 - 1
	if x0 < 0 || y0 < 0 {
		return
	}

	buf.Fill(x0, y0, cw, 3, ' ', p.card)
	buf.Box(x0, y0, cw, 3, p.border)
	buf.Text(x0+3, y0+1, line, p.card)
}
