package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/render"
)

// historyRenderer lists past wins newest first, with the confirm
// prompt for clearing them.
type historyRenderer struct {
	render.Toggle
	app *App

	title tcell.Style
	entry tcell.Style
	faint tcell.Style
	warn  tcell.Style
}

func newHistoryRenderer(a *App) *historyRenderer {
	t := a.cfg.Theme
	bg := render.MustHex(t.Background)

	return &historyRenderer{
		app:   a,
		title: tcell.StyleDefault.Foreground(render.MustHex(t.Accent)).Background(bg).Bold(true),
		entry: tcell.StyleDefault.Foreground(render.MustHex(t.CardText)).Background(bg),
		faint: tcell.StyleDefault.Foreground(render.MustHex(t.Label)).Background(bg).Dim(true),
		warn:  tcell.StyleDefault.Foreground(render.MustHex(t.Pointer)).Background(bg).Bold(true),
	}
}

func (r *historyRenderer) Render(ctx render.Context, buf *render.Buffer) {
	a := r.app
	w, h := ctx.Width, ctx.Height
	if w < 24 || h < 8 {
		return
	}

	buf.TextCentered(1, " spin history ", r.title)

	history := a.state.History
	if len(history) == 0 {
		buf.TextCentered(h/2, "no spins yet", r.faint)
		r.drawFooter(buf, h)
		return
	}

	maxRows := h - 6
	if maxRows < 1 {
		maxRows = 1
	}
	shown := len(history)
	if shown > maxRows {
		shown = maxRows
	}

	nameW := 0
	for i := 0; i < shown; i++ {
		rec := history[len(history)-1-i]
		if n := len([]rune(rec.Name)); n > nameW {
			nameW = n
		}
	}
	if nameW > w-24 {
		nameW = w - 24
	}

	lineW := 4 + nameW + 2 + 12
	x0 := (w - lineW) / 2
	if x0 < 1 {
		x0 = 1
	}

	// newest at the top, numbered by spin order
	for i := 0; i < shown; i++ {
		rec := history[len(history)-1-i]
		line := fmt.Sprintf("%3d.", len(history)-i)
		buf.Text(x0, 3+i, line, r.faint)
		buf.Text(x0+5, 3+i, clip(rec.Name, nameW), r.entry)
		buf.Text(x0+5+nameW+2, 3+i, rec.WonAt.Format("Jan _2 15:04"), r.faint)
	}
	if shown < len(history) {
		buf.TextCentered(3+shown, fmt.Sprintf("… %d earlier", len(history)-shown), r.faint)
	}

	r.drawFooter(buf, h)
}

func (r *historyRenderer) drawFooter(buf *render.Buffer, h int) {
	if r.app.confirmClear {
		buf.TextCentered(h-1, "clear everything?  [y] yes   [any key] keep", r.warn)
		return
	}
	buf.TextCentered(h-1, "[c] clear   [esc] back", r.faint)
}
