package app

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/render"
)

// launchRenderer plays the short ride between clicking the heart and
// the game taking over: the wheel dims while the heart climbs from the
// footer to center screen, trailing dots.
type launchRenderer struct {
	render.Toggle
	app *App

	heartFg tcell.Color
	sparkFg tcell.Color
}

func newLaunchRenderer(a *App) *launchRenderer {
	return &launchRenderer{
		app:     a,
		heartFg: render.MustHex(a.cfg.Theme.Heart),
		sparkFg: render.MustHex(a.cfg.Theme.Accent),
	}
}

func (l *launchRenderer) Render(ctx render.Context, buf *render.Buffer) {
	a := l.app
	t := float64(ctx.Real.Sub(a.launchedAt)) / float64(launchDuration)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	buf.DimAll(1 - 0.55*t)

	hx, hy := a.heartPos()
	cx, cy := ctx.Width/2, ctx.Height/2

	for k := 4; k >= 1; k-- {
		tp := t - float64(k)*0.09
		if tp <= 0 {
			continue
		}
		x, y := l.along(hx, hy, cx, cy, tp)
		l.overlay(buf, x, y, '·', l.heartFg, false)
	}

	x, y := l.along(hx, hy, cx, cy, t)
	l.overlay(buf, x, y, '♥', l.heartFg, true)

	if t > 0.85 {
		l.overlay(buf, cx-3, cy-1, '✦', l.sparkFg, false)
		l.overlay(buf, cx+3, cy+1, '✦', l.sparkFg, false)
	}
}

// along eases the footer-to-center path; fast start, soft arrival.
func (l *launchRenderer) along(x0, y0, x1, y1 int, t float64) (int, int) {
	p := 1 - (1-t)*(1-t)
	x := x0 + int(math.Round(float64(x1-x0)*p))
	y := y0 + int(math.Round(float64(y1-y0)*p))
	return x, y
}

func (l *launchRenderer) overlay(buf *render.Buffer, x, y int, r rune, fg tcell.Color, bold bool) {
	cell, ok := buf.Get(x, y)
	if !ok {
		return
	}
	_, bg, _ := cell.Style.Decompose()
	buf.Set(x, y, r, tcell.StyleDefault.Foreground(fg).Background(bg).Bold(bold))
}
