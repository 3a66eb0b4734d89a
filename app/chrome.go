package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/render"
)

// Rows the chrome reserves above and below the wheel. The wheel
// renderer sizes itself inside these margins.
const (
	chromeTopRows    = 2
	chromeBottomRows = 4
)

// chromeRenderer frames the wheel view: title, rotating banner line,
// footer hints, the heart in the corner, and the card band under the
// wheel that carries the winner, the exhausted notice, or the clear
// confirmation.
type chromeRenderer struct {
	render.Toggle
	app *App

	title  tcell.Style
	banner tcell.Style
	hint   tcell.Style
	heart  tcell.Style
	card   tcell.Style
	border tcell.Style
	accent tcell.Style
}

func newChromeRenderer(a *App) *chromeRenderer {
	t := a.cfg.Theme
	bg := render.MustHex(t.Background)
	cardBg := render.MustHex(t.CardBg)

	return &chromeRenderer{
		app:    a,
		title:  tcell.StyleDefault.Foreground(render.MustHex(t.Accent)).Background(bg).Bold(true),
		banner: tcell.StyleDefault.Foreground(render.MustHex(t.Label)).Background(bg).Dim(true),
		hint:   tcell.StyleDefault.Foreground(render.MustHex(t.Label)).Background(bg).Dim(true),
		heart:  tcell.StyleDefault.Foreground(render.MustHex(t.Heart)).Background(bg).Bold(true),
		card:   tcell.StyleDefault.Foreground(render.MustHex(t.CardText)).Background(cardBg),
		border: tcell.StyleDefault.Foreground(render.MustHex(t.CardBorder)).Background(cardBg),
		accent: tcell.StyleDefault.Foreground(render.MustHex(t.Accent)).Background(cardBg).Bold(true),
	}
}

func (c *chromeRenderer) Render(ctx render.Context, buf *render.Buffer) {
	a := c.app
	w, h := ctx.Width, ctx.Height
	if w < 24 || h < 8 {
		return
	}

	buf.TextCentered(0, "✦ spin to win ✦", c.title)

	names := a.wheel.Names()
	if len(names) > 0 {
		left := fmt.Sprintf("%d of %d left", a.wheel.EligibleCount(), len(names))
		buf.Text(w-len(left)-1, 0, left, c.banner)
	}

	if len(a.roster.Banners) > 0 {
		buf.TextCentered(1, a.roster.Banners[a.bannerIdx%len(a.roster.Banners)], c.banner)
	}

	c.drawBand(buf, w, h)
	c.drawFooter(buf, w, h)
}

// drawBand fills the card slot under the wheel. At most one card shows
// at a time; the confirmation outranks the rest.
func (c *chromeRenderer) drawBand(buf *render.Buffer, w, h int) {
	a := c.app
	switch {
	case a.wheel.IsSpinning():
	case a.confirmClear:
		n := len(a.state.History)
		c.drawCard(buf, w, h, " sure? ", fmt.Sprintf("clear %d wins and start over?", n), true)
	case a.wheel.Exhausted() && len(a.state.History) > 0:
		c.drawCard(buf, w, h, " all spun out ", "everyone's had a turn", false)
	case a.winnerName != "":
		c.drawCard(buf, w, h, " winner! ", "★ "+clip(a.winnerName, w-16)+" ★", true)
	}
}

func (c *chromeRenderer) drawCard(buf *render.Buffer, w, h int, title, line string, accented bool) {
	cw := len([]rune(line)) + 8
	if cw < 24 {
		cw = 24
	}
	if cw > w-4 {
		cw = w - 4
	}
	x0 := (w - cw) / 2
	y0 := h - chromeBottomRows

	buf.Fill(x0, y0, cw, 3, ' ', c.card)
	buf.Box(x0, y0, cw, 3, c.border)
	buf.Text(x0+(cw-len([]rune(title)))/2, y0, title, c.border.Bold(true))

	style := c.card
	if accented {
		style = c.accent
	}
	buf.Text(x0+(cw-len([]rune(line)))/2, y0+1, line, style)
}

func (c *chromeRenderer) drawFooter(buf *render.Buffer, w, h int) {
	a := c.app

	var hint string
	switch {
	case a.wheel.IsSpinning():
		hint = "hold tight…"
	case a.confirmClear:
		hint = "[y] clear   [any key] keep"
	case a.wheel.Exhausted() && len(a.state.History) > 0:
		hint = "[c] clear   [h] history   [q] quit"
	default:
		hint = "[enter] spin   [h] history   [q] quit"
	}
	buf.Text(1, h-1, hint, c.hint)

	hx, hy := a.heartPos()
	buf.Set(hx, hy, '♥', c.heart)
}

func clip(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
