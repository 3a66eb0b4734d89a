package flappy

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/render"
)

// Overlay draws the state cards: the hover prompt before a run and the
// result card after one. The difficulty picker lives a level up; this
// overlay only reflects game state.
type Overlay struct {
	render.Toggle

	game   *Game
	colors Colors

	// Difficulty names the active tier for the cards
	Difficulty func() string

	// Best resolves the stored best and whether the last run beat it
	Best func() (best int, isNew bool)
}

func NewOverlay(game *Game, colors Colors) *Overlay {
	return &Overlay{
		game:       game,
		colors:     colors,
		Difficulty: func() string { return "" },
		Best:       func() (int, bool) { return 0, false },
	}
}

func (o *Overlay) Render(ctx render.Context, buf *render.Buffer) {
	switch o.game.State() {
	case StateReady:
		o.drawCard(ctx, buf, " get ready ", []cardLine{
			{text: "space / click to flap", style: o.textStyle()},
			{text: fmt.Sprintf("difficulty: %s", o.Difficulty()), style: o.textStyle()},
			{text: "[d] difficulty  [q] back", style: o.hintStyle()},
		})
	case StateDead:
		best, isNew := o.Best()
		lines := []cardLine{
			{text: fmt.Sprintf("score  %d", o.game.Score()), style: o.textStyle()},
		}
		if isNew {
			style := o.accentStyle()
			// blink on real time; game time is frozen on this screen
			if ctx.Real.UnixMilli()/400%2 == 0 {
				style = style.Reverse(true)
			}
			lines = append(lines, cardLine{text: "new best!", style: style})
		} else {
			lines = append(lines, cardLine{text: fmt.Sprintf("best   %d", best), style: o.textStyle()})
		}
		lines = append(lines,
			cardLine{text: fmt.Sprintf("difficulty: %s", o.Difficulty()), style: o.textStyle()},
			cardLine{text: "[space] again  [d] difficulty  [q] back", style: o.hintStyle()},
		)
		o.drawCard(ctx, buf, " game over ", lines)
	}
}

type cardLine struct {
	text  string
	style tcell.Style
}

func (o *Overlay) drawCard(ctx render.Context, buf *render.Buffer, title string, lines []cardLine) {
	width := len(title) + 4
	for _, l := range lines {
		if n := len([]rune(l.text)) + 6; n > width {
			width = n
		}
	}
	height := len(lines) + 4
	x := (ctx.Width - width) / 2
	y := int(o.game.GroundY())/2 - height/2
	if y < 1 {
		y = 1
	}

	frame := tcell.StyleDefault.Foreground(o.colors.CardBorder).Background(o.colors.CardBg)
	buf.Fill(x, y, width, height, ' ', o.textStyle())
	buf.Box(x, y, width, height, frame)
	buf.Text(x+(width-len([]rune(title)))/2, y, title, frame.Bold(true))

	for i, l := range lines {
		lx := x + (width-len([]rune(l.text)))/2
		buf.Text(lx, y+2+i, l.text, l.style)
	}
}

func (o *Overlay) textStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(o.colors.CardText).Background(o.colors.CardBg)
}

func (o *Overlay) hintStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(o.colors.Cloud).Background(o.colors.CardBg)
}

func (o *Overlay) accentStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(o.colors.Accent).Background(o.colors.CardBg).Bold(true)
}
