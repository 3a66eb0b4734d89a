package flappy

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/render"
)

// HUD draws the live score in block digits plus the stored best for
// the active difficulty. Hidden on the hover screen where the overlay
// owns the space.
type HUD struct {
	render.Toggle

	game   *Game
	colors Colors

	// Best supplies the persisted best score for the active tier
	Best func() int
}

func NewHUD(game *Game, colors Colors) *HUD {
	return &HUD{game: game, colors: colors, Best: func() int { return 0 }}
}

func (h *HUD) Render(ctx render.Context, buf *render.Buffer) {
	if h.game.State() == StateReady {
		return
	}

	style := tcell.StyleDefault.Foreground(h.colors.CardText).Bold(true)
	DrawNumber(buf, ctx.Width/2, 1, h.game.Score(), style)

	if best := h.Best(); best > 0 {
		label := fmt.Sprintf("best %d", best)
		h.corner(buf, ctx.Width-len(label)-2, 1, label)
	}

	if ctx.Debug {
		h.corner(buf, 1, ctx.Height-1, fmt.Sprintf("tick %d  frame %d", h.game.Ticks(), ctx.Frame))
	}
}

func (h *HUD) corner(buf *render.Buffer, x, y int, s string) {
	for i, r := range s {
		cell, ok := buf.Get(x+i, y)
		if !ok {
			continue
		}
		_, bg, _ := cell.Style.Decompose()
		buf.Set(x+i, y, r, tcell.StyleDefault.Foreground(h.colors.CardText).Background(bg))
	}
}
