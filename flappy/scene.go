package flappy

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/render"
)

// Scene draws the play layer: pipes, then the bird on top
type Scene struct {
	render.Toggle

	game   *Game
	cfg    config.GameConfig
	colors Colors
}

func NewScene(game *Game, cfg config.GameConfig, colors Colors) *Scene {
	return &Scene{game: game, cfg: cfg, colors: colors}
}

func (s *Scene) Render(ctx render.Context, buf *render.Buffer) {
	groundY := int(s.game.GroundY())
	if groundY <= 0 {
		return
	}
	s.drawPipes(buf, groundY)
	s.drawBird(buf)
}

func (s *Scene) drawPipes(buf *render.Buffer, groundY int) {
	gap := s.game.Profile().GapSize
	pw := int(s.cfg.PipeWidth)

	for _, p := range s.game.Pipes() {
		x0 := int(math.Round(p.X))
		gapTop := int(math.Round(p.GapY))
		gapBot := int(math.Round(p.GapY + gap))

		for x := x0; x < x0+pw; x++ {
			edge := x == x0 || x == x0+pw-1
			for y := 0; y < gapTop && y < groundY; y++ {
				buf.Set(x, y, ' ', tcell.StyleDefault.Background(s.pipeShade(edge, y == gapTop-1)))
			}
			for y := gapBot; y < groundY; y++ {
				if y < 0 {
					continue
				}
				buf.Set(x, y, ' ', tcell.StyleDefault.Background(s.pipeShade(edge, y == gapBot)))
			}
		}
	}
}

func (s *Scene) pipeShade(edge, lip bool) tcell.Color {
	switch {
	case lip:
		return s.colors.PipeLip
	case edge:
		return s.colors.PipeEdge
	default:
		return s.colors.Pipe
	}
}

func (s *Scene) drawBird(buf *render.Buffer) {
	bx, by, vel := s.game.Bird()
	x := int(math.Round(bx)) - 1
	y := int(math.Round(by))

	// wing beats while rising
	body := '◐'
	if vel < 0 && (s.game.Ticks()/4)%2 == 0 {
		body = '◓'
	}
	if s.game.State() == StateDead {
		body = '◍'
	}

	// the beak follows the tilt: level in cruise, up after a flap,
	// down in a dive
	beak := '▶'
	switch tilt := s.game.Tilt(); {
	case tilt < -0.35:
		beak = '◥'
	case tilt > 0.45:
		beak = '◢'
	}

	s.overlay(buf, x, y, body)
	s.overlay(buf, x+1, y, beak)
}

// overlay draws a glyph keeping whatever background is behind it
func (s *Scene) overlay(buf *render.Buffer, x, y int, r rune) {
	cell, ok := buf.Get(x, y)
	if !ok {
		return
	}
	_, bg, _ := cell.Style.Decompose()
	buf.Set(x, y, r, tcell.StyleDefault.Foreground(s.colors.Bird).Background(bg).Bold(true))
}
