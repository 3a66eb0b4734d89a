package flappy

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/render"
)

// Colors is the theme resolved to terminal colors once at startup
type Colors struct {
	SkyTop     tcell.Color
	SkyBottom  tcell.Color
	Ground     tcell.Color
	GroundDark tcell.Color
	Dirt       tcell.Color
	Pipe       tcell.Color
	PipeEdge   tcell.Color
	PipeLip    tcell.Color
	Bird       tcell.Color
	Cloud      tcell.Color
	Skyline    tcell.Color
	Building   tcell.Color
	Window     tcell.Color
	Tree       tcell.Color
	Plane      tcell.Color
	CardBg     tcell.Color
	CardText   tcell.Color
	CardBorder tcell.Color
	Accent     tcell.Color
}

// NewColors resolves the theme. Derived shades are scaled from their
// base color so a retheme stays coherent.
func NewColors(theme config.Theme) Colors {
	ground := render.MustHex(theme.Ground)
	pipe := render.MustHex(theme.Pipe)
	building := render.MustHex(theme.Building)
	return Colors{
		SkyTop:     render.MustHex(theme.SkyTop),
		SkyBottom:  render.MustHex(theme.SkyBottom),
		Ground:     ground,
		GroundDark: render.ScaleColor(ground, 0.8),
		Dirt:       render.ScaleColor(ground, 0.5),
		Pipe:       pipe,
		PipeEdge:   render.ScaleColor(pipe, 0.75),
		PipeLip:    render.ScaleColor(pipe, 1.2),
		Bird:       render.MustHex(theme.Bird),
		Cloud:      render.MustHex(theme.Cloud),
		Skyline:    render.MustHex(theme.Skyline),
		Building:   building,
		Window:     render.ScaleColor(building, 1.8),
		Tree:       render.MustHex(theme.Tree),
		Plane:      render.MustHex(theme.Plane),
		CardBg:     render.MustHex(theme.CardBg),
		CardText:   render.MustHex(theme.CardText),
		CardBorder: render.MustHex(theme.CardBorder),
		Accent:     render.MustHex(theme.Accent),
	}
}
