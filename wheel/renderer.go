package wheel

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/config"
	"github.com/tmajcher/prizewheel/render"
)

// Colors is the theme subset the wheel draws with
type Colors struct {
	Rim     tcell.Color
	Hub     tcell.Color
	Pointer tcell.Color
	Label   tcell.Color
	Accent  tcell.Color
}

// Renderer rasterizes the wheel by polar scan: every cell inside the
// disc is mapped back to a slice index from its angle, so the fill,
// the separators and the dimming all fall out of one loop. Cells are
// half as wide as they are tall, so x distances are halved to keep the
// disc round on screen.
type Renderer struct {
	render.Toggle

	ctrl    *Controller
	cfg     config.WheelConfig
	palette Palette
	colors  Colors

	// rows reserved above and below for the surrounding chrome
	top    int
	bottom int
}

// NewRenderer builds the wheel renderer. top and bottom reserve rows
// for the header and the footer chrome drawn by other renderers.
func NewRenderer(ctrl *Controller, cfg config.WheelConfig, theme config.Theme, top, bottom int) *Renderer {
	return &Renderer{
		ctrl:    ctrl,
		cfg:     cfg,
		palette: NewPalette(len(ctrl.Names()), theme.SliceSaturation, theme.SliceValue, theme.PickedDim),
		colors: Colors{
			Rim:     render.MustHex(theme.WheelRim),
			Hub:     render.MustHex(theme.WheelHub),
			Pointer: render.MustHex(theme.Pointer),
			Label:   render.MustHex(theme.Label),
			Accent:  render.MustHex(theme.Accent),
		},
		top:    top,
		bottom: bottom,
	}
}

func (r *Renderer) Render(ctx render.Context, buf *render.Buffer) {
	usable := ctx.Height - r.top - r.bottom
	radius := r.cfg.RadiusFrac * math.Min(float64(usable-2)/2, float64(ctx.Width-2)/4)
	if radius < 4 {
		style := tcell.StyleDefault.Foreground(r.colors.Rim)
		buf.TextCentered(ctx.Height/2, "terminal too small for the wheel", style)
		return
	}

	cx := ctx.Width / 2
	cy := r.top + usable/2

	names := r.ctrl.Names()
	n := len(names)
	rot := r.ctrl.Rotation()
	slice := r.ctrl.SliceAngle()
	winner := r.ctrl.WinnerIndex()
	glow := r.ctrl.GlowPhase(ctx.Real)
	hubR := r.cfg.HubRadiusFrac * radius

	span := int(radius) + 1
	for y := cy - span; y <= cy+span; y++ {
		for x := cx - 2*span - 1; x <= cx+2*span+1; x++ {
			ex := float64(x-cx) / 2
			ey := float64(y - cy)
			d := math.Hypot(ex, ey)
			if d > radius {
				continue
			}
			if d <= hubR {
				buf.Set(x, y, ' ', tcell.StyleDefault.Background(r.colors.Hub))
				continue
			}

			local := mod2pi(math.Atan2(ey, ex) - rot)
			idx := int(local / slice)
			if idx >= n {
				idx = n - 1
			}

			col := r.palette.Slice(idx, r.ctrl.IsPicked(idx))
			if idx == winner {
				col = render.ScaleColor(col, 1+0.35*glow)
			}

			// separator and rim run in the same pass
			if n > 1 {
				frac := local - float64(idx)*slice
				if math.Min(frac, slice-frac)*d < 0.35 {
					col = r.colors.Rim
				}
			}
			if d > radius-0.9 {
				col = r.colors.Rim
			}

			buf.Set(x, y, ' ', tcell.StyleDefault.Background(col))
		}
	}

	r.drawLabels(buf, cx, cy, radius, rot, slice, winner, glow)
	r.drawPointer(ctx, buf, cx, cy-span-1)

	buf.Set(cx, cy, '✦', tcell.StyleDefault.Foreground(r.colors.Accent).Background(r.colors.Hub))
}

func (r *Renderer) drawLabels(buf *render.Buffer, cx, cy int, radius, rot, slice float64, winner int, glow float64) {
	names := r.ctrl.Names()
	lr := r.cfg.LabelRadiusFrac * radius

	// columns available along the slice arc at the label radius
	maxLen := int(slice * lr * 2)
	if maxLen > 14 {
		maxLen = 14
	}
	if maxLen < 1 {
		return
	}

	for i, name := range names {
		a := rot + (float64(i)+0.5)*slice
		lx := cx + int(math.Round(math.Cos(a)*lr*2))
		ly := cy + int(math.Round(math.Sin(a)*lr))

		bg := r.palette.Slice(i, r.ctrl.IsPicked(i))
		if i == winner {
			bg = render.ScaleColor(bg, 1+0.35*glow)
		}
		style := tcell.StyleDefault.Foreground(r.colors.Label).Background(bg)
		if i == winner {
			style = style.Bold(true)
		}

		label := truncate(name, maxLen)
		buf.Text(lx-len([]rune(label))/2, ly, label, style)
	}
}

func (r *Renderer) drawPointer(ctx render.Context, buf *render.Buffer, x, y int) {
	style := tcell.StyleDefault.Foreground(r.colors.Pointer).Bold(true)
	if r.ctrl.FlashActive(ctx.Real) {
		style = style.Reverse(true)
	}
	buf.Set(x, y, '▼', style)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}
