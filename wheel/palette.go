package wheel

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tmajcher/prizewheel/render"
)

// Palette assigns each wedge a color from an even hue sweep, plus a
// desaturated dim variant for picked wedges
type Palette struct {
	slices []tcell.Color
	dimmed []tcell.Color
}

// NewPalette builds colors for n wedges. saturation and value come
// from the theme; pickedDim scales the value of the dim variants.
func NewPalette(n int, saturation, value, pickedDim float64) Palette {
	if n < 1 {
		n = 1
	}
	p := Palette{
		slices: make([]tcell.Color, n),
		dimmed: make([]tcell.Color, n),
	}
	for i := 0; i < n; i++ {
		hue := float64(i) * 360.0 / float64(n)
		p.slices[i] = render.ToTcell(colorful.Hsv(hue, saturation, value))
		p.dimmed[i] = render.ToTcell(colorful.Hsv(hue, saturation*0.5, value*pickedDim))
	}
	return p
}

// Slice returns the wedge color, dimmed when the name is picked
func (p Palette) Slice(i int, picked bool) tcell.Color {
	i %= len(p.slices)
	if picked {
		return p.dimmed[i]
	}
	return p.slices[i]
}
