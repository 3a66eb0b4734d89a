package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ToTcell converts a colorful color to a terminal RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// FromHex parses "#rrggbb" into a terminal color
func FromHex(s string) (tcell.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("parse color %q: %w", s, err)
	}
	return ToTcell(c), nil
}

// MustHex parses a hex color known at compile time
func MustHex(s string) tcell.Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ScaleColor multiplies each channel by the factor, clamped to [0,255].
// Factors below 1 dim, above 1 brighten. Non-RGB colors pass through.
func ScaleColor(c tcell.Color, factor float64) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return c
	}
	return tcell.NewRGBColor(scaleChan(r, factor), scaleChan(g, factor), scaleChan(b, factor))
}

func scaleChan(v int32, factor float64) int32 {
	out := int32(float64(v) * factor)
	if out < 0 {
		return 0
	}
	if out > 255 {
		return 255
	}
	return out
}

// Lerp blends two terminal colors in a perceptually even space.
// t=0 returns a, t=1 returns b.
func Lerp(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return ToTcell(toColorful(a).BlendLuv(toColorful(b), t))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		r, g, b = 0, 0, 0
	}
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
