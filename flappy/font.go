package flappy

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/tmajcher/prizewheel/render"
)

// 3x5 block digits for the in-game score. Index by digit value.
var blockDigits = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", " ██", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// blockDigitHeight is the row count of the block font
const blockDigitHeight = 5

// DrawNumber renders value in block digits centered on cx. Only the
// filled cells are written, so the backdrop shows through the gaps.
func DrawNumber(buf *render.Buffer, cx, y, value int, style tcell.Style) {
	if value < 0 {
		value = 0
	}
	s := strconv.Itoa(value)
	width := len(s)*4 - 1
	x := cx - width/2

	for _, ch := range s {
		d := blockDigits[ch-'0']
		for row := 0; row < blockDigitHeight; row++ {
			for col, r := range d[row] {
				if r != ' ' {
					buf.Set(x+col, y+row, '█', style)
				}
			}
		}
		x += 4
	}
}
