package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is a single drawable screen cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a cell compositor the render pipeline draws into before the
// frame is pushed to the terminal in one pass. Renderers run in
// priority order, so later layers simply overwrite earlier ones.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only when capacity is
// insufficient.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(tcell.StyleDefault)
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear fills the buffer with spaces in the given style using
// exponential copy.
func (b *Buffer) Clear(style tcell.Style) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: style}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a single cell, ignoring out-of-bounds coordinates
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at the coordinates and whether it was in bounds
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Text writes a string starting at x, clipped at the buffer edge
func (b *Buffer) Text(x, y int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		b.Set(col, y, r, style)
		col++
	}
}

// TextCentered writes a string centered horizontally on the given row
func (b *Buffer) TextCentered(y int, s string, style tcell.Style) {
	x := (b.width - len([]rune(s))) / 2
	b.Text(x, y, s, style)
}

// Fill writes the rune into every cell of the rectangle
func (b *Buffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}

// HLine draws a horizontal run of the rune
func (b *Buffer) HLine(x, y, w int, r rune, style tcell.Style) {
	for col := x; col < x+w; col++ {
		b.Set(col, y, r, style)
	}
}

// Box draws a rounded single-line border around the rectangle edge.
// Callers fill the rectangle first when the card must be opaque.
func (b *Buffer) Box(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, '─', style)
		b.Set(col, y+h-1, '─', style)
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, '│', style)
		b.Set(x+w-1, row, '│', style)
	}
	b.Set(x, y, '╭', style)
	b.Set(x+w-1, y, '╮', style)
	b.Set(x, y+h-1, '╰', style)
	b.Set(x+w-1, y+h-1, '╯', style)
}

// DimAll scales the colors of every cell toward black. Post-processing
// pass run before modal overlays so the scene reads as inactive.
func (b *Buffer) DimAll(factor float64) {
	for i := range b.cells {
		fg, bg, attrs := b.cells[i].Style.Decompose()
		b.cells[i].Style = tcell.StyleDefault.
			Foreground(ScaleColor(fg, factor)).
			Background(ScaleColor(bg, factor)).
			Attributes(attrs)
	}
}

// Flush pushes every cell to the terminal and shows the frame. The
// terminal library diffs against its own back buffer, so a full write
// per frame is the expected usage.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
