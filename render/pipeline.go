package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Context carries the per-frame inputs renderers are allowed to read
type Context struct {
	// Now is the active view's animation time. For the game view this
	// is pausable game time, so ambient animation keyed on it freezes
	// with the run while real-time overlays key on Real.
	Now  time.Time
	Real time.Time

	Width  int
	Height int

	// Debug enables diagnostic readouts (tick rate, frame number)
	Debug bool
	Frame uint64
}

// Renderer is implemented by anything with visual output
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}

// Visibility is optionally implemented for runtime enable/disable
type Visibility interface {
	IsVisible() bool
}

// Priority determines render order. Lower values render first.
type Priority int

const (
	PriorityBackground Priority = 100
	PriorityScene      Priority = 200
	PriorityEffects    Priority = 300
	PriorityHUD        Priority = 400
	PriorityOverlay    Priority = 500
)

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Pipeline coordinates a priority-ordered list of renderers drawing
// into a shared buffer. Renderers register once; view switches hide
// and show them through Visibility rather than rebuilding the list.
type Pipeline struct {
	entries  []rendererEntry
	regCount int
}

// NewPipeline creates an empty pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		entries: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the given priority, keeping the list
// sorted by insertion sort.
func (p *Pipeline) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    p.regCount,
	}
	p.regCount++

	pos := len(p.entries)
	for i, e := range p.entries {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	p.entries = append(p.entries, rendererEntry{})
	copy(p.entries[pos+1:], p.entries[pos:])
	p.entries[pos] = entry
}

// RenderFrame runs every visible renderer in priority order
func (p *Pipeline) RenderFrame(ctx Context, buf *Buffer) {
	for _, entry := range p.entries {
		if v, ok := entry.renderer.(Visibility); ok && !v.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, buf)
	}
}

// Styles used as clear backgrounds are built here so views do not each
// reinvent the mapping.
func BgStyle(bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
}
