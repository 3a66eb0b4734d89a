// Package flappy implements the hidden side game: a fixed-timestep
// one-button flyer with difficulty tiers and per-tier best scores.
package flappy

// Pipe is one obstacle pair. X is the left edge, GapY the top of the
// opening. Both halves share the record.
type Pipe struct {
	X      float64
	GapY   float64
	Scored bool
}

// PipePool recycles obstacle slots in place. Removal swaps with the
// last live pipe, so iteration that removes must not advance its
// index past a removed slot. Order carries no meaning; pipes never
// overlap on screen.
type PipePool struct {
	pipes []Pipe
	max   int
}

// NewPipePool creates a pool that holds at most max live pipes
func NewPipePool(max int) *PipePool {
	if max < 1 {
		max = 1
	}
	return &PipePool{
		pipes: make([]Pipe, 0, max),
		max:   max,
	}
}

// Spawn adds a pipe unless the pool is full
func (p *PipePool) Spawn(x, gapY float64) bool {
	if len(p.pipes) >= p.max {
		return false
	}
	p.pipes = append(p.pipes, Pipe{X: x, GapY: gapY})
	return true
}

func (p *PipePool) Len() int {
	return len(p.pipes)
}

// At returns a pointer into the pool for in-place mutation
func (p *PipePool) At(i int) *Pipe {
	return &p.pipes[i]
}

// RemoveAt swap-removes the pipe at i
func (p *PipePool) RemoveAt(i int) {
	last := len(p.pipes) - 1
	p.pipes[i] = p.pipes[last]
	p.pipes = p.pipes[:last]
}

// Clear drops every pipe, keeping capacity
func (p *PipePool) Clear() {
	p.pipes = p.pipes[:0]
}

// Active returns the live pipes. The slice aliases pool storage and is
// only valid until the next mutation.
func (p *PipePool) Active() []Pipe {
	return p.pipes
}
