package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetAndGet(t *testing.T) {
	b := NewBuffer(10, 5)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	b.Set(3, 2, 'X', style)
	c, ok := b.Get(3, 2)
	if !ok {
		t.Fatal("expected in-bounds cell")
	}
	if c.Rune != 'X' {
		t.Errorf("expected 'X', got %q", c.Rune)
	}

	// Out-of-bounds writes are silently ignored
	b.Set(-1, 0, 'A', style)
	b.Set(10, 0, 'A', style)
	b.Set(0, 5, 'A', style)
	if _, ok := b.Get(10, 0); ok {
		t.Error("expected out-of-bounds Get to fail")
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(17, 9) // odd size exercises the exponential copy tail
	style := tcell.StyleDefault.Background(tcell.ColorBlue)
	b.Set(16, 8, 'Z', style)

	b.Clear(style)
	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			c, _ := b.Get(x, y)
			if c.Rune != ' ' {
				t.Fatalf("cell (%d,%d) not cleared: %q", x, y, c.Rune)
			}
		}
	}
}

func TestBufferTextClipping(t *testing.T) {
	b := NewBuffer(5, 1)
	b.Text(3, 0, "hello", tcell.StyleDefault)

	c, _ := b.Get(3, 0)
	if c.Rune != 'h' {
		t.Errorf("expected 'h' at x=3, got %q", c.Rune)
	}
	c, _ = b.Get(4, 0)
	if c.Rune != 'e' {
		t.Errorf("expected 'e' at x=4, got %q", c.Rune)
	}
	// Rest clipped, no panic
}

func TestBufferResizeKeepsCapacity(t *testing.T) {
	b := NewBuffer(20, 10)
	b.Resize(5, 4)
	w, h := b.Size()
	if w != 5 || h != 4 {
		t.Errorf("expected 5x4 after resize, got %dx%d", w, h)
	}
	b.Set(4, 3, 'Q', tcell.StyleDefault)
	if c, ok := b.Get(4, 3); !ok || c.Rune != 'Q' {
		t.Error("corner write after shrink failed")
	}
}

type orderProbe struct {
	tag string
	log *[]string
}

func (o orderProbe) Render(_ Context, _ *Buffer) {
	*o.log = append(*o.log, o.tag)
}

type hiddenProbe struct{ orderProbe }

func (hiddenProbe) IsVisible() bool { return false }

func TestPipelineOrderAndVisibility(t *testing.T) {
	var log []string
	p := NewPipeline()

	// Registered out of order; must run by ascending priority, with
	// registration order breaking ties.
	p.Register(orderProbe{"hud", &log}, PriorityHUD)
	p.Register(orderProbe{"bg", &log}, PriorityBackground)
	p.Register(orderProbe{"scene1", &log}, PriorityScene)
	p.Register(orderProbe{"scene2", &log}, PriorityScene)
	p.Register(hiddenProbe{orderProbe{"hidden", &log}}, PriorityOverlay)

	p.RenderFrame(Context{}, NewBuffer(1, 1))

	want := []string{"bg", "scene1", "scene2", "hud"}
	if len(log) != len(want) {
		t.Fatalf("expected %d renders, got %d (%v)", len(want), len(log), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("render order[%d]: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestScaleColorClamps(t *testing.T) {
	c := tcell.NewRGBColor(200, 100, 50)
	dimmed := ScaleColor(c, 0.5)
	r, g, b := dimmed.RGB()
	if r != 100 || g != 50 || b != 25 {
		t.Errorf("expected (100,50,25), got (%d,%d,%d)", r, g, b)
	}

	bright := ScaleColor(c, 2.0)
	r, _, _ = bright.RGB()
	if r != 255 {
		t.Errorf("expected red clamped to 255, got %d", r)
	}
}
