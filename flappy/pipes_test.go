package flappy

import "testing"

func TestPipePoolCapacity(t *testing.T) {
	p := NewPipePool(3)
	for i := 0; i < 3; i++ {
		if !p.Spawn(float64(i*10), 5) {
			t.Fatalf("spawn %d should succeed", i)
		}
	}
	if p.Spawn(100, 5) {
		t.Error("spawn beyond capacity should fail")
	}
	if p.Len() != 3 {
		t.Errorf("expected 3 live pipes, got %d", p.Len())
	}
}

func TestPipePoolSwapRemove(t *testing.T) {
	p := NewPipePool(4)
	for i := 0; i < 4; i++ {
		p.Spawn(float64(i*10), 5)
	}

	// remove every pipe left of x=25 using the no-advance-on-remove
	// pattern the game loop relies on
	for i := 0; i < p.Len(); {
		if p.At(i).X < 25 {
			p.RemoveAt(i)
			continue
		}
		i++
	}

	if p.Len() != 1 {
		t.Fatalf("expected 1 survivor, got %d", p.Len())
	}
	if p.At(0).X != 30 {
		t.Errorf("expected survivor at x=30, got %v", p.At(0).X)
	}
}

func TestPipePoolClearKeepsCapacity(t *testing.T) {
	p := NewPipePool(2)
	p.Spawn(1, 5)
	p.Spawn(2, 5)
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("expected empty pool after clear, got %d", p.Len())
	}
	if !p.Spawn(3, 5) {
		t.Error("spawn after clear should succeed")
	}
}
