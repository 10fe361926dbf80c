package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

func TestHorizonObstaclesOnlyWhenRequested(t *testing.T) {
	ctx, _ := newTestContext(1)
	h := NewHorizon(ctx)

	for i := 0; i < 100; i++ {
		h.Update(frameMs, 6, false, false)
	}
	if n := len(h.Obstacles()); n != 0 {
		t.Fatalf("len(Obstacles()) = %d without spawning, expected 0", n)
	}

	h.Update(frameMs, 6, true, false)
	if n := len(h.Obstacles()); n != 1 {
		t.Fatalf("len(Obstacles()) = %d after first spawning update, expected 1", n)
	}

	// Scenery keeps moving while obstacles are frozen.
	o := h.Obstacles()[0]
	x := o.X
	ground := h.Line().Segments()[0].X
	h.Update(frameMs, 6, false, false)
	if o.X != x {
		t.Errorf("obstacle moved from %d to %d while frozen", x, o.X)
	}
	if h.Line().Segments()[0].X == ground {
		t.Errorf("ground did not move")
	}
}

func TestHorizonNightMode(t *testing.T) {
	ctx, rec := newTestContext(1)
	h := NewHorizon(ctx)

	for i := 0; i < 40; i++ {
		h.Update(frameMs, 6, false, true)
	}
	if h.Night().Opacity() != 1 {
		t.Errorf("night Opacity() = %v, expected 1", h.Night().Opacity())
	}
	if rec.Count(sprite.Moon) == 0 {
		t.Errorf("moon not drawn at night")
	}
}

func TestHorizonReset(t *testing.T) {
	ctx, _ := newTestContext(1)
	h := NewHorizon(ctx)

	for i := 0; i < 200; i++ {
		h.Update(frameMs, 6, true, true)
	}
	h.Reset()

	if len(h.Obstacles()) != 0 {
		t.Errorf("len(Obstacles()) = %d after Reset", len(h.Obstacles()))
	}
	if h.Line().Segments()[0].X != 0 {
		t.Errorf("ground at %v after Reset", h.Line().Segments()[0].X)
	}
	if h.Night().Opacity() != 0 {
		t.Errorf("night Opacity() = %v after Reset", h.Night().Opacity())
	}
}

func TestHorizonSetObstacleTypes(t *testing.T) {
	ctx, _ := newTestContext(1)
	h := NewHorizon(ctx)
	h.SetObstacleTypes([]config.ObstacleType{cactusType("ONLY")})

	h.Update(frameMs, 6, true, false)
	if got := h.Obstacles()[0].Type.Type; got != "ONLY" {
		t.Errorf("spawned %q, expected ONLY", got)
	}
}
