package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// HorizonLine is the ground: two segments laid end to end. The segment that
// leaves the scene on the left is moved behind the other one with a freshly
// chosen flat or bumpy crop, so the seam never shows.
type HorizonLine struct {
	ctx      *Context
	cfg      config.HorizonConfig
	segments [2]*Unit
}

// NewHorizonLine lays both segments starting at x = 0.
func NewHorizonLine(ctx *Context) *HorizonLine {
	cfg := ctx.Config.Horizon
	h := &HorizonLine{ctx: ctx, cfg: cfg}
	for i := range h.segments {
		h.segments[i] = &Unit{
			Sprite: sprite.Horizon,
			Y:      cfg.YPos,
			Width:  cfg.Width,
			Height: cfg.Height,
			FrameX: i * cfg.Width,
		}
	}
	h.Reset()
	h.Draw()
	return h
}

func (h *HorizonLine) randomCrop() int {
	if h.ctx.Rand.Float64() > h.cfg.BumpThreshold {
		return h.cfg.Width
	}
	return 0
}

func (h *HorizonLine) updateXPos(lead int, increment float64) {
	a, b := h.segments[lead], h.segments[1-lead]
	w := float64(h.cfg.Width)

	a.Advance(increment)
	b.X = a.X + w

	if a.X <= -w {
		a.X += w * 2
		b.X = a.X - w
		a.FrameX = h.randomCrop()
	}
	// A long frame can carry both segments past the left edge.
	for b.X <= -w {
		a.X += w
		b.X += w
	}
}

// Update scrolls the ground by the world displacement for dt.
func (h *HorizonLine) Update(dt, speed float64) {
	increment := math.Floor(speed * (h.ctx.Config.Game.FPS / 1000) * dt)
	if h.segments[0].X <= 0 {
		h.updateXPos(0, increment)
	} else {
		h.updateXPos(1, increment)
	}
	h.Draw()
}

// Draw blits both segments.
func (h *HorizonLine) Draw() {
	for _, s := range h.segments {
		s.Draw(h.ctx, 1)
	}
}

// Reset returns the segments to their starting positions.
func (h *HorizonLine) Reset() {
	h.segments[0].X = 0
	h.segments[1].X = float64(h.cfg.Width)
}

// Segments returns both ground segments.
func (h *HorizonLine) Segments() [2]*Unit {
	return h.segments
}
