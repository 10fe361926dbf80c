package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Horizon composes the scrolling world: night sky, ground, clouds and
// obstacles, all advanced by one Update per tick.
type Horizon struct {
	ctx       *Context
	width     int
	line      *HorizonLine
	clouds    *Layer
	night     *NightMode
	obstacles *ObstacleManager
}

// CloudSpec returns the cloud layer description for a configuration.
func CloudSpec(c config.CloudConfig) LayerSpec {
	return LayerSpec{
		Sprite:    sprite.Cloud,
		Width:     c.Width,
		Height:    c.Height,
		MinGap:    c.MinGap,
		MaxGap:    c.MaxGap,
		MinY:      c.MinY,
		MaxY:      c.MaxY,
		Speed:     c.Speed,
		MaxUnits:  c.MaxClouds,
		Frequency: c.Frequency,
	}
}

// NewHorizon builds the world for a scene of the configured width.
func NewHorizon(ctx *Context) *Horizon {
	w := ctx.Config.Game.Width
	return &Horizon{
		ctx:       ctx,
		width:     w,
		line:      NewHorizonLine(ctx),
		clouds:    NewLayer(ctx, CloudSpec(ctx.Config.Clouds), w),
		night:     NewNightMode(ctx, w),
		obstacles: NewObstacleManager(ctx, ctx.Theme.ObstacleTable(ctx.Config), w),
	}
}

// Update advances the world by dt at speed. Obstacles only move and spawn
// when spawnObstacles is set, which keeps the intro and the clear time free
// of hazards while the scenery keeps moving.
func (h *Horizon) Update(dt, speed float64, spawnObstacles, showNightMode bool) {
	h.night.Update(showNightMode)
	h.line.Update(dt, speed)
	h.clouds.Update(dt, speed)

	if spawnObstacles {
		h.obstacles.Update(dt, speed)
	}
}

// Draw repaints the world without moving it.
func (h *Horizon) Draw() {
	h.night.Draw()
	h.line.Draw()
	for _, c := range h.clouds.Units() {
		c.Draw(h.ctx, 1)
	}
	for _, o := range h.obstacles.Obstacles() {
		o.Draw()
	}
}

// Reset clears the obstacles and rewinds the ground and the night sky.
func (h *Horizon) Reset() {
	h.obstacles.Reset()
	h.line.Reset()
	h.night.Reset()
}

// Resize changes the scene width. Obstacles in flight keep their positions.
func (h *Horizon) Resize(width int) {
	h.width = width
	h.clouds.SetViewport(width)
	h.night.SetViewport(width)
	h.obstacles.viewport = width
}

// SetObstacleTypes swaps the obstacle table used for future spawns.
func (h *Horizon) SetObstacleTypes(types []config.ObstacleType) {
	h.obstacles.SetTypes(types)
}

// Obstacles returns the live obstacles, nearest first.
func (h *Horizon) Obstacles() []*Obstacle {
	return h.obstacles.Obstacles()
}

func (h *Horizon) Line() *HorizonLine                { return h.line }
func (h *Horizon) Clouds() *Layer                    { return h.clouds }
func (h *Horizon) Night() *NightMode                 { return h.night }
func (h *Horizon) ObstacleManager() *ObstacleManager { return h.obstacles }
