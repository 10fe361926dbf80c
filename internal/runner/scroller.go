package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Unit is one horizontally scrolling piece of scenery.
type Unit struct {
	Sprite sprite.Name
	X      float64
	Y      int
	Width  int
	Height int
	Gap    int

	// FrameX and FrameY select the source region inside the sprite.
	FrameX int
	FrameY int

	Removed bool
}

// Visible reports whether any part of the unit is on screen.
func (u *Unit) Visible() bool {
	return u.X+float64(u.Width) > 0
}

// Advance moves the unit dx scene pixels to the left.
func (u *Unit) Advance(dx float64) {
	u.X -= dx
}

// Box is the destination rectangle at the current position.
func (u *Unit) Box() core.Rect {
	return core.NewRect(int(math.Round(u.X)), u.Y, u.Width, u.Height)
}

// Draw blits the unit with the given opacity.
func (u *Unit) Draw(ctx *Context, alpha float64) {
	ctx.draw(u.Sprite, u.FrameX, u.FrameY, u.Box(), alpha)
}

// LayerSpec describes a homogeneous layer of scenery units.
type LayerSpec struct {
	Sprite sprite.Name
	Width  int
	Height int

	MinGap int
	MaxGap int
	MinY   int
	MaxY   int

	// Speed is the fraction of world speed the layer scrolls at.
	Speed float64
	// MaxUnits caps the number of live units.
	MaxUnits int
	// Frequency is the chance a due unit actually spawns on a tick.
	Frequency float64
}

// Layer owns the units of one LayerSpec.
type Layer struct {
	ctx      *Context
	spec     LayerSpec
	units    []*Unit
	viewport int
}

// NewLayer creates a layer and places its first unit.
func NewLayer(ctx *Context, spec LayerSpec, viewport int) *Layer {
	l := &Layer{ctx: ctx, spec: spec, viewport: viewport}
	l.add()
	return l
}

// Units returns the live units, oldest first.
func (l *Layer) Units() []*Unit {
	return l.units
}

// Spec returns the layer description.
func (l *Layer) Spec() LayerSpec {
	return l.spec
}

// SetViewport changes the scene width new units appear at.
func (l *Layer) SetViewport(width int) {
	l.viewport = width
}

// Update scrolls every unit, retires invisible ones and spawns a new unit
// once the last one has cleared its gap.
func (l *Layer) Update(dt, speed float64) {
	if len(l.units) == 0 {
		l.add()
		return
	}

	dx := math.Ceil(l.spec.Speed / 1000 * dt * speed)
	for _, u := range l.units {
		if u.Removed {
			continue
		}
		u.Advance(dx)
		u.Draw(l.ctx, 1)
		if !u.Visible() {
			u.Removed = true
		}
	}

	last := l.units[len(l.units)-1]
	if len(l.units) < l.spec.MaxUnits &&
		float64(l.viewport)-last.X > float64(last.Gap) &&
		l.spec.Frequency > l.ctx.Rand.Float64() {
		l.add()
	}

	live := l.units[:0]
	for _, u := range l.units {
		if !u.Removed {
			live = append(live, u)
		}
	}
	l.units = live
}

func (l *Layer) add() {
	u := &Unit{
		Sprite: l.spec.Sprite,
		X:      float64(l.viewport),
		Y:      l.ctx.Rand.IntRange(l.spec.MinY, l.spec.MaxY),
		Width:  l.spec.Width,
		Height: l.spec.Height,
		Gap:    l.ctx.Rand.IntRange(l.spec.MinGap, l.spec.MaxGap),
	}
	u.Draw(l.ctx, 1)
	l.units = append(l.units, u)
}

// Reset removes every unit and places a fresh one.
func (l *Layer) Reset() {
	l.units = nil
	l.add()
}
