package runner

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// ErrNoEligibleObstacle means no obstacle type may spawn at the current speed
// with the current history. The tick goes on without a spawn.
var ErrNoEligibleObstacle = errors.New("runner: no eligible obstacle type")

// maxSelectAttempts bounds the random draws before the deterministic scan.
const maxSelectAttempts = 16

// Obstacle is one spawned hazard, possibly a glued group of up to
// MaxObstacleLength copies.
type Obstacle struct {
	ctx  *Context
	Type config.ObstacleType

	X           int
	Y           int
	Size        int
	Width       int
	Gap         int
	SpeedOffset float64
	Boxes       []core.Rect // relative to the obstacle, adjusted for Size

	Removed          bool
	JumpAlerted      bool
	FollowingCreated bool

	currentFrame int
	timer        float64
}

func newObstacle(ctx *Context, typ config.ObstacleType, speed, gapCoefficient float64, viewport int) *Obstacle {
	g := ctx.Config.Game
	o := &Obstacle{
		ctx:   ctx,
		Type:  typ,
		Size:  ctx.Rand.IntRange(1, g.MaxObstacleLength),
		X:     viewport + typ.Width,
		Boxes: append([]core.Rect(nil), typ.CollisionBoxes...),
	}

	if o.Size > 1 && typ.MultipleSpeed > speed {
		o.Size = 1
	}
	o.Width = typ.Width * o.Size

	ys := typ.YPos
	if ctx.Mobile && len(typ.YPosMobile) > 0 {
		ys = typ.YPosMobile
	}
	if len(ys) == 1 {
		o.Y = ys[0]
	} else if len(ys) > 1 {
		o.Y = ys[ctx.Rand.IntRange(0, len(ys)-1)]
	}

	// Stretch the middle box and move the last one to the end of the group
	if o.Size > 1 && len(o.Boxes) >= 3 {
		last := len(o.Boxes) - 1
		o.Boxes[1].W = o.Width - o.Boxes[0].W - o.Boxes[last].W
		o.Boxes[last].X = o.Width - o.Boxes[last].W
	}

	if typ.SpeedOffset != 0 {
		if ctx.Rand.Float64() > 0.5 {
			o.SpeedOffset = typ.SpeedOffset
		} else {
			o.SpeedOffset = -typ.SpeedOffset
		}
	}

	o.Gap = o.gap(gapCoefficient, speed)
	if ctx.AudioCues {
		o.Gap *= 2
	}

	o.Draw()
	return o
}

func (o *Obstacle) gap(gapCoefficient, speed float64) int {
	minGap := int(math.Round(float64(o.Width)*speed + o.Type.MinGap*gapCoefficient))
	maxGap := int(math.Round(float64(minGap) * o.ctx.Config.Game.MaxGapCoefficient))
	return o.ctx.Rand.IntRange(minGap, maxGap)
}

// Update scrolls the obstacle left, advances its animation and flags it for
// removal once it has left the scene.
func (o *Obstacle) Update(dt, speed float64) {
	if o.Removed {
		return
	}
	if o.Type.SpeedOffset != 0 {
		speed += o.SpeedOffset
	}
	o.X -= int(math.Floor(speed * o.ctx.Config.Game.FPS / 1000 * dt))

	if o.Type.NumFrames > 0 {
		o.timer += dt
		if o.timer >= o.Type.FrameRate {
			o.currentFrame = (o.currentFrame + 1) % o.Type.NumFrames
			o.timer = 0
		}
	}

	o.Draw()
	if !o.Visible() {
		o.Removed = true
	}
}

// Draw blits the obstacle group. Groups of n use the n-wide sprite cell.
func (o *Obstacle) Draw() {
	frameX := int(float64(o.Type.Width*o.Size) * 0.5 * float64(o.Size-1))
	frameX += o.Type.Width * o.currentFrame
	o.ctx.draw(sprite.Name(o.Type.Type), frameX, 0, o.OuterBox(), 1)
}

// Visible reports whether any part of the obstacle is still on screen.
func (o *Obstacle) Visible() bool {
	return o.X+o.Width > 0
}

// OuterBox is the bounding box of the whole group.
func (o *Obstacle) OuterBox() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Type.Height)
}

// Frame returns the current animation frame index.
func (o *Obstacle) Frame() int {
	return o.currentFrame
}

// ObstacleManager spawns, scrolls and retires obstacles.
type ObstacleManager struct {
	ctx            *Context
	types          []config.ObstacleType
	obstacles      []*Obstacle
	history        []string
	gapCoefficient float64
	viewport       int
}

// NewObstacleManager creates a manager for the given type table.
func NewObstacleManager(ctx *Context, types []config.ObstacleType, viewport int) *ObstacleManager {
	return &ObstacleManager{
		ctx:            ctx,
		types:          types,
		gapCoefficient: ctx.Config.Game.GapCoefficient,
		viewport:       viewport,
	}
}

// SetTypes replaces the type table. Live obstacles keep their type.
func (om *ObstacleManager) SetTypes(types []config.ObstacleType) {
	om.types = types
}

// Obstacles returns the live obstacles, nearest first.
func (om *ObstacleManager) Obstacles() []*Obstacle {
	return om.obstacles
}

// History returns recently spawned type names, most recent first.
func (om *ObstacleManager) History() []string {
	return om.history
}

// Reset removes every obstacle and forgets the history.
func (om *ObstacleManager) Reset() {
	om.obstacles = nil
	om.history = nil
}

// Update scrolls every obstacle, drops those that left the scene and spawns
// a follower once the trailing obstacle has cleared its gap.
func (om *ObstacleManager) Update(dt, speed float64) {
	for _, o := range om.obstacles {
		o.Update(dt, speed)
	}
	for len(om.obstacles) > 0 && om.obstacles[0].Removed {
		om.obstacles = om.obstacles[1:]
	}

	if len(om.obstacles) == 0 {
		_ = om.Add(speed)
		return
	}

	last := om.obstacles[len(om.obstacles)-1]
	if !last.FollowingCreated && last.Visible() && last.X+last.Width+last.Gap < om.viewport {
		_ = om.Add(speed)
		last.FollowingCreated = true
	}
}

// pool returns indices of the types that may be drawn. Collectables only
// take part when nothing else is configured.
func (om *ObstacleManager) pool() []int {
	var pool, collectables []int
	for i, t := range om.types {
		if t.Collectable {
			collectables = append(collectables, i)
		} else {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return collectables
	}
	return pool
}

// Add spawns one obstacle. Up to maxSelectAttempts random draws are made,
// then the pool is scanned in order for the first eligible type.
func (om *ObstacleManager) Add(speed float64) error {
	pool := om.pool()
	if len(pool) == 0 {
		om.ctx.Logger.Error("obstacle table is empty")
		return ErrNoEligibleObstacle
	}

	eligible := func(i int) bool {
		t := om.types[i]
		if len(pool) > 1 && om.DuplicateCheck(t.Type) {
			return false
		}
		return speed >= t.MinSpeed
	}

	chosen := -1
	for attempt := 0; attempt < maxSelectAttempts; attempt++ {
		i := pool[om.ctx.Rand.IntRange(0, len(pool)-1)]
		if eligible(i) {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		for _, i := range pool {
			if eligible(i) {
				chosen = i
				break
			}
		}
	}
	if chosen < 0 {
		om.ctx.Logger.Error("no obstacle can spawn", "speed", speed, "history", om.history)
		return ErrNoEligibleObstacle
	}

	typ := om.types[chosen]
	om.obstacles = append(om.obstacles, newObstacle(om.ctx, typ, speed, om.gapCoefficient, om.viewport))

	om.history = append([]string{typ.Type}, om.history...)
	if limit := om.ctx.Config.Game.MaxObstacleDuplication; len(om.history) > limit {
		om.history = om.history[:limit]
	}
	return nil
}

// DuplicateCheck reports whether spawning typ would extend the run of
// identical recent types past the allowed duplication.
func (om *ObstacleManager) DuplicateCheck(typ string) bool {
	run := 0
	for _, h := range om.history {
		if h != typ {
			break
		}
		run++
	}
	return run >= om.ctx.Config.Game.MaxObstacleDuplication
}
