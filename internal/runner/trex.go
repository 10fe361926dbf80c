package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Status is the actor state.
type Status int

const (
	Waiting Status = iota
	Running
	Jumping
	Ducking
	Crashed
)

// String returns the status name used by the frame tables.
func (s Status) String() string {
	switch s {
	case Waiting:
		return "WAITING"
	case Running:
		return "RUNNING"
	case Jumping:
		return "JUMPING"
	case Ducking:
		return "DUCKING"
	case Crashed:
		return "CRASHED"
	default:
		return "UNKNOWN"
	}
}

// Trex is the player actor.
type Trex struct {
	ctx  *Context
	cfg  config.TrexConfig
	jump config.JumpConfig

	x, y          int
	xInitial      int
	groundY       int
	minJumpHeight int

	status       Status
	currentFrame int
	frames       []int
	msPerFrame   float64
	timer        float64

	blinkDelay float64
	blinkTimer float64
	blinkCount int

	velocity       float64
	jumping        bool
	ducking        bool
	reachedMin     bool
	speedDrop      bool
	landedFromDrop bool
	jumpCount      int
	flashing       bool
	playingIntro   bool
}

// NewTrex places the actor on the ground, waiting.
func NewTrex(ctx *Context) *Trex {
	t := &Trex{
		ctx:        ctx,
		cfg:        ctx.Config.Trex,
		msPerFrame: ctx.msPerFrame(),
	}
	t.groundY = ctx.Config.Game.Height - t.cfg.Height - ctx.Config.Game.BottomPad
	t.y = t.groundY
	t.ApplyJump(ctx.Config.Jump)
	t.draw(0)
	t.UpdateStatus(0, Waiting)
	return t
}

// ApplyJump swaps the jump physics, e.g. for the slow variant.
func (t *Trex) ApplyJump(j config.JumpConfig) {
	t.jump = j
	t.minJumpHeight = t.groundY - j.MinJumpHeight
}

// Update advances animation by dt milliseconds and draws the actor.
func (t *Trex) Update(dt float64) {
	t.update(dt, t.status, false)
}

// UpdateStatus switches to status, restarting its animation, then updates.
func (t *Trex) UpdateStatus(dt float64, status Status) {
	t.update(dt, status, true)
}

func (t *Trex) update(dt float64, status Status, changed bool) {
	t.timer += dt

	if changed {
		anim := t.ctx.Theme.Animation(status.String())
		t.status = status
		t.currentFrame = 0
		t.msPerFrame = anim.MsPerFrame
		t.frames = anim.Frames
		if status == Waiting {
			t.blinkTimer = 0
			t.setBlinkDelay()
		}
	}

	// Intro slide towards the start position
	if t.playingIntro && t.x < t.cfg.StartX {
		t.x += int(math.Round(float64(t.cfg.StartX) / t.cfg.IntroDuration * dt))
		t.xInitial = t.x
	}

	if t.status == Waiting {
		t.blink(dt)
	} else {
		t.draw(t.frame())
	}

	if !t.flashing && t.timer >= t.msPerFrame && len(t.frames) > 0 {
		t.currentFrame = (t.currentFrame + 1) % len(t.frames)
		t.timer = 0
	}
}

func (t *Trex) frame() int {
	if t.currentFrame >= len(t.frames) {
		return 0
	}
	return t.frames[t.currentFrame]
}

func (t *Trex) setBlinkDelay() {
	t.blinkDelay = math.Ceil(t.ctx.Rand.Float64() * t.cfg.BlinkTiming)
}

// blink draws the waiting actor once its blink delay has passed.
func (t *Trex) blink(dt float64) {
	t.blinkTimer += dt
	if t.blinkTimer >= t.blinkDelay {
		t.draw(t.frame())
		if t.currentFrame == 1 {
			t.setBlinkDelay()
			t.blinkTimer = 0
			t.blinkCount++
		}
	}
}

func (t *Trex) draw(frameX int) {
	w := t.cfg.Width
	if t.ducking && t.status != Crashed {
		w = t.cfg.WidthDuck
	}

	alpha := 1.0
	if t.flashing {
		if t.timer < t.cfg.FlashOn {
			alpha = 0.5
		} else if t.timer > t.cfg.FlashOff {
			t.timer = 0
		}
	}

	t.ctx.draw(sprite.Trex, frameX, 0, core.NewRect(t.x, t.y, w, t.cfg.Height), alpha)
}

// StartJump launches a jump whose strength grows with speed.
// No-op while already jumping or crashed. Refusing a jump while ducking is
// left to the caller.
func (t *Trex) StartJump(speed float64) {
	if t.jumping || t.status == Crashed {
		return
	}
	t.UpdateStatus(0, Jumping)
	t.velocity = t.jump.InitialJumpVelocity - speed/10
	t.jumping = true
	t.ducking = false
	t.reachedMin = false
	t.speedDrop = false
}

// EndJump cuts the ascent short once the minimum height has been reached.
func (t *Trex) EndJump() {
	if t.reachedMin && t.velocity < t.jump.DropVelocity {
		t.velocity = t.jump.DropVelocity
	}
}

// UpdateJump integrates the jump over dt milliseconds and reports whether
// the actor landed.
func (t *Trex) UpdateJump(dt float64) bool {
	if !t.jumping {
		return false
	}

	framesElapsed := dt / t.ctx.Theme.Animation(t.status.String()).MsPerFrame

	if t.speedDrop {
		t.y += int(math.Round(t.velocity * t.jump.SpeedDropCoefficient * framesElapsed))
	} else {
		t.y += int(math.Round(t.velocity * framesElapsed))
	}
	t.velocity += t.jump.Gravity * framesElapsed

	if t.y < t.minJumpHeight || t.speedDrop {
		t.reachedMin = true
	}
	if t.y < t.jump.MaxJumpHeight || t.speedDrop {
		t.EndJump()
	}

	if t.y > t.groundY {
		t.landedFromDrop = t.speedDrop
		t.land()
		t.jumpCount++
		return true
	}
	return false
}

// SetSpeedDrop makes a jumping actor fall fast.
func (t *Trex) SetSpeedDrop() {
	if !t.jumping {
		return
	}
	t.speedDrop = true
	t.velocity = 1
}

// ReleaseSpeedDrop clears a pending speed drop.
func (t *Trex) ReleaseSpeedDrop() {
	t.speedDrop = false
}

// SetDuck enters or leaves the ducking state. Ducking is refused while
// jumping or crashed.
func (t *Trex) SetDuck(duck bool) {
	if duck {
		if t.jumping || t.status == Crashed || t.status == Ducking {
			return
		}
		t.UpdateStatus(0, Ducking)
		t.ducking = true
		return
	}
	if t.status == Ducking {
		t.UpdateStatus(0, Running)
		t.ducking = false
	}
}

// SetFlashing toggles the blinking overlay. Animation frames hold while flashing.
func (t *Trex) SetFlashing(on bool) {
	t.flashing = on
}

// SetPlayingIntro starts or ends the intro slide.
func (t *Trex) SetPlayingIntro(on bool) {
	t.playingIntro = on
}

// land puts the actor back on the ground after a jump.
func (t *Trex) land() {
	t.x = t.xInitial
	t.y = t.groundY
	t.velocity = 0
	t.jumping = false
	t.ducking = false
	t.UpdateStatus(0, Running)
	t.speedDrop = false
}

// Reset puts the actor on the ground, running, with the jump count cleared.
func (t *Trex) Reset() {
	t.landedFromDrop = false
	t.land()
	t.jumpCount = 0
}

// Crash switches to the terminal crashed frame.
func (t *Trex) Crash(dt float64) {
	t.jumping = false
	t.speedDrop = false
	t.UpdateStatus(dt, Crashed)
}

// OuterBox is the standing bounding box used for the coarse collision test.
func (t *Trex) OuterBox() core.Rect {
	return core.NewRect(t.x, t.y, t.cfg.Width, t.cfg.Height)
}

// CollisionBoxes returns the sub-boxes for the current pose, relative to the actor.
func (t *Trex) CollisionBoxes() []core.Rect {
	if t.ducking {
		return t.cfg.CollisionDucking
	}
	return t.cfg.CollisionRunning
}

func (t *Trex) X() int                    { return t.x }
func (t *Trex) Y() int                    { return t.y }
func (t *Trex) GroundY() int              { return t.groundY }
func (t *Trex) Status() Status            { return t.status }
func (t *Trex) Velocity() float64         { return t.velocity }
func (t *Trex) Jumping() bool             { return t.jumping }
func (t *Trex) Ducking() bool             { return t.ducking }
func (t *Trex) Flashing() bool            { return t.flashing }
func (t *Trex) SpeedDrop() bool           { return t.speedDrop }
func (t *Trex) JumpCount() int            { return t.jumpCount }
func (t *Trex) BlinkCount() int           { return t.blinkCount }
func (t *Trex) PlayingIntro() bool        { return t.playingIntro }
func (t *Trex) LandedFromSpeedDrop() bool { return t.landedFromDrop }
