package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Options are the collaborators of a Runner. Nil fields get silent defaults.
type Options struct {
	Clock     Clock
	Scheduler Scheduler
	Audio     Audio
	Scores    HighScores
	Panel     Panel
	Debug     DebugDrawer // receives collision boxes when Context.Debug is set
}

type nopScheduler struct{}

func (nopScheduler) RequestFrame() {}
func (nopScheduler) CancelFrame()  {}

// Runner is the session driver. It derives the frame delta from its clock,
// advances the actor and the world, checks for collisions and keeps score.
// All methods must be called from one goroutine.
type Runner struct {
	ctx *Context

	clock     Clock
	scheduler Scheduler
	audio     Audio
	cue       CueAudio
	scores    HighScores
	recorder  ScoreRecorder
	panel     Panel
	debug     DebugDrawer

	trex    *Trex
	horizon *Horizon
	meter   *DistanceMeter

	baseWidth int
	width     int
	height    int
	clearTime float64

	time         float64
	runningTime  float64
	distanceRan  float64
	currentSpeed float64
	highestScore float64
	crashTime    float64
	introTimer   float64

	activated     bool
	playing       bool
	crashed       bool
	paused        bool
	inverted      bool
	invertTrigger bool
	invertTimer   float64
	themeFlash    float64
	playingIntro  bool
	updatePending bool
	duckHeld      bool
	playCount     int

	pendingTheme *registry.Theme
}

// New builds a session around ctx. The scene is drawn once; call Start to
// begin the waiting animation.
func New(ctx *Context, opts Options) *Runner {
	g := ctx.Config.Game
	r := &Runner{
		ctx:          ctx,
		clock:        opts.Clock,
		scheduler:    opts.Scheduler,
		audio:        opts.Audio,
		scores:       opts.Scores,
		panel:        opts.Panel,
		debug:        opts.Debug,
		baseWidth:    g.Width,
		width:        g.Width,
		height:       g.Height,
		clearTime:    g.ClearTime,
		currentSpeed: g.Speed,
	}
	if r.clock == nil {
		r.clock = NewMonotonicClock()
	}
	if r.scheduler == nil {
		r.scheduler = nopScheduler{}
	}
	if r.audio == nil {
		r.audio = NopAudio{}
	}
	r.cue, _ = r.audio.(CueAudio)
	r.recorder, _ = r.scores.(ScoreRecorder)

	if ctx.AudioCues {
		r.clearTime *= 1.2
		r.toggleSpeed()
	}
	r.setSpeed(0)

	r.horizon = NewHorizon(ctx)
	r.meter = NewDistanceMeter(ctx, r.width)
	r.trex = NewTrex(ctx)
	if r.panel == nil {
		r.panel = NewGameOverPanel(ctx, r.width, r.height)
	}
	return r
}

// Start runs the first frame, which keeps scheduling itself while the actor
// blinks.
func (r *Runner) Start() {
	r.Update()
}

// setSpeed slows the game down on scenes narrower than the configured width.
func (r *Runner) setSpeed(speed float64) {
	if speed == 0 {
		speed = r.currentSpeed
	}
	if r.width < r.baseWidth {
		mobile := speed * float64(r.width) / float64(r.baseWidth) * r.ctx.Config.Game.MobileSpeedCoefficient
		r.currentSpeed = math.Min(mobile, speed)
	} else {
		r.currentSpeed = speed
	}
}

// toggleSpeed resets to the base speed in audio cue mode.
func (r *Runner) toggleSpeed() {
	if r.ctx.AudioCues {
		r.currentSpeed = r.ctx.Config.Game.Speed
	}
}

// Update runs one frame. The host calls it when a frame requested through
// the Scheduler is due.
func (r *Runner) Update() {
	r.updatePending = false

	g := r.ctx.Config.Game
	now := r.clock.Now()
	dt := 0.0
	if r.time != 0 {
		dt = now - r.time
	}
	r.time = now

	// The world holds still while the actor flashes ahead of a theme swap.
	if r.themeFlash > 0 {
		r.themeFlash -= dt
		if r.themeFlash > 0 {
			r.trex.Update(dt)
			dt = 0
		} else {
			r.trex.SetFlashing(false)
		}
	}
	if r.themeFlash <= 0 {
		r.applyPendingTheme()
	}

	if r.playing {
		r.ctx.Surface.Clear()

		if r.trex.Jumping() && r.trex.UpdateJump(dt) {
			r.landed()
		}

		r.runningTime += dt
		hasObstacles := r.HasObstacles()

		// First jump triggers the intro.
		if r.trex.JumpCount() == 1 && !r.activated {
			r.playIntro()
		}

		if r.playingIntro {
			r.introTimer += dt
			r.horizon.Update(0, r.currentSpeed, hasObstacles, false)
			if r.trex.X() >= r.ctx.Config.Trex.StartX || r.introTimer >= r.ctx.Config.Trex.IntroDuration {
				r.startGame()
			}
		} else if !r.crashed {
			showNightMode := r.ctx.DarkMode != r.inverted
			if !r.activated {
				dt = 0
			}
			r.horizon.Update(dt, r.currentSpeed, hasObstacles, showNightMode)
		}

		collided := false
		obstacles := r.horizon.Obstacles()
		if hasObstacles && len(obstacles) > 0 {
			var dbg DebugDrawer
			if r.ctx.Debug {
				dbg = r.debug
			}
			var hit Collision
			hit, collided = CheckCollision(obstacles[0], r.trex, dbg)
			if collided {
				r.ctx.Logger.Debug("collision", "trex", hit.Trex, "obstacle", hit.Obstacle, "type", obstacles[0].Type.Type)
			}
			r.alertProximity(obstacles[0])
		}

		if !collided {
			r.distanceRan += r.currentSpeed * dt / r.ctx.msPerFrame()
			if r.currentSpeed < g.MaxSpeed {
				r.currentSpeed += g.Acceleration
			}
		} else {
			r.GameOver()
		}

		if r.meter.Update(dt, math.Ceil(r.distanceRan)) && !r.ctx.AudioCues {
			r.audio.OnScoreAchievement()
		}

		r.updateNight(dt)
	}

	switch {
	case r.playing || (!r.activated && r.trex.BlinkCount() < g.MaxBlinkCount):
		r.trex.Update(dt)
		r.scheduleNextUpdate()
	case r.crashed:
		more := r.meter.FlashHighScore(dt)
		if a, ok := r.panel.(Animator); ok && a.Update(dt) {
			more = true
		}
		if more {
			r.scheduleNextUpdate()
		}
	}
}

// alertProximity plays the jump cue once per obstacle in audio cue mode.
func (r *Runner) alertProximity(o *Obstacle) {
	if !r.ctx.AudioCues || o.JumpAlerted {
		return
	}
	g := r.ctx.Config.Game
	threshold := g.AudioCueThreshold
	if r.ctx.Mobile {
		threshold = g.AudioCueThresholdMobile
	}
	adjusted := threshold + threshold*math.Log10(r.currentSpeed/g.Speed)

	if float64(o.X) < adjusted {
		if !o.Type.Collectable && r.cue != nil {
			r.cue.JumpCue()
		}
		o.JumpAlerted = true
	}
}

// updateNight inverts the scene every InvertDistance units for
// InvertFadeDuration milliseconds.
func (r *Runner) updateNight(dt float64) {
	g := r.ctx.Config.Game
	switch {
	case r.invertTimer > g.InvertFadeDuration:
		r.invertTimer = 0
		r.invertTrigger = false
		r.invert(false)
	case r.invertTimer > 0:
		r.invertTimer += dt
	default:
		actual := r.meter.ActualDistance(math.Ceil(r.distanceRan))
		if actual > 0 && g.InvertDistance > 0 {
			r.invertTrigger = actual%g.InvertDistance == 0
			if r.invertTrigger && r.invertTimer == 0 {
				r.invertTimer += dt
				r.invert(false)
			}
		}
	}
}

func (r *Runner) invert(reset bool) {
	if reset {
		r.inverted = false
		r.invertTimer = 0
		return
	}
	r.inverted = r.invertTrigger
}

func (r *Runner) scheduleNextUpdate() {
	if !r.updatePending {
		r.updatePending = true
		r.scheduler.RequestFrame()
	}
}

// landed runs after a jump ends. A speed drop with duck still held turns
// into a duck.
func (r *Runner) landed() {
	if r.trex.LandedFromSpeedDrop() && r.duckHeld {
		r.trex.SetDuck(true)
	}
	if r.ctx.AudioCues && r.cue != nil {
		r.cue.LoopFootsteps()
	}
}

func (r *Runner) playIntro() {
	if !r.activated && !r.crashed {
		r.playingIntro = true
		r.introTimer = 0
		r.trex.SetPlayingIntro(true)
		r.playing = true
		r.activated = true
	} else if r.crashed {
		r.Restart()
	}
}

func (r *Runner) startGame() {
	r.toggleSpeed()
	r.runningTime = 0
	r.playingIntro = false
	r.trex.SetPlayingIntro(false)
	r.playCount++
	if r.cue != nil {
		r.cue.Background()
	}
	r.ctx.Logger.Info("run started", "play", r.playCount, "speed", r.currentSpeed)
}

// Handle applies a player intent.
func (r *Runner) Handle(in core.Intent) {
	switch in {
	case core.JumpPressed:
		r.onJumpDown()
	case core.JumpReleased:
		r.onJumpUp()
	case core.DuckPressed:
		r.onDuckDown()
	case core.DuckReleased:
		r.onDuckUp()
	case core.RestartRequested:
		if r.crashed {
			r.meter.CancelHighScoreFlashing()
			r.Restart()
		} else if r.paused {
			r.resume()
		}
	case core.ResetHighScore:
		r.onHighScoreClick()
	case core.PauseToggled:
		if r.crashed || !r.activated {
			return
		}
		if r.playing {
			r.Stop()
		} else if r.paused {
			r.resume()
		}
	}
}

func (r *Runner) onJumpDown() {
	if r.crashed || r.paused {
		return
	}
	if !r.playing {
		r.playing = true
		r.time = r.clock.Now()
		r.Update()
	}
	if !r.trex.Jumping() && !r.trex.Ducking() {
		if r.ctx.AudioCues && r.cue != nil {
			r.cue.CancelFootsteps()
		} else {
			r.audio.OnJumpStart()
		}
		r.trex.StartJump(r.currentSpeed)
	}
}

func (r *Runner) onDuckDown() {
	r.duckHeld = true
	if !r.playing || r.crashed || r.paused {
		return
	}
	if r.trex.Jumping() {
		r.trex.SetSpeedDrop()
	} else if !r.trex.Ducking() {
		r.trex.SetDuck(true)
	}
}

func (r *Runner) onJumpUp() {
	switch {
	case r.playing && !r.crashed:
		r.trex.EndJump()
	case r.crashed:
		// The jump key only restarts once the crash has been on screen a while.
		if r.clock.Now()-r.crashTime >= r.ctx.Config.Game.GameOverClearTime {
			r.meter.CancelHighScoreFlashing()
			r.Restart()
		}
	case r.paused:
		r.resume()
	}
}

func (r *Runner) onDuckUp() {
	r.duckHeld = false
	r.trex.ReleaseSpeedDrop()
	r.trex.SetDuck(false)
}

// onHighScoreClick flashes the high score on the first request after a
// crash and resets it on the second.
func (r *Runner) onHighScoreClick() {
	if !r.crashed || r.highestScore <= 0 {
		return
	}
	if r.meter.HighScoreFlashing() {
		r.saveHighScore(0)
		r.meter.ResetHighScore()
		return
	}
	r.meter.StartHighScoreFlashing()
	r.scheduleNextUpdate()
}

func (r *Runner) resume() {
	r.trex.Reset()
	r.Play()
}

// GameOver ends the run: the actor crashes, the panel shows and the high
// score is saved when beaten.
func (r *Runner) GameOver() {
	r.audio.OnCrash()
	r.stop()
	r.crashed = true
	r.meter.ClearAchievement()
	r.themeFlash = 0
	r.trex.SetFlashing(false)

	r.trex.Crash(100)
	r.panel.Draw()

	if r.distanceRan > r.highestScore {
		r.saveHighScore(r.distanceRan)
	}
	score := r.meter.ActualDistance(math.Ceil(r.distanceRan))
	if r.recorder != nil {
		if err := r.recorder.RecordScore(score); err != nil {
			r.ctx.Logger.Error("record score", "err", err)
		}
	}
	r.ctx.Logger.Info("game over", "score", score, "high", r.meter.HighScore(), "speed", r.currentSpeed)

	r.time = r.clock.Now()
	r.crashTime = r.time
}

func (r *Runner) saveHighScore(distance float64) {
	r.highestScore = math.Ceil(distance)
	r.meter.SetHighScore(r.highestScore)
	if r.scores == nil {
		return
	}
	if err := r.scores.SaveHighScore(r.meter.ActualDistance(r.highestScore)); err != nil {
		r.ctx.Logger.Error("save high score", "err", err)
	}
}

// InitializeHighScore loads the stored high score. A lower stored value
// than the one already shown is ignored.
func (r *Runner) InitializeHighScore() {
	if r.scores == nil {
		return
	}
	units, err := r.scores.LoadHighScore()
	if err != nil {
		r.ctx.Logger.Warn("load high score", "err", err)
		return
	}
	distance := math.Ceil(float64(units) / r.ctx.Config.Meter.Coefficient)
	if distance < r.highestScore {
		return
	}
	r.highestScore = distance
	r.meter.SetHighScore(distance)
}

func (r *Runner) stop() {
	r.playing = false
	r.paused = true
	r.scheduler.CancelFrame()
	r.updatePending = false
	if r.cue != nil {
		r.cue.StopAll()
	}
}

// Stop pauses the session and cancels the pending frame.
func (r *Runner) Stop() {
	r.stop()
	r.ctx.Logger.Debug("paused")
}

// Play resumes a paused session with a fresh time baseline, so the pause
// is not replayed as one long frame.
func (r *Runner) Play() {
	if r.crashed {
		return
	}
	r.playing = true
	r.paused = false
	r.trex.UpdateStatus(0, Running)
	r.time = r.clock.Now()
	r.Update()
	if r.cue != nil {
		r.cue.Background()
	}
}

// Restart starts a new run after a crash.
func (r *Runner) Restart() {
	if r.playing {
		return
	}
	r.scheduler.CancelFrame()
	r.updatePending = false

	r.playCount++
	r.runningTime = 0
	r.playing = true
	r.toggleSpeed()
	r.paused = false
	r.crashed = false
	r.distanceRan = 0
	r.setSpeed(r.ctx.Config.Game.Speed)
	r.time = r.clock.Now()

	r.ctx.Surface.Clear()
	r.panel.Reset()
	r.meter.Reset()
	r.horizon.Reset()
	r.trex.Reset()
	r.audio.OnJumpStart()
	r.invert(true)
	r.Update()

	if r.cue != nil {
		r.cue.Background()
	}
	r.ctx.Logger.Info("restart", "play", r.playCount)
}

// SetVisible pauses when the session loses focus and resumes when it
// comes back. Nothing happens before the first run has started.
func (r *Runner) SetVisible(visible bool) {
	if !r.activated {
		return
	}
	if !visible {
		r.stop()
		return
	}
	if !r.crashed {
		r.resume()
	}
}

// Resize changes the scene width. Scenes narrower than the configured width
// use the mobile layout. A session in progress is paused rather than
// adjusted mid-run.
func (r *Runner) Resize(width int) {
	if width <= 0 || width == r.width {
		return
	}
	r.width = width
	r.ctx.Mobile = width < r.baseWidth
	r.setSpeed(0)
	r.meter.CalcXPos(width)
	r.horizon.Resize(width)
	if p, ok := r.panel.(*GameOverPanel); ok {
		p.Resize(width, r.height)
	}

	r.ctx.Surface.Clear()
	r.horizon.Draw()
	r.trex.Update(0)

	if r.playing || r.crashed || r.paused {
		r.meter.Update(0, math.Ceil(r.distanceRan))
		r.stop()
	}
	if r.crashed {
		r.panel.Draw()
	}
}

// SetTheme swaps the visual theme at the start of the next frame. During a
// run the actor flashes for ThemeFlashDuration first.
func (r *Runner) SetTheme(t registry.Theme) {
	r.pendingTheme = &t
	if r.playing && r.activated && !r.crashed && r.themeFlash <= 0 {
		r.themeFlash = r.ctx.Config.Game.ThemeFlashDuration
		r.trex.SetFlashing(r.themeFlash > 0)
	}
	r.scheduleNextUpdate()
}

func (r *Runner) applyPendingTheme() {
	if r.pendingTheme == nil {
		return
	}
	t := *r.pendingTheme
	r.pendingTheme = nil

	r.ctx.Theme = t
	r.ctx.Sheet = sprite.NewSheet(t.Sprites, r.ctx.HiDPI)
	r.horizon.SetObstacleTypes(t.ObstacleTable(r.ctx.Config))
	r.trex.UpdateStatus(0, r.trex.Status())
	r.ctx.Logger.Debug("theme applied", "theme", t.ID)
}

// State returns a snapshot for the host.
func (r *Runner) State() core.GameState {
	return core.GameState{
		Score:     r.meter.ActualDistance(math.Ceil(r.distanceRan)),
		HighScore: r.meter.HighScore(),
		Speed:     r.currentSpeed,
		Playing:   r.playing,
		GameOver:  r.crashed,
		Paused:    r.paused,
		Inverted:  r.ctx.DarkMode != r.inverted,
		Activated: r.activated,
	}
}

// HasObstacles reports whether the clear time after the start has passed.
func (r *Runner) HasObstacles() bool {
	return r.runningTime > r.clearTime
}

func (r *Runner) Context() *Context     { return r.ctx }
func (r *Runner) Trex() *Trex           { return r.trex }
func (r *Runner) Horizon() *Horizon     { return r.horizon }
func (r *Runner) Meter() *DistanceMeter { return r.meter }
func (r *Runner) Panel() Panel          { return r.panel }
func (r *Runner) Width() int            { return r.width }
func (r *Runner) Height() int           { return r.height }
func (r *Runner) DistanceRan() float64  { return r.distanceRan }
func (r *Runner) CurrentSpeed() float64 { return r.currentSpeed }
func (r *Runner) RunningTime() float64  { return r.runningTime }
func (r *Runner) Playing() bool         { return r.playing }
func (r *Runner) Crashed() bool         { return r.crashed }
func (r *Runner) Paused() bool          { return r.paused }
func (r *Runner) Activated() bool       { return r.activated }
func (r *Runner) PlayingIntro() bool    { return r.playingIntro }
func (r *Runner) UpdatePending() bool   { return r.updatePending }
func (r *Runner) HighestScore() float64 { return r.highestScore }
func (r *Runner) Inverted() bool        { return r.inverted }
func (r *Runner) PlayCount() int        { return r.playCount }
