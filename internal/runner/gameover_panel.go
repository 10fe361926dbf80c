package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

const (
	gameOverTextWidth  = 191
	gameOverTextHeight = 11
	gameOverTextFrameY = 13

	restartWidth        = 36
	restartHeight       = 32
	restartAnimDuration = 875.0
	logoPauseDuration   = 875.0
)

var restartFrames = []int{0, 36, 72, 108, 144, 180, 216, 252}

// GameOverPanel shows "GAME OVER" and the restart icon, which replays its
// drawing animation once after a short pause.
type GameOverPanel struct {
	ctx     *Context
	text    core.Rect
	restart core.Rect

	phase      int
	animTimer  float64
	animating  bool
	msPerFrame float64
}

// NewGameOverPanel centres the panel in a scene of the given size.
func NewGameOverPanel(ctx *Context, width, height int) *GameOverPanel {
	p := &GameOverPanel{
		ctx:        ctx,
		msPerFrame: restartAnimDuration / float64(len(restartFrames)),
	}
	p.Resize(width, height)
	return p
}

// Resize recentres the panel.
func (p *GameOverPanel) Resize(width, height int) {
	p.text = core.NewRect((width-gameOverTextWidth)/2, (height-gameOverTextHeight-25)/2,
		gameOverTextWidth, gameOverTextHeight)
	p.restart = core.NewRect((width-restartWidth)/2, (height-restartHeight)/2+15,
		restartWidth, restartHeight)
}

// Draw shows the panel and starts the restart icon animation.
func (p *GameOverPanel) Draw() {
	p.ctx.draw(sprite.GameOverText, 0, gameOverTextFrameY, p.text, 1)
	p.drawRestart(restartFrames[0])
	p.phase = 0
	p.animTimer = 0
	p.animating = true
}

func (p *GameOverPanel) drawRestart(frameX int) {
	p.ctx.draw(sprite.Restart, frameX, 0, p.restart, 1)
}

// Update advances the restart animation by dt and reports whether more
// frames are needed.
func (p *GameOverPanel) Update(dt float64) bool {
	if !p.animating {
		return false
	}
	p.animTimer += dt

	switch {
	case p.phase == 0:
		if p.animTimer > logoPauseDuration {
			p.animTimer = 0
			p.drawRestart(restartFrames[p.phase])
			p.phase++
		}
	case p.phase < len(restartFrames):
		if p.animTimer >= p.msPerFrame {
			p.animTimer = 0
			p.drawRestart(restartFrames[p.phase])
			p.phase++
		}
	default:
		p.phase = 0
		p.animTimer = 0
		p.animating = false
	}
	return p.animating
}

// Reset removes the panel from the scene.
func (p *GameOverPanel) Reset() {
	p.ctx.Surface.ClearRect(core.NewRect(p.text.X, p.text.Y, p.text.W, p.text.H+4))
	p.ctx.Surface.ClearRect(p.restart)
	p.phase = 0
	p.animTimer = 0
	p.animating = false
}

func (p *GameOverPanel) Animating() bool { return p.animating }
func (p *GameOverPanel) Phase() int      { return p.phase }
