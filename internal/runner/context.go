// Package runner implements the endless runner simulation: the actor, the
// procedurally generated horizon, collision, the distance meter and the
// session driver that ties them to a clock, a scheduler and a surface.
package runner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Context carries what every component of one session shares. There is one
// Context per session; nothing in this package is global.
type Context struct {
	Config  config.RunnerConfig // variant already applied
	Theme   registry.Theme
	Sheet   sprite.Sheet
	Surface sprite.Surface
	Rand    core.Random
	Logger  *log.Logger

	HiDPI     bool
	AudioCues bool // accessibility mode: spoken-style cues instead of visuals
	Mobile    bool // narrow layout: mobile pterodactyl heights and cue thresholds
	DarkMode  bool
	Debug     bool // draw collision boxes
}

// NewContext builds a Context with a discard logger, a no-op surface and a
// time-seeded random source. Callers replace what they need.
func NewContext(cfg config.RunnerConfig, theme registry.Theme) *Context {
	return &Context{
		Config:  cfg,
		Theme:   theme,
		Sheet:   sprite.NewSheet(theme.Sprites, false),
		Surface: sprite.Nop{},
		Rand:    core.NewRandom(0),
		Logger:  log.New(io.Discard),
	}
}

// SetHiDPI switches the sheet density.
func (c *Context) SetHiDPI(hiDPI bool) {
	c.HiDPI = hiDPI
	c.Sheet = sprite.NewSheet(c.Theme.Sprites, hiDPI)
}

// msPerFrame is the duration of one nominal frame.
func (c *Context) msPerFrame() float64 {
	return 1000 / c.Config.Game.FPS
}

func (c *Context) draw(name sprite.Name, frameX, frameY int, dst core.Rect, alpha float64) {
	c.Surface.Blit(sprite.Blit{
		Sprite: name,
		Frame:  frameX,
		Src:    c.Sheet.Source(name, frameX, frameY, dst.W, dst.H),
		Dst:    dst,
		Alpha:  alpha,
	})
}
