package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// NightMode fades the moon and stars in while night is shown.
type NightMode struct {
	ctx      *Context
	cfg      config.NightConfig
	viewport int

	opacity float64
	phase   int
	moon    *Unit
	stars   []*Unit
}

// NewNightMode creates a hidden night sky.
func NewNightMode(ctx *Context, viewport int) *NightMode {
	cfg := ctx.Config.Night
	n := &NightMode{
		ctx:      ctx,
		cfg:      cfg,
		viewport: viewport,
		moon: &Unit{
			Sprite: sprite.Moon,
			X:      float64(viewport),
			Y:      cfg.MoonY,
			Width:  cfg.MoonWidth,
			Height: cfg.MoonHeight,
		},
	}
	n.setPhase(0)
	n.placeStars()
	return n
}

// Update fades towards the requested state and moves the sky while it is
// at least partly visible. The moon phase advances when a fade in starts
// from fully hidden.
func (n *NightMode) Update(activated bool) {
	if activated && n.opacity == 0 {
		n.setPhase(n.phase + 1)
	}

	if activated {
		n.opacity = math.Min(1, n.opacity+n.cfg.FadeSpeed)
	} else if n.opacity > 0 {
		n.opacity = math.Max(0, n.opacity-n.cfg.FadeSpeed)
	}

	if n.opacity > 0 {
		n.scroll(n.moon, n.cfg.MoonSpeed)
		if activated {
			for _, s := range n.stars {
				n.scroll(s, n.cfg.StarSpeed)
			}
		}
		n.Draw()
	} else {
		n.placeStars()
	}
}

// scroll moves a looping unit, putting it back at the right edge once it
// has left the scene.
func (n *NightMode) scroll(u *Unit, dx float64) {
	if !u.Visible() {
		u.X = float64(n.viewport)
	}
	u.Advance(dx)
}

// Draw blits the moon and stars at the current opacity.
func (n *NightMode) Draw() {
	if n.opacity <= 0 {
		return
	}
	n.moon.Draw(n.ctx, n.opacity)
	for _, s := range n.stars {
		s.Draw(n.ctx, n.opacity)
	}
}

func (n *NightMode) setPhase(p int) {
	if len(n.cfg.MoonPhases) == 0 {
		return
	}
	n.phase = p % len(n.cfg.MoonPhases)
	n.moon.FrameX = n.cfg.MoonPhases[n.phase]
}

// placeStars spreads the stars over equal segments of the scene.
func (n *NightMode) placeStars() {
	if n.cfg.NumStars <= 0 {
		n.stars = nil
		return
	}
	segment := int(math.Round(float64(n.viewport) / float64(n.cfg.NumStars)))
	n.stars = make([]*Unit, n.cfg.NumStars)
	for i := range n.stars {
		s := &Unit{
			Sprite: sprite.Star,
			X:      float64(n.ctx.Rand.IntRange(segment*i, segment*(i+1))),
			Y:      n.ctx.Rand.IntRange(0, n.cfg.StarMaxY),
			Width:  n.cfg.StarSize,
			Height: n.cfg.StarSize,
		}
		if len(n.cfg.StarPhasesY) > 0 {
			s.FrameY = n.cfg.StarPhasesY[i%len(n.cfg.StarPhasesY)]
		}
		n.stars[i] = s
	}
}

// SetViewport changes the width stars are spread over and wrap to.
func (n *NightMode) SetViewport(width int) {
	n.viewport = width
}

// Reset hides the sky and rewinds the moon phase.
func (n *NightMode) Reset() {
	n.setPhase(0)
	n.moon.X = float64(n.viewport)
	n.opacity = 0
	n.Update(false)
}

func (n *NightMode) Opacity() float64 { return n.opacity }
func (n *NightMode) Phase() int       { return n.phase }
func (n *NightMode) Moon() *Unit      { return n.moon }
func (n *NightMode) Stars() []*Unit   { return n.stars }
