package runner

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Sheet cells of the high score label, in digit widths.
const (
	glyphH     = 10
	glyphI     = 11
	glyphBlank = -1
)

// DistanceMeter shows the score in the top right corner and the high score
// to its left. The score flashes each time it reaches a multiple of the
// achievement distance.
type DistanceMeter struct {
	ctx *Context
	cfg config.MeterConfig

	x, y     int
	width    int
	maxUnits int
	maxScore int
	digits   []int

	highScore      []int
	highScoreValue int

	achievement     bool
	lastAchievement int
	flashTimer      float64
	flashIterations int

	hsFlashing        bool
	hsFlashTimer      float64
	hsFlashIterations int
}

// NewDistanceMeter creates a meter showing zero for a scene of the given width.
func NewDistanceMeter(ctx *Context, width int) *DistanceMeter {
	cfg := ctx.Config.Meter
	m := &DistanceMeter{
		ctx: ctx,
		cfg: cfg,
		y:   cfg.Y,
	}
	m.setUnits(width)
	m.digits = m.pad(0)
	m.drawDigits()
	return m
}

// CalcXPos right-aligns the meter in a scene of the given width, leaving
// room for one extra digit.
func (m *DistanceMeter) CalcXPos(width int) {
	m.width = width
	m.x = width - m.cfg.DestWidth*(m.maxUnits+1)
}

// setUnits restores the configured digit count and places the meter.
func (m *DistanceMeter) setUnits(width int) {
	m.maxUnits = m.cfg.MaxDistanceUnits
	m.maxScore = int(math.Pow10(m.maxUnits)) - 1
	m.CalcXPos(width)
}

// ActualDistance converts scene pixels into score units.
func (m *DistanceMeter) ActualDistance(distance float64) int {
	if distance <= 0 {
		return 0
	}
	return int(math.Round(distance * m.cfg.Coefficient))
}

func (m *DistanceMeter) pad(value int) []int {
	s := strconv.Itoa(value)
	if len(s) < m.maxUnits {
		s = strings.Repeat("0", m.maxUnits-len(s)) + s
	}
	s = s[len(s)-m.maxUnits:]

	out := make([]int, len(s))
	for i, r := range s {
		out[i] = int(r - '0')
	}
	return out
}

// Update shows distance (scene pixels) and runs the achievement flash.
// It reports whether an achievement was reached on this call.
func (m *DistanceMeter) Update(dt, distance float64) bool {
	paint := true
	playSound := false

	if !m.achievement {
		d := m.ActualDistance(distance)
		if d > m.maxScore && m.maxUnits == m.cfg.MaxDistanceUnits {
			m.maxUnits++
			m.maxScore = m.maxScore*10 + 9
		}

		if d > 0 {
			if d%m.cfg.AchievementDistance == 0 && d != m.lastAchievement {
				m.achievement = true
				m.lastAchievement = d
				m.flashTimer = 0
				m.flashIterations = 0
				playSound = true
			}
			m.digits = m.pad(d)
		} else {
			m.digits = m.pad(0)
		}
	} else {
		if m.flashIterations < m.cfg.FlashIterations {
			m.flashTimer += dt
			if m.flashTimer < m.cfg.FlashDuration {
				paint = false
			} else if m.flashTimer > m.cfg.FlashDuration*2 {
				m.flashTimer = 0
				m.flashIterations++
			}
		} else {
			m.achievement = false
			m.flashIterations = 0
			m.flashTimer = 0
		}
	}

	if paint {
		m.drawDigits()
	}
	m.drawHighScore()
	return playSound
}

func (m *DistanceMeter) drawDigit(x, pos, value int, alpha float64) {
	dst := core.NewRect(x+pos*m.cfg.DestWidth, m.y, m.cfg.DigitWidth, m.cfg.DigitHeight)
	m.ctx.draw(sprite.TextSprite, m.cfg.DigitWidth*value, 0, dst, alpha)
}

func (m *DistanceMeter) drawDigits() {
	for i := len(m.digits) - 1; i >= 0; i-- {
		m.drawDigit(m.x, i, m.digits[i], 1)
	}
}

func (m *DistanceMeter) highScoreX() int {
	return m.x - m.maxUnits*2*m.cfg.DigitWidth
}

func (m *DistanceMeter) drawHighScore() {
	if m.highScoreValue <= 0 {
		return
	}
	for i := len(m.highScore) - 1; i >= 0; i-- {
		if m.highScore[i] == glyphBlank {
			continue
		}
		m.drawDigit(m.highScoreX(), i, m.highScore[i], 0.8)
	}
}

// SetHighScore shows distance (scene pixels) as the high score.
func (m *DistanceMeter) SetHighScore(distance float64) {
	d := m.ActualDistance(distance)
	m.highScoreValue = d
	m.highScore = append([]int{glyphH, glyphI, glyphBlank}, m.pad(d)...)
}

// HighScoreBounds is the clickable area around the high score.
func (m *DistanceMeter) HighScoreBounds() core.Rect {
	p := m.cfg.HighScoreHitPadding
	return core.Rect{
		X: m.highScoreX() - p,
		Y: m.y,
		W: m.cfg.DigitWidth*(len(m.highScore)+1) + p,
		H: m.cfg.DigitHeight + p*2,
	}
}

// HitHighScore reports whether the scene point lies on the high score.
func (m *DistanceMeter) HitHighScore(x, y int) bool {
	b := m.HighScoreBounds()
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// StartHighScoreFlashing flashes the high score to ask for confirmation
// before it is reset.
func (m *DistanceMeter) StartHighScoreFlashing() {
	m.hsFlashing = true
	m.hsFlashTimer = 0
	m.hsFlashIterations = 0
}

// FlashHighScore advances the high score flash and reports whether it is
// still running.
func (m *DistanceMeter) FlashHighScore(dt float64) bool {
	if !m.hsFlashing {
		return false
	}
	if m.hsFlashIterations > m.cfg.FlashIterations*2 {
		m.CancelHighScoreFlashing()
		return false
	}

	paint := true
	m.hsFlashTimer += dt
	if m.hsFlashTimer < m.cfg.FlashDuration {
		paint = false
	} else if m.hsFlashTimer > m.cfg.FlashDuration*2 {
		m.hsFlashTimer = 0
		m.hsFlashIterations++
	}

	if paint {
		m.drawHighScore()
	} else {
		m.ctx.Surface.ClearRect(m.HighScoreBounds())
	}
	return true
}

// CancelHighScoreFlashing stops the flash and repaints the high score.
func (m *DistanceMeter) CancelHighScoreFlashing() {
	m.hsFlashing = false
	m.hsFlashTimer = 0
	m.hsFlashIterations = 0
	m.ctx.Surface.ClearRect(m.HighScoreBounds())
	m.drawHighScore()
}

// ResetHighScore clears the displayed high score.
func (m *DistanceMeter) ResetHighScore() {
	m.SetHighScore(0)
	m.CancelHighScoreFlashing()
}

// ClearAchievement drops a running achievement flash.
func (m *DistanceMeter) ClearAchievement() {
	m.achievement = false
	m.flashIterations = 0
	m.flashTimer = 0
}

// Reset shows zero again with the configured number of digits.
func (m *DistanceMeter) Reset() {
	m.cfg = m.ctx.Config.Meter
	m.y = m.cfg.Y
	m.setUnits(m.width)
	m.lastAchievement = 0
	m.ClearAchievement()
	m.Update(0, 0)
}

// Digits returns the displayed score digits.
func (m *DistanceMeter) Digits() string {
	var b strings.Builder
	for _, d := range m.digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func (m *DistanceMeter) X() int                  { return m.x }
func (m *DistanceMeter) Achievement() bool       { return m.achievement }
func (m *DistanceMeter) HighScore() int          { return m.highScoreValue }
func (m *DistanceMeter) HighScoreFlashing() bool { return m.hsFlashing }
