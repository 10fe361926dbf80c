package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

func testTheme() registry.Theme {
	return registry.Theme{ID: "test", Title: "Test", Sprites: sprite.DefaultTable()}
}

func newTestContext(seed int64) (*Context, *sprite.Recorder) {
	ctx := NewContext(config.DefaultRunnerConfig(), testTheme())
	rec := &sprite.Recorder{}
	ctx.Surface = rec
	ctx.Rand = core.NewRandom(seed)
	return ctx, rec
}

// fixedRandom returns the lower bound of every range and a constant float.
type fixedRandom struct {
	f float64
}

func (r fixedRandom) IntRange(min, max int) int {
	if max < min {
		return max
	}
	return min
}

func (r fixedRandom) Float64() float64 { return r.f }

type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

func (c *fakeClock) Advance(ms float64) { c.now += ms }

type fakeScheduler struct {
	pending   bool
	requested int
	cancelled int
}

func (s *fakeScheduler) RequestFrame() {
	s.pending = true
	s.requested++
}

func (s *fakeScheduler) CancelFrame() {
	s.pending = false
	s.cancelled++
}

type fakeAudio struct {
	jumps, crashes, achievements int
}

func (a *fakeAudio) OnJumpStart()        { a.jumps++ }
func (a *fakeAudio) OnCrash()            { a.crashes++ }
func (a *fakeAudio) OnScoreAchievement() { a.achievements++ }

type memScores struct {
	high     int
	saved    []int
	recorded []int
}

func (m *memScores) LoadHighScore() (int, error) { return m.high, nil }

func (m *memScores) SaveHighScore(score int) error {
	m.high = score
	m.saved = append(m.saved, score)
	return nil
}

func (m *memScores) RecordScore(score int) error {
	m.recorded = append(m.recorded, score)
	return nil
}
