package sprite

import "github.com/vovakirdan/tui-runner/internal/core"

// Blit is one draw call: copy Src from the sheet into Dst on the scene.
// Frame is the logical source x offset inside the sprite (animation frame,
// phase or digit) so non-bitmap surfaces can pick a matching glyph.
type Blit struct {
	Sprite Name
	Frame  int
	Src    core.Rect
	Dst    core.Rect
	Alpha  float64
}

// Surface is the scene canvas. It is persistent: what is drawn stays until
// cleared, like a browser canvas.
type Surface interface {
	Clear()
	ClearRect(r core.Rect)
	Blit(b Blit)
}

// Nop discards every draw call.
type Nop struct{}

func (Nop) Clear()              {}
func (Nop) ClearRect(core.Rect) {}
func (Nop) Blit(Blit)           {}

// Recorder keeps the blits drawn since the last Clear. Useful for tests and
// for hosts that composite the scene themselves.
type Recorder struct {
	Blits   []Blit
	Clears  int
	Cleared []core.Rect
}

func (r *Recorder) Clear() {
	r.Blits = r.Blits[:0]
	r.Clears++
}

func (r *Recorder) ClearRect(rect core.Rect) {
	r.Cleared = append(r.Cleared, rect)
}

func (r *Recorder) Blit(b Blit) {
	r.Blits = append(r.Blits, b)
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.Blits = r.Blits[:0]
	r.Cleared = r.Cleared[:0]
	r.Clears = 0
}

// Count returns how many blits used the named sprite.
func (r *Recorder) Count(n Name) int {
	count := 0
	for _, b := range r.Blits {
		if b.Sprite == n {
			count++
		}
	}
	return count
}

// Last returns the most recent blit of the named sprite.
func (r *Recorder) Last(n Name) (Blit, bool) {
	for i := len(r.Blits) - 1; i >= 0; i-- {
		if r.Blits[i].Sprite == n {
			return r.Blits[i], true
		}
	}
	return Blit{}, false
}
