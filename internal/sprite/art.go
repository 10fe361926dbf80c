package sprite

import "github.com/vovakirdan/tui-runner/internal/core"

// Art is the glyph rendition of a sprite for character surfaces.
// Frames are keyed by Blit.Frame; frame 0 is the fallback.
// Patterns are sampled to fit the destination, spaces are transparent.
// Text art is written as-is starting at the destination cell instead.
type Art struct {
	Frames map[int][]string
	Color  core.Color
	Text   bool
	// Tile repeats frame 0 when the destination is this many scene pixels
	// wide or more per copy, for glued obstacle groups.
	Tile int
}

// Pattern returns the glyph rows for a frame.
func (a Art) Pattern(frame int) []string {
	if p, ok := a.Frames[frame]; ok {
		return p
	}
	return a.Frames[0]
}

// Animation is a frame list of source x offsets played at MsPerFrame.
type Animation struct {
	Frames     []int
	MsPerFrame float64
}

// DefaultTrexAnimations returns the standard actor frame table keyed by status name.
func DefaultTrexAnimations() map[string]Animation {
	return map[string]Animation{
		"WAITING": {Frames: []int{44, 0}, MsPerFrame: 1000.0 / 3},
		"RUNNING": {Frames: []int{88, 132}, MsPerFrame: 1000.0 / 12},
		"CRASHED": {Frames: []int{220}, MsPerFrame: 1000.0 / 60},
		"JUMPING": {Frames: []int{0}, MsPerFrame: 1000.0 / 60},
		"DUCKING": {Frames: []int{264, 323}, MsPerFrame: 1000.0 / 8},
	}
}
