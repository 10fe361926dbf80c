// Package themes registers the built-in visual themes. Import it for its
// side effects.
package themes

import (
	"strconv"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// digits builds the meter glyphs: 0-9, then H and I for the high score label.
func digits(color core.Color) sprite.Art {
	frames := make(map[int][]string, 12)
	for d := 0; d < 10; d++ {
		frames[d*10] = []string{strconv.Itoa(d)}
	}
	frames[100] = []string{"H"}
	frames[110] = []string{"I"}
	return sprite.Art{Frames: frames, Color: color, Text: true}
}

// restartFrames spreads the glyphs over the eight restart icon phases.
func restartFrames(glyphs ...string) map[int][]string {
	frames := make(map[int][]string, 8)
	for i := 0; i < 8; i++ {
		frames[i*36] = []string{glyphs[i%len(glyphs)]}
	}
	return frames
}
