package themes

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

func init() {
	registry.Register("ascii", ASCII)
}

// ASCII draws the scene with plain ASCII for terminals without block glyphs.
func ASCII() registry.Theme {
	trex := func(head, legs string) []string {
		return []string{
			head,
			"    ####",
			"#  ###  ",
			"######  ",
			"  ###   ",
			legs,
		}
	}
	duck := func(legs string) []string {
		return []string{
			"     ####",
			"#########",
			legs,
		}
	}

	return registry.Theme{
		ID:         "ascii",
		Title:      "Plain ASCII",
		Sprites:    sprite.DefaultTable(),
		TrexFrames: sprite.DefaultTrexAnimations(),
		Ground:     core.ColorDefault,
		Sky:        core.ColorDefault,
		Art: map[sprite.Name]sprite.Art{
			sprite.Trex: {
				Frames: map[int][]string{
					0:   trex("    #o##", "  | |   "),
					44:  trex("    #-##", "  | |   "),
					88:  trex("    #o##", "  | '   "),
					132: trex("    #o##", "  ' |   "),
					220: trex("    #x##", "  | |   "),
					264: duck("  | '    "),
					323: duck("  ' |    "),
				},
			},
			sprite.CactusSmall: {
				Tile:   17,
				Frames: map[int][]string{0: {" | ", "+|+", " | ", " | "}},
			},
			sprite.CactusLarge: {
				Tile:   25,
				Frames: map[int][]string{0: {"  |  ", "| | |", "+-+-+", "  |  ", "  |  "}},
			},
			sprite.Pterodactyl: {
				Frames: map[int][]string{
					0:  {"  v   ", "<=#==-", "  ^   "},
					46: {"      ", "<=#==-", " v v  "},
				},
			},
			sprite.Collectable: {Frames: map[int][]string{0: {"o", "|"}}},
			sprite.Cloud:       {Frames: map[int][]string{0: {" .--. ", "(____)"}}},
			sprite.Horizon: {
				Frames: map[int][]string{
					0:   {"________", "        "},
					600: {"___.____", " .   ,  "},
				},
			},
			sprite.Moon: {
				Text:   true,
				Frames: map[int][]string{0: {"C"}, 60: {"O"}},
			},
			sprite.Star:         {Text: true, Frames: map[int][]string{0: {"*"}}},
			sprite.TextSprite:   digits(core.ColorDefault),
			sprite.GameOverText: {Text: true, Frames: map[int][]string{0: {"GAME OVER"}}},
			sprite.Restart:      {Text: true, Frames: restartFrames("@", "|", "/", "-", "\\")},
		},
	}
}
