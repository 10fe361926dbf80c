package themes

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

func init() {
	registry.Register("classic", Classic)
}

// Classic draws the scene with block elements.
func Classic() registry.Theme {
	body := []string{
		"    ██▀▀",
		"▌  ▟██▄ ",
		"▀▙▟███▘ ",
		"  ▜██▘  ",
	}
	trex := func(head, legs string) []string {
		rows := append([]string{head}, body...)
		return append(rows, legs)
	}
	duck := func(legs string) []string {
		return []string{
			"     ▄▄▄▄",
			"▀▙▄▟██▀██",
			legs,
		}
	}

	return registry.Theme{
		ID:         "classic",
		Title:      "Classic",
		Sprites:    sprite.DefaultTable(),
		TrexFrames: sprite.DefaultTrexAnimations(),
		Ground:     core.ColorDefault,
		Sky:        core.ColorGray,
		Art: map[sprite.Name]sprite.Art{
			sprite.Trex: {
				Color: core.ColorDefault,
				Frames: map[int][]string{
					0:   trex("    ▄▀██", "   ▌▐   "),
					44:  trex("    ▄▄██", "   ▌▐   "),
					88:  trex("    ▄▀██", "   ▌ ▀  "),
					132: trex("    ▄▀██", "   ▀ ▐  "),
					220: trex("    ▄x██", "   ▌▐   "),
					264: duck("  ▌ ▀    "),
					323: duck("  ▀ ▐    "),
				},
			},
			sprite.CactusSmall: {
				Color: core.ColorGreen,
				Tile:  17,
				Frames: map[int][]string{
					0: {" █ ", "▐█▌", "▝█▘", " █ ", " █ "},
				},
			},
			sprite.CactusLarge: {
				Color: core.ColorGreen,
				Tile:  25,
				Frames: map[int][]string{
					0: {"  █  ", "█ █ █", "█ █ █", "▀▀█▀▀", "  █  ", "  █  "},
				},
			},
			sprite.Pterodactyl: {
				Color: core.ColorMagenta,
				Frames: map[int][]string{
					0:  {"  ▄     ", " ▐█▄   ▄", "▀▀██████", "   ▀▀▀  "},
					46: {"        ", "  ▄▄▄▄ ▄", "▀▀██████", "   ▐█▌  "},
				},
			},
			sprite.Collectable: {
				Color:  core.ColorYellow,
				Frames: map[int][]string{0: {"◆", "┃", "┃"}},
			},
			sprite.Cloud: {
				Color:  core.ColorGray,
				Frames: map[int][]string{0: {"  ▄▄▄  ", "▄█████▄"}},
			},
			sprite.Horizon: {
				Color: core.ColorDefault,
				Frames: map[int][]string{
					0:   {"────────", "        "},
					600: {"──▁──▔──", " ·    · "},
				},
			},
			sprite.Moon: {
				Color: core.ColorBrightYellow,
				Text:  true,
				Frames: map[int][]string{
					140: {"◗"}, 120: {"◑"}, 100: {"◔"}, 60: {"●"},
					40: {"◕"}, 20: {"◐"}, 0: {"◖"},
				},
			},
			sprite.Star: {
				Color:  core.ColorYellow,
				Text:   true,
				Frames: map[int][]string{0: {"✦"}},
			},
			sprite.TextSprite:   digits(core.ColorDefault),
			sprite.GameOverText: {Color: core.ColorBrightWhite, Text: true, Frames: map[int][]string{0: {"G A M E   O V E R"}}},
			sprite.Restart: {
				Color:  core.ColorBrightWhite,
				Text:   true,
				Frames: restartFrames("↻", "◴", "◷", "◶", "◵"),
			},
		},
	}
}
