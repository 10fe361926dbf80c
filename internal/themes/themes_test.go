package themes

import (
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

var drawnSprites = []sprite.Name{
	sprite.Trex, sprite.CactusSmall, sprite.CactusLarge, sprite.Pterodactyl,
	sprite.Collectable, sprite.Cloud, sprite.Horizon, sprite.Moon, sprite.Star,
	sprite.TextSprite, sprite.GameOverText, sprite.Restart,
}

func TestBuiltinThemesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "ascii"} {
		if !registry.Exists(id) {
			t.Errorf("theme %q not registered", id)
		}
	}
}

func TestThemeArtIsRectangular(t *testing.T) {
	for _, info := range registry.List() {
		th, err := registry.Create(info.ID)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", info.ID, err)
		}
		t.Run(info.ID, func(t *testing.T) {
			for _, name := range drawnSprites {
				art, ok := th.Art[name]
				if !ok {
					t.Errorf("missing art for %s", name)
					continue
				}
				if len(art.Pattern(0)) == 0 && len(art.Frames) == 0 {
					t.Errorf("%s has no frames", name)
				}
				for frame, rows := range art.Frames {
					width := -1
					for _, row := range rows {
						n := utf8.RuneCountInString(row)
						if width >= 0 && n != width && !art.Text {
							t.Errorf("%s frame %d: ragged rows (%d vs %d runes)", name, frame, n, width)
						}
						width = n
					}
				}
			}
		})
	}
}

func TestClassicCoversTrexFrames(t *testing.T) {
	th := Classic()
	art := th.Art[sprite.Trex]
	for status, anim := range th.TrexFrames {
		for _, f := range anim.Frames {
			if _, ok := art.Frames[f]; !ok {
				t.Errorf("status %s frame %d has no glyphs", status, f)
			}
		}
	}
}
