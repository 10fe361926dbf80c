package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// ansi maps core colours onto the terminal palette.
var ansi = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// palette hands out one style per colour for a frame. Night inversion
// flips every cell to reverse video, background included.
type palette struct {
	inverted bool
	styles   map[core.Color]lipgloss.Style
}

func newPalette(inverted bool) *palette {
	return &palette{inverted: inverted, styles: make(map[core.Color]lipgloss.Style, 4)}
}

func (p *palette) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg, ok := ansi[c]; ok {
		st = st.Foreground(fg)
	}
	if p.inverted {
		st = st.Reverse(true)
	}
	p.styles[c] = st
	return st
}

// RenderScreen turns the screen into styled text, one escape sequence per
// run of same-coloured cells.
func RenderScreen(s *core.Screen, inverted bool) string {
	pal := newPalette(inverted)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(pal.style(color).Render(string(run)))
				run, color = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(pal.style(color).Render(string(run)))
		}
	}
	return sb.String()
}
