package tui

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// maxOps bounds the op list. Older ops are flattened into the base layer.
const maxOps = 2048

type opKind int

const (
	opBlit opKind = iota
	opClearRect
	opDebug
)

type surfaceOp struct {
	kind opKind
	blit sprite.Blit
	rect core.Rect
	aux  core.Rect
}

// TerminalSurface is the scene canvas of a terminal session. It records draw
// calls in scene pixels and rasterises them into screen cells on Render,
// using the glyph art of whatever theme is current at that moment.
type TerminalSurface struct {
	sceneW int
	sceneH int
	ops    []surfaceOp
	base   *core.Screen // flattened ops, nil when empty
}

// NewTerminalSurface creates a surface for a scene of w by h pixels.
func NewTerminalSurface(w, h int) *TerminalSurface {
	return &TerminalSurface{sceneW: w, sceneH: h}
}

// SetScene changes the scene size mapped onto the screen.
func (s *TerminalSurface) SetScene(w, h int) {
	s.sceneW, s.sceneH = w, h
}

func (s *TerminalSurface) Clear() {
	s.ops = s.ops[:0]
	s.base = nil
}

func (s *TerminalSurface) ClearRect(r core.Rect) {
	s.push(surfaceOp{kind: opClearRect, rect: r})
}

func (s *TerminalSurface) Blit(b sprite.Blit) {
	s.push(surfaceOp{kind: opBlit, blit: b})
}

// DrawCollisionBoxes outlines a compared pair of collision boxes.
func (s *TerminalSurface) DrawCollisionBoxes(trex, obstacle core.Rect) {
	s.push(surfaceOp{kind: opDebug, rect: trex, aux: obstacle})
}

// Ops returns the number of recorded draw calls.
func (s *TerminalSurface) Ops() int { return len(s.ops) }

func (s *TerminalSurface) push(op surfaceOp) {
	s.ops = append(s.ops, op)
	if len(s.ops) > maxOps {
		s.flatten()
	}
}

// flatten rasterises the older half of the ops into the base layer. Blits
// survive there as solid block silhouettes since glyph art is only known
// when a theme renders the scene.
func (s *TerminalSurface) flatten() {
	if s.base == nil {
		s.base = core.NewScreen(s.sceneW, s.sceneH)
	}
	half := len(s.ops) / 2
	for _, op := range s.ops[:half] {
		s.apply(s.base, op, registry.Theme{}, true)
	}
	s.ops = append(s.ops[:0], s.ops[half:]...)
}

// Render draws the scene onto screen with theme's glyphs.
func (s *TerminalSurface) Render(screen *core.Screen, theme registry.Theme) {
	screen.Clear()
	if s.sceneW <= 0 || s.sceneH <= 0 {
		return
	}
	if s.base != nil {
		s.copyBase(screen)
	}
	for _, op := range s.ops {
		s.apply(screen, op, theme, false)
	}
}

// copyBase scales the pixel-resolution base layer onto the screen.
func (s *TerminalSurface) copyBase(screen *core.Screen) {
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			px := x * s.sceneW / max(screen.Width(), 1)
			py := y * s.sceneH / max(screen.Height(), 1)
			if c := s.base.GetCell(px, py); c.Rune != ' ' {
				screen.SetCell(x, y, c)
			}
		}
	}
}

func (s *TerminalSurface) apply(screen *core.Screen, op surfaceOp, theme registry.Theme, pixels bool) {
	cells := func(r core.Rect) core.Rect {
		if pixels {
			return r
		}
		return s.toCells(screen, r)
	}
	switch op.kind {
	case opClearRect:
		screen.ClearRect(cells(op.rect))
	case opDebug:
		screen.DrawBox(cells(op.rect), core.ColorCyan)
		screen.DrawBox(cells(op.aux), core.ColorRed)
	case opBlit:
		if pixels {
			screen.DrawRect(op.blit.Dst, '█', core.ColorDefault)
			return
		}
		s.blit(screen, op.blit, theme)
	}
}

// toCells maps a scene rectangle onto screen cells. Any rectangle with area
// covers at least one cell.
func (s *TerminalSurface) toCells(screen *core.Screen, r core.Rect) core.Rect {
	sx := float64(screen.Width()) / float64(s.sceneW)
	sy := float64(screen.Height()) / float64(s.sceneH)
	x0 := int(math.Floor(float64(r.X) * sx))
	y0 := int(math.Floor(float64(r.Y) * sy))
	x1 := int(math.Ceil(float64(r.X+r.W) * sx))
	y1 := int(math.Ceil(float64(r.Y+r.H) * sy))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (s *TerminalSurface) blit(screen *core.Screen, b sprite.Blit, theme registry.Theme) {
	if b.Alpha <= 0.25 {
		return
	}
	art, ok := theme.Art[b.Sprite]
	if !ok {
		screen.DrawRect(s.toCells(screen, b.Dst), '▒', core.ColorDefault)
		return
	}
	color := art.Color
	if color == core.ColorDefault {
		color = sceneColor(theme, b.Sprite)
	}
	if b.Alpha < 0.75 {
		color = color.Faded()
	}
	pattern := art.Pattern(b.Frame)
	if len(pattern) == 0 {
		return
	}

	if art.Text {
		dst := s.toCells(screen, b.Dst)
		for i, row := range pattern {
			screen.DrawText(dst.X, dst.Y+i, row, color)
		}
		return
	}

	if art.Tile > 0 && b.Dst.W >= 2*art.Tile {
		copies := b.Dst.W / art.Tile
		w := b.Dst.W / copies
		for i := 0; i < copies; i++ {
			d := core.Rect{X: b.Dst.X + i*w, Y: b.Dst.Y, W: w, H: b.Dst.H}
			stamp(screen, s.toCells(screen, d), art.Pattern(0), color)
		}
		return
	}
	stamp(screen, s.toCells(screen, b.Dst), pattern, color)
}

// sceneColor is the theme colour for art without its own: sky for the
// decorations above the ground, ground for everything else.
func sceneColor(theme registry.Theme, name sprite.Name) core.Color {
	switch name {
	case sprite.Cloud, sprite.Moon, sprite.Star:
		return theme.Sky
	}
	return theme.Ground
}

// stamp samples pattern to fill dst. Spaces are transparent.
func stamp(screen *core.Screen, dst core.Rect, pattern []string, color core.Color) {
	rows := make([][]rune, len(pattern))
	width := 0
	for i, p := range pattern {
		rows[i] = []rune(p)
		width = max(width, len(rows[i]))
	}
	if dst.Empty() || width == 0 {
		return
	}
	for cy := 0; cy < dst.H; cy++ {
		row := rows[cy*len(rows)/dst.H]
		for cx := 0; cx < dst.W; cx++ {
			px := cx * width / dst.W
			if px >= len(row) || row[px] == ' ' {
				continue
			}
			screen.SetColored(dst.X+cx, dst.Y+cy, row[px], color)
		}
	}
}
