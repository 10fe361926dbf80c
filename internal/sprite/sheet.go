// Package sprite describes the sprite sheet the runner draws from and the
// surface contract drawing goes through.
package sprite

import "github.com/vovakirdan/tui-runner/internal/core"

// Name identifies a region of the sprite sheet.
type Name string

const (
	CactusLarge  Name = "CACTUS_LARGE"
	CactusSmall  Name = "CACTUS_SMALL"
	Cloud        Name = "CLOUD"
	Horizon      Name = "HORIZON"
	Moon         Name = "MOON"
	Pterodactyl  Name = "PTERODACTYL"
	Restart      Name = "RESTART"
	TextSprite   Name = "TEXT_SPRITE"
	GameOverText Name = "GAME_OVER_TEXT"
	Trex         Name = "TREX"
	Star         Name = "STAR"
	Collectable  Name = "COLLECTABLE"
)

// Point is a sheet origin in source pixels.
type Point struct {
	X, Y int
}

// Table holds sprite origins for both sheet densities.
type Table struct {
	LDPI map[Name]Point
	HDPI map[Name]Point
}

// DefaultTable returns the origins of the standard 1x and 2x sheets.
func DefaultTable() Table {
	return Table{
		LDPI: map[Name]Point{
			CactusLarge:  {332, 2},
			CactusSmall:  {228, 2},
			Cloud:        {86, 2},
			Horizon:      {2, 54},
			Moon:         {484, 2},
			Pterodactyl:  {134, 2},
			Restart:      {2, 68},
			TextSprite:   {655, 2},
			GameOverText: {655, 2},
			Trex:         {848, 2},
			Star:         {645, 2},
			Collectable:  {2, 2},
		},
		HDPI: map[Name]Point{
			CactusLarge:  {652, 2},
			CactusSmall:  {446, 2},
			Cloud:        {166, 2},
			Horizon:      {2, 104},
			Moon:         {954, 2},
			Pterodactyl:  {260, 2},
			Restart:      {2, 130},
			TextSprite:   {1294, 2},
			GameOverText: {1294, 2},
			Trex:         {1678, 2},
			Star:         {1276, 2},
			Collectable:  {4, 4},
		},
	}
}

// Sheet resolves logical source regions against one density of a Table.
type Sheet struct {
	origins map[Name]Point
	scale   int
}

// NewSheet selects the high density origins when hiDPI is set.
func NewSheet(t Table, hiDPI bool) Sheet {
	if hiDPI {
		return Sheet{origins: t.HDPI, scale: 2}
	}
	return Sheet{origins: t.LDPI, scale: 1}
}

// Scale is the source pixel ratio: 1 for LDPI and 2 for HDPI.
func (s Sheet) Scale() int {
	if s.scale == 0 {
		return 1
	}
	return s.scale
}

// Origin returns the top-left corner of a sprite in the sheet.
func (s Sheet) Origin(n Name) Point {
	return s.origins[n]
}

// Source returns the sheet rectangle of a region given in logical pixels
// relative to the sprite origin. High density doubles offsets and sizes.
func (s Sheet) Source(n Name, x, y, w, h int) core.Rect {
	o := s.origins[n]
	return core.NewRect(x, y, w, h).Scale(s.Scale()).Offset(o.X, o.Y)
}
