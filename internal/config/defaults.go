package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-runner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultRunnerYAML...)
}

// DefaultRunnerConfig returns the built-in runner configuration.
// It matches defaults/runner.yaml and is the fallback when no file parses.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Game: GameConfig{
			Width:                   600,
			Height:                  150,
			FPS:                     60,
			Speed:                   6,
			Acceleration:            0.001,
			MaxSpeed:                13,
			MobileSpeedCoefficient:  1.2,
			GapCoefficient:          0.6,
			MaxGapCoefficient:       1.5,
			MaxObstacleLength:       3,
			MaxObstacleDuplication:  2,
			ClearTime:               3000,
			GameOverClearTime:       1200,
			InvertDistance:          700,
			InvertFadeDuration:      12000,
			MaxBlinkCount:           3,
			BottomPad:               10,
			AudioCueThreshold:       190,
			AudioCueThresholdMobile: 250,
			ThemeFlashDuration:      1000,
		},
		Slow: SlowConfig{
			Speed:                   4.2,
			Acceleration:            0.0005,
			MaxSpeed:                9,
			MobileSpeedCoefficient:  1.5,
			GapCoefficient:          0.3,
			InvertDistance:          350,
			AudioCueThreshold:       170,
			AudioCueThresholdMobile: 220,
		},
		Trex: TrexConfig{
			Width:         44,
			Height:        47,
			WidthDuck:     59,
			HeightDuck:    25,
			StartX:        50,
			IntroDuration: 1500,
			BlinkTiming:   7000,
			FlashOn:       100,
			FlashOff:      175,
			CollisionRunning: []core.Rect{
				{X: 22, Y: 0, W: 17, H: 16},
				{X: 1, Y: 18, W: 30, H: 9},
				{X: 10, Y: 35, W: 14, H: 8},
				{X: 1, Y: 24, W: 29, H: 5},
				{X: 5, Y: 30, W: 21, H: 4},
				{X: 9, Y: 34, W: 15, H: 4},
			},
			CollisionDucking: []core.Rect{
				{X: 1, Y: 18, W: 55, H: 25},
			},
		},
		Jump: JumpConfig{
			Gravity:              0.6,
			MaxJumpHeight:        30,
			MinJumpHeight:        30,
			InitialJumpVelocity:  -10,
			DropVelocity:         -5,
			SpeedDropCoefficient: 3,
		},
		SlowJump: JumpConfig{
			Gravity:              0.25,
			MaxJumpHeight:        50,
			MinJumpHeight:        45,
			InitialJumpVelocity:  -20,
			DropVelocity:         -5,
			SpeedDropCoefficient: 3,
		},
		Horizon: HorizonConfig{
			Width:         600,
			Height:        12,
			YPos:          127,
			BumpThreshold: 0.5,
		},
		Clouds: CloudConfig{
			Width:     46,
			Height:    14,
			MinGap:    100,
			MaxGap:    400,
			MinY:      30,
			MaxY:      71,
			Speed:     0.2,
			MaxClouds: 6,
			Frequency: 0.5,
		},
		Night: NightConfig{
			FadeSpeed:   0.035,
			NumStars:    3,
			StarSize:    9,
			StarSpeed:   0.25,
			StarMaxY:    70,
			MoonWidth:   20,
			MoonHeight:  40,
			MoonSpeed:   0.35,
			MoonY:       30,
			MoonPhases:  []int{140, 120, 100, 60, 40, 20, 0},
			StarPhasesY: []int{0, 9, 18},
		},
		Meter: MeterConfig{
			DigitWidth:          10,
			DigitHeight:         13,
			DestWidth:           11,
			MaxDistanceUnits:    5,
			AchievementDistance: 100,
			Coefficient:         0.025,
			FlashDuration:       250,
			FlashIterations:     3,
			HighScoreHitPadding: 4,
			Y:                   5,
		},
		Input: InputConfig{
			JumpHoldMs: 300,
			DuckHoldMs: 600,
		},
		Obstacles: DefaultObstacleTypes(),
	}
}

// DefaultObstacleTypes returns the built-in obstacle table. The collectable
// entry is last and is only chosen when nothing else is available.
func DefaultObstacleTypes() []ObstacleType {
	return []ObstacleType{
		{
			Type:          "CACTUS_SMALL",
			Width:         17,
			Height:        35,
			YPos:          []int{105},
			MultipleSpeed: 4,
			MinGap:        120,
			MinSpeed:      0,
			CollisionBoxes: []core.Rect{
				{X: 0, Y: 7, W: 5, H: 27},
				{X: 4, Y: 0, W: 6, H: 34},
				{X: 10, Y: 4, W: 7, H: 14},
			},
		},
		{
			Type:          "CACTUS_LARGE",
			Width:         25,
			Height:        50,
			YPos:          []int{90},
			MultipleSpeed: 7,
			MinGap:        120,
			MinSpeed:      0,
			CollisionBoxes: []core.Rect{
				{X: 0, Y: 12, W: 7, H: 38},
				{X: 8, Y: 0, W: 7, H: 49},
				{X: 13, Y: 10, W: 10, H: 38},
			},
		},
		{
			Type:          "PTERODACTYL",
			Width:         46,
			Height:        40,
			YPos:          []int{100, 75, 50},
			YPosMobile:    []int{100, 50},
			MultipleSpeed: 999,
			MinSpeed:      8.5,
			MinGap:        150,
			NumFrames:     2,
			FrameRate:     1000.0 / 6,
			SpeedOffset:   0.8,
			CollisionBoxes: []core.Rect{
				{X: 15, Y: 15, W: 16, H: 5},
				{X: 18, Y: 21, W: 24, H: 6},
				{X: 2, Y: 14, W: 4, H: 3},
				{X: 6, Y: 10, W: 4, H: 7},
				{X: 10, Y: 8, W: 6, H: 9},
			},
		},
		{
			Type:          "COLLECTABLE",
			Width:         12,
			Height:        38,
			YPos:          []int{90},
			MultipleSpeed: 999,
			MinGap:        999,
			MinSpeed:      0,
			Collectable:   true,
			CollisionBoxes: []core.Rect{
				{X: 0, Y: 0, W: 12, H: 38},
			},
		},
	}
}
