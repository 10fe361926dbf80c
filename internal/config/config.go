// Package config provides YAML-based runner configuration loading and the
// normal/slow game variants.
package config

import "github.com/vovakirdan/tui-runner/internal/core"

// RunnerConfig contains every tunable of a runner session.
type RunnerConfig struct {
	Game      GameConfig     `yaml:"game"`
	Slow      SlowConfig     `yaml:"slow"`
	Trex      TrexConfig     `yaml:"trex"`
	Jump      JumpConfig     `yaml:"jump"`
	SlowJump  JumpConfig     `yaml:"slow_jump"`
	Horizon   HorizonConfig  `yaml:"horizon"`
	Clouds    CloudConfig    `yaml:"clouds"`
	Night     NightConfig    `yaml:"night"`
	Meter     MeterConfig    `yaml:"meter"`
	Input     InputConfig    `yaml:"input"`
	Obstacles []ObstacleType `yaml:"obstacles"`

	Variant Variant `yaml:"-"` // set by ApplyVariant
}

// GameConfig holds the session driver parameters. Times are milliseconds,
// distances are scene pixels.
type GameConfig struct {
	Width                   int     `yaml:"width"`
	Height                  int     `yaml:"height"`
	FPS                     float64 `yaml:"fps"`
	Speed                   float64 `yaml:"speed"`
	Acceleration            float64 `yaml:"acceleration"`
	MaxSpeed                float64 `yaml:"max_speed"`
	MobileSpeedCoefficient  float64 `yaml:"mobile_speed_coefficient"`
	GapCoefficient          float64 `yaml:"gap_coefficient"`
	MaxGapCoefficient       float64 `yaml:"max_gap_coefficient"`
	MaxObstacleLength       int     `yaml:"max_obstacle_length"`
	MaxObstacleDuplication  int     `yaml:"max_obstacle_duplication"`
	ClearTime               float64 `yaml:"clear_time"`
	GameOverClearTime       float64 `yaml:"gameover_clear_time"`
	InvertDistance          int     `yaml:"invert_distance"`
	InvertFadeDuration      float64 `yaml:"invert_fade_duration"`
	MaxBlinkCount           int     `yaml:"max_blink_count"`
	BottomPad               int     `yaml:"bottom_pad"`
	AudioCueThreshold       float64 `yaml:"audio_cue_proximity_threshold"`
	AudioCueThresholdMobile float64 `yaml:"audio_cue_proximity_threshold_mobile"`
	ThemeFlashDuration      float64 `yaml:"theme_flash_duration"`
}

// SlowConfig overrides GameConfig fields for the slow variant.
type SlowConfig struct {
	Speed                   float64 `yaml:"speed"`
	Acceleration            float64 `yaml:"acceleration"`
	MaxSpeed                float64 `yaml:"max_speed"`
	MobileSpeedCoefficient  float64 `yaml:"mobile_speed_coefficient"`
	GapCoefficient          float64 `yaml:"gap_coefficient"`
	InvertDistance          int     `yaml:"invert_distance"`
	AudioCueThreshold       float64 `yaml:"audio_cue_proximity_threshold"`
	AudioCueThresholdMobile float64 `yaml:"audio_cue_proximity_threshold_mobile"`
}

// TrexConfig describes the player actor.
type TrexConfig struct {
	Width            int         `yaml:"width"`
	Height           int         `yaml:"height"`
	WidthDuck        int         `yaml:"width_duck"`
	HeightDuck       int         `yaml:"height_duck"`
	StartX           int         `yaml:"start_x"`
	IntroDuration    float64     `yaml:"intro_duration"`
	BlinkTiming      float64     `yaml:"blink_timing"`
	FlashOn          float64     `yaml:"flash_on"`
	FlashOff         float64     `yaml:"flash_off"`
	CollisionRunning []core.Rect `yaml:"collision_running"`
	CollisionDucking []core.Rect `yaml:"collision_ducking"`
}

// JumpConfig holds the jump physics. Heights are absolute y positions
// (MaxJumpHeight) or offsets above the ground (MinJumpHeight).
type JumpConfig struct {
	Gravity              float64 `yaml:"gravity"`
	MaxJumpHeight        int     `yaml:"max_jump_height"`
	MinJumpHeight        int     `yaml:"min_jump_height"`
	InitialJumpVelocity  float64 `yaml:"initial_jump_velocity"`
	DropVelocity         float64 `yaml:"drop_velocity"`
	SpeedDropCoefficient float64 `yaml:"speed_drop_coefficient"`
}

// HorizonConfig describes the ground line.
type HorizonConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	YPos          int     `yaml:"y_pos"`
	BumpThreshold float64 `yaml:"bump_threshold"`
}

// CloudConfig describes the cloud layer.
type CloudConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	MinGap    int     `yaml:"min_gap"`
	MaxGap    int     `yaml:"max_gap"`
	MinY      int     `yaml:"min_y"`
	MaxY      int     `yaml:"max_y"`
	Speed     float64 `yaml:"speed"`
	MaxClouds int     `yaml:"max_clouds"`
	Frequency float64 `yaml:"frequency"`
}

// NightConfig describes the night mode sky.
type NightConfig struct {
	FadeSpeed   float64 `yaml:"fade_speed"`
	NumStars    int     `yaml:"num_stars"`
	StarSize    int     `yaml:"star_size"`
	StarSpeed   float64 `yaml:"star_speed"`
	StarMaxY    int     `yaml:"star_max_y"`
	MoonWidth   int     `yaml:"moon_width"`
	MoonHeight  int     `yaml:"moon_height"`
	MoonSpeed   float64 `yaml:"moon_speed"`
	MoonY       int     `yaml:"moon_y"`
	MoonPhases  []int   `yaml:"moon_phases"`
	StarPhasesY []int   `yaml:"star_phases_y"`
}

// MeterConfig describes the distance meter.
type MeterConfig struct {
	DigitWidth          int     `yaml:"digit_width"`
	DigitHeight         int     `yaml:"digit_height"`
	DestWidth           int     `yaml:"dest_width"`
	MaxDistanceUnits    int     `yaml:"max_distance_units"`
	AchievementDistance int     `yaml:"achievement_distance"`
	Coefficient         float64 `yaml:"coefficient"`
	FlashDuration       float64 `yaml:"flash_duration"`
	FlashIterations     int     `yaml:"flash_iterations"`
	HighScoreHitPadding int     `yaml:"high_score_hit_padding"`
	Y                   int     `yaml:"y"`
}

// InputConfig tunes key release emulation. Terminals only report presses,
// so a key counts as held while auto-repeat keeps arriving within these windows.
type InputConfig struct {
	JumpHoldMs int `yaml:"jump_hold_ms"`
	DuckHoldMs int `yaml:"duck_hold_ms"`
}

// ObstacleType is one entry of the obstacle table.
type ObstacleType struct {
	Type           string      `yaml:"type"`
	Width          int         `yaml:"width"`
	Height         int         `yaml:"height"`
	YPos           []int       `yaml:"y_pos"`
	YPosMobile     []int       `yaml:"y_pos_mobile,omitempty"`
	MultipleSpeed  float64     `yaml:"multiple_speed"`
	MinGap         float64     `yaml:"min_gap"`
	MinSpeed       float64     `yaml:"min_speed"`
	NumFrames      int         `yaml:"num_frames,omitempty"`
	FrameRate      float64     `yaml:"frame_rate,omitempty"`
	SpeedOffset    float64     `yaml:"speed_offset,omitempty"`
	Collectable    bool        `yaml:"collectable,omitempty"`
	CollisionBoxes []core.Rect `yaml:"collision_boxes"`
}

// Clone returns a deep copy of the obstacle type.
func (o ObstacleType) Clone() ObstacleType {
	c := o
	c.YPos = append([]int(nil), o.YPos...)
	c.YPosMobile = append([]int(nil), o.YPosMobile...)
	c.CollisionBoxes = append([]core.Rect(nil), o.CollisionBoxes...)
	return c
}

// Clone returns a deep copy of the configuration.
func (c RunnerConfig) Clone() RunnerConfig {
	out := c
	out.Trex.CollisionRunning = append([]core.Rect(nil), c.Trex.CollisionRunning...)
	out.Trex.CollisionDucking = append([]core.Rect(nil), c.Trex.CollisionDucking...)
	out.Night.MoonPhases = append([]int(nil), c.Night.MoonPhases...)
	out.Night.StarPhasesY = append([]int(nil), c.Night.StarPhasesY...)
	out.Obstacles = make([]ObstacleType, len(c.Obstacles))
	for i, o := range c.Obstacles {
		out.Obstacles[i] = o.Clone()
	}
	return out
}
