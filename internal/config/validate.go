package config

import (
	"errors"
	"fmt"
)

// Validate reports every inconsistency of a configuration at once.
func Validate(cfg RunnerConfig) error {
	var errs []error

	g := cfg.Game
	if g.Width <= 0 || g.Height <= 0 {
		errs = append(errs, fmt.Errorf("game: dimensions must be positive, got %dx%d", g.Width, g.Height))
	}
	if g.FPS <= 0 {
		errs = append(errs, fmt.Errorf("game: fps must be positive, got %v", g.FPS))
	}
	if g.Speed <= 0 || g.MaxSpeed < g.Speed {
		errs = append(errs, fmt.Errorf("game: need 0 < speed <= max_speed, got %v and %v", g.Speed, g.MaxSpeed))
	}
	if g.MaxObstacleDuplication < 1 {
		errs = append(errs, fmt.Errorf("game: max_obstacle_duplication must be at least 1, got %d", g.MaxObstacleDuplication))
	}
	if g.MaxObstacleLength < 1 {
		errs = append(errs, fmt.Errorf("game: max_obstacle_length must be at least 1, got %d", g.MaxObstacleLength))
	}
	if g.MaxGapCoefficient < 1 {
		errs = append(errs, fmt.Errorf("game: max_gap_coefficient must be at least 1, got %v", g.MaxGapCoefficient))
	}
	if g.InvertDistance <= 0 || cfg.Slow.InvertDistance <= 0 {
		errs = append(errs, errors.New("game: invert_distance must be positive"))
	}

	if cfg.Trex.Width <= 0 || cfg.Trex.Height <= 0 || cfg.Trex.WidthDuck <= 0 {
		errs = append(errs, errors.New("trex: dimensions must be positive"))
	}
	if len(cfg.Trex.CollisionRunning) == 0 || len(cfg.Trex.CollisionDucking) == 0 {
		errs = append(errs, errors.New("trex: running and ducking collision boxes are required"))
	}
	for name, j := range map[string]JumpConfig{"jump": cfg.Jump, "slow_jump": cfg.SlowJump} {
		if j.Gravity <= 0 {
			errs = append(errs, fmt.Errorf("%s: gravity must be positive, got %v", name, j.Gravity))
		}
		if j.InitialJumpVelocity >= 0 {
			errs = append(errs, fmt.Errorf("%s: initial_jump_velocity must be negative, got %v", name, j.InitialJumpVelocity))
		}
	}

	if cfg.Meter.Coefficient <= 0 || cfg.Meter.MaxDistanceUnits < 1 || cfg.Meter.AchievementDistance <= 0 {
		errs = append(errs, errors.New("meter: coefficient, max_distance_units and achievement_distance must be positive"))
	}
	if len(cfg.Night.MoonPhases) == 0 || len(cfg.Night.StarPhasesY) == 0 {
		errs = append(errs, errors.New("night: moon_phases and star_phases_y must not be empty"))
	}
	if cfg.Clouds.MinGap > cfg.Clouds.MaxGap || cfg.Clouds.MinY > cfg.Clouds.MaxY {
		errs = append(errs, errors.New("clouds: min values must not exceed max values"))
	}

	errs = append(errs, validateObstacles(cfg.Obstacles, g.Speed)...)
	return errors.Join(errs...)
}

func validateObstacles(types []ObstacleType, baseSpeed float64) []error {
	var errs []error
	seen := make(map[string]bool, len(types))
	spawnable := false
	for i, t := range types {
		if t.Type == "" {
			errs = append(errs, fmt.Errorf("obstacles[%d]: type is required", i))
			continue
		}
		if seen[t.Type] {
			errs = append(errs, fmt.Errorf("obstacles[%d]: duplicate type %q", i, t.Type))
		}
		seen[t.Type] = true
		if t.Width <= 0 || t.Height <= 0 {
			errs = append(errs, fmt.Errorf("obstacles[%d] %s: dimensions must be positive", i, t.Type))
		}
		if len(t.YPos) == 0 {
			errs = append(errs, fmt.Errorf("obstacles[%d] %s: y_pos must not be empty", i, t.Type))
		}
		if len(t.CollisionBoxes) == 0 {
			errs = append(errs, fmt.Errorf("obstacles[%d] %s: collision_boxes must not be empty", i, t.Type))
		}
		if t.NumFrames > 1 && t.FrameRate <= 0 {
			errs = append(errs, fmt.Errorf("obstacles[%d] %s: animated types need a frame_rate", i, t.Type))
		}
		if !t.Collectable && t.MinSpeed <= baseSpeed {
			spawnable = true
		}
	}
	if !spawnable {
		errs = append(errs, errors.New("obstacles: at least one non-collectable type must spawn at the base speed"))
	}
	return errs
}
