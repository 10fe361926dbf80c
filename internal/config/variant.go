package config

import "fmt"

// Variant selects a tuning of the game.
type Variant string

const (
	VariantNormal Variant = "normal"
	VariantSlow   Variant = "slow"
)

// Variants lists the supported variants in display order.
func Variants() []Variant {
	return []Variant{VariantNormal, VariantSlow}
}

// ParseVariant converts a flag value into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantNormal, "":
		return VariantNormal, nil
	case VariantSlow:
		return VariantSlow, nil
	default:
		return "", fmt.Errorf("config: unknown variant %q (expected normal or slow)", s)
	}
}

// ApplyVariant returns a copy of cfg tuned for v. The input is not modified.
func ApplyVariant(cfg RunnerConfig, v Variant) RunnerConfig {
	out := cfg.Clone()
	out.Variant = v
	if v != VariantSlow {
		return out
	}

	s := cfg.Slow
	out.Game.Speed = s.Speed
	out.Game.Acceleration = s.Acceleration
	out.Game.MaxSpeed = s.MaxSpeed
	out.Game.MobileSpeedCoefficient = s.MobileSpeedCoefficient
	out.Game.GapCoefficient = s.GapCoefficient
	out.Game.InvertDistance = s.InvertDistance
	out.Game.AudioCueThreshold = s.AudioCueThreshold
	out.Game.AudioCueThresholdMobile = s.AudioCueThresholdMobile
	out.Jump = cfg.SlowJump
	out.Obstacles = ObstacleTypesFor(cfg.Obstacles, v)
	return out
}

// ObstacleTypesFor returns a copy of types tuned for v. Slow obstacles group
// and appear at half the speed and pack a quarter closer.
func ObstacleTypesFor(types []ObstacleType, v Variant) []ObstacleType {
	out := make([]ObstacleType, len(types))
	for i, o := range types {
		out[i] = o.Clone()
		if v == VariantSlow {
			out[i].MultipleSpeed /= 2
			out[i].MinGap *= 0.75
			out[i].MinSpeed /= 2
		}
	}
	return out
}
