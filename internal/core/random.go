package core

import (
	"math/rand"
	"time"
)

// Random is the source of randomness used by the simulation.
type Random interface {
	// IntRange returns an integer in the closed interval [min, max].
	IntRange(min, max int) int
	// Float64 returns a number in [0, 1).
	Float64() float64
}

type seededRandom struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed. A zero seed uses the current time.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *seededRandom) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

func (r *seededRandom) Float64() float64 {
	return r.rng.Float64()
}
