package core

import "testing"

func TestRandomIntRange(t *testing.T) {
	r := NewRandom(42)

	tests := []struct {
		name     string
		min, max int
	}{
		{"single value", 3, 3},
		{"small range", 1, 3},
		{"negative range", -5, 5},
		{"swapped bounds", 10, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := tc.min, tc.max
			if hi < lo {
				lo, hi = hi, lo
			}
			for i := 0; i < 500; i++ {
				v := r.IntRange(tc.min, tc.max)
				if v < lo || v > hi {
					t.Fatalf("IntRange(%d, %d) = %d, expected within [%d, %d]", tc.min, tc.max, v, lo, hi)
				}
			}
		})
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := NewRandom(7)
	b := NewRandom(7)

	for i := 0; i < 20; i++ {
		if x, y := a.IntRange(0, 1000), b.IntRange(0, 1000); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %f != %f for equal seeds", i, x, y)
		}
	}
}
