package runner

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func cactusType(name string) config.ObstacleType {
	return config.ObstacleType{
		Type:          name,
		Width:         17,
		Height:        35,
		YPos:          []int{105},
		MultipleSpeed: 4,
		MinGap:        120,
		CollisionBoxes: []core.Rect{
			{X: 0, Y: 7, W: 5, H: 27},
			{X: 4, Y: 0, W: 6, H: 34},
			{X: 10, Y: 4, W: 7, H: 14},
		},
	}
}

func TestObstacleInit(t *testing.T) {
	ctx, _ := newTestContext(1)
	ctx.Rand = fixedRandom{f: 0.9}
	typ := cactusType("CACTUS_SMALL")

	o := newObstacle(ctx, typ, 6, 0.6, 600)

	if o.Size != 1 {
		t.Errorf("Size = %d, expected 1", o.Size)
	}
	if o.X != 600+typ.Width {
		t.Errorf("X = %d, expected %d", o.X, 600+typ.Width)
	}
	if o.Y != 105 {
		t.Errorf("Y = %d, expected 105", o.Y)
	}

	minGap := 17*6 + 72
	if o.Gap != minGap {
		t.Errorf("Gap = %d, expected %d", o.Gap, minGap)
	}
}

func TestObstacleMultiSizeStretchesBoxes(t *testing.T) {
	ctx, _ := newTestContext(1)
	typ := cactusType("CACTUS_SMALL")

	var o *Obstacle
	for i := 0; i < 200; i++ {
		o = newObstacle(ctx, typ, 10, 0.6, 600)
		if o.Size == 3 {
			break
		}
	}
	if o.Size != 3 {
		t.Fatalf("no size 3 obstacle spawned")
	}

	if o.Width != 51 {
		t.Errorf("Width = %d, expected 51", o.Width)
	}
	if o.Boxes[1].W != 51-5-7 {
		t.Errorf("middle box W = %d, expected %d", o.Boxes[1].W, 51-5-7)
	}
	if o.Boxes[2].X != 51-7 {
		t.Errorf("last box X = %d, expected %d", o.Boxes[2].X, 51-7)
	}
	if typ.CollisionBoxes[1].W != 6 {
		t.Errorf("type boxes were modified: %v", typ.CollisionBoxes)
	}
}

func TestObstacleSizeForcedBelowMultipleSpeed(t *testing.T) {
	ctx, _ := newTestContext(3)
	typ := cactusType("CACTUS_SMALL")
	typ.MultipleSpeed = 7

	for i := 0; i < 100; i++ {
		if o := newObstacle(ctx, typ, 6, 0.6, 600); o.Size != 1 {
			t.Fatalf("Size = %d at speed 6, expected 1", o.Size)
		}
	}
}

func TestObstacleGapRange(t *testing.T) {
	ctx, _ := newTestContext(5)
	typ := cactusType("CACTUS_SMALL")

	for i := 0; i < 200; i++ {
		o := newObstacle(ctx, typ, 6, 0.6, 600)
		minGap := o.Width*6 + 72
		maxGap := int(float64(minGap)*1.5 + 0.5)
		if o.Gap < minGap || o.Gap > maxGap {
			t.Fatalf("Gap = %d, expected in [%d, %d]", o.Gap, minGap, maxGap)
		}
	}
}

func TestObstacleGapDoubledWithAudioCues(t *testing.T) {
	ctx, _ := newTestContext(1)
	ctx.Rand = fixedRandom{}
	ctx.AudioCues = true

	o := newObstacle(ctx, cactusType("CACTUS_SMALL"), 6, 0.6, 600)
	if expected := 2 * (17*6 + 72); o.Gap != expected {
		t.Errorf("Gap = %d, expected %d", o.Gap, expected)
	}
}

func TestObstacleSpeedOffsetSign(t *testing.T) {
	ctx, _ := newTestContext(1)
	typ := cactusType("PTERODACTYL")
	typ.SpeedOffset = 0.8

	ctx.Rand = fixedRandom{f: 0.9}
	if o := newObstacle(ctx, typ, 6, 0.6, 600); o.SpeedOffset != 0.8 {
		t.Errorf("SpeedOffset = %v, expected 0.8", o.SpeedOffset)
	}
	ctx.Rand = fixedRandom{f: 0.1}
	if o := newObstacle(ctx, typ, 6, 0.6, 600); o.SpeedOffset != -0.8 {
		t.Errorf("SpeedOffset = %v, expected -0.8", o.SpeedOffset)
	}
}

func TestObstacleUpdateRemovesWhenInvisible(t *testing.T) {
	ctx, _ := newTestContext(1)
	ctx.Rand = fixedRandom{}
	o := newObstacle(ctx, cactusType("CACTUS_SMALL"), 6, 0.6, 600)
	o.X = 10

	o.Update(20, 6)
	if o.X != 3 {
		t.Errorf("X = %d, expected 3", o.X)
	}
	if o.Removed {
		t.Fatalf("Removed while still visible")
	}

	o.X = -o.Width + 3
	o.Update(20, 6)
	if !o.Removed {
		t.Errorf("Removed = false after leaving the scene")
	}
}

func TestDuplicateCheck(t *testing.T) {
	ctx, _ := newTestContext(1)
	om := NewObstacleManager(ctx, nil, 600)

	tests := []struct {
		name     string
		history  []string
		typ      string
		expected bool
	}{
		{"empty", nil, "A", false},
		{"one", []string{"A"}, "A", false},
		{"two", []string{"A", "A"}, "A", true},
		{"other", []string{"A", "A"}, "B", false},
		{"broken run", []string{"A", "B"}, "A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			om.history = tt.history
			if got := om.DuplicateCheck(tt.typ); got != tt.expected {
				t.Errorf("DuplicateCheck(%q) = %v, expected %v", tt.typ, got, tt.expected)
			}
		})
	}
}

func TestDuplicationBound(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		ctx, _ := newTestContext(seed)
		n := int(seed%3) + 2
		types := make([]config.ObstacleType, n)
		for i := range types {
			types[i] = cactusType(string(rune('A' + i)))
		}
		om := NewObstacleManager(ctx, types, 600)

		var seq []string
		for i := 0; i < 300; i++ {
			if err := om.Add(6); err != nil {
				t.Fatalf("seed %d: Add() error = %v", seed, err)
			}
			seq = append(seq, om.history[0])
		}

		for i := 2; i < len(seq); i++ {
			if seq[i] == seq[i-1] && seq[i] == seq[i-2] {
				t.Fatalf("seed %d: three %q in a row at %d", seed, seq[i], i)
			}
		}
		if len(om.History()) > ctx.Config.Game.MaxObstacleDuplication {
			t.Errorf("history length = %d, expected <= %d", len(om.History()), ctx.Config.Game.MaxObstacleDuplication)
		}
	}
}

func TestAddRespectsMinSpeed(t *testing.T) {
	ctx, _ := newTestContext(7)
	om := NewObstacleManager(ctx, config.DefaultObstacleTypes(), 600)

	for i := 0; i < 200; i++ {
		if err := om.Add(6); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	for _, o := range om.Obstacles() {
		if o.Type.Type == "PTERODACTYL" {
			t.Fatalf("pterodactyl spawned below its min speed")
		}
		if o.Type.Collectable {
			t.Fatalf("collectable spawned while other types exist")
		}
	}
}

func TestAddFallsBackDeterministically(t *testing.T) {
	ctx, _ := newTestContext(1)
	// Always draws index 0, which is blocked by history.
	ctx.Rand = fixedRandom{}
	om := NewObstacleManager(ctx, []config.ObstacleType{cactusType("A"), cactusType("B")}, 600)
	om.history = []string{"A", "A"}

	if err := om.Add(6); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if om.history[0] != "B" {
		t.Errorf("spawned %q, expected B", om.history[0])
	}
}

func TestAddStarvation(t *testing.T) {
	ctx, _ := newTestContext(1)
	fast := cactusType("A")
	fast.MinSpeed = 10
	om := NewObstacleManager(ctx, []config.ObstacleType{fast}, 600)

	err := om.Add(6)
	if !errors.Is(err, ErrNoEligibleObstacle) {
		t.Errorf("Add() error = %v, expected ErrNoEligibleObstacle", err)
	}
	if len(om.Obstacles()) != 0 {
		t.Errorf("len(Obstacles()) = %d, expected 0", len(om.Obstacles()))
	}
}

func TestSingleTypeIgnoresDuplication(t *testing.T) {
	ctx, _ := newTestContext(1)
	om := NewObstacleManager(ctx, []config.ObstacleType{cactusType("A")}, 600)

	for i := 0; i < 5; i++ {
		if err := om.Add(6); err != nil {
			t.Fatalf("Add() #%d error = %v", i, err)
		}
	}
}

func TestCollectableOnlyPool(t *testing.T) {
	ctx, _ := newTestContext(1)
	c := cactusType("COLLECTABLE")
	c.Collectable = true
	om := NewObstacleManager(ctx, []config.ObstacleType{c}, 600)

	if err := om.Add(6); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
}

func TestManagerUpdateSpawnsAndRetires(t *testing.T) {
	ctx, _ := newTestContext(11)
	om := NewObstacleManager(ctx, []config.ObstacleType{cactusType("A"), cactusType("B")}, 600)
	dt := 1000.0 / 60

	om.Update(dt, 6)
	if len(om.Obstacles()) != 1 {
		t.Fatalf("len(Obstacles()) = %d after first update, expected 1", len(om.Obstacles()))
	}

	first := om.Obstacles()[0]
	for i := 0; i < 2000; i++ {
		om.Update(dt, 6)
		for _, o := range om.Obstacles() {
			if o.Removed {
				t.Fatalf("removed obstacle kept in the list")
			}
		}
	}
	if !first.Removed {
		t.Errorf("first obstacle never retired")
	}
	if len(om.Obstacles()) == 0 || om.Obstacles()[0] == first {
		t.Errorf("no followers spawned")
	}

	om.Reset()
	if len(om.Obstacles()) != 0 || len(om.History()) != 0 {
		t.Errorf("Reset() left obstacles or history")
	}
}

func TestFollowerSpawnedOnce(t *testing.T) {
	ctx, _ := newTestContext(1)
	ctx.Rand = fixedRandom{}
	om := NewObstacleManager(ctx, []config.ObstacleType{cactusType("A"), cactusType("B")}, 600)

	if err := om.Add(6); err != nil {
		t.Fatal(err)
	}
	first := om.Obstacles()[0]
	first.X = 600 - first.Width - first.Gap - 10

	om.Update(0, 6)
	if len(om.Obstacles()) != 2 {
		t.Fatalf("len(Obstacles()) = %d, expected 2", len(om.Obstacles()))
	}
	if !first.FollowingCreated {
		t.Errorf("FollowingCreated = false after spawning follower")
	}

	om.Update(0, 6)
	if len(om.Obstacles()) != 2 {
		t.Errorf("len(Obstacles()) = %d after second update, expected 2", len(om.Obstacles()))
	}
}
