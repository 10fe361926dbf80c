package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type pairRecorder struct {
	pairs int
}

func (p *pairRecorder) DrawCollisionBoxes(trex, obstacle core.Rect) { p.pairs++ }

// collisionFixture places an actor whose inset outer box is {5,85,42,45}
// and a small cactus whose inset outer box is {10,90,17,35}.
func collisionFixture(t *testing.T) (*Trex, *Obstacle) {
	t.Helper()
	ctx, _ := newTestContext(1)
	trex := NewTrex(ctx)
	trex.x, trex.y = 4, 84

	typ := cactusType("CACTUS_SMALL")
	typ.Height = 37
	o := &Obstacle{
		ctx:   ctx,
		Type:  typ,
		X:     9,
		Y:     89,
		Size:  1,
		Width: 19,
		Boxes: append([]core.Rect(nil), typ.CollisionBoxes...),
	}
	return trex, o
}

func TestCheckCollisionScenario(t *testing.T) {
	trex, o := collisionFixture(t)

	if got := trex.OuterBox().Inset(1); got != core.NewRect(5, 85, 42, 45) {
		t.Fatalf("trex inset box = %v", got)
	}
	if got := o.OuterBox().Inset(1); got != core.NewRect(10, 90, 17, 35) {
		t.Fatalf("obstacle inset box = %v", got)
	}

	hit, ok := CheckCollision(o, trex, nil)
	if !ok {
		t.Fatalf("CheckCollision() = false, expected a collision")
	}
	if !hit.Trex.Intersects(hit.Obstacle) {
		t.Errorf("evidence boxes %v and %v do not overlap", hit.Trex, hit.Obstacle)
	}

	o.X = 199
	if _, ok := CheckCollision(o, trex, nil); ok {
		t.Errorf("CheckCollision() = true with obstacle at x=200")
	}
}

func TestCheckCollisionDebugDrawer(t *testing.T) {
	trex, o := collisionFixture(t)
	rec := &pairRecorder{}

	if _, ok := CheckCollision(o, trex, rec); !ok {
		t.Fatalf("CheckCollision() = false, expected a collision")
	}
	if rec.pairs == 0 {
		t.Errorf("debug drawer received no pairs")
	}

	rec.pairs = 0
	o.X = 300
	CheckCollision(o, trex, rec)
	if rec.pairs != 0 {
		t.Errorf("debug drawer received %d pairs after coarse rejection", rec.pairs)
	}
}

func TestCheckCollisionDuckingBoxes(t *testing.T) {
	trex, o := collisionFixture(t)
	trex.SetDuck(true)

	boxes := trex.CollisionBoxes()
	if len(boxes) != 1 {
		t.Fatalf("len(CollisionBoxes()) = %d while ducking, expected 1", len(boxes))
	}
	if _, ok := CheckCollision(o, trex, nil); !ok {
		t.Errorf("CheckCollision() = false for a ducking actor over a cactus")
	}
}

func TestCheckCollisionNil(t *testing.T) {
	trex, o := collisionFixture(t)

	if _, ok := CheckCollision(nil, trex, nil); ok {
		t.Errorf("CheckCollision(nil, trex) = true")
	}
	if _, ok := CheckCollision(o, nil, nil); ok {
		t.Errorf("CheckCollision(o, nil) = true")
	}
}
