package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Collision is the evidence of a hit: the first overlapping pair of
// sub-boxes, both in scene coordinates.
type Collision struct {
	Trex     core.Rect
	Obstacle core.Rect
}

// DebugDrawer receives every pair of sub-boxes CheckCollision compares.
type DebugDrawer interface {
	DrawCollisionBoxes(trex, obstacle core.Rect)
}

// CheckCollision tests the actor against one obstacle. Both outer boxes are
// inset by one pixel and must overlap before the sub-boxes are compared.
// The actor always uses its standing outer box; its sub-box set follows the
// ducking flag. dbg may be nil.
func CheckCollision(o *Obstacle, t *Trex, dbg DebugDrawer) (Collision, bool) {
	if o == nil || t == nil {
		return Collision{}, false
	}

	trexBox := t.OuterBox().Inset(1)
	obstacleBox := o.OuterBox().Inset(1)

	if !trexBox.Intersects(obstacleBox) {
		return Collision{}, false
	}

	for _, tb := range t.CollisionBoxes() {
		adjTrex := tb.Offset(trexBox.X, trexBox.Y)
		for _, ob := range o.Boxes {
			adjObstacle := ob.Offset(obstacleBox.X, obstacleBox.Y)
			if dbg != nil {
				dbg.DrawCollisionBoxes(adjTrex, adjObstacle)
			}
			if adjTrex.Intersects(adjObstacle) {
				return Collision{Trex: adjTrex, Obstacle: adjObstacle}, true
			}
		}
	}
	return Collision{}, false
}
