package physics

import (
	"fmt"

	"metaballs/internal/vecmath"
)

// BounceCooldown is the simulated time (seconds) a blob must travel after a reflection
// before another one can fire. While a blob is still outside the volume after reflecting,
// this keeps it from flipping back and forth every frame.
const BounceCooldown = 0.25

// Bounds are the six axis-aligned planes enclosing the blobs.
type Bounds struct {
	XPos, XNeg float32
	YPos, YNeg float32
	ZPos, ZNeg float32
}

// DefaultBounds is the box the scene starts with: x in [-9, 9], y in [1, 9], z in [5, 20].
func DefaultBounds() Bounds {
	return Bounds{
		XPos: 9, XNeg: -9,
		YPos: 9, YNeg: 1,
		ZPos: 20, ZNeg: 5,
	}
}

// Validate returns an error when a positive plane is not strictly above its negative plane.
func (b Bounds) Validate() error {
	switch {
	case b.XPos <= b.XNeg:
		return fmt.Errorf("physics: x bounds inverted (%v <= %v)", b.XPos, b.XNeg)
	case b.YPos <= b.YNeg:
		return fmt.Errorf("physics: y bounds inverted (%v <= %v)", b.YPos, b.YNeg)
	case b.ZPos <= b.ZNeg:
		return fmt.Errorf("physics: z bounds inverted (%v <= %v)", b.ZPos, b.ZNeg)
	}
	return nil
}

// Inset shrinks the box by offset on every side.
func (b Bounds) Inset(offset float32) Bounds {
	return Bounds{
		XPos: b.XPos - offset, XNeg: b.XNeg + offset,
		YPos: b.YPos - offset, YNeg: b.YNeg + offset,
		ZPos: b.ZPos - offset, ZNeg: b.ZNeg + offset,
	}
}

// CollisionNormal returns the inward normal (unnormalized) for every plane p lies beyond, and
// whether any plane was crossed. Each axis reports at most one side; several axes can fire
// at once, which gives a corner normal.
func (b Bounds) CollisionNormal(p vecmath.Vec3) (n vecmath.Vec3, crossed bool) {
	if p.X > b.XPos {
		n.X = -1
		crossed = true
	} else if p.X < b.XNeg {
		n.X = 1
		crossed = true
	}

	if p.Y > b.YPos {
		n.Y = -1
		crossed = true
	} else if p.Y < b.YNeg {
		n.Y = 1
		crossed = true
	}

	if p.Z > b.ZPos {
		n.Z = -1
		crossed = true
	} else if p.Z < b.ZNeg {
		n.Z = 1
		crossed = true
	}
	return n, crossed
}

// Advance steps the blob by dt seconds of wall time scaled by animSpeed and reports whether
// it reflected this step.
//
// The boundary test runs on the position from before integration. A reflection needs both
// a crossed plane and BounceTimer > BounceCooldown; otherwise the crossing is ignored and the
// timer keeps running. Position is always integrated afterwards (explicit Euler, no
// sub-stepping, no push-back), so a fast blob may sit outside the box for a few frames.
func (b *Blob) Advance(dt, animSpeed float32, bounds Bounds) bool {
	b.BounceTimer += dt * animSpeed

	reflected := false
	if n, crossed := bounds.CollisionNormal(b.Position); crossed && b.BounceTimer > BounceCooldown {
		b.Direction = vecmath.Reflect(b.Direction, n.Normalized())
		b.BounceTimer = 0
		reflected = true
	}

	b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt * animSpeed))
	return reflected
}
