package physics

import (
	"testing"

	"metaballs/internal/vecmath"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func TestCollisionNormal(t *testing.T) {
	b := DefaultBounds()
	tests := []struct {
		name    string
		p       vecmath.Vec3
		want    vecmath.Vec3
		crossed bool
	}{
		{"inside", vecmath.New(0, 5, 10), vecmath.Zero, false},
		{"on plane", vecmath.New(9, 9, 20), vecmath.Zero, false},
		{"x pos", vecmath.New(9.5, 5, 10), vecmath.New(-1, 0, 0), true},
		{"x neg", vecmath.New(-9.5, 5, 10), vecmath.New(1, 0, 0), true},
		{"y neg", vecmath.New(0, 0.5, 10), vecmath.New(0, 1, 0), true},
		{"z pos", vecmath.New(0, 5, 21), vecmath.New(0, 0, -1), true},
		{"corner", vecmath.New(10, 10, 4), vecmath.New(-1, -1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, crossed := b.CollisionNormal(tt.p)
			if crossed != tt.crossed || n != tt.want {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.want, tt.crossed, n, crossed)
			}
		})
	}
}

func TestAdvanceReflectsWhenCooldownElapsed(t *testing.T) {
	b := &Blob{
		Position:    vecmath.New(9.05, 5, 10),
		Direction:   vecmath.New(1, 0, 0),
		Speed:       1,
		BounceTimer: 0.3,
	}
	if !b.Advance(0.1, 1, DefaultBounds()) {
		t.Fatalf("expected a reflection")
	}
	if b.Direction.X >= 0 {
		t.Errorf("expected reflected x direction, got %v", b.Direction)
	}
	if b.BounceTimer != 0 {
		t.Errorf("expected bounce timer reset, got %v", b.BounceTimer)
	}
	if math32.Abs(b.Position.X-8.95) > eps {
		t.Errorf("expected integration along the new direction to x=8.95, got %v", b.Position.X)
	}
}

func TestAdvanceSuppressedDuringCooldown(t *testing.T) {
	b := &Blob{
		Position:    vecmath.New(9.05, 5, 10),
		Direction:   vecmath.New(1, 0, 0),
		Speed:       1,
		BounceTimer: 0.1,
	}
	if b.Advance(0.1, 1, DefaultBounds()) {
		t.Fatalf("bounce should be suppressed during cooldown")
	}
	if b.Direction != vecmath.New(1, 0, 0) {
		t.Errorf("expected direction unchanged, got %v", b.Direction)
	}
	if math32.Abs(b.BounceTimer-0.2) > eps {
		t.Errorf("expected timer to keep running to 0.2, got %v", b.BounceTimer)
	}
	if math32.Abs(b.Position.X-9.15) > eps {
		t.Errorf("expected position to integrate forward to 9.15, got %v", b.Position.X)
	}
}

func TestAdvanceChecksBeforeIntegrating(t *testing.T) {
	// Just inside the plane: the crossing happens during this step and is only seen next step.
	b := &Blob{
		Position:    vecmath.New(8.9, 5, 10),
		Direction:   vecmath.New(1, 0, 0),
		Speed:       1,
		BounceTimer: 0.3,
	}
	if b.Advance(0.2, 1, DefaultBounds()) {
		t.Fatalf("no reflection expected while still inside")
	}
	if !b.Advance(0.2, 1, DefaultBounds()) {
		t.Fatalf("expected reflection once outside")
	}
	if b.Direction.X >= 0 {
		t.Errorf("expected reflected direction, got %v", b.Direction)
	}
}

func TestReflectionCannotRetriggerWithinCooldown(t *testing.T) {
	// Far outside and moving further out along z: after the first reflection the blob stays
	// outside for many frames, but reflects again only once the cooldown has elapsed.
	b := &Blob{
		Position:    vecmath.New(0, 5, 30),
		Direction:   vecmath.New(0, 0, 1),
		Speed:       0.01,
		BounceTimer: 1,
	}
	bounds := DefaultBounds()
	const dt = 0.01
	var elapsed float32
	var reflections []float32
	for i := 0; i < 100; i++ {
		if b.Advance(dt, 1, bounds) {
			reflections = append(reflections, elapsed)
		}
		elapsed += dt
	}
	if len(reflections) < 2 {
		t.Fatalf("expected repeated reflections while outside, got %v", reflections)
	}
	for i := 1; i < len(reflections); i++ {
		if gap := reflections[i] - reflections[i-1]; gap < BounceCooldown-1e-3 {
			t.Errorf("reflections %d and %d only %v apart", i-1, i, gap)
		}
	}
}

func TestAdvanceCornerReflection(t *testing.T) {
	b := &Blob{
		Position:    vecmath.New(9.5, 9.5, 10),
		Direction:   vecmath.New(1, 1, 0).Normalized(),
		Speed:       1,
		BounceTimer: 1,
	}
	b.Advance(0.01, 1, DefaultBounds())
	want := vecmath.New(-1, -1, 0).Normalized()
	if !vecmath.ApproxEqual(b.Direction, want, eps) {
		t.Errorf("expected corner reflection %v, got %v", want, b.Direction)
	}
}

func TestAdvanceAnimSpeedScales(t *testing.T) {
	b := NewBlob(vecmath.New(0, 5, 10), vecmath.New(0, 0, 2), 2, 1, [3]float32{})
	b.Advance(0.5, 3, DefaultBounds())
	if math32.Abs(b.Position.Z-13) > eps {
		t.Errorf("expected z=13, got %v", b.Position.Z)
	}
	if math32.Abs(b.BounceTimer-1.5) > eps {
		t.Errorf("expected timer 1.5, got %v", b.BounceTimer)
	}
}

func TestBoundsValidateAndInset(t *testing.T) {
	if err := DefaultBounds().Validate(); err != nil {
		t.Fatalf("default bounds invalid: %v", err)
	}
	bad := DefaultBounds()
	bad.YNeg = 10
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for inverted y bounds")
	}
	in := DefaultBounds().Inset(3)
	want := Bounds{XPos: 6, XNeg: -6, YPos: 6, YNeg: 4, ZPos: 17, ZNeg: 8}
	if in != want {
		t.Errorf("expected %v, got %v", want, in)
	}
}
