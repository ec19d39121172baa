package vecmath

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-5

func TestVec3Ops(t *testing.T) {
	a := New(1, 2, 3)
	b := New(-3, 0, 5)
	if got := a.Add(b); got != New(-2, 2, 8) {
		t.Errorf("Add: expected (-2,2,8), got %v", got)
	}
	if got := a.Sub(b); got != New(4, 2, -2) {
		t.Errorf("Sub: expected (4,2,-2), got %v", got)
	}
	if got := a.Scale(2); got != New(2, 4, 6) {
		t.Errorf("Scale: expected (2,4,6), got %v", got)
	}
	if got := a.Negate(); got != New(-1, -2, -3) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %v", got)
	}
	if a != New(1, 2, 3) {
		t.Errorf("operands must not be mutated, got %v", a)
	}
}

func TestNormalize(t *testing.T) {
	v := New(3, 0, 4)
	n := v.Normalized()
	if !ApproxEqual(n, New(0.6, 0, 0.8), eps) {
		t.Errorf("expected (0.6,0,0.8), got %v", n)
	}

	v.Normalize()
	if v != n {
		t.Errorf("in-place Normalize: expected %v, got %v", n, v)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	got := Zero.Normalized()
	if got != Zero {
		t.Errorf("expected zero vector, got %v", got)
	}
	if math32.IsNaN(got.X) || math32.IsNaN(got.Y) || math32.IsNaN(got.Z) {
		t.Fatalf("normalize of zero vector produced NaN: %v", got)
	}

	_, err := Zero.NormalizeChecked()
	if !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("expected ErrDegenerateVector, got %v", err)
	}

	if _, err := New(0, 0, 2).NormalizeChecked(); err != nil {
		t.Errorf("unexpected error for non-zero vector: %v", err)
	}
}

func TestReflectUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	normals := []Vec3{Right, Up, Forward, New(1, 1, 0).Normalized(), New(-1, 1, -1).Normalized()}
	for i := 0; i < 200; i++ {
		v := New(rng.Float32()*20-10, rng.Float32()*20-10, rng.Float32()*20-10)
		if v.IsZero() {
			continue
		}
		n := normals[i%len(normals)]
		r := Reflect(v, n)
		if l := r.Length(); math32.Abs(l-1) > 1e-4 {
			t.Fatalf("reflect(%v, %v) length = %v, expected 1", v, n, l)
		}
	}
}

func TestReflectAntiParallel(t *testing.T) {
	v := New(4, 0, 0)
	n := New(-1, 0, 0)
	got := Reflect(v, n)
	want := v.Negate().Normalized()
	if !ApproxEqual(got, want, eps) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestReflectIgnoresOperandScale(t *testing.T) {
	d := New(0.97, 0, 0.24)
	n := New(-1, 0, 0)
	a := Reflect(d, n)
	b := Reflect(d.Scale(10), n.Scale(0.5))
	if !ApproxEqual(a, b, eps) {
		t.Errorf("reflect should depend only on directions: %v vs %v", a, b)
	}
	if a.X >= 0 {
		t.Errorf("expected x to flip sign, got %v", a)
	}
	if math32.Abs(a.Z-d.Normalized().Z) > eps {
		t.Errorf("tangential component changed: %v", a)
	}
}

func TestReflectCornerNormal(t *testing.T) {
	n := New(-1, -1, 0).Normalized()
	got := Reflect(New(1, 1, 0), n)
	want := New(-1, -1, 0).Normalized()
	if !ApproxEqual(got, want, eps) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestReflectDegenerate(t *testing.T) {
	if got := Reflect(Zero, Up); got != Zero {
		t.Errorf("expected zero vector for zero incident, got %v", got)
	}
}
