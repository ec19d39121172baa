package vecmath

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrDegenerateVector is reported by NormalizeChecked when the input has zero (or non-finite) length.
var ErrDegenerateVector = errors.New("vecmath: degenerate vector")

// Vec3 is a float32 3D vector. It is a value type: every operation returns a new vector
// except Normalize on a pointer receiver, which rewrites the vector in place.
type Vec3 struct {
	X, Y, Z float32
}

// Common axes. These are the fixed world basis the camera rotates from.
var (
	Zero    = Vec3{}
	Right   = Vec3{X: 1}
	Up      = Vec3{Y: 1}
	Forward = Vec3{Z: -1}
)

// New returns the vector (x, y, z).
func New(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromArray converts a [3]float32 (the layout used by config and raylib helpers) to a Vec3.
func FromArray(a [3]float32) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns v as [3]float32.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(u Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// LengthSq returns the squared magnitude of v.
func (v Vec3) LengthSq() float32 {
	return v.Dot(v)
}

// Length returns the magnitude of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSq())
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalized returns v scaled to unit length. A zero-length vector normalizes to the zero
// vector instead of NaN so that nothing downstream (position integration, shader uniforms)
// is poisoned. Use NormalizeChecked to find out whether that happened.
func (v Vec3) Normalized() Vec3 {
	n, _ := v.NormalizeChecked()
	return n
}

// NormalizeChecked is Normalized with an error: it returns (Zero, ErrDegenerateVector) when
// v has zero length or a non-finite component.
func (v Vec3) NormalizeChecked() (Vec3, error) {
	mag := v.Length()
	if mag == 0 || math32.IsNaN(mag) || math32.IsInf(mag, 0) {
		return Zero, ErrDegenerateVector
	}
	inv := 1 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}, nil
}

// Normalize rewrites v in place with Normalized semantics.
func (v *Vec3) Normalize() {
	*v = v.Normalized()
}

// Reflect reflects the direction d about the surface normal n: r = d - 2(d.n)n.
// Both operands are normalized first and the result is normalized again, so only the
// directions of d and n matter and the result is always unit length (or zero when either
// input is degenerate).
func Reflect(d, n Vec3) Vec3 {
	d = d.Normalized()
	n = n.Normalized()
	return d.Sub(n.Scale(2 * d.Dot(n))).Normalized()
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func ApproxEqual(a, b Vec3, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps && math32.Abs(a.Y-b.Y) <= eps && math32.Abs(a.Z-b.Z) <= eps
}
