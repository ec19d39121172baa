package camera

import (
	"metaballs/internal/input"
	"metaballs/internal/vecmath"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// PitchLimit is the exclusive bound on |pitch| in degrees; reaching it snaps to PitchSnap.
	PitchLimit = 90
	// PitchSnap keeps the camera off the exact vertical so the look-at basis never degenerates.
	PitchSnap = 89.9

	DefaultMouseSpeed = 5
	DefaultMoveSpeed  = 5
	DefaultFastSpeed  = 15
)

// Config holds the tunable camera values (see engineconfig CameraPrefs).
type Config struct {
	Position   [3]float32
	MouseSpeed float32
	MoveSpeed  float32
	FastSpeed  float32
}

// DefaultConfig returns the camera the scene starts with: slightly above the floor of the
// blob volume, looking down -Z into it.
func DefaultConfig() Config {
	return Config{
		Position:   [3]float32{0, 4, 3},
		MouseSpeed: DefaultMouseSpeed,
		MoveSpeed:  DefaultMoveSpeed,
		FastSpeed:  DefaultFastSpeed,
	}
}

// Camera is a first-person camera driven by continuous keyboard and mouse input.
// Yaw and pitch (degrees) are accumulated separately and the orientation basis is rebuilt
// from the fixed world axes every time they change, so rotations never accumulate drift.
type Camera struct {
	Position vecmath.Vec3
	Right    vecmath.Vec3
	Up       vecmath.Vec3
	Forward  vecmath.Vec3
	Yaw      float32
	Pitch    float32

	MouseSpeed float32
	MoveSpeed  float32
	FastSpeed  float32
	// Speed is the tier used by the last UpdatePosition (MoveSpeed or FastSpeed).
	Speed float32
}

// New returns a camera at cfg.Position with the world basis as its orientation.
// Non-positive speeds fall back to the defaults.
func New(cfg Config) *Camera {
	if cfg.MouseSpeed <= 0 {
		cfg.MouseSpeed = DefaultMouseSpeed
	}
	if cfg.MoveSpeed <= 0 {
		cfg.MoveSpeed = DefaultMoveSpeed
	}
	if cfg.FastSpeed <= 0 {
		cfg.FastSpeed = DefaultFastSpeed
	}
	return &Camera{
		Position:   vecmath.FromArray(cfg.Position),
		Right:      vecmath.Right,
		Up:         vecmath.Up,
		Forward:    vecmath.Forward,
		MouseSpeed: cfg.MouseSpeed,
		MoveSpeed:  cfg.MoveSpeed,
		FastSpeed:  cfg.FastSpeed,
		Speed:      cfg.MoveSpeed,
	}
}

// UpdatePosition moves the camera by the keys held in in.
//
// Each axis takes one direction: when both keys of a pair are held the first of the pair
// (strafe-left, backward, down) wins. The per-axis directions are summed and normalized so
// diagonal movement is not faster, then scaled by Speed*dt. Strafe and forward follow the
// current Right/Forward vectors; vertical movement uses world up.
func (c *Camera) UpdatePosition(in *input.State, dt float32) {
	var dir vecmath.Vec3

	if in.Pressed(input.StrafeLeft) {
		dir = dir.Add(c.Right.Negate())
	} else if in.Pressed(input.StrafeRight) {
		dir = dir.Add(c.Right)
	}

	if in.Pressed(input.Backward) {
		dir = dir.Add(c.Forward.Negate())
	} else if in.Pressed(input.Forward) {
		dir = dir.Add(c.Forward)
	}

	if in.Pressed(input.Down) {
		dir = dir.Add(vecmath.Up.Negate())
	} else if in.Pressed(input.Up) {
		dir = dir.Add(vecmath.Up)
	}

	if in.Pressed(input.Fast) {
		c.Speed = c.FastSpeed
	} else {
		c.Speed = c.MoveSpeed
	}

	// No key held: the zero vector stays zero.
	step, err := dir.NormalizeChecked()
	if err != nil {
		return
	}
	c.Position = c.Position.Add(step.Scale(c.Speed * dt))
}

// UpdateOrientation applies the pointer delta to yaw and pitch while rotation is enabled.
// When it is not, the delta is consumed and orientation is left alone.
func (c *Camera) UpdateOrientation(in *input.State, dt float32) {
	if !in.RotateEnabled() {
		in.ConsumeMouse()
		return
	}
	dx, dy := in.MouseDelta()
	c.Yaw -= dx * c.MouseSpeed * dt
	c.Pitch -= dy * c.MouseSpeed * dt

	if c.Pitch >= PitchLimit {
		c.Pitch = PitchSnap
	} else if c.Pitch <= -PitchLimit {
		c.Pitch = -PitchSnap
	}

	c.rebuildBasis()
}

// SetOrientation sets yaw and pitch directly (clamped like UpdateOrientation) and rebuilds the basis.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = mgl32.Clamp(pitch, -PitchSnap, PitchSnap)
	c.rebuildBasis()
}

// rebuildBasis rotates the fixed world axes: yaw about world up, then pitch about world right.
// Right only sees the yaw.
func (c *Camera) rebuildBasis() {
	yaw := mgl32.HomogRotate3DY(mgl32.DegToRad(c.Yaw))
	rot := yaw.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.Pitch)))

	c.Forward = transform(rot, vecmath.Forward).Normalized()
	c.Right = transform(yaw, vecmath.Right).Normalized()
	c.Up = transform(rot, vecmath.Up).Normalized()
}

// Target is the look-at point one unit ahead of the camera.
func (c *Camera) Target() vecmath.Vec3 {
	return c.Position.Add(c.Forward)
}

// ViewMatrix returns the look-at transform from Position towards Target with world up.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(toMgl(c.Position), toMgl(c.Target()), toMgl(vecmath.Up))
}

// RotationMatrix is the camera rotation fed to the raymarching shader: the inverse angles,
// yaw about up then pitch about right, since the shader rotates view rays into world space.
func (c *Camera) RotationMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(-c.Yaw)).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-c.Pitch)))
}

// ShaderPosition is Position with Z negated; the shader works in the opposite handedness.
func (c *Camera) ShaderPosition() [3]float32 {
	return [3]float32{c.Position.X, c.Position.Y, -c.Position.Z}
}

func transform(m mgl32.Mat4, v vecmath.Vec3) vecmath.Vec3 {
	r := m.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 0})
	return vecmath.New(r[0], r[1], r[2])
}

func toMgl(v vecmath.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
