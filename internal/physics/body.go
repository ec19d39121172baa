package physics

import "metaballs/internal/vecmath"

// Ranges the generator draws blob properties from (half-open, [min, max)).
const (
	MinSpeed  = 1
	MaxSpeed  = 3
	MinRadius = 0.75
	MaxRadius = 1.75
	// DirectionSpread is the half-width of the cube the raw direction sample is drawn from.
	DirectionSpread = 25
)

// Blob is one animated sphere: a point mass moving in a straight line at constant speed
// until it reflects off a boundary of the scene volume.
type Blob struct {
	Position vecmath.Vec3
	// Direction is the unit direction of travel.
	Direction vecmath.Vec3
	Speed     float32
	Radius    float32
	Color     [3]float32
	// BounceTimer is the simulated time in seconds since the last reflection.
	BounceTimer float32
}

// NewBlob returns a blob at position moving along direction (normalized here) with the given
// speed, radius and color. The bounce timer starts at zero.
func NewBlob(position, direction vecmath.Vec3, speed, radius float32, color [3]float32) *Blob {
	if speed < 0 {
		speed = 0
	}
	return &Blob{
		Position:  position,
		Direction: direction.Normalized(),
		Speed:     speed,
		Radius:    radius,
		Color:     color,
	}
}

// Velocity is Direction scaled by Speed.
func (b *Blob) Velocity() vecmath.Vec3 {
	return b.Direction.Scale(b.Speed)
}

// Advanceable is anything the scene can step forward in time inside a bounding volume.
type Advanceable interface {
	Advance(dt, animSpeed float32, bounds Bounds) bool
}

var _ Advanceable = (*Blob)(nil)
