package scene

import (
	"errors"

	"metaballs/internal/physics"
)

const (
	// HardLimit is the maximum number of live blobs. The shader's uniform arrays are sized for it.
	HardLimit = 30
	// Inset keeps newly created blobs this far inside every boundary plane.
	Inset = 3

	// BallStride and ColorStride are the float counts per blob in the flattened buffers.
	BallStride  = 4
	ColorStride = 3
)

// ErrCapacity is returned by TryCreate and TryAdd when the scene already holds HardLimit blobs.
var ErrCapacity = errors.New("scene: blob limit reached")

// Scene owns the blobs and the box they bounce in, plus two flattened mirrors of the blob
// list laid out for the shader: (x, y, z, radius) per blob and (r, g, b) per blob.
//
// The mirrors are only written together with the blob list (Add appends to all three,
// Advance rewrites the position slots of the blob it just moved), so index i of every
// buffer always describes blob i.
type Scene struct {
	Bounds physics.Bounds

	blobs  []*physics.Blob
	balls  []float32
	colors []float32
	gen    *Generator
}

// New returns an empty scene inside bounds. gen creates blobs for Create; it may be nil if
// only Add is used.
func New(bounds physics.Bounds, gen *Generator) *Scene {
	return &Scene{
		Bounds: bounds,
		blobs:  make([]*physics.Blob, 0, HardLimit),
		balls:  make([]float32, 0, HardLimit*BallStride),
		colors: make([]float32, 0, HardLimit*ColorStride),
		gen:    gen,
	}
}

// Populate creates n blobs (stopping at HardLimit) and returns how many were added.
func (s *Scene) Populate(n int) int {
	added := 0
	for i := 0; i < n; i++ {
		if !s.Create() {
			break
		}
		added++
	}
	return added
}

// Create generates a random blob inside the inset bounds and adds it. It reports false,
// and does nothing, when the scene is full.
func (s *Scene) Create() bool {
	return s.TryCreate() == nil
}

// TryCreate is Create with ErrCapacity instead of a boolean.
func (s *Scene) TryCreate() error {
	if s.Full() {
		return ErrCapacity
	}
	if s.gen == nil {
		return errors.New("scene: no generator")
	}
	return s.TryAdd(s.gen.Blob(s.Bounds))
}

// Add appends b and its mirror entries. It reports false when the scene is full.
func (s *Scene) Add(b *physics.Blob) bool {
	return s.TryAdd(b) == nil
}

// TryAdd is Add with ErrCapacity instead of a boolean.
func (s *Scene) TryAdd(b *physics.Blob) error {
	if s.Full() {
		return ErrCapacity
	}
	s.blobs = append(s.blobs, b)
	s.balls = append(s.balls, b.Position.X, b.Position.Y, b.Position.Z, b.Radius)
	s.colors = append(s.colors, b.Color[0], b.Color[1], b.Color[2])
	return nil
}

// Advance steps every blob by dt scaled by animSpeed and mirrors the new positions.
// It returns the number of blobs that reflected off a boundary this step.
func (s *Scene) Advance(dt, animSpeed float32) int {
	reflections := 0
	for i, b := range s.blobs {
		if b.Advance(dt, animSpeed, s.Bounds) {
			reflections++
		}
		s.balls[i*BallStride] = b.Position.X
		s.balls[i*BallStride+1] = b.Position.Y
		s.balls[i*BallStride+2] = b.Position.Z
	}
	return reflections
}

// Len is the number of live blobs.
func (s *Scene) Len() int {
	return len(s.blobs)
}

// Full reports whether the scene is at HardLimit.
func (s *Scene) Full() bool {
	return len(s.blobs) >= HardLimit
}

// Blob returns a copy of blob i.
func (s *Scene) Blob(i int) physics.Blob {
	return *s.blobs[i]
}

// Balls is the flattened (x, y, z, radius) buffer. Callers must treat it as read-only.
func (s *Scene) Balls() []float32 {
	return s.balls
}

// Colors is the flattened (r, g, b) buffer. Callers must treat it as read-only.
func (s *Scene) Colors() []float32 {
	return s.colors
}
