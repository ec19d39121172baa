package scene

import (
	"math/rand"
	"time"

	"metaballs/internal/physics"
	"metaballs/internal/vecmath"

	"github.com/chewxy/math32"
)

// Generator draws random blobs. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed; seed == 0 uses a time-based seed.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Blob draws a blob uniformly inside bounds shrunk by Inset.
//
// The direction is a uniform sample from the cube [-DirectionSpread, DirectionSpread)^3,
// normalized, so diagonals are favoured over a uniform sphere sample.
func (g *Generator) Blob(bounds physics.Bounds) *physics.Blob {
	in := bounds.Inset(Inset)
	pos := vecmath.New(
		g.between(in.XNeg, in.XPos),
		g.between(in.YNeg, in.YPos),
		g.between(in.ZNeg, in.ZPos),
	)

	var dir vecmath.Vec3
	for {
		raw := vecmath.New(
			g.between(-physics.DirectionSpread, physics.DirectionSpread),
			g.between(-physics.DirectionSpread, physics.DirectionSpread),
			g.between(-physics.DirectionSpread, physics.DirectionSpread),
		)
		var err error
		if dir, err = raw.NormalizeChecked(); err == nil {
			break
		}
	}

	speed := g.between(physics.MinSpeed, physics.MaxSpeed)
	radius := g.between(physics.MinRadius, physics.MaxRadius)
	color := [3]float32{g.rng.Float32(), g.rng.Float32(), g.rng.Float32()}
	return physics.NewBlob(pos, dir, speed, radius, color)
}

// between returns a uniform sample in [lo, hi).
func (g *Generator) between(lo, hi float32) float32 {
	v := lo + g.rng.Float32()*(hi-lo)
	// Float rounding can land exactly on hi for wide ranges.
	if v >= hi {
		return math32.Nextafter(hi, lo)
	}
	return v
}
