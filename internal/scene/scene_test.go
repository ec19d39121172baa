package scene

import (
	"errors"
	"testing"

	"metaballs/internal/physics"
	"metaballs/internal/vecmath"

	"github.com/chewxy/math32"
)

func newScene(seed int64) *Scene {
	return New(physics.DefaultBounds(), NewGenerator(seed))
}

func checkMirrors(t *testing.T, s *Scene) {
	t.Helper()
	if len(s.Balls()) != s.Len()*BallStride {
		t.Fatalf("balls buffer has %d floats for %d blobs", len(s.Balls()), s.Len())
	}
	if len(s.Colors()) != s.Len()*ColorStride {
		t.Fatalf("colors buffer has %d floats for %d blobs", len(s.Colors()), s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		b := s.Blob(i)
		got := s.Balls()[i*BallStride : (i+1)*BallStride]
		if got[0] != b.Position.X || got[1] != b.Position.Y || got[2] != b.Position.Z || got[3] != b.Radius {
			t.Errorf("blob %d: balls entry %v does not match %v r=%v", i, got, b.Position, b.Radius)
		}
		c := s.Colors()[i*ColorStride : (i+1)*ColorStride]
		if c[0] != b.Color[0] || c[1] != b.Color[1] || c[2] != b.Color[2] {
			t.Errorf("blob %d: colors entry %v does not match %v", i, c, b.Color)
		}
	}
}

func TestCreateWithinInsetBounds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newScene(seed)
		s.Populate(HardLimit)
		in := s.Bounds.Inset(Inset)
		for i := 0; i < s.Len(); i++ {
			p := s.Blob(i).Position
			if p.X < in.XNeg || p.X >= in.XPos || p.Y < in.YNeg || p.Y >= in.YPos || p.Z < in.ZNeg || p.Z >= in.ZPos {
				t.Fatalf("seed %d blob %d at %v outside %v", seed, i, p, in)
			}
		}
	}
}

func TestCreatePropertyRanges(t *testing.T) {
	s := newScene(42)
	s.Populate(HardLimit)
	for i := 0; i < s.Len(); i++ {
		b := s.Blob(i)
		if b.Speed < physics.MinSpeed || b.Speed >= physics.MaxSpeed {
			t.Errorf("blob %d speed %v out of range", i, b.Speed)
		}
		if b.Radius < physics.MinRadius || b.Radius >= physics.MaxRadius {
			t.Errorf("blob %d radius %v out of range", i, b.Radius)
		}
		for _, c := range b.Color {
			if c < 0 || c >= 1 {
				t.Errorf("blob %d color %v out of range", i, b.Color)
			}
		}
		if l := b.Direction.Length(); math32.Abs(l-1) > 1e-5 {
			t.Errorf("blob %d direction not unit: %v", i, l)
		}
		if b.BounceTimer != 0 {
			t.Errorf("blob %d should start with a zero bounce timer", i)
		}
	}
}

func TestCreateCapacity(t *testing.T) {
	s := newScene(3)
	if n := s.Populate(HardLimit + 5); n != HardLimit {
		t.Fatalf("expected %d blobs added, got %d", HardLimit, n)
	}
	if s.Create() {
		t.Errorf("31st blob should be rejected")
	}
	if s.Len() != HardLimit {
		t.Errorf("expected %d blobs, got %d", HardLimit, s.Len())
	}
	if err := s.TryCreate(); !errors.Is(err, ErrCapacity) {
		t.Errorf("expected ErrCapacity, got %v", err)
	}
	if s.Add(&physics.Blob{}) {
		t.Errorf("Add past the limit should be rejected")
	}
	checkMirrors(t, s)
}

func TestCreateWithoutGenerator(t *testing.T) {
	s := New(physics.DefaultBounds(), nil)
	if err := s.TryCreate(); err == nil {
		t.Errorf("expected error without a generator")
	}
	if s.Len() != 0 {
		t.Errorf("expected no blobs, got %d", s.Len())
	}
}

func TestAdvanceKeepsMirrorsInSync(t *testing.T) {
	s := newScene(9)
	s.Populate(12)
	for i := 0; i < 600; i++ {
		s.Advance(1.0/60, 1.5)
	}
	checkMirrors(t, s)
}

func TestAdvanceReportsReflections(t *testing.T) {
	s := New(physics.DefaultBounds(), nil)
	s.Add(&physics.Blob{Position: vecmath.New(9.5, 5, 10), Direction: vecmath.New(1, 0, 0), Speed: 1, BounceTimer: 1})
	s.Add(&physics.Blob{Position: vecmath.New(0, 5, 10), Direction: vecmath.New(1, 0, 0), Speed: 1, BounceTimer: 1})
	if n := s.Advance(0.1, 1); n != 1 {
		t.Errorf("expected 1 reflection, got %d", n)
	}
	if s.Blob(0).Direction.X >= 0 {
		t.Errorf("expected first blob to reflect, got %v", s.Blob(0).Direction)
	}
	if math32.Abs(s.Balls()[BallStride]-0.1) > 1e-6 {
		t.Errorf("expected second blob mirrored at x=0.1, got %v", s.Balls()[BallStride])
	}
	checkMirrors(t, s)
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(5).Blob(physics.DefaultBounds())
	b := NewGenerator(5).Blob(physics.DefaultBounds())
	if *a != *b {
		t.Errorf("same seed should give the same blob: %v vs %v", a, b)
	}
}
