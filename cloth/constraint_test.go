package cloth

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func pairDistance(ps []Particle) float32 {
	return ps[1].Position.Sub(ps[0].Position).Len()
}

func TestDistanceConstraint_MovesTowardRest(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		want  float32
	}{
		{"stretched", 2.0, 1.5},
		{"compressed", 0.5, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := []Particle{
				NewParticle(mgl32.Vec3{0, 0, 0}, 1),
				NewParticle(mgl32.Vec3{tt.start, 0, 0}, 1),
			}
			NewDistanceConstraint(0, 1, 1.0).Solve(ps)

			got := pairDistance(ps)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("distance = %v, want %v", got, tt.want)
			}
			before := math.Abs(float64(tt.start - 1))
			after := math.Abs(float64(got - 1))
			if after >= before {
				t.Errorf("error grew: before %v after %v", before, after)
			}
		})
	}
}

func TestDistanceConstraint_Stiffness(t *testing.T) {
	solveWith := func(k float32) float32 {
		ps := []Particle{
			NewParticle(mgl32.Vec3{}, 1),
			NewParticle(mgl32.Vec3{2, 0, 0}, 1),
		}
		c := NewDistanceConstraint(0, 1, 1)
		c.Stiffness = k
		c.Solve(ps)
		return pairDistance(ps)
	}

	soft := solveWith(0.1)
	stiff := solveWith(1.0)
	if stiff >= soft {
		t.Errorf("Stiff constraint should correct more: soft=%v stiff=%v", soft, stiff)
	}
}

func TestDistanceConstraint_MassWeighted(t *testing.T) {
	ps := []Particle{
		NewParticle(mgl32.Vec3{0, 0, 0}, 1), // invMass 1
		NewParticle(mgl32.Vec3{2, 0, 0}, 3), // invMass 1/3
	}
	NewDistanceConstraint(0, 1, 1).Solve(ps)

	moved0 := ps[0].Position[0]
	moved1 := 2 - ps[1].Position[0]
	if moved0 <= moved1 {
		t.Errorf("Lighter particle should move more: light=%v heavy=%v", moved0, moved1)
	}
}

func TestDistanceConstraint_PinnedEndHolds(t *testing.T) {
	anchor := mgl32.Vec3{0, 0, 0}
	ps := []Particle{
		NewPinnedParticle(anchor),
		NewParticle(mgl32.Vec3{3, 0, 0}, 1),
	}
	c := NewDistanceConstraint(0, 1, 1)

	for i := 0; i < 40; i++ {
		c.Solve(ps)
	}

	if ps[0].Position != anchor {
		t.Errorf("Pinned end moved to %v", ps[0].Position)
	}
	if d := pairDistance(ps); math.Abs(float64(d-1)) > 1e-4 {
		t.Errorf("distance = %v, want 1", d)
	}
}

func TestDistanceConstraint_BothPinned(t *testing.T) {
	ps := []Particle{
		NewPinnedParticle(mgl32.Vec3{0, 0, 0}),
		NewPinnedParticle(mgl32.Vec3{5, 0, 0}),
	}
	NewDistanceConstraint(0, 1, 1).Solve(ps)
	if pairDistance(ps) != 5 {
		t.Errorf("Pinned pair moved: distance %v", pairDistance(ps))
	}
}

func TestDistanceConstraint_Degenerate(t *testing.T) {
	ps := []Particle{
		NewParticle(mgl32.Vec3{}, 1),
		NewParticle(mgl32.Vec3{}, 1),
	}
	NewDistanceConstraint(0, 1, 1).Solve(ps)

	for i := range ps {
		if ps[i].Position != (mgl32.Vec3{}) {
			t.Errorf("particle %d moved to %v", i, ps[i].Position)
		}
	}
}

func TestDistanceConstraint_OutOfRange(t *testing.T) {
	ps := []Particle{NewParticle(mgl32.Vec3{}, 1)}
	// Must not panic
	NewDistanceConstraint(0, 5, 1).Solve(ps)
	NewDistanceConstraint(-1, 0, 1).Solve(ps)
}

func TestDistanceConstraint_ZeroRestLength(t *testing.T) {
	ps := []Particle{
		NewParticle(mgl32.Vec3{}, 1),
		NewParticle(mgl32.Vec3{1, 0, 0}, 1),
	}
	NewDistanceConstraint(0, 1, 0).Solve(ps)
	if d := pairDistance(ps); d >= 1 {
		t.Errorf("Zero rest length should pull together, distance %v", d)
	}
}
