package cloth

import (
	"github.com/lixenwraith/drape/parameter"
)

// DistanceConstraint keeps two particles of the same cloth at RestLength
// P1 and P2 index into the owning cloth's particle slice
type DistanceConstraint struct {
	P1, P2     int
	RestLength float32
	// Stiffness in [0, 1], fraction of the error corrected per relaxation
	Stiffness float32
}

// NewDistanceConstraint creates a fully stiff constraint
func NewDistanceConstraint(p1, p2 int, restLength float32) DistanceConstraint {
	return DistanceConstraint{
		P1:         p1,
		P2:         p2,
		RestLength: restLength,
		Stiffness:  1.0,
	}
}

// Solve performs one relaxation step in place
// The correction is split by inverse mass, pinned ends never move
// Near-coincident particles are skipped to avoid dividing by zero
func (c DistanceConstraint) Solve(particles []Particle) {
	if c.P1 < 0 || c.P2 < 0 || c.P1 >= len(particles) || c.P2 >= len(particles) {
		return
	}
	a := &particles[c.P1]
	b := &particles[c.P2]

	delta := b.Position.Sub(a.Position)
	currentLength := delta.Len()
	if currentLength < parameter.ConstraintMinLength {
		return
	}

	diff := (currentLength - c.RestLength) / currentLength
	correction := delta.Mul(diff).Mul(0.5).Mul(c.Stiffness)

	w1 := a.InvMass
	w2 := b.InvMass
	totalWeight := w1 + w2
	if totalWeight <= 0 {
		return
	}

	if !a.Pinned {
		a.Position = a.Position.Add(correction.Mul(w1 / totalWeight))
	}
	if !b.Pinned {
		b.Position = b.Position.Sub(correction.Mul(w2 / totalWeight))
	}
}
