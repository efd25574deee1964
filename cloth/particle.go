package cloth

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Particle is a Verlet point mass
// Velocity is implicit: Position - PrevPosition
type Particle struct {
	Position     mgl32.Vec3
	PrevPosition mgl32.Vec3
	// Acceleration accumulates force*InvMass until the next Integrate
	Acceleration mgl32.Vec3
	// InvMass is 1/mass, 0 means infinite mass
	InvMass float32
	// Pinned particles ignore forces, integration, constraint correction and collider response
	Pinned bool
}

// NewParticle creates a free particle at rest
// Non-positive mass produces an immovable (InvMass == 0) but unpinned particle
func NewParticle(position mgl32.Vec3, mass float32) Particle {
	var invMass float32
	if mass > 0 {
		invMass = 1.0 / mass
	}
	return Particle{
		Position:     position,
		PrevPosition: position,
		InvMass:      invMass,
	}
}

// NewPinnedParticle creates a particle fixed in place
func NewPinnedParticle(position mgl32.Vec3) Particle {
	return Particle{
		Position:     position,
		PrevPosition: position,
		Pinned:       true,
	}
}

// ApplyForce accumulates force scaled by inverse mass
func (p *Particle) ApplyForce(force mgl32.Vec3) {
	if p.Pinned {
		return
	}
	p.Acceleration = p.Acceleration.Add(force.Mul(p.InvMass))
}

// Integrate advances one Verlet step and clears the accumulator
// damping scales only the carried-over velocity, not the acceleration term
func (p *Particle) Integrate(dt, damping float32) {
	if p.Pinned {
		return
	}

	velocity := p.Position.Sub(p.PrevPosition)
	p.PrevPosition = p.Position
	p.Position = p.Position.Add(velocity.Mul(damping).Add(p.Acceleration.Mul(dt).Mul(dt)))
	p.Acceleration = mgl32.Vec3{}
}

// Velocity returns the displacement over the last step
func (p *Particle) Velocity() mgl32.Vec3 {
	return p.Position.Sub(p.PrevPosition)
}

// pin fixes the particle and drops its mass to infinite
func (p *Particle) pin() {
	p.Pinned = true
	p.InvMass = 0
}
