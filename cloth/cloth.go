package cloth

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/parameter"
)

// ID is an opaque cloth handle issued by Manager
type ID uint64

var (
	ErrParticleIndex        = errors.New("particle index out of range")
	ErrDegenerateConstraint = errors.New("constraint endpoints coincide")
)

// Stats reports what the last Update did
type Stats struct {
	// Contacts is the number of particle-collider pairs resolved
	Contacts int
}

// Cloth is a rectangular particle grid held together by distance constraints
// Particles are row-major: index = y*Width + x; constraints refer to them by index only
type Cloth struct {
	ID                ID
	Config            Config
	Particles         []Particle
	Constraints       []DistanceConstraint
	Colliders         []Collider
	CollisionFriction float32

	normals []mgl32.Vec3 // wind pass scratch, reused across frames
	stats   Stats
}

// New builds the particle grid in the XZ plane starting at origin and its fixed constraint topology
// Row 0 (the top edge) lies along +X from origin, rows advance along +Z
func New(id ID, cfg Config, origin mgl32.Vec3) *Cloth {
	c := &Cloth{
		ID:                id,
		Config:            cfg,
		CollisionFriction: parameter.ClothDefaultCollisionFriction,
	}
	c.Particles = buildParticles(cfg, origin)
	c.Constraints = buildConstraints(cfg)
	return c
}

// PinTopEdge pins every particle of row 0
func (c *Cloth) PinTopEdge() {
	for x := 0; x < c.Config.Width && x < len(c.Particles); x++ {
		c.Particles[x].pin()
	}
}

// PinCorners pins both ends of row 0
func (c *Cloth) PinCorners() {
	w := c.Config.Width
	if w <= 0 || w > len(c.Particles) {
		return
	}
	c.Particles[0].pin()
	c.Particles[w-1].pin()
}

// PinParticle pins a particle, out-of-range indices are ignored
func (c *Cloth) PinParticle(index int) {
	if index < 0 || index >= len(c.Particles) {
		return
	}
	c.Particles[index].pin()
}

// UnpinParticle frees a particle and restores the grid-default mass from Config.ParticleMass
// A non-positive mass leaves the particle with zero inverse mass, as NewParticle does
func (c *Cloth) UnpinParticle(index int) {
	if index < 0 || index >= len(c.Particles) {
		return
	}
	c.Particles[index].Pinned = false
	c.Particles[index].InvMass = 0
	if c.Config.ParticleMass > 0 {
		c.Particles[index].InvMass = 1.0 / c.Config.ParticleMass
	}
}

// MovePinned teleports a pinned particle with zero velocity, free particles are left alone
func (c *Cloth) MovePinned(index int, position mgl32.Vec3) {
	if index < 0 || index >= len(c.Particles) || !c.Particles[index].Pinned {
		return
	}
	c.Particles[index].Position = position
	c.Particles[index].PrevPosition = position
}

// AddCollider appends a collider, resolved in insertion order
func (c *Cloth) AddCollider(collider Collider) {
	c.Colliders = append(c.Colliders, collider)
}

// ClearColliders drops all colliders
func (c *Cloth) ClearColliders() {
	clear(c.Colliders)
	c.Colliders = c.Colliders[:0]
}

// AddConstraint appends a custom constraint after validating its indices against this cloth
func (c *Cloth) AddConstraint(dc DistanceConstraint) error {
	n := len(c.Particles)
	if dc.P1 < 0 || dc.P1 >= n {
		return fmt.Errorf("p1=%d with %d particles: %w", dc.P1, n, ErrParticleIndex)
	}
	if dc.P2 < 0 || dc.P2 >= n {
		return fmt.Errorf("p2=%d with %d particles: %w", dc.P2, n, ErrParticleIndex)
	}
	if dc.P1 == dc.P2 {
		return fmt.Errorf("p1=p2=%d: %w", dc.P1, ErrDegenerateConstraint)
	}
	c.Constraints = append(c.Constraints, dc)
	return nil
}

// ParticleIndex maps grid coordinates to a particle index
func (c *Cloth) ParticleIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.Config.Width || y >= c.Config.Height {
		return 0, false
	}
	return y*c.Config.Width + x, true
}

// ParticlePosition returns the current position of a particle
func (c *Cloth) ParticlePosition(index int) (mgl32.Vec3, bool) {
	if index < 0 || index >= len(c.Particles) {
		return mgl32.Vec3{}, false
	}
	return c.Particles[index].Position, true
}

func (c *Cloth) ParticleCount() int   { return len(c.Particles) }
func (c *Cloth) ConstraintCount() int { return len(c.Constraints) }

// LastStats returns counters from the most recent Update
func (c *Cloth) LastStats() Stats { return c.stats }

// Positions returns a copy of all particle positions in index order
func (c *Cloth) Positions() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(c.Particles))
	for i := range c.Particles {
		out[i] = c.Particles[i].Position
	}
	return out
}

// Indices returns a triangle list with two triangles per grid quad
// Length is 6*(Width-1)*(Height-1)
func (c *Cloth) Indices() []uint32 {
	w, h := c.Config.Width, c.Config.Height
	if w < 2 || h < 2 {
		return nil
	}

	indices := make([]uint32, 0, 6*(w-1)*(h-1))
	uw := uint32(w)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			idx := uint32(y)*uw + uint32(x)
			indices = append(indices,
				idx, idx+1, idx+uw,
				idx+1, idx+uw+1, idx+uw,
			)
		}
	}
	return indices
}

// KineticEnergy sums 0.5*m*|v|^2 over free particles, v being displacement per step
func (c *Cloth) KineticEnergy() float64 {
	var energy float64
	for i := range c.Particles {
		p := &c.Particles[i]
		if p.Pinned || p.InvMass <= 0 {
			continue
		}
		v := p.Velocity()
		energy += 0.5 * float64(v.LenSqr()) / float64(p.InvMass)
	}
	return energy
}
