package cloth

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/parameter"
)

// Update advances the cloth by dt seconds
// Stage order is fixed: normals, forces, integration, constraint sweeps, collisions
func (c *Cloth) Update(dt float32) {
	cfg := &c.Config

	windOn := cfg.Wind.LenSqr() > parameter.WindMinLengthSq
	if windOn {
		c.computeNormals()
	}

	for i := range c.Particles {
		p := &c.Particles[i]
		// Pinned particles would discard every force in ApplyForce anyway
		if p.Pinned {
			continue
		}
		massScale := 1.0 / max(p.InvMass, parameter.InvMassFloor)

		p.ApplyForce(cfg.Gravity.Mul(massScale))

		if windOn {
			windEffect := abs32(cfg.Wind.Dot(c.normals[i]))
			p.ApplyForce(cfg.Wind.Mul(windEffect).Mul(massScale))
		}

		drag := p.Velocity().Mul(-1).Mul(cfg.AirResistance).Mul(massScale)
		p.ApplyForce(drag)
	}

	for i := range c.Particles {
		c.Particles[i].Integrate(dt, cfg.Damping)
	}

	for range cfg.SolverIterations {
		for _, dc := range c.Constraints {
			dc.Solve(c.Particles)
		}
	}

	contacts := 0
	for i := range c.Particles {
		p := &c.Particles[i]
		for _, collider := range c.Colliders {
			if collider.ResolveCollision(p, c.CollisionFriction) {
				contacts++
			}
		}
	}
	c.stats = Stats{Contacts: contacts}
}

func (c *Cloth) computeNormals() {
	n := len(c.Particles)
	if cap(c.normals) < n {
		c.normals = make([]mgl32.Vec3, n)
	}
	c.normals = c.normals[:n]

	w := c.Config.Width
	for y := 0; y < c.Config.Height; y++ {
		for x := 0; x < w; x++ {
			c.normals[y*w+x] = c.particleNormal(x, y)
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
