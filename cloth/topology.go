package cloth

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/parameter"
	"github.com/lixenwraith/drape/vmath"
)

func buildParticles(cfg Config, origin mgl32.Vec3) []Particle {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil
	}

	particles := make([]Particle, 0, cfg.Width*cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			offset := mgl32.Vec3{float32(x) * cfg.Spacing, 0, float32(y) * cfg.Spacing}
			particles = append(particles, NewParticle(origin.Add(offset), cfg.ParticleMass))
		}
	}
	return particles
}

// buildConstraints emits structural, shear and bend constraints cell by cell in row-major order
// Solver convergence depends on this order, keep it stable
func buildConstraints(cfg Config) []DistanceConstraint {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		return nil
	}

	structural := func(a, b int) DistanceConstraint {
		return DistanceConstraint{P1: a, P2: b, RestLength: cfg.Spacing, Stiffness: cfg.Stiffness}
	}
	shear := func(a, b int) DistanceConstraint {
		return DistanceConstraint{
			P1:         a,
			P2:         b,
			RestLength: cfg.Spacing * parameter.ShearRestFactor,
			Stiffness:  cfg.Stiffness * parameter.ShearStiffnessFactor,
		}
	}
	bend := func(a, b int) DistanceConstraint {
		return DistanceConstraint{
			P1:         a,
			P2:         b,
			RestLength: cfg.Spacing * parameter.BendRestFactor,
			Stiffness:  cfg.Stiffness * parameter.BendStiffnessFactor,
		}
	}

	constraints := make([]DistanceConstraint, 0, constraintCount(w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x

			if x < w-1 {
				constraints = append(constraints, structural(idx, idx+1))
			}
			if y < h-1 {
				constraints = append(constraints, structural(idx, idx+w))
			}

			if x < w-1 && y < h-1 {
				constraints = append(constraints,
					shear(idx, idx+w+1),
					shear(idx+1, idx+w),
				)
			}

			if x < w-2 {
				constraints = append(constraints, bend(idx, idx+2))
			}
			if y < h-2 {
				constraints = append(constraints, bend(idx, idx+2*w))
			}
		}
	}
	return constraints
}

// constraintCount is the exact topology size for a w x h grid
func constraintCount(w, h int) int {
	n := (w-1)*h + w*(h-1) + 2*(w-1)*(h-1)
	if w > 2 {
		n += (w - 2) * h
	}
	if h > 2 {
		n += w * (h - 2)
	}
	return n
}

// particleNormal estimates the surface normal from the four axis neighbors taken as cyclic pairs
// (left,right) (right,up) (up,down) (down,left); falls back to +Y when no pair exists
func (c *Cloth) particleNormal(x, y int) mgl32.Vec3 {
	w, h := c.Config.Width, c.Config.Height
	center := c.Particles[y*w+x].Position

	neighbors := [4][2]int{
		{x - 1, y},
		{x + 1, y},
		{x, y - 1},
		{x, y + 1},
	}
	inGrid := func(n [2]int) bool {
		return n[0] >= 0 && n[0] < w && n[1] >= 0 && n[1] < h
	}

	var normal mgl32.Vec3
	count := 0
	for i := range neighbors {
		n1 := neighbors[i]
		n2 := neighbors[(i+1)%4]
		if !inGrid(n1) || !inGrid(n2) {
			continue
		}

		v1 := c.Particles[n1[1]*w+n1[0]].Position.Sub(center)
		v2 := c.Particles[n2[1]*w+n2[0]].Position.Sub(center)
		normal = normal.Add(v1.Cross(v2))
		count++
	}

	if count == 0 {
		return vmath.UnitY
	}
	return vmath.V3FNormalizeOrZero(normal)
}
