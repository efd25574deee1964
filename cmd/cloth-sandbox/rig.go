package main

import (
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/cloth"
	"github.com/lixenwraith/drape/parameter"
)

// sphereRig eases a sphere collider toward a keyboard-driven target on the XZ plane
type sphereRig struct {
	spring harmonica.Spring
	index  int // position in Cloth.Colliders

	radius float32
	y      float32
	target [2]float64 // x, z
	pos    [2]float64
	vel    [2]float64
}

// attachRig binds to the first sphere collider, adding one below the cloth center when none exists
func attachRig(c *cloth.Cloth) *sphereRig {
	r := &sphereRig{
		spring: harmonica.NewSpring(harmonica.FPS(parameter.SandboxFPS), parameter.RigSpringFrequency, parameter.RigSpringDamping),
		index:  -1,
	}

	for i, col := range c.Colliders {
		if s, ok := col.(cloth.Sphere); ok {
			r.index = i
			r.radius = s.Radius
			r.y = s.Center.Y()
			r.place(s.Center)
			return r
		}
	}

	center := clothCenter(c)
	extent := clothExtent(c)
	s := cloth.Sphere{
		Center: mgl32.Vec3{center.X(), center.Y() - extent*0.6, center.Z()},
		Radius: parameter.RigDefaultRadius,
	}
	c.AddCollider(s)
	r.index = len(c.Colliders) - 1
	r.radius = s.Radius
	r.y = s.Center.Y()
	r.place(s.Center)
	return r
}

func (r *sphereRig) place(center mgl32.Vec3) {
	r.pos = [2]float64{float64(center.X()), float64(center.Z())}
	r.target = r.pos
	r.vel = [2]float64{}
}

// nudge moves the target by whole steps along x and z
func (r *sphereRig) nudge(dx, dz int) {
	r.target[0] += float64(dx) * parameter.RigTargetStep
	r.target[1] += float64(dz) * parameter.RigTargetStep
}

// step advances the spring one frame and writes the sphere back into the cloth
func (r *sphereRig) step(c *cloth.Cloth) {
	for axis := range 2 {
		r.pos[axis], r.vel[axis] = r.spring.Update(r.pos[axis], r.vel[axis], r.target[axis])
	}
	if r.index < 0 || r.index >= len(c.Colliders) {
		return
	}
	c.Colliders[r.index] = cloth.Sphere{Center: r.center(), Radius: r.radius}
}

func (r *sphereRig) center() mgl32.Vec3 {
	return mgl32.Vec3{float32(r.pos[0]), r.y, float32(r.pos[1])}
}

func clothCenter(c *cloth.Cloth) mgl32.Vec3 {
	if len(c.Particles) == 0 {
		return mgl32.Vec3{}
	}
	var sum mgl32.Vec3
	for i := range c.Particles {
		sum = sum.Add(c.Particles[i].Position)
	}
	return sum.Mul(1 / float32(len(c.Particles)))
}

func clothExtent(c *cloth.Cloth) float32 {
	return float32(max(c.Config.Width, c.Config.Height)) * c.Config.Spacing
}
