package cloth

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/physics"
)

// ColliderKind tags the concrete collider shape
type ColliderKind uint8

const (
	ColliderSphere ColliderKind = iota
	ColliderCapsule
	ColliderPlane
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderSphere:
		return "sphere"
	case ColliderCapsule:
		return "capsule"
	case ColliderPlane:
		return "plane"
	default:
		return fmt.Sprintf("collider(%d)", uint8(k))
	}
}

// Collider is a static shape particles are pushed out of
// The set is closed: Sphere, Capsule and Plane
type Collider interface {
	Kind() ColliderKind
	// ResolveCollision pushes a penetrating particle to the surface and reports whether it did
	ResolveCollision(p *Particle, friction float32) bool
}

// Sphere is a solid ball
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Capsule is a sphere swept along [Start, End]
type Capsule struct {
	Start, End mgl32.Vec3
	Radius     float32
}

// Plane is an infinite half-space boundary, Normal points to the free side and should be unit length
type Plane struct {
	Point, Normal mgl32.Vec3
}

func (Sphere) Kind() ColliderKind  { return ColliderSphere }
func (Capsule) Kind() ColliderKind { return ColliderCapsule }
func (Plane) Kind() ColliderKind   { return ColliderPlane }

func (s Sphere) ResolveCollision(p *Particle, friction float32) bool {
	if p.Pinned {
		return false
	}
	pen, hit := physics.SpherePenetration(p.Position, s.Center, s.Radius)
	return respond(p, pen, hit, friction)
}

func (c Capsule) ResolveCollision(p *Particle, friction float32) bool {
	if p.Pinned {
		return false
	}
	pen, hit := physics.CapsulePenetration(p.Position, c.Start, c.End, c.Radius)
	return respond(p, pen, hit, friction)
}

func (pl Plane) ResolveCollision(p *Particle, friction float32) bool {
	if p.Pinned {
		return false
	}
	pen, hit := physics.PlanePenetration(p.Position, pl.Point, pl.Normal)
	return respond(p, pen, hit, friction)
}

func respond(p *Particle, pen physics.Penetration, hit bool, friction float32) bool {
	if !hit {
		return false
	}
	physics.ResolveVerletContact(&p.Position, &p.PrevPosition, pen, friction)
	return true
}

func (s Sphere) String() string {
	return fmt.Sprintf("sphere{c=%v r=%.3f}", s.Center, s.Radius)
}

func (c Capsule) String() string {
	return fmt.Sprintf("capsule{%v..%v r=%.3f}", c.Start, c.End, c.Radius)
}

func (pl Plane) String() string {
	return fmt.Sprintf("plane{p=%v n=%v}", pl.Point, pl.Normal)
}
