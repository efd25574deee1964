package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/parameter"
	"github.com/lixenwraith/drape/vmath"
)

// Penetration is the result of a point-vs-shape overlap query
// Moving the point by Normal*Depth places it on the shape surface
type Penetration struct {
	Normal mgl32.Vec3
	Depth  float32
}

// SpherePenetration tests a point against a solid sphere
// A point exactly at the center yields a zero normal, so resolution leaves it in place
func SpherePenetration(p, center mgl32.Vec3, radius float32) (Penetration, bool) {
	toPoint := p.Sub(center)
	dist := toPoint.Len()
	if dist >= radius {
		return Penetration{}, false
	}

	return Penetration{
		Normal: vmath.V3FNormalizeOrZero(toPoint),
		Depth:  radius - dist,
	}, true
}

// CapsulePenetration tests a point against a capsule swept along [start, end]
// Axes shorter than parameter.CapsuleMinAxisLength collapse to a sphere at start
func CapsulePenetration(p, start, end mgl32.Vec3, radius float32) (Penetration, bool) {
	closest, ok := vmath.V3FClosestOnSegment(p, start, end, parameter.CapsuleMinAxisLength)
	if !ok {
		return SpherePenetration(p, start, radius)
	}
	return SpherePenetration(p, closest, radius)
}

// PlanePenetration tests a point against the half-space behind an infinite plane
// normal is expected to be unit length; it is used as-is
func PlanePenetration(p, point, normal mgl32.Vec3) (Penetration, bool) {
	dist := p.Sub(point).Dot(normal)
	if dist >= 0 {
		return Penetration{}, false
	}
	return Penetration{Normal: normal, Depth: -dist}, true
}
