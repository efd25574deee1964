package vmath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a pinhole camera looking down -Z from Eye after yaw/pitch rotation
type Camera struct {
	Eye      mgl32.Vec3
	Yaw      float32 // radians around +Y
	Pitch    float32 // radians around +X
	FocalLen float32
}

// ViewTransform returns the world-to-camera matrix
func (c Camera) ViewTransform() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(-c.Pitch).Mul4(mgl32.HomogRotate3DY(-c.Yaw))
	return rot.Mul4(mgl32.Translate3D(-c.Eye[0], -c.Eye[1], -c.Eye[2]))
}

// Project maps a world point to normalized screen space
// x, y are in focal-length units centered on the view axis, depth is distance along -Z
// Points behind nearZ are rejected
func (c Camera) Project(view mgl32.Mat4, p mgl32.Vec3, nearZ float32) (x, y, depth float32, ok bool) {
	v := mgl32.TransformCoordinate(p, view)
	depth = -v[2]
	if depth < nearZ {
		return 0, 0, depth, false
	}
	inv := c.FocalLen / depth
	return v[0] * inv, v[1] * inv, depth, true
}
