package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// UnitY is the world up axis
var UnitY = mgl32.Vec3{0, 1, 0}

// V3FNormalizeOrZero returns the unit vector of v, or zero when v has no usable length
// mgl32.Vec3.Normalize divides by zero on degenerate input, this does not
func V3FNormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	mag := v.Len()
	if mag == 0 {
		return mgl32.Vec3{}
	}
	inv := 1.0 / mag
	if math.IsInf(float64(inv), 0) || math.IsNaN(float64(inv)) {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// V3FIsFinite reports whether every component is neither NaN nor infinite
func V3FIsFinite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// ClampF32 limits v to [lo, hi]
func ClampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// V3FClosestOnSegment projects p onto segment [a, b] with the parameter clamped to the segment length
// Returns false when the segment is shorter than minLen; closest is then a
func V3FClosestOnSegment(p, a, b mgl32.Vec3, minLen float32) (closest mgl32.Vec3, ok bool) {
	axis := b.Sub(a)
	axisLen := axis.Len()
	if axisLen < minLen {
		return a, false
	}

	dir := mgl32.Vec3{axis[0] / axisLen, axis[1] / axisLen, axis[2] / axisLen}
	t := ClampF32(p.Sub(a).Dot(dir), 0, axisLen)
	return a.Add(dir.Mul(t)), true
}
