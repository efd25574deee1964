package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ResolveVerletContact moves a Verlet point out of penetration and rewrites its previous
// position so the implied velocity keeps only its tangential part, scaled by (1 - friction)
// The contact is fully inelastic: no normal velocity survives, including the push-out itself
func ResolveVerletContact(pos, prev *mgl32.Vec3, pen Penetration, friction float32) {
	*pos = pos.Add(pen.Normal.Mul(pen.Depth))

	velocity := pos.Sub(*prev)
	normalVel := pen.Normal.Mul(velocity.Dot(pen.Normal))
	tangentVel := velocity.Sub(normalVel)

	*prev = pos.Sub(tangentVel.Mul(1.0 - friction))
}
