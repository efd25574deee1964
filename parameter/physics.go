package parameter

import "math"

// Cloth config defaults, used by cloth.DefaultConfig
const (
	ClothDefaultWidth            = 20
	ClothDefaultHeight           = 20
	ClothDefaultSpacing          = 0.1
	ClothDefaultParticleMass     = 0.1
	ClothDefaultStiffness        = 0.8
	ClothDefaultDamping          = 0.98
	ClothDefaultSolverIterations = 3
	ClothDefaultGravityY         = -9.81
	ClothDefaultAirResistance    = 0.01

	// ClothDefaultCollisionFriction is applied to every new cloth, hosts tune it per instance
	ClothDefaultCollisionFriction = 0.5
)

// Constraint topology multipliers relative to config spacing/stiffness
const (
	// ShearRestFactor is the diagonal length of a unit grid quad
	ShearRestFactor = math.Sqrt2
	// ShearStiffnessFactor softens diagonals so the sheet can shear before it stretches
	ShearStiffnessFactor = 0.5

	// BendRestFactor spans one skipped particle
	BendRestFactor = 2.0
	// BendStiffnessFactor keeps folding cheap compared to stretching
	BendStiffnessFactor = 0.3
)

// Numeric guards
const (
	// ConstraintMinLength below which a distance constraint is skipped for the frame
	ConstraintMinLength = 1e-4

	// CapsuleMinAxisLength below which a capsule is resolved as a sphere at its start
	CapsuleMinAxisLength = 1e-4

	// InvMassFloor bounds the mass used to scale environmental forces (1/InvMassFloor = 1000)
	InvMassFloor = 0.001

	// WindMinLengthSq is the squared wind magnitude under which the wind pass is skipped entirely
	// Sub-threshold wind has no effect at all, normals are not computed
	WindMinLengthSq = 0.001
)
