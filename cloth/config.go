package cloth

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/parameter"
)

// Config describes a cloth at construction
// Grid and topology derive from it once; afterwards Cloth.Config fields may be tuned in place
type Config struct {
	// Width and Height are particle counts along the grid axes
	Width, Height int
	Spacing       float32
	ParticleMass  float32
	// Stiffness in [0, 1] for structural constraints, shear and bend derive from it
	Stiffness float32
	// Damping in [0, 1] scales carried-over velocity each step, lower damps more
	Damping          float32
	SolverIterations int
	Gravity          mgl32.Vec3
	Wind             mgl32.Vec3
	AirResistance    float32
}

// DefaultConfig returns a 20x20 sheet with 10cm spacing
func DefaultConfig() Config {
	return Config{
		Width:            parameter.ClothDefaultWidth,
		Height:           parameter.ClothDefaultHeight,
		Spacing:          parameter.ClothDefaultSpacing,
		ParticleMass:     parameter.ClothDefaultParticleMass,
		Stiffness:        parameter.ClothDefaultStiffness,
		Damping:          parameter.ClothDefaultDamping,
		SolverIterations: parameter.ClothDefaultSolverIterations,
		Gravity:          mgl32.Vec3{0, parameter.ClothDefaultGravityY, 0},
		AirResistance:    parameter.ClothDefaultAirResistance,
	}
}
