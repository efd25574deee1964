package parameter

import "time"

// Cloth sandbox loop
const (
	SandboxFPS         = 60
	SandboxFramePeriod = time.Second / SandboxFPS
	SandboxHUDRows     = 2

	// SandboxMaxDt caps the simulated step after a stall
	SandboxMaxDt = 1.0 / 30.0
)

// Steered sphere rig
const (
	RigSpringFrequency = 6.0
	RigSpringDamping   = 0.7
	RigTargetStep      = 0.05
	RigDefaultRadius   = 0.3
)

// Sandbox camera
const (
	SandboxFocalLen   = 1.6
	SandboxNearZ      = 0.05
	SandboxCamPitch   = 0.25
	SandboxCamDistMul = 2.2 // eye distance as a multiple of cloth extent
)

// SandboxWind is used when the preset has no wind of its own
var SandboxWind = [3]float32{1.5, 0, 2.5}
