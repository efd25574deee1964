package preset

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/cloth"
	"github.com/lixenwraith/drape/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid preset")

// Pin modes applied after the cloth is built
const (
	PinNone    = "none"
	PinTop     = "top"
	PinCorners = "corners"
)

// Preset is the on-disk form of a cloth setup: config, pinning, friction and collider set
type Preset struct {
	Cloth     ClothTable      `toml:"cloth"`
	Colliders []ColliderTable `toml:"collider,omitempty"`
}

// ClothTable mirrors cloth.Config plus per-instance settings
type ClothTable struct {
	Width             int       `toml:"width"`
	Height            int       `toml:"height"`
	Spacing           float32   `toml:"spacing"`
	ParticleMass      float32   `toml:"particle_mass"`
	Stiffness         float32   `toml:"stiffness"`
	Damping           float32   `toml:"damping"`
	SolverIterations  int       `toml:"solver_iterations"`
	Gravity           []float32 `toml:"gravity"`
	Wind              []float32 `toml:"wind"`
	AirResistance     float32   `toml:"air_resistance"`
	CollisionFriction float32   `toml:"collision_friction"`
	Pin               string    `toml:"pin"`
	Origin            []float32 `toml:"origin"`
}

// ColliderTable is one [[collider]] entry, fields used depend on Kind
type ColliderTable struct {
	Kind   string    `toml:"kind"`
	Center []float32 `toml:"center,omitempty"`
	Start  []float32 `toml:"start,omitempty"`
	End    []float32 `toml:"end,omitempty"`
	Point  []float32 `toml:"point,omitempty"`
	Normal []float32 `toml:"normal,omitempty"`
	Radius float32   `toml:"radius,omitempty"`
}

// Default returns the preset equivalent of cloth.DefaultConfig, pinned along the top edge
func Default() Preset {
	return FromConfig(cloth.DefaultConfig(), mgl32.Vec3{}, parameter.ClothDefaultCollisionFriction, PinTop)
}

// FromConfig builds a preset without colliders
func FromConfig(cfg cloth.Config, origin mgl32.Vec3, friction float32, pin string) Preset {
	return Preset{
		Cloth: ClothTable{
			Width:             cfg.Width,
			Height:            cfg.Height,
			Spacing:           cfg.Spacing,
			ParticleMass:      cfg.ParticleMass,
			Stiffness:         cfg.Stiffness,
			Damping:           cfg.Damping,
			SolverIterations:  cfg.SolverIterations,
			Gravity:           vecSlice(cfg.Gravity),
			Wind:              vecSlice(cfg.Wind),
			AirResistance:     cfg.AirResistance,
			CollisionFriction: friction,
			Pin:               pin,
			Origin:            vecSlice(origin),
		},
	}
}

// FromCloth captures a live cloth's tuning and colliders
// Pinning is not inferred from particles, the caller names it
func FromCloth(c *cloth.Cloth, origin mgl32.Vec3, pin string) Preset {
	p := FromConfig(c.Config, origin, c.CollisionFriction, pin)
	for _, col := range c.Colliders {
		p.Colliders = append(p.Colliders, colliderTable(col))
	}
	return p
}

// Validate checks ranges and vector shapes
func (p Preset) Validate() error {
	ct := p.Cloth
	switch {
	case ct.Width <= 0 || ct.Height <= 0:
		return fmt.Errorf("grid %dx%d: %w", ct.Width, ct.Height, ErrInvalid)
	case ct.Spacing <= 0:
		return fmt.Errorf("spacing %v: %w", ct.Spacing, ErrInvalid)
	case ct.ParticleMass <= 0:
		return fmt.Errorf("particle_mass %v: %w", ct.ParticleMass, ErrInvalid)
	case ct.Stiffness < 0 || ct.Stiffness > 1:
		return fmt.Errorf("stiffness %v outside [0,1]: %w", ct.Stiffness, ErrInvalid)
	case ct.Damping < 0 || ct.Damping > 1:
		return fmt.Errorf("damping %v outside [0,1]: %w", ct.Damping, ErrInvalid)
	case ct.SolverIterations < 0:
		return fmt.Errorf("solver_iterations %d: %w", ct.SolverIterations, ErrInvalid)
	case ct.AirResistance < 0:
		return fmt.Errorf("air_resistance %v: %w", ct.AirResistance, ErrInvalid)
	case ct.CollisionFriction < 0 || ct.CollisionFriction > 1:
		return fmt.Errorf("collision_friction %v outside [0,1]: %w", ct.CollisionFriction, ErrInvalid)
	}

	vectors := []struct {
		name string
		v    []float32
	}{
		{"gravity", ct.Gravity},
		{"wind", ct.Wind},
		{"origin", ct.Origin},
	}
	for _, vec := range vectors {
		if _, err := toVec(vec.name, vec.v); err != nil {
			return err
		}
	}

	switch ct.Pin {
	case "", PinNone, PinTop, PinCorners:
	default:
		return fmt.Errorf("pin %q: %w", ct.Pin, ErrInvalid)
	}

	_, err := p.BuildColliders()
	return err
}

// Config converts the cloth table, call Validate first
func (p Preset) Config() cloth.Config {
	ct := p.Cloth
	gravity, _ := toVec("gravity", ct.Gravity)
	wind, _ := toVec("wind", ct.Wind)
	return cloth.Config{
		Width:            ct.Width,
		Height:           ct.Height,
		Spacing:          ct.Spacing,
		ParticleMass:     ct.ParticleMass,
		Stiffness:        ct.Stiffness,
		Damping:          ct.Damping,
		SolverIterations: ct.SolverIterations,
		Gravity:          gravity,
		Wind:             wind,
		AirResistance:    ct.AirResistance,
	}
}

// Origin returns the grid origin, zero when unset
func (p Preset) Origin() mgl32.Vec3 {
	o, _ := toVec("origin", p.Cloth.Origin)
	return o
}

// BuildColliders converts collider tables, plane normals are normalized
func (p Preset) BuildColliders() ([]cloth.Collider, error) {
	out := make([]cloth.Collider, 0, len(p.Colliders))
	for i, ct := range p.Colliders {
		col, err := ct.build()
		if err != nil {
			return nil, fmt.Errorf("collider %d: %w", i, err)
		}
		out = append(out, col)
	}
	return out, nil
}

// Apply installs pinning, friction and colliders onto a cloth built from Config
func (p Preset) Apply(c *cloth.Cloth) error {
	colliders, err := p.BuildColliders()
	if err != nil {
		return err
	}

	switch p.Cloth.Pin {
	case PinTop:
		c.PinTopEdge()
	case PinCorners:
		c.PinCorners()
	}
	c.CollisionFriction = p.Cloth.CollisionFriction

	c.ClearColliders()
	for _, col := range colliders {
		c.AddCollider(col)
	}
	return nil
}

func (ct ColliderTable) build() (cloth.Collider, error) {
	switch ct.Kind {
	case cloth.ColliderSphere.String():
		center, err := toVec("center", ct.Center)
		if err != nil {
			return nil, err
		}
		if ct.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius %v: %w", ct.Radius, ErrInvalid)
		}
		return cloth.Sphere{Center: center, Radius: ct.Radius}, nil

	case cloth.ColliderCapsule.String():
		start, err := toVec("start", ct.Start)
		if err != nil {
			return nil, err
		}
		end, err := toVec("end", ct.End)
		if err != nil {
			return nil, err
		}
		if ct.Radius <= 0 {
			return nil, fmt.Errorf("capsule radius %v: %w", ct.Radius, ErrInvalid)
		}
		return cloth.Capsule{Start: start, End: end, Radius: ct.Radius}, nil

	case cloth.ColliderPlane.String():
		point, err := toVec("point", ct.Point)
		if err != nil {
			return nil, err
		}
		normal, err := toVec("normal", ct.Normal)
		if err != nil {
			return nil, err
		}
		if normal.LenSqr() == 0 {
			return nil, fmt.Errorf("plane normal is zero: %w", ErrInvalid)
		}
		return cloth.Plane{Point: point, Normal: normal.Normalize()}, nil

	default:
		return nil, fmt.Errorf("collider kind %q: %w", ct.Kind, ErrInvalid)
	}
}

func colliderTable(c cloth.Collider) ColliderTable {
	switch col := c.(type) {
	case cloth.Sphere:
		return ColliderTable{Kind: col.Kind().String(), Center: vecSlice(col.Center), Radius: col.Radius}
	case cloth.Capsule:
		return ColliderTable{Kind: col.Kind().String(), Start: vecSlice(col.Start), End: vecSlice(col.End), Radius: col.Radius}
	case cloth.Plane:
		return ColliderTable{Kind: col.Kind().String(), Point: vecSlice(col.Point), Normal: vecSlice(col.Normal)}
	default:
		return ColliderTable{Kind: c.Kind().String()}
	}
}

// toVec accepts an absent vector as zero, otherwise exactly three components
func toVec(name string, s []float32) (mgl32.Vec3, error) {
	switch len(s) {
	case 0:
		return mgl32.Vec3{}, nil
	case 3:
		return mgl32.Vec3{s[0], s[1], s[2]}, nil
	default:
		return mgl32.Vec3{}, fmt.Errorf("%s has %d components, want 3: %w", name, len(s), ErrInvalid)
	}
}

func vecSlice(v mgl32.Vec3) []float32 {
	return []float32{v[0], v[1], v[2]}
}
