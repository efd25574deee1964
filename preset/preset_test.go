package preset

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drape/cloth"
)

func TestDefault_MatchesClothDefaults(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("Default preset invalid: %v", err)
	}
	if got, want := p.Config(), cloth.DefaultConfig(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}
	if p.Cloth.Pin != PinTop {
		t.Errorf("Pin = %q, want %q", p.Cloth.Pin, PinTop)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Preset)
	}{
		{"zero width", func(p *Preset) { p.Cloth.Width = 0 }},
		{"negative spacing", func(p *Preset) { p.Cloth.Spacing = -1 }},
		{"zero mass", func(p *Preset) { p.Cloth.ParticleMass = 0 }},
		{"stiffness above one", func(p *Preset) { p.Cloth.Stiffness = 1.5 }},
		{"damping below zero", func(p *Preset) { p.Cloth.Damping = -0.1 }},
		{"negative iterations", func(p *Preset) { p.Cloth.SolverIterations = -1 }},
		{"friction above one", func(p *Preset) { p.Cloth.CollisionFriction = 2 }},
		{"short gravity", func(p *Preset) { p.Cloth.Gravity = []float32{0, -9.81} }},
		{"unknown pin", func(p *Preset) { p.Cloth.Pin = "left" }},
		{"unknown collider", func(p *Preset) {
			p.Colliders = []ColliderTable{{Kind: "torus", Radius: 1}}
		}},
		{"sphere without radius", func(p *Preset) {
			p.Colliders = []ColliderTable{{Kind: "sphere", Center: []float32{0, 0, 0}}}
		}},
		{"capsule missing end", func(p *Preset) {
			p.Colliders = []ColliderTable{{Kind: "capsule", Start: []float32{0, 0, 0}, End: []float32{1}, Radius: 1}}
		}},
		{"plane zero normal", func(p *Preset) {
			p.Colliders = []ColliderTable{{Kind: "plane", Point: []float32{0, 0, 0}, Normal: []float32{0, 0, 0}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidate_VectorOrder(t *testing.T) {
	p := Default()
	p.Cloth.Gravity = []float32{1}
	p.Cloth.Wind = []float32{1, 2}
	p.Cloth.Origin = []float32{1, 2, 3, 4}

	for range 20 {
		err := p.Validate()
		if !errors.Is(err, ErrInvalid) || !strings.HasPrefix(err.Error(), "gravity") {
			t.Fatalf("Validate() = %v, want gravity reported first", err)
		}
	}

	p.Cloth.Gravity = []float32{0, -9.81, 0}
	if err := p.Validate(); err == nil || !strings.HasPrefix(err.Error(), "wind") {
		t.Errorf("Validate() = %v, want wind reported next", err)
	}
}

func TestBuildColliders(t *testing.T) {
	p := Default()
	p.Colliders = []ColliderTable{
		{Kind: "sphere", Center: []float32{0, -1, 0}, Radius: 0.5},
		{Kind: "capsule", Start: []float32{0, 0, 0}, End: []float32{1, 0, 0}, Radius: 0.2},
		{Kind: "plane", Point: []float32{0, -2, 0}, Normal: []float32{0, 4, 0}},
	}

	cols, err := p.BuildColliders()
	if err != nil {
		t.Fatalf("BuildColliders: %v", err)
	}
	if len(cols) != 3 {
		t.Fatalf("len = %d, want 3", len(cols))
	}

	wantKinds := []cloth.ColliderKind{cloth.ColliderSphere, cloth.ColliderCapsule, cloth.ColliderPlane}
	for i, c := range cols {
		if c.Kind() != wantKinds[i] {
			t.Errorf("collider %d kind = %v, want %v", i, c.Kind(), wantKinds[i])
		}
	}

	plane := cols[2].(cloth.Plane)
	if plane.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("plane normal = %v, want normalized +Y", plane.Normal)
	}
}

func TestApply(t *testing.T) {
	p := Default()
	p.Cloth.Width, p.Cloth.Height = 4, 3
	p.Cloth.Pin = PinCorners
	p.Cloth.CollisionFriction = 0.25
	p.Colliders = []ColliderTable{{Kind: "sphere", Center: []float32{0, -1, 0}, Radius: 0.5}}

	c := cloth.New(1, p.Config(), p.Origin())
	c.AddCollider(cloth.Plane{Normal: mgl32.Vec3{0, 1, 0}})

	if err := p.Apply(c); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if len(c.Colliders) != 1 || c.Colliders[0].Kind() != cloth.ColliderSphere {
		t.Errorf("colliders = %v, want the single preset sphere", c.Colliders)
	}
	if c.CollisionFriction != 0.25 {
		t.Errorf("friction = %v, want 0.25", c.CollisionFriction)
	}

	pinned := 0
	for _, pt := range c.Particles {
		if pt.Pinned {
			pinned++
		}
	}
	if pinned != 2 {
		t.Errorf("pinned = %d, want 2 top corners", pinned)
	}
	for _, idx := range []int{0, p.Cloth.Width - 1} {
		if !c.Particles[idx].Pinned {
			t.Errorf("top corner %d not pinned", idx)
		}
	}
}

func TestFromCloth_RoundTripsColliders(t *testing.T) {
	c := cloth.New(1, cloth.DefaultConfig(), mgl32.Vec3{})
	c.AddCollider(cloth.Sphere{Center: mgl32.Vec3{1, 2, 3}, Radius: 0.5})
	c.AddCollider(cloth.Capsule{Start: mgl32.Vec3{0, 0, 0}, End: mgl32.Vec3{0, 1, 0}, Radius: 0.1})
	c.AddCollider(cloth.Plane{Point: mgl32.Vec3{0, -1, 0}, Normal: mgl32.Vec3{0, 1, 0}})

	p := FromCloth(c, mgl32.Vec3{}, PinNone)
	cols, err := p.BuildColliders()
	if err != nil {
		t.Fatalf("BuildColliders: %v", err)
	}
	for i := range cols {
		if cols[i] != c.Colliders[i] {
			t.Errorf("collider %d = %v, want %v", i, cols[i], c.Colliders[i])
		}
	}
}
