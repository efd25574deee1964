package preset

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestManager_SaveLoad(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "presets"))

	p := Default()
	p.Cloth.Width = 8
	p.Cloth.Wind = []float32{1, 0, 0.5}
	p.Cloth.Origin = []float32{-0.4, 1, 0}
	p.Colliders = []ColliderTable{{Kind: "sphere", Center: []float32{0, 0.5, 0.3}, Radius: 0.25}}

	if m.Exists("flag") {
		t.Fatal("Exists before save")
	}
	if err := m.Save("flag", p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !m.Exists("flag") {
		t.Fatal("Exists false after save")
	}

	got, err := m.Load("flag")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Config() != p.Config() {
		t.Errorf("Config = %+v, want %+v", got.Config(), p.Config())
	}
	if got.Origin() != (mgl32.Vec3{-0.4, 1, 0}) {
		t.Errorf("Origin = %v", got.Origin())
	}
	if len(got.Colliders) != 1 || got.Colliders[0].Radius != 0.25 {
		t.Errorf("Colliders = %+v", got.Colliders)
	}
}

func TestManager_SaveRejectsInvalid(t *testing.T) {
	m := NewManager(t.TempDir())
	p := Default()
	p.Cloth.Spacing = 0

	if err := m.Save("bad", p); !errors.Is(err, ErrInvalid) {
		t.Errorf("Save = %v, want ErrInvalid", err)
	}
	if m.Exists("bad") {
		t.Error("Invalid preset was written")
	}
}

func TestManager_LoadMissing(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("nope"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load = %v, want ErrNotExist", err)
	}
}

func TestManager_List(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	for _, name := range []string{"curtain", "banner"} {
		if err := m.Save(name, Default()); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if want := []string{"banner", "curtain"}; !slices.Equal(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestManager_ListMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"))
	names, err := m.List()
	if err != nil || len(names) != 0 {
		t.Errorf("List = %v, %v; want empty, nil", names, err)
	}
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	data := []byte(`
[cloth]
width = 6
height = 4
pin = "corners"

[[collider]]
kind = "plane"
point = [0.0, -1.0, 0.0]
normal = [0.0, 1.0, 0.0]
`)
	p, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	def := Default()
	if p.Cloth.Width != 6 || p.Cloth.Height != 4 {
		t.Errorf("grid = %dx%d, want 6x4", p.Cloth.Width, p.Cloth.Height)
	}
	if p.Cloth.Spacing != def.Cloth.Spacing || p.Cloth.Stiffness != def.Cloth.Stiffness {
		t.Error("Missing keys did not keep defaults")
	}
	if p.Cloth.Pin != PinCorners {
		t.Errorf("Pin = %q", p.Cloth.Pin)
	}
	if len(p.Colliders) != 1 || p.Colliders[0].Kind != "plane" {
		t.Errorf("Colliders = %+v", p.Colliders)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode([]byte("[cloth\nwidth = 1")); err == nil {
		t.Error("Expected syntax error")
	}
	if _, err := Decode([]byte("[cloth]\nstiffness = 3.0\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Decode = %v, want ErrInvalid", err)
	}
}
