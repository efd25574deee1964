package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const fileExt = ".toml"

// Manager handles save/load of named presets under a base directory
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a preset file
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+fileExt)
}

// Exists checks if a preset file exists
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save validates and writes a preset to disk
func (m *Manager) Save(name string, p Preset) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	return os.WriteFile(m.FilePath(name), data, 0644)
}

// Load reads a preset from disk
// Keys missing from the file keep their Default() values
func (m *Manager) Load(name string) (Preset, error) {
	data, err := os.ReadFile(m.FilePath(name))
	if err != nil {
		return Preset{}, err
	}
	return Decode(data)
}

// List returns preset names found in the base directory, sorted
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.basePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	slices.Sort(names)
	return names, nil
}

// Decode parses TOML over Default() and validates the result
func Decode(data []byte) (Preset, error) {
	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("decode preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}
