package cloth

import (
	"iter"
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Manager owns every cloth and hands out ID handles
// Not safe for concurrent use; callers serialize access per tick
type Manager struct {
	cloths map[ID]*Cloth
	nextID ID
}

// NewManager creates an empty manager, the first issued ID is 1
func NewManager() *Manager {
	return &Manager{
		cloths: make(map[ID]*Cloth),
		nextID: 1,
	}
}

// Create builds a cloth and returns its handle
func (m *Manager) Create(cfg Config, origin mgl32.Vec3) ID {
	if m.cloths == nil {
		m.cloths = make(map[ID]*Cloth)
	}
	if m.nextID == 0 {
		m.nextID = 1
	}

	id := m.nextID
	m.nextID++
	m.cloths[id] = New(id, cfg, origin)
	return id
}

// Remove destroys a cloth, reporting whether it existed
func (m *Manager) Remove(id ID) bool {
	if _, ok := m.cloths[id]; !ok {
		return false
	}
	delete(m.cloths, id)
	return true
}

// Get returns the cloth for id
// The pointer is valid for mutation until the cloth is removed; hold the ID, not the pointer
func (m *Manager) Get(id ID) (*Cloth, bool) {
	c, ok := m.cloths[id]
	return c, ok
}

// Update steps every cloth independently in ascending ID order
func (m *Manager) Update(dt float32) {
	for _, id := range m.IDs() {
		m.cloths[id].Update(dt)
	}
}

// Count returns the number of live cloths
func (m *Manager) Count() int {
	return len(m.cloths)
}

// IDs returns live handles in ascending order
func (m *Manager) IDs() []ID {
	return slices.Sorted(maps.Keys(m.cloths))
}

// All iterates live cloths in ascending ID order
func (m *Manager) All() iter.Seq2[ID, *Cloth] {
	return func(yield func(ID, *Cloth) bool) {
		for _, id := range m.IDs() {
			if !yield(id, m.cloths[id]) {
				return
			}
		}
	}
}
