// Package variant models the placement list of a loaded map variant.
package variant

import "github.com/Faultbox/forgelight/internal/forge/objects"

// MaxPlacements is the size of a map variant's placement table.
const MaxPlacements = 640

// Placement is one entry of the placement table.
type Placement struct {
	// ObjectIndex is the spawned scene object, or objects.None when unspawned.
	ObjectIndex objects.Index
	// Budget is the palette entry the placement was created from.
	Budget int16
}

// MapVariant is the currently loaded map variant.
// Only the first UsedPlacementsCount entries of Placements are meaningful.
type MapVariant struct {
	Name                string
	Placements          []Placement
	UsedPlacementsCount int
}

// New returns an empty variant with a full placement table.
func New(name string) *MapVariant {
	p := make([]Placement, MaxPlacements)
	for i := range p {
		p[i].ObjectIndex = objects.None
	}
	return &MapVariant{Name: name, Placements: p}
}

// Place appends a placement for obj. It reports false once the table is full.
func (m *MapVariant) Place(obj objects.Index, budget int16) bool {
	if m.UsedPlacementsCount >= len(m.Placements) {
		return false
	}
	m.Placements[m.UsedPlacementsCount] = Placement{ObjectIndex: obj, Budget: budget}
	m.UsedPlacementsCount++
	return true
}

// Used returns the meaningful prefix of the placement table.
func (m *MapVariant) Used() []Placement {
	n := m.UsedPlacementsCount
	if n > len(m.Placements) {
		n = len(m.Placements)
	}
	if n < 0 {
		n = 0
	}
	return m.Placements[:n]
}
