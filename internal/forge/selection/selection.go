// Package selection tracks which objects the forge user has selected.
package selection

import (
	"sort"

	"github.com/Faultbox/forgelight/internal/forge/objects"
)

// Set is an unordered set of selected object indices.
type Set struct {
	members map[objects.Index]struct{}
}

// New returns an empty selection.
func New(ids ...objects.Index) *Set {
	s := &Set{members: make(map[objects.Index]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Contains reports whether id is selected.
func (s *Set) Contains(id objects.Index) bool {
	_, ok := s.members[id]
	return ok
}

// Any reports whether anything is selected.
func (s *Set) Any() bool {
	return len(s.members) > 0
}

// Len returns the number of selected objects.
func (s *Set) Len() int {
	return len(s.members)
}

// Add selects id. objects.None is never selectable.
func (s *Set) Add(id objects.Index) {
	if id == objects.None {
		return
	}
	s.members[id] = struct{}{}
}

// Remove deselects id.
func (s *Set) Remove(id objects.Index) {
	delete(s.members, id)
}

// Toggle flips id's membership and returns the new state.
func (s *Set) Toggle(id objects.Index) bool {
	if s.Contains(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return s.Contains(id)
}

// Clear empties the selection.
func (s *Set) Clear() {
	clear(s.members)
}

// Indices returns the selected ids in ascending order.
func (s *Set) Indices() []objects.Index {
	out := make([]objects.Index, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
