package host

import (
	"github.com/Faultbox/forgelight/internal/forge/objects"
	"github.com/Faultbox/forgelight/internal/forge/selection"
	"github.com/Faultbox/forgelight/internal/forge/variant"
)

// World is the host's live game state as seen by the forge tools.
type World struct {
	Objects   *objects.Table
	Selection *selection.Set
	// Variant is nil when no map variant is loaded.
	Variant *variant.MapVariant
	// PlayerUnit is the local player's unit object.
	PlayerUnit objects.Index
}

// NewWorld returns an empty world with no variant loaded.
func NewWorld() *World {
	return &World{
		Objects:    objects.NewTable(),
		Selection:  selection.New(),
		PlayerUnit: objects.None,
	}
}

// CurrentMapVariant returns the loaded variant.
func (w *World) CurrentMapVariant() (*variant.MapVariant, bool) {
	return w.Variant, w.Variant != nil
}

// CycleSelection selects only the object after the first selected one, in
// table order, wrapping at the end. With nothing selected it picks the first
// object. It returns the new selection, or objects.None for an empty table.
func (w *World) CycleSelection() objects.Index {
	ids := w.Objects.Indices()
	if len(ids) == 0 {
		w.Selection.Clear()
		return objects.None
	}

	next := 0
	for i, id := range ids {
		if w.Selection.Contains(id) {
			next = (i + 1) % len(ids)
			break
		}
	}
	w.Selection.Clear()
	w.Selection.Add(ids[next])
	return ids[next]
}
