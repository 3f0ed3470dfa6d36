package selection

import (
	"testing"

	"github.com/Faultbox/forgelight/internal/forge/objects"
)

func TestEmpty(t *testing.T) {
	s := New()
	if s.Any() {
		t.Error("new selection should be empty")
	}
	if s.Contains(1) {
		t.Error("empty selection should not contain 1")
	}
}

func TestAddRemoveToggle(t *testing.T) {
	s := New(3, 5)

	if !s.Contains(3) || !s.Contains(5) || s.Len() != 2 {
		t.Fatalf("expected {3, 5}, got %v", s.Indices())
	}

	if s.Toggle(5) {
		t.Error("Toggle(5) should deselect")
	}
	if !s.Toggle(8) {
		t.Error("Toggle(8) should select")
	}
	s.Remove(3)

	got := s.Indices()
	if len(got) != 1 || got[0] != 8 {
		t.Errorf("Indices() = %v, want [8]", got)
	}

	s.Clear()
	if s.Any() {
		t.Error("Clear should empty the selection")
	}
}

func TestNoneNotSelectable(t *testing.T) {
	s := New(objects.None)
	if s.Any() {
		t.Error("objects.None must not be selectable")
	}
	if s.Toggle(objects.None) {
		t.Error("Toggle(None) should report false")
	}
}

func TestIndicesSorted(t *testing.T) {
	s := New(9, 1, 4)
	got := s.Indices()
	want := []objects.Index{1, 4, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Indices() = %v, want %v", got, want)
		}
	}
}
