package stack

import (
	"slices"
	"testing"
)

func TestNew_FocusesFirst(t *testing.T) {
	s := New(1, 2, 3)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if got, ok := s.Focused(); !ok || got != 1 {
		t.Errorf("Focused() = %d, %v, want 1, true", got, ok)
	}
}

func TestEmpty(t *testing.T) {
	s := New[int]()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Focused(); ok {
		t.Errorf("Focused() ok = true, want false")
	}

	// Mutations on an empty stack are no-ops, not panics.
	s.FocusNext()
	s.FocusPrev()
	if s.Remove(1) {
		t.Errorf("Remove(1) = true, want false")
	}
}

func TestInsert(t *testing.T) {
	s := New[int]()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	if want := []int{3, 2, 1}; !slices.Equal(s.Slice(), want) {
		t.Errorf("Slice() = %v, want %v", s.Slice(), want)
	}
	if got, _ := s.Focused(); got != 3 {
		t.Errorf("Focused() = %d, want 3", got)
	}
}

func TestInsert_ExistingOnlyFocuses(t *testing.T) {
	s := New(1, 2, 3)

	s.Insert(2)

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if got, _ := s.Focused(); got != 2 {
		t.Errorf("Focused() = %d, want 2", got)
	}
}

func TestRemove_Focused(t *testing.T) {
	s := New(1, 2, 3)
	s.FocusOn(2)

	if !s.Remove(2) {
		t.Fatalf("Remove(2) = false, want true")
	}

	if got, _ := s.Focused(); got != 3 {
		t.Errorf("Focused() = %d, want 3", got)
	}
}

func TestRemove_LastFocused(t *testing.T) {
	s := New(1, 2, 3)
	s.FocusOn(3)

	s.Remove(3)

	if got, _ := s.Focused(); got != 2 {
		t.Errorf("Focused() = %d, want 2", got)
	}
}

func TestRemove_BeforeFocusKeepsFocus(t *testing.T) {
	s := New(1, 2, 3)
	s.FocusOn(3)

	s.Remove(1)

	if got, _ := s.Focused(); got != 3 {
		t.Errorf("Focused() = %d, want 3", got)
	}
}

func TestFocusNextPrev_Wrap(t *testing.T) {
	s := New(1, 2, 3)

	s.FocusPrev()
	if got, _ := s.Focused(); got != 3 {
		t.Errorf("FocusPrev from top: Focused() = %d, want 3", got)
	}

	s.FocusNext()
	if got, _ := s.Focused(); got != 1 {
		t.Errorf("FocusNext from bottom: Focused() = %d, want 1", got)
	}
}

func TestFocusOn_Missing(t *testing.T) {
	s := New(1, 2, 3)

	if s.FocusOn(9) {
		t.Errorf("FocusOn(9) = true, want false")
	}
	if got, _ := s.Focused(); got != 1 {
		t.Errorf("Focused() = %d, want 1", got)
	}
}
