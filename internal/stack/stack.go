// Package stack provides the ordered, focused collection of window
// identifiers that layouts are computed over. The event loop owns and mutates
// a stack; layouts only read it.
package stack

import "slices"

// Stack is an ordered sequence with at most one focused element. The zero
// value is an empty stack. A non-empty stack always has a focus and the focus
// is always a member of the sequence.
type Stack[T comparable] struct {
	items []T
	focus int
}

// New returns a stack over items in order, focusing the first element.
func New[T comparable](items ...T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Slice returns the elements in stacking order. The returned slice is shared
// with the stack and must not be mutated by the caller.
func (s *Stack[T]) Slice() []T {
	return s.items
}

// Focused returns the focused element, or false when the stack is empty.
func (s *Stack[T]) Focused() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[s.focus], true
}

// Insert pushes t onto the top of the stack and focuses it. Inserting an
// element that is already present only moves focus to it.
func (s *Stack[T]) Insert(t T) {
	if idx := slices.Index(s.items, t); idx != -1 {
		s.focus = idx
		return
	}
	s.items = slices.Insert(s.items, 0, t)
	s.focus = 0
}

// Remove deletes t from the stack, reporting whether it was present. When the
// focused element is removed, focus moves to the next element in stacking
// order, or the new last element if the focus was at the bottom.
func (s *Stack[T]) Remove(t T) bool {
	idx := slices.Index(s.items, t)
	if idx == -1 {
		return false
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	if idx < s.focus {
		s.focus--
	}
	if s.focus >= len(s.items) && s.focus > 0 {
		s.focus = len(s.items) - 1
	}

	return true
}

// FocusOn moves focus to t, reporting whether t is a member.
func (s *Stack[T]) FocusOn(t T) bool {
	idx := slices.Index(s.items, t)
	if idx == -1 {
		return false
	}
	s.focus = idx
	return true
}

// FocusNext moves focus one element down the stack, wrapping at the bottom.
func (s *Stack[T]) FocusNext() {
	if len(s.items) == 0 {
		return
	}
	s.focus = (s.focus + 1) % len(s.items)
}

// FocusPrev moves focus one element up the stack, wrapping at the top.
func (s *Stack[T]) FocusPrev() {
	if len(s.items) == 0 {
		return
	}
	s.focus = (s.focus + len(s.items) - 1) % len(s.items)
}
