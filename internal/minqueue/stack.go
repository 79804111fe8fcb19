// Package minqueue provides a stack and a FIFO queue that report their
// minimum element in constant time.
package minqueue

import "cmp"

type entry[T cmp.Ordered] struct {
	value T
	// min is the minimum of this entry and every entry below it.
	min T
}

// Stack is a LIFO stack that tracks its minimum. The zero value is an empty
// stack ready for use.
type Stack[T cmp.Ordered] struct {
	entries []entry[T]
}

// Push adds v on top of the stack.
func (s *Stack[T]) Push(v T) {
	m := v
	if n := len(s.entries); n > 0 {
		m = min(m, s.entries[n-1].min)
	}
	s.entries = append(s.entries, entry[T]{value: v, min: m})
}

// Pop removes and returns the top element. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return v, false
	}
	v = s.entries[n-1].value
	s.entries = s.entries[:n-1]
	return v, true
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (v T, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return v, false
	}
	return s.entries[n-1].value, true
}

// Min returns the smallest element on the stack.
func (s *Stack[T]) Min() (v T, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return v, false
	}
	return s.entries[n-1].min, true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.entries) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.entries) == 0 }
