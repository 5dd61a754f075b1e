package sequence

import (
	"cmp"
	"slices"
)

// Set is a membership set over comparable values. It backs the single-pass
// dedup transforms but is usable on its own.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set containing the given values.
func NewSet[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	s.Add(vals...)
	return s
}

// Add inserts values into the set.
func (s Set[T]) Add(vals ...T) {
	for _, v := range vals {
		s[v] = struct{}{}
	}
}

// Has reports whether v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int {
	return len(s)
}

// SortedValues returns the members of an ordered set, sorted ascending.
func SortedValues[T cmp.Ordered](s Set[T]) []T {
	result := make([]T, 0, len(s))
	for v := range s {
		result = append(result, v)
	}
	slices.Sort(result)
	return result
}
