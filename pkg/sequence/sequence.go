// Package sequence provides the deduplicate-and-sort transforms used by the
// processing pipeline. All functions allocate their result and leave the
// input untouched.
package sequence

import (
	"cmp"
	"slices"
)

// DeduplicateAndSort removes duplicates from a slice and sorts the result
// ascending. The input is walked once in its original order against a
// membership set; the returned slice is newly allocated and owned by the
// caller.
func DeduplicateAndSort[T cmp.Ordered](input []T) []T {
	seen := NewSet[T]()
	var result []T

	for _, item := range input {
		if !seen.Has(item) {
			seen.Add(item)
			result = append(result, item)
		}
	}

	slices.Sort(result)
	return result
}

// Deduplicate removes duplicates while preserving first-occurrence order.
func Deduplicate[T comparable](input []T) []T {
	seen := NewSet[T]()
	var result []T

	for _, item := range input {
		if !seen.Has(item) {
			seen.Add(item)
			result = append(result, item)
		}
	}

	return result
}
