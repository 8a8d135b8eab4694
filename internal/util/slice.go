package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SortedKeys returns the keys of the given map in increasing order
func SortedKeys[T constraints.Ordered, K any](input map[T]K) []T {
	result := maps.Keys(input)
	slices.Sort(result)
	return result
}
