package util

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Coerce returns value limited to the range [min..max]
func Coerce[T constraints.Integer | constraints.Float](value T, min T, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// FloorToInt rounds the given value towards negative infinity.
// Values outside of the int range saturate at math.MinInt or math.MaxInt, NaN maps to 0.
func FloorToInt(value float64) int {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= float64(math.MaxInt):
		return math.MaxInt
	case value <= float64(math.MinInt):
		return math.MinInt
	}
	return int(math.Floor(value))
}
