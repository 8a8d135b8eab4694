package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	// GIVEN
	min := 10
	max := 60

	// THEN
	assert.Equal(t, 10, Coerce(-5, min, max))
	assert.Equal(t, 10, Coerce(10, min, max))
	assert.Equal(t, 33, Coerce(33, min, max))
	assert.Equal(t, 60, Coerce(60, min, max))
	assert.Equal(t, 60, Coerce(86, min, max))
}

func TestCoerceFloat(t *testing.T) {
	assert.Equal(t, 0.5, Coerce(0.5, 0.0, 1.0))
	assert.Equal(t, 1.0, Coerce(1.5, 0.0, 1.0))
}

func TestFloorToInt(t *testing.T) {
	assert.Equal(t, 1, FloorToInt(1.5))
	assert.Equal(t, 15, FloorToInt(15.0))
	assert.Equal(t, 1, FloorToInt(1.9999))
	assert.Equal(t, 0, FloorToInt(0.1))
}

func TestFloorToInt_Saturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, FloorToInt(1e30))
	assert.Equal(t, math.MaxInt, FloorToInt(math.Inf(1)))
	assert.Equal(t, math.MinInt, FloorToInt(-1e30))
	assert.Equal(t, math.MinInt, FloorToInt(math.Inf(-1)))
	assert.Equal(t, 0, FloorToInt(math.NaN()))
	assert.Equal(t, -2, FloorToInt(-1.5))
}
