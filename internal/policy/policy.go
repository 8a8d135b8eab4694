package policy

import (
	"math"

	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/util"
)

// ComputeTarget returns the limit for the given load.
//
// A load of zero (or less) always maps to the idle value. Any other load maps to
// baseValue + floor(load * incrementPerUnit), capped at maxValue.
func ComputeTarget(load int, config configuration.LimiterConfig) int {
	if load <= 0 {
		return config.IdleValue
	}
	increment := float64(load) * config.IncrementPerUnit
	// compared in float64 so huge loads or increments cannot overflow the int sum
	if increment >= float64(config.MaxValue)-float64(config.BaseValue) {
		return config.MaxValue
	}
	return config.BaseValue + util.FloorToInt(increment)
}

// Table evaluates the policy for every load in [fromLoad..toLoad]
func Table(config configuration.LimiterConfig, fromLoad int, toLoad int) map[int]int {
	fromLoad = max(fromLoad, 0)
	result := map[int]int{}
	for load := fromLoad; load <= toLoad; load++ {
		result[load] = ComputeTarget(load, config)
	}
	return result
}

// SaturationLoad returns the smallest load at which the policy reaches maxValue,
// or -1 if it never does.
func SaturationLoad(config configuration.LimiterConfig) int {
	if config.BaseValue >= config.MaxValue {
		return 1
	}
	if config.IncrementPerUnit <= 0 {
		return -1
	}
	missing := float64(config.MaxValue - config.BaseValue)
	estimate := missing / config.IncrementPerUnit
	if estimate >= float64(math.MaxInt) {
		return -1
	}
	load := util.FloorToInt(estimate)
	for load < math.MaxInt && ComputeTarget(load, config) < config.MaxValue {
		load++
	}
	if ComputeTarget(load, config) < config.MaxValue {
		return -1
	}
	for load > 1 && ComputeTarget(load-1, config) >= config.MaxValue {
		load--
	}
	return max(load, 1)
}
