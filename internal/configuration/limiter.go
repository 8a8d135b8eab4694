package configuration

import (
	"math"
	"time"

	"github.com/markusressel/fps2go/internal/ui"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultEnabled          = true
	DefaultIdleValue        = 9
	DefaultBaseValue        = 26
	DefaultMaxValue         = 60
	DefaultIncrementPerUnit = 1.5
	DefaultIntervalSeconds  = 10.0
	DefaultNotifyOnChange   = true

	// MaxIntervalSeconds keeps the interval far away from the time.Duration range limit
	MaxIntervalSeconds = 1e9
	MinInterval        = time.Millisecond
)

type LimiterConfig struct {
	Enabled bool `json:"enabled"`
	// IdleValue is the limit applied while nobody is connected
	IdleValue int `json:"idleValue"`
	// BaseValue is the lowest limit applied while at least one unit is connected
	BaseValue int `json:"baseValue"`
	// MaxValue is the upper bound of every computed limit
	MaxValue         int     `json:"maxValue"`
	IncrementPerUnit float64 `json:"incrementPerUnit"`
	IntervalSeconds  float64 `json:"intervalSeconds"`
	NotifyOnChange   bool    `json:"notifyOnChange"`
	// NeutralValue is applied when the limiter shuts down, defaults to MaxValue
	NeutralValue Optional[int] `json:"neutralValue"`
}

func DefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Enabled:          DefaultEnabled,
		IdleValue:        DefaultIdleValue,
		BaseValue:        DefaultBaseValue,
		MaxValue:         DefaultMaxValue,
		IncrementPerUnit: DefaultIncrementPerUnit,
		IntervalSeconds:  DefaultIntervalSeconds,
		NotifyOnChange:   DefaultNotifyOnChange,
	}
}

// Interval returns the evaluation timer period, never shorter than MinInterval.
// Values outside of (0, MaxIntervalSeconds) use the default interval.
func (c LimiterConfig) Interval() time.Duration {
	if !isValidIntervalSeconds(c.IntervalSeconds) {
		return time.Duration(DefaultIntervalSeconds * float64(time.Second))
	}
	return max(time.Duration(c.IntervalSeconds*float64(time.Second)), MinInterval)
}

func isValidIntervalSeconds(seconds float64) bool {
	return seconds > 0 && seconds < MaxIntervalSeconds
}

// Neutral returns the limit that leaves the host un-throttled
func (c LimiterConfig) Neutral() int {
	if c.NeutralValue.Present {
		return c.NeutralValue.Get()
	}
	return c.MaxValue
}

// readLimiterConfig reads every limiter field on its own, so a single
// malformed value only replaces that value with its default.
func readLimiterConfig(v *viper.Viper) LimiterConfig {
	defaults := DefaultLimiterConfig()
	c := LimiterConfig{
		Enabled:          readBool(v, "limiter.enabled", defaults.Enabled),
		IdleValue:        readNonNegativeInt(v, "limiter.idleValue", defaults.IdleValue),
		BaseValue:        readNonNegativeInt(v, "limiter.baseValue", defaults.BaseValue),
		MaxValue:         readNonNegativeInt(v, "limiter.maxValue", defaults.MaxValue),
		IncrementPerUnit: readNonNegativeFloat(v, "limiter.incrementPerUnit", defaults.IncrementPerUnit),
		IntervalSeconds:  readNonNegativeFloat(v, "limiter.intervalSeconds", defaults.IntervalSeconds),
		NotifyOnChange:   readBool(v, "limiter.notifyOnChange", defaults.NotifyOnChange),
	}
	if !isValidIntervalSeconds(c.IntervalSeconds) {
		ui.Warning("Config value 'limiter.intervalSeconds' must be > 0 and < %v, using default: %v", MaxIntervalSeconds, defaults.IntervalSeconds)
		c.IntervalSeconds = defaults.IntervalSeconds
	}
	if v.IsSet("limiter.neutralValue") {
		c.NeutralValue.Set(readNonNegativeInt(v, "limiter.neutralValue", c.MaxValue))
	}
	return c
}

func readBool(v *viper.Viper, key string, defaultValue bool) bool {
	if !v.IsSet(key) {
		return defaultValue
	}
	value, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		ui.Warning("Invalid config value for '%s', using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func readNonNegativeInt(v *viper.Viper, key string, defaultValue int) int {
	if !v.IsSet(key) {
		return defaultValue
	}
	value, err := cast.ToIntE(v.Get(key))
	if err != nil || value < 0 {
		ui.Warning("Invalid config value for '%s', using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func readNonNegativeFloat(v *viper.Viper, key string, defaultValue float64) float64 {
	if !v.IsSet(key) {
		return defaultValue
	}
	value, err := cast.ToFloat64E(v.Get(key))
	if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		ui.Warning("Invalid config value for '%s', using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}
