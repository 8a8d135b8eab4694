package configuration

// Optional is a generic container for optional configuration values.
type Optional[T any] struct {
	// Value holds the actual value.
	Value T
	// Present indicates if the value was present in the configuration.
	Present bool
	// RuntimeOverride indicates if the value was overridden at runtime.
	RuntimeOverride bool
}

// Get returns the value, which is the zero value of T if neither present nor overridden.
func (o *Optional[T]) Get() T {
	return o.Value
}

// GetOrDefault returns the value if present or overridden, otherwise the given defaultValue.
func (o *Optional[T]) GetOrDefault(defaultValue T) T {
	if !o.Present && !o.RuntimeOverride {
		return defaultValue
	}
	return o.Value
}

// Set sets the value as read from the configuration.
func (o *Optional[T]) Set(value T) {
	o.Present = true
	o.Value = value
}

// SetOverride sets the value and marks it as overridden at runtime.
func (o *Optional[T]) SetOverride(value T) {
	o.RuntimeOverride = true
	o.Value = value
}
