package settings

import "github.com/spf13/cast"

// Ready-made coercers for common setting value types.

// CoerceBool converts a setting value to bool.
func CoerceBool(value any) (any, error) {
	return cast.ToBoolE(value)
}

// CoerceInt converts a setting value to int.
func CoerceInt(value any) (any, error) {
	return cast.ToIntE(value)
}

// CoerceFloat converts a setting value to float64.
func CoerceFloat(value any) (any, error) {
	return cast.ToFloat64E(value)
}

// CoerceString converts a setting value to string.
func CoerceString(value any) (any, error) {
	return cast.ToStringE(value)
}

// CoerceStringSlice converts a setting value to []string.
func CoerceStringSlice(value any) (any, error) {
	return cast.ToStringSliceE(value)
}

// CoerceDuration converts a setting value to time.Duration.
func CoerceDuration(value any) (any, error) {
	return cast.ToDurationE(value)
}
