package blend

import "math"

// Channel is the set of numeric types that can hold a single color
// channel value. Integer channels range from zero to their maximum
// value, floating point channels range from 0 to 1.
type Channel interface {
	~uint8 | ~uint16 | ~uint32 | ~float32 | ~float64
}

// Returns the value representing full intensity for the channel type.
func MaxValue[T Channel]() float64 {
	half := 0.5
	if T(half) != 0 { return 1.0 } // floating point channel
	var zero T
	return float64(zero - 1)
}

// Converts a channel value to a float64 in [0, 1].
func ToFloat[T Channel](value T) float64 {
	return float64(value)/MaxValue[T]()
}

// Converts a float64 in [0, 1] back to the channel type. Values
// outside the range are clamped and NaN becomes zero. Integer
// channels are rounded to the nearest value.
func ClampFromFloat[T Channel](value float64) T {
	if !(value > 0) { return 0 }
	if value >= 1 { value = 1 }
	maxValue := MaxValue[T]()
	if maxValue == 1.0 { return T(value) }
	return T(math.Round(value*maxValue))
}

// Returns current*(1 - weight) + target*weight. Weights are clamped
// to [0, 1], so a weight of zero returns current unchanged and a
// weight of one returns target exactly.
func WeightedSum[T Channel](current, target T, weight float32) T {
	if !(weight > 0) { return current }
	if weight >= 1 { return target }
	w := float64(weight)
	return ClampFromFloat[T](ToFloat(current)*(1 - w) + ToFloat(target)*w)
}
