package fract

import "math"

// Fixed point type to represent fractional values used for glyph
// positioning and rasterization.
//
// 26 bits represent the integer part of the value, while the remaining
// 6 bits represent the decimal part. So, var pixels Unit = 64 means
// 1 pixel, and 96 would be 1.5 pixels.
type Unit int32

// Minimum and maximum constants.
const (
	MaxUnit Unit = +0x7FFFFFFF
	MinUnit Unit = -0x7FFFFFFF - 1
	One Unit = 64
	Delta float64 = 0.015625 // 1.0/64.0
)

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a float64 to the closest Unit, rounding up in case
// of ties. NaNs convert to zero and values out of range are
// clamped to [MinUnit] and [MaxUnit].
func FromFloat64(value float64) Unit {
	if math.IsNaN(value) { return 0 }
	scaled := math.Floor(value*64 + 0.5)
	if scaled >= float64(MaxUnit) { return MaxUnit }
	if scaled <= float64(MinUnit) { return MinUnit }
	return Unit(scaled)
}

// Returns whether the Unit is a whole number.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Returns the non-negative fractional part of the unit, in [0, 63].
// For negative values this is the distance to the floor, not to zero:
// FromFloat64(-0.25).FractShift() == 48.
func (self Unit) FractShift() Unit {
	return self & 0x3F
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

// Multiplies two units, rounding half up.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}
