// Package fixed implements fixed-point numeric types for platforms and hot
// paths where float conversion cost matters: Fx32 (Q16.16), Fx16 (Q8.8) and
// Fract16, an unsigned 16-bit fraction in [0, 1] with saturating arithmetic.
//
// Arithmetic wraps on overflow like the underlying integer types, except for
// Fract16 whose Add and Sub saturate at the bounds. Division by zero panics.
package fixed

const (
	fx32Shift = 16
	fx16Shift = 8
)

// Fx32 is a signed Q16.16 fixed-point number.
type Fx32 int32

// Fx32One is the Fx32 representation of 1.
const Fx32One Fx32 = 1 << fx32Shift

// Fx32FromFloat converts a float to Q16.16, truncating toward zero.
func Fx32FromFloat(x float32) Fx32 {
	return Fx32(x * (1 << fx32Shift))
}

// Fx32FromInt converts an integer to Q16.16.
func Fx32FromInt(x int32) Fx32 {
	return Fx32(x << fx32Shift)
}

// Float32 converts back to a float.
func (x Fx32) Float32() float32 {
	return float32(x) / (1 << fx32Shift)
}

// Int32 truncates to the integer part, rounding toward negative infinity.
func (x Fx32) Int32() int32 {
	return int32(x >> fx32Shift)
}

// Abs returns the absolute value.
func (x Fx32) Abs() Fx32 {
	if x < 0 {
		return -x
	}
	return x
}

// Round returns the nearest integer, half-fractions rounding up.
func (x Fx32) Round() int32 {
	if x&(1<<fx32Shift-1) >= 1<<(fx32Shift-1) {
		return int32(x>>fx32Shift) + 1
	}
	return int32(x >> fx32Shift)
}

// Floor clears the fractional bits.
func (x Fx32) Floor() Fx32 {
	return x &^ (1<<fx32Shift - 1)
}

// Fract keeps only the fractional bits.
func (x Fx32) Fract() Fx32 {
	return x & (1<<fx32Shift - 1)
}

// Mul returns x*y with a 64-bit intermediate.
func (x Fx32) Mul(y Fx32) Fx32 {
	return Fx32(int64(x) * int64(y) >> fx32Shift)
}

// Div returns x/y with a 64-bit intermediate. Panics if y is zero.
func (x Fx32) Div(y Fx32) Fx32 {
	return Fx32(int64(x) << fx32Shift / int64(y))
}

// Sqrt returns the square root via two Newton-Raphson refinements of a
// halved-input estimate. Non-positive inputs return 0.
func (x Fx32) Sqrt() Fx32 {
	if x <= 0 {
		return 0
	}
	r := (x >> 1) + 1<<(fx32Shift-1)
	r = (r + x.Div(r)) >> 1
	r = (r + x.Div(r)) >> 1
	return r
}

// InvSqrt returns 1/sqrt(x) seeded with the classic 0x5f3759df estimate and
// refined with two Newton-Raphson steps in fixed point. Non-positive inputs
// return 0.
func (x Fx32) InvSqrt() Fx32 {
	if x <= 0 {
		return 0
	}
	r := Fx32(0x5f3759df - int32(x)>>1)
	halfx := x >> 1
	r = r.Mul(0x30000000 - halfx.Mul(r.Mul(r)))
	r = r.Mul(0x30000000 - halfx.Mul(r.Mul(r)))
	return r
}

// Fx16 is a signed Q8.8 fixed-point number.
type Fx16 int16

// Fx16One is the Fx16 representation of 1.
const Fx16One Fx16 = 1 << fx16Shift

// Fx16FromFloat converts a float to Q8.8, truncating toward zero.
func Fx16FromFloat(x float32) Fx16 {
	return Fx16(x * (1 << fx16Shift))
}

// Fx16FromInt converts an integer to Q8.8.
func Fx16FromInt(x int32) Fx16 {
	return Fx16(x << fx16Shift)
}

// Float32 converts back to a float.
func (x Fx16) Float32() float32 {
	return float32(x) / (1 << fx16Shift)
}

// Int32 truncates to the integer part, rounding toward negative infinity.
func (x Fx16) Int32() int32 {
	return int32(x >> fx16Shift)
}

// Abs returns the absolute value.
func (x Fx16) Abs() Fx16 {
	if x < 0 {
		return -x
	}
	return x
}

// Round returns the nearest integer, half-fractions rounding up.
func (x Fx16) Round() int32 {
	if x&(1<<fx16Shift-1) >= 1<<(fx16Shift-1) {
		return int32(x>>fx16Shift) + 1
	}
	return int32(x >> fx16Shift)
}

// Floor clears the fractional bits.
func (x Fx16) Floor() Fx16 {
	return x &^ (1<<fx16Shift - 1)
}

// Fract keeps only the fractional bits.
func (x Fx16) Fract() Fx16 {
	return x & (1<<fx16Shift - 1)
}

// Mul returns x*y with a 32-bit intermediate.
func (x Fx16) Mul(y Fx16) Fx16 {
	return Fx16(int32(x) * int32(y) >> fx16Shift)
}

// Div returns x/y with a 32-bit intermediate. Panics if y is zero.
func (x Fx16) Div(y Fx16) Fx16 {
	return Fx16(int32(x) << fx16Shift / int32(y))
}

// Fract16 is an unsigned fraction in [0, 1] where 0xFFFF represents 1.
type Fract16 uint16

// Fract16One is the Fract16 representation of 1.
const Fract16One Fract16 = 0xFFFF

// Fract16FromFloat converts a float to Fract16, clamping to [0, 1] and
// rounding to nearest.
func Fract16FromFloat(x float32) Fract16 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return Fract16One
	}
	return Fract16(x*float32(Fract16One) + 0.5)
}

// Float32 converts back to a float.
func (x Fract16) Float32() float32 {
	return float32(x) / float32(Fract16One)
}

// Fract16FromFx16 converts a Q8.8 value, clamping to [0, 1].
func Fract16FromFx16(x Fx16) Fract16 {
	if x <= 0 {
		return 0
	}
	if x >= Fx16One {
		return Fract16One
	}
	return Fract16(uint32(x) * uint32(Fract16One) >> fx16Shift)
}

// Fx16 converts to Q8.8.
func (x Fract16) Fx16() Fx16 {
	return Fx16(uint32(x) * (1 << fx16Shift) / uint32(Fract16One))
}

// Add returns x+y saturating at 1.
func (x Fract16) Add(y Fract16) Fract16 {
	sum := uint32(x) + uint32(y)
	if sum > uint32(Fract16One) {
		return Fract16One
	}
	return Fract16(sum)
}

// Sub returns x-y saturating at 0.
func (x Fract16) Sub(y Fract16) Fract16 {
	if x > y {
		return x - y
	}
	return 0
}

// Mul returns x*y rounded to nearest.
func (x Fract16) Mul(y Fract16) Fract16 {
	return Fract16((uint32(x)*uint32(y) + uint32(Fract16One)/2) >> 16)
}

// Div returns x/y. Panics if y is zero.
func (x Fract16) Div(y Fract16) Fract16 {
	return Fract16(uint32(x) << 16 / uint32(y))
}
