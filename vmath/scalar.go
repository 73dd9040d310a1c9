// Package vmath provides the scalar interpolation helpers, power-of-two
// utilities and small vector types used across the module, plus SIMD-friendly
// block operations over float64 slices.
package vmath

import (
	"cmp"
	"math"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Clamp limits x to [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate limits x to [0, 1].
func Saturate(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Lerp interpolates linearly from a to b by t. t outside [0, 1] extrapolates.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InverseLerp returns where value sits between a and b as a fraction.
func InverseLerp(a, b, value float64) float64 {
	return (value - a) / (b - a)
}

// Remap maps value from the input range onto the output range.
func Remap(value, inStart, inEnd, outStart, outEnd float64) float64 {
	return (value-inStart)/(inEnd-inStart)*(outEnd-outStart) + outStart
}

// Fract returns the fractional part of x, always in [0, 1).
func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// Step returns 0 when x is below edge and 1 otherwise.
func Step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

// Smoothstep maps x onto the quintic 6t^5-15t^4+10t^3 curve between the two
// edges, clamping outside them. Unlike the cubic GLSL form it has zero second
// derivative at both edges.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}

// Approx reports whether a and b differ by less than epsilon.
func Approx(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// MoveTowards steps current toward target by at most maxDelta, landing
// exactly on target when within range.
func MoveTowards(current, target, maxDelta float64) float64 {
	delta := target - current
	if math.Abs(delta) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, delta)
}

// ExpDecay evaluates exponential decay of initial at the given rate and time.
func ExpDecay(initial, decayRate, time float64) float64 {
	return initial * math.Exp(-decayRate*time)
}

// Wrap folds value into [lo, hi) by range repetition. Values below lo wrap
// from the top.
func Wrap(value, lo, hi float64) float64 {
	r := hi - lo
	w := math.Mod(value-lo, r)
	if w < 0 {
		w += r
	}
	return lo + w
}

// WrapInt folds value into [lo, hi) by range repetition.
func WrapInt(value, lo, hi int) int {
	r := hi - lo
	w := (value - lo) % r
	if w < 0 {
		w += r
	}
	return lo + w
}

// WrapAngle folds radians into [-Pi, Pi].
func WrapAngle(radians float64) float64 {
	wrapped := math.Mod(radians, Tau)
	if wrapped < -math.Pi {
		wrapped += Tau
	} else if wrapped > math.Pi {
		wrapped -= Tau
	}
	return wrapped
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(a, b, t float64) float64 {
	return a + WrapAngle(b-a)*t
}
