package vmath

import "github.com/cwbudde/algo-vecmath"

// Block operations act on float64 slices of equal length. The vecmath-backed
// ones inherit its SIMD dispatch on supported platforms.

// ScaleBlock writes src*s into dst.
func ScaleBlock(dst, src []float64, s float64) {
	vecmath.ScaleBlock(dst, src, s)
}

// AddBlockInPlace accumulates src into dst.
func AddBlockInPlace(dst, src []float64) {
	vecmath.AddBlockInPlace(dst, src)
}

// MulBlock writes a*b component-wise into dst.
func MulBlock(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
}

// MulBlockInPlace multiplies dst component-wise by src.
func MulBlockInPlace(dst, src []float64) {
	vecmath.MulBlockInPlace(dst, src)
}

// HypotBlock writes sqrt(x^2+y^2) per component into dst.
func HypotBlock(dst, x, y []float64) {
	vecmath.Magnitude(dst, x, y)
}

// PowerBlock writes x^2+y^2 per component into dst.
func PowerBlock(dst, x, y []float64) {
	vecmath.Power(dst, x, y)
}

// LerpBlock interpolates component-wise from a to b by t into dst.
func LerpBlock(dst, a, b []float64, t float64) {
	for i := range dst {
		dst[i] = a[i] + t*(b[i]-a[i])
	}
}

// SmoothstepBlock maps every src component onto the quintic smoothstep curve
// between the two edges into dst.
func SmoothstepBlock(dst, src []float64, edge0, edge1 float64) {
	for i := range dst {
		dst[i] = Smoothstep(edge0, edge1, src[i])
	}
}
