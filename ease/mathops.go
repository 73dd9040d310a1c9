//go:build !fastmath

package ease

import "math"

// exp2 computes 2^x using standard library math.
func exp2(x float64) float64 {
	return math.Exp2(x)
}

// sqrt computes sqrt(x) using standard library math.
func sqrt(x float64) float64 {
	return math.Sqrt(x)
}
