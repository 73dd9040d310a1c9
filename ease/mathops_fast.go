//go:build fastmath

package ease

import "github.com/meko-christian/algo-approx"

// ln2 is the natural logarithm of 2, used for exponent base conversion.
const ln2 = 0.693147180559945309417232121458

// exp2 computes 2^x using fast approximation.
// Uses the identity: 2^x = e^(x * ln(2))
func exp2(x float64) float64 {
	return approx.FastExp(x * ln2)
}

// sqrt computes sqrt(x) using fast approximation.
func sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
