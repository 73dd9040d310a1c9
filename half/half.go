// Package half converts between IEEE 754 binary32 and binary16. The
// conversion is branchless in the common path and trades strict IEEE
// conformance for speed: denormal halves flush to zero and every NaN encodes
// as a quiet NaN.
package half

import "math"

// Half is an IEEE 754 binary16 value stored in its bit representation.
type Half uint16

const (
	qNaN     = 0x7e00
	infinity = 0x7c00
)

// FromBits returns the Half for a raw binary16 bit pattern.
func FromBits(b uint16) Half { return Half(b) }

// Bits returns the raw binary16 bit pattern.
func (h Half) Bits() uint16 { return uint16(h) }

// FromFloat32 converts a float32 to binary16, rounding the mantissa to
// nearest. Values below the smallest half normal flush to zero; values beyond
// the half range become infinity.
func FromFloat32(f float32) Half {
	ui := math.Float32bits(f)
	s := ui >> 16 & 0x8000
	em := int32(ui & 0x7fffffff)

	// Rebias the exponent (127-15) and round the mantissa to nearest.
	h := (em - 112<<23 + 1<<12) >> 13

	if em < 113<<23 { // Underflow, flush to zero.
		h = 0
	}
	if em >= 143<<23 { // Overflow, infinity.
		h = infinity
	}
	if em > 255<<23 { // Any NaN becomes quiet NaN.
		h = qNaN
	}
	return Half(s | uint32(h))
}

// Float32 converts back to float32. Denormal halves decode as zero; NaN
// payload bits survive the widening.
func (h Half) Float32() float32 {
	s := uint32(h&0x8000) << 16
	em := int32(h & 0x7fff)

	// Rebias the exponent and pad the mantissa with zeros.
	r := (em + 112<<10) << 13

	if em < 1<<10 { // Denormal, flush to zero.
		r = 0
	}
	if em >= 31<<10 { // A second rebias maps exponent 31 to 255 (inf/NaN).
		r += 112 << 23
	}
	return math.Float32frombits(s | uint32(r))
}

// IsNaN reports whether h encodes a NaN.
func (h Half) IsNaN() bool {
	return h&0x7fff > infinity
}

// IsInf reports whether h encodes an infinity of either sign.
func (h Half) IsInf() bool {
	return h&0x7fff == infinity
}

// EncodeSlice converts src into dst, which must be at least as long.
// It returns the number of values converted.
func EncodeSlice(dst []Half, src []float32) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = FromFloat32(src[i])
	}
	return n
}

// DecodeSlice converts src into dst, which must be at least as long.
// It returns the number of values converted.
func DecodeSlice(dst []float32, src []Half) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i].Float32()
	}
	return n
}
