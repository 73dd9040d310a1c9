package vmath

// Unsigned constrains the power-of-two helpers to the widths they support.
type Unsigned interface {
	~uint32 | ~uint64
}

// NextPow2 returns the smallest power of two strictly greater than or equal
// to x, doubling when x already is one. NextPow2(0) is 1.
func NextPow2[T Unsigned](x T) T {
	if x == 0 {
		return 1
	}
	if x&(x-1) == 0 {
		return x << 1
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32 // No-op at 32 bits.
	return x + 1
}

// PrevPow2 returns the largest power of two strictly less than or equal to x,
// halving when x already is one. PrevPow2(0) is 0.
func PrevPow2[T Unsigned](x T) T {
	if x == 0 {
		return 0
	}
	if x&(x-1) == 0 {
		return x >> 1
	}
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x - x>>1
}

// NearestPow2 returns whichever of PrevPow2 and NextPow2 is closer to x,
// preferring the next on ties.
func NearestPow2[T Unsigned](x T) T {
	next := NextPow2(x)
	prev := PrevPow2(x)
	if x-prev < next-x {
		return prev
	}
	return next
}
