package array

import "math/bits"

// GrowCapacity returns the capacity every size-increasing operation grows to
// when required elements exceed the current allocation: the smallest power of
// two above required. A requirement that is already a power of two is doubled
// rather than kept as a tight fit, so growth always at least doubles from a
// power-of-two-aligned requirement.
//
// Collaborators that maintain their own byte storage (see the strbuf package)
// use the same policy to keep reallocation behavior uniform across the
// collection.
func GrowCapacity(required int) int {
	if required <= 0 {
		return 1
	}
	if required&(required-1) == 0 {
		return required << 1
	}
	return 1 << bits.Len(uint(required))
}
