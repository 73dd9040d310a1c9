package vmath

import "testing"

func TestNextPow2(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 4},
		{5, 8},
		{64, 128},
		{1000, 1024},
		{1 << 30, 1 << 31},
	}
	for _, tt := range tests {
		if got := NextPow2(tt.in); got != tt.want {
			t.Errorf("NextPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPrevPow2(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{64, 32},
		{100, 64},
		{1024, 512},
	}
	for _, tt := range tests {
		if got := PrevPow2(tt.in); got != tt.want {
			t.Errorf("PrevPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNearestPow2(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{65, 64},
		{100, 128},
		{127, 128},
		{96, 128}, // Equidistant prefers next.
		{64, 32},  // Exact powers are strict, so both neighbors move.
	}
	for _, tt := range tests {
		if got := NearestPow2(tt.in); got != tt.want {
			t.Errorf("NearestPow2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPow2U64(t *testing.T) {
	if got := NextPow2(uint64(1) << 40); got != 1<<41 {
		t.Errorf("NextPow2(2^40) = %d, want 2^41", got)
	}
	if got := NextPow2(uint64(1)<<40 + 1); got != 1<<41 {
		t.Errorf("NextPow2(2^40+1) = %d, want 2^41", got)
	}
	if got := PrevPow2(uint64(1)<<40 + 1); got != 1<<40 {
		t.Errorf("PrevPow2(2^40+1) = %d, want 2^40", got)
	}
}
