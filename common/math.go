package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap maps v into [0, size). A non-positive size returns v unchanged.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	if r >= size {
		r = 0
	}
	return r
}
