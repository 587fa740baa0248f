package vmath

// Unfold maps an unbounded coordinate into [0, hi] by repeated mirror
// reflection at 0 and hi, the integer form of a triangle wave
// Each reflection models one wall bounce of a straight-line projection
// hi must be positive, otherwise the reflection never converges
func Unfold(x, hi int) int {
	for x < 0 || x > hi {
		if x < 0 {
			x = -x
		} else {
			x = 2*hi - x
		}
	}
	return x
}
