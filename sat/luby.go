package sat

import "math"

// luby returns y to the power of the x-th element of the Luby sequence
// (1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8, ...).
func luby(y float64, x int) float64 {
	// Find the finite subsequence that contains index x, and the size of
	// that subsequence.
	size, seq := 1, 0
	for size < x+1 {
		seq++
		size = 2*size + 1
	}

	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x = x % size
	}

	return math.Pow(y, float64(seq))
}
