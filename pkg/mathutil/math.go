// Package mathutil provides generic ordered-value helper functions.
package mathutil

import "cmp"

// Min calculates the minimum of two ordered values.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max calculates the maximum of two ordered values.
func Max[T cmp.Ordered](a, b T) T {
	if a < b {
		return b
	}

	return a
}
