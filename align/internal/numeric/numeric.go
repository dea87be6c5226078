// Package numeric holds tiny generic max/min helpers over ordered types.
// The int score matrices of the classical aligners use them; the float64
// recurrences (context/profile/basic aligners) pick cells with their own
// pickBest/pickLocal cascade instead.
package numeric

import "golang.org/x/exp/constraints"

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max3 returns the largest of three values.
func Max3[T constraints.Ordered](a, b, c T) T {
	return Max(a, Max(b, c))
}

// Min3 returns the smallest of three values.
func Min3[T constraints.Ordered](a, b, c T) T {
	return Min(a, Min(b, c))
}
