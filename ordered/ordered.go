// Package ordered provides tiny generic helpers over ordered types.
//
// One signature, any ordered type: the compiler instantiates per type the
// same way a template would, without reflection or interface boxing.
package ordered

import "golang.org/x/exp/constraints"

// Max returns the larger of first and second.
func Max[T constraints.Ordered](first, second T) T {
	if first > second {
		return first
	}
	return second
}

// Min returns the smaller of first and second.
func Min[T constraints.Ordered](first, second T) T {
	if first < second {
		return first
	}
	return second
}

// Clamp pins v into [lo, hi]. It assumes lo <= hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
