package compare

import "golang.org/x/exp/constraints"

// Less reports whether a is mathematically less than b.
//
// Example:
//
//	compare.Less(int8(-1), uint64(0)) // true
func Less[A, B constraints.Integer](a A, b B) bool {
	aNeg := a < 0
	bNeg := b < 0

	switch {
	case aNeg && !bNeg:
		return true
	case !aNeg && bNeg:
		return false
	case aNeg:
		// Both negative, so both operands are signed types and widening
		// to int64 preserves the value.
		return int64(a) < int64(b)
	default:
		return uint64(a) < uint64(b)
	}
}

// Greater reports whether a is mathematically greater than b.
func Greater[A, B constraints.Integer](a A, b B) bool {
	return Less(b, a)
}

// Equal reports whether a and b represent the same mathematical value.
func Equal[A, B constraints.Integer](a A, b B) bool {
	if (a < 0) != (b < 0) {
		return false
	}

	if a < 0 {
		return int64(a) == int64(b)
	}

	return uint64(a) == uint64(b)
}

// NotEqual is the negation of Equal.
func NotEqual[A, B constraints.Integer](a A, b B) bool {
	return !Equal(a, b)
}

// GreaterEqual is the negation of Less.
func GreaterEqual[A, B constraints.Integer](a A, b B) bool {
	return !Less(a, b)
}

// LessEqual is the negation of Greater.
func LessEqual[A, B constraints.Integer](a A, b B) bool {
	return !Greater(a, b)
}
