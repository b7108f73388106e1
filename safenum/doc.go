// Package safenum wraps fixed-width integers so that every arithmetic,
// comparison, and bitwise operation is range-checked instead of silently
// wrapping, truncating, or invoking undefined native behavior.
//
// A Value holds exactly one stored value and never knowingly holds an
// invalid one: construction, assignment, compound assignment, and
// increment/decrement all validate before committing, and a rejected
// operation leaves the previous value untouched. Validation and failure
// reporting are both injected as type parameters, so a concrete safe type
// is just an instantiation:
//
//	month, err := safenum.New[int8, monthChecker, safenum.Strict](7)
//
// The fixed-width aliases (Int8 through Uint64) pair the full native range
// with the error-returning Strict policy:
//
//	counter, err := safenum.NewUint8(200)
//
// Binary operators are free functions whose result representation is named
// by the call site; see Add for the promotion rules. Comparisons delegate to
// safenum/compare and are correct across signedness and width.
package safenum
