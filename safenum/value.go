package safenum

import (
	"golang.org/x/exp/constraints"

	"github.com/LerianStudio/lib-safenum/safenum/cast"
	"github.com/LerianStudio/lib-safenum/safenum/checked"
	"github.com/LerianStudio/lib-safenum/safenum/compare"
)

// Value holds exactly one stored value of the representation type R.
// C supplies the range check and E the failure action; both are zero-size
// policy types resolved at compile time. The stored value always passed
// C.Validate at the moment it was last written — a rejected operation
// returns before any mutation, so the previous value survives intact.
//
// Copying a Value copies the stored value; instances never alias.
type Value[R constraints.Integer, C Checker[R], E Reporter] struct {
	v R
}

// New constructs a Value from raw, validating it against C. A rejected value
// reports a range violation through E and yields the zero Value.
//
// Example:
//
//	v, err := safenum.New[int8, safenum.Native[int8], safenum.Strict](127)
//	if err != nil {
//	    return fmt.Errorf("construct: %w", err)
//	}
func New[R constraints.Integer, C Checker[R], E Reporter](raw R) (Value[R, C, E], error) {
	var (
		c C
		e E
	)

	if !c.Validate(raw) {
		return Value[R, C, E]{}, e.RangeError("invalid value")
	}

	return Value[R, C, E]{v: raw}, nil
}

// From constructs a Value from a foreign integer value, converting it to R
// with a checked cast before validation. A value that R cannot represent
// exactly reports a range violation.
//
// Example:
//
//	v, err := safenum.From[int8, safenum.Native[int8], safenum.Strict](someInt64)
func From[R constraints.Integer, C Checker[R], E Reporter, F constraints.Integer](raw F) (Value[R, C, E], error) {
	var e E

	converted, ok := cast.To[R](raw)
	if !ok {
		return Value[R, C, E]{}, e.RangeError("invalid value")
	}

	return New[R, C, E](converted)
}

// Raw returns the stored representation value. This is the sanctioned unwrap
// path; the invariant guarantees the result already passed validation.
func (x Value[R, C, E]) Raw() R {
	return x.v
}

// Set replaces the stored value after validating the candidate. On rejection
// the previous value is left unchanged and a range violation is reported.
func (x *Value[R, C, E]) Set(raw R) error {
	var (
		c C
		e E
	)

	if !c.Validate(raw) {
		return e.RangeError("invalid value passed on assignment")
	}

	x.v = raw

	return nil
}

// SetFrom assigns from a foreign integer value through the same checked
// conversion as From. The previous value survives any rejection.
func SetFrom[R constraints.Integer, C Checker[R], E Reporter, F constraints.Integer](x *Value[R, C, E], raw F) error {
	var e E

	converted, ok := cast.To[R](raw)
	if !ok {
		return e.RangeError("invalid value passed on assignment")
	}

	return x.Set(converted)
}

// step applies a checked ±1 through the addition/subtraction path, validating
// the prospective value before any mutation.
func (x *Value[R, C, E]) step(up bool, msg string) error {
	var (
		c C
		e E
	)

	var (
		next R
		ok   bool
	)

	if up {
		next, ok = checked.Add(x.v, R(1))
	} else {
		next, ok = checked.Sub(x.v, R(1))
	}

	if !ok || !c.Validate(next) {
		return e.OverflowError(msg)
	}

	x.v = next

	return nil
}

// Inc is the pre-increment: it computes self + 1 through the checked
// addition path, stores it, and returns the new value by-value. Overflow at
// the top of the range is reported and the stored value is preserved.
func (x *Value[R, C, E]) Inc() (Value[R, C, E], error) {
	if err := x.step(true, "overflow on increment"); err != nil {
		return *x, err
	}

	return *x, nil
}

// Dec is the pre-decrement counterpart of Inc.
func (x *Value[R, C, E]) Dec() (Value[R, C, E], error) {
	if err := x.step(false, "overflow on decrement"); err != nil {
		return *x, err
	}

	return *x, nil
}

// PostInc increments the stored value and returns a snapshot of the prior
// value by-value. The prospective value is validated before mutation, so on
// overflow the original value is both returned and preserved.
func (x *Value[R, C, E]) PostInc() (Value[R, C, E], error) {
	prior := *x
	if err := x.step(true, "overflow on increment"); err != nil {
		return prior, err
	}

	return prior, nil
}

// PostDec decrements the stored value and returns a snapshot of the prior
// value by-value, with the same ordering guarantee as PostInc.
func (x *Value[R, C, E]) PostDec() (Value[R, C, E], error) {
	prior := *x
	if err := x.step(false, "overflow on decrement"); err != nil {
		return prior, err
	}

	return prior, nil
}

// Neg returns 0 - x through the checked subtraction path. It is only defined
// for signed representations; instantiating it with an unsigned R is a
// compile error.
func Neg[R constraints.Signed, C Checker[R], E Reporter](x Value[R, C, E]) (Value[R, C, E], error) {
	var (
		c C
		e E
	)

	negated, ok := checked.Sub(R(0), x.v)
	if !ok || !c.Validate(negated) {
		return Value[R, C, E]{}, e.OverflowError("overflow on negation")
	}

	return Value[R, C, E]{v: negated}, nil
}

// Not returns the bitwise complement of x. Like Neg it is restricted to
// signed representations; a complemented value outside the concrete type's
// range is an overflow violation.
func Not[R constraints.Signed, C Checker[R], E Reporter](x Value[R, C, E]) (Value[R, C, E], error) {
	var (
		c C
		e E
	)

	inverted := ^x.v
	if !c.Validate(inverted) {
		return Value[R, C, E]{}, e.OverflowError("overflow on complement")
	}

	return Value[R, C, E]{v: inverted}, nil
}

// Equal reports whether x and rhs hold the same value.
func (x Value[R, C, E]) Equal(rhs Value[R, C, E]) bool {
	return compare.Equal(x.v, rhs.v)
}

// Less reports whether x is less than rhs.
func (x Value[R, C, E]) Less(rhs Value[R, C, E]) bool {
	return compare.Less(x.v, rhs.v)
}

// Greater reports whether x is greater than rhs.
func (x Value[R, C, E]) Greater(rhs Value[R, C, E]) bool {
	return compare.Greater(x.v, rhs.v)
}

// NotEqual is the negation of Equal.
func (x Value[R, C, E]) NotEqual(rhs Value[R, C, E]) bool {
	return !x.Equal(rhs)
}

// GreaterEqual is the negation of Less.
func (x Value[R, C, E]) GreaterEqual(rhs Value[R, C, E]) bool {
	return !x.Less(rhs)
}

// LessEqual is the negation of Greater.
func (x Value[R, C, E]) LessEqual(rhs Value[R, C, E]) bool {
	return !x.Greater(rhs)
}

// Less reports whether x is mathematically less than the native integer rhs,
// regardless of signedness or width.
func Less[R constraints.Integer, C Checker[R], E Reporter, U constraints.Integer](x Value[R, C, E], rhs U) bool {
	return compare.Less(x.v, rhs)
}

// Greater reports whether x is mathematically greater than the native
// integer rhs.
func Greater[R constraints.Integer, C Checker[R], E Reporter, U constraints.Integer](x Value[R, C, E], rhs U) bool {
	return compare.Greater(x.v, rhs)
}

// Equal reports whether x and the native integer rhs represent the same
// mathematical value.
func Equal[R constraints.Integer, C Checker[R], E Reporter, U constraints.Integer](x Value[R, C, E], rhs U) bool {
	return compare.Equal(x.v, rhs)
}

// NotEqual is the negation of Equal.
func NotEqual[R constraints.Integer, C Checker[R], E Reporter, U constraints.Integer](x Value[R, C, E], rhs U) bool {
	return !Equal(x, rhs)
}

// GreaterEqual is the negation of Less.
func GreaterEqual[R constraints.Integer, C Checker[R], E Reporter, U constraints.Integer](x Value[R, C, E], rhs U) bool {
	return !Less(x, rhs)
}

// LessEqual is the negation of Greater.
func LessEqual[R constraints.Integer, C Checker[R], E Reporter, U constraints.Integer](x Value[R, C, E], rhs U) bool {
	return !Greater(x, rhs)
}
