package safenum

import (
	"golang.org/x/exp/constraints"

	"github.com/LerianStudio/lib-safenum/safenum/cast"
	"github.com/LerianStudio/lib-safenum/safenum/checked"
)

// Binary operators live at package scope rather than on Value: the result
// representation P is named by the call site, which is how the promotion
// policy's type-level output is expressed in Go. The conservative rule —
// pick a P at least as wide as the wider operand, signed whenever a signed
// operand participates — guarantees both operands convert and only genuine
// result overflow is reported. A deliberately narrower P is still exact:
// operands or results that P cannot represent surface as overflow
// violations, never as silent truncation.
//
// Results carry the full-range Native checker and the left operand's report
// policy; re-narrow into a custom-ranged type with Set or From.

// promoteOperands converts both operand representations into P, reporting
// through e when a value is not exactly representable.
func promoteOperands[P, A, B constraints.Integer](a A, b B, e Reporter) (P, P, error) {
	pa, ok := cast.To[P](a)
	if !ok {
		return 0, 0, e.OverflowError("left operand not representable in result type")
	}

	pb, ok := cast.To[P](b)
	if !ok {
		return 0, 0, e.OverflowError("right operand not representable in result type")
	}

	return pa, pb, nil
}

// Add returns a + b in the promoted representation P.
//
// Example:
//
//	sum, err := safenum.Add[int16](a, b) // a safe int8, b safe uint8
func Add[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter, B constraints.Integer, CB Checker[B], EB Reporter](
	a Value[A, CA, EA], b Value[B, CB, EB],
) (Value[P, Native[P], EA], error) {
	var e EA

	pa, pb, err := promoteOperands[P](a.v, b.v, e)
	if err != nil {
		return Value[P, Native[P], EA]{}, err
	}

	sum, ok := checked.Add(pa, pb)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("addition overflow")
	}

	return Value[P, Native[P], EA]{v: sum}, nil
}

// Sub returns a - b in the promoted representation P.
func Sub[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter, B constraints.Integer, CB Checker[B], EB Reporter](
	a Value[A, CA, EA], b Value[B, CB, EB],
) (Value[P, Native[P], EA], error) {
	var e EA

	pa, pb, err := promoteOperands[P](a.v, b.v, e)
	if err != nil {
		return Value[P, Native[P], EA]{}, err
	}

	diff, ok := checked.Sub(pa, pb)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("subtraction overflow")
	}

	return Value[P, Native[P], EA]{v: diff}, nil
}

// Mul returns a * b in the promoted representation P.
func Mul[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter, B constraints.Integer, CB Checker[B], EB Reporter](
	a Value[A, CA, EA], b Value[B, CB, EB],
) (Value[P, Native[P], EA], error) {
	var e EA

	pa, pb, err := promoteOperands[P](a.v, b.v, e)
	if err != nil {
		return Value[P, Native[P], EA]{}, err
	}

	product, ok := checked.Mul(pa, pb)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("multiplication overflow")
	}

	return Value[P, Native[P], EA]{v: product}, nil
}

// Div returns a / b in the promoted representation P. A zero divisor is a
// domain violation, reported before any computation; the only overflow case
// is the most negative value divided by -1.
func Div[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter, B constraints.Integer, CB Checker[B], EB Reporter](
	a Value[A, CA, EA], b Value[B, CB, EB],
) (Value[P, Native[P], EA], error) {
	var e EA

	if b.v == 0 {
		return Value[P, Native[P], EA]{}, e.DomainError("division by zero")
	}

	pa, pb, err := promoteOperands[P](a.v, b.v, e)
	if err != nil {
		return Value[P, Native[P], EA]{}, err
	}

	quotient, ok := checked.Div(pa, pb)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("division overflow")
	}

	return Value[P, Native[P], EA]{v: quotient}, nil
}

// Mod returns a % b in the promoted representation P, with the same zero
// divisor and overflow rules as Div.
func Mod[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter, B constraints.Integer, CB Checker[B], EB Reporter](
	a Value[A, CA, EA], b Value[B, CB, EB],
) (Value[P, Native[P], EA], error) {
	var e EA

	if b.v == 0 {
		return Value[P, Native[P], EA]{}, e.DomainError("division by zero")
	}

	pa, pb, err := promoteOperands[P](a.v, b.v, e)
	if err != nil {
		return Value[P, Native[P], EA]{}, err
	}

	remainder, ok := checked.Mod(pa, pb)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("modulus overflow")
	}

	return Value[P, Native[P], EA]{v: remainder}, nil
}

// And returns a & b in the promoted representation P. Bitwise results are
// always representable in P, so only operand conversion can fail.
func And[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter, B constraints.Integer, CB Checker[B], EB Reporter](
	a Value[A, CA, EA], b Value[B, CB, EB],
) (Value[P, Native[P], EA], error) {
	var e EA

	pa, pb, err := promoteOperands[P](a.v, b.v, e)
	if err != nil {
		return Value[P, Native[P], EA]{}, err
	}

	return Value[P, Native[P], EA]{v: pa & pb}, nil
}

// Or returns a | b in the promoted representation P.
func Or[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter, B constraints.Integer, CB Checker[B], EB Reporter](
	a Value[A, CA, EA], b Value[B, CB, EB],
) (Value[P, Native[P], EA], error) {
	var e EA

	pa, pb, err := promoteOperands[P](a.v, b.v, e)
	if err != nil {
		return Value[P, Native[P], EA]{}, err
	}

	return Value[P, Native[P], EA]{v: pa | pb}, nil
}

// Xor returns a ^ b in the promoted representation P.
func Xor[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter, B constraints.Integer, CB Checker[B], EB Reporter](
	a Value[A, CA, EA], b Value[B, CB, EB],
) (Value[P, Native[P], EA], error) {
	var e EA

	pa, pb, err := promoteOperands[P](a.v, b.v, e)
	if err != nil {
		return Value[P, Native[P], EA]{}, err
	}

	return Value[P, Native[P], EA]{v: pa ^ pb}, nil
}

// Shl returns a << count in the promoted representation P. Shifting a
// negative stored value is undefined for native integers and is reported as
// an overflow violation, as is a negative count or a count of Width(A) bits
// or more.
func Shl[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter](
	a Value[A, CA, EA], count int,
) (Value[P, Native[P], EA], error) {
	var e EA

	if a.v < 0 {
		return Value[P, Native[P], EA]{}, e.OverflowError("left shift of negative value undefined")
	}

	if count < 0 || count >= checked.Width[A]() {
		return Value[P, Native[P], EA]{}, e.OverflowError("shift count out of range")
	}

	pa, ok := cast.To[P](a.v)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("left operand not representable in result type")
	}

	shifted, ok := checked.Shl(pa, count)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("left shift overflow")
	}

	return Value[P, Native[P], EA]{v: shifted}, nil
}

// Shr returns a >> count in the promoted representation P, with the same
// negative-value and count rules as Shl.
func Shr[P constraints.Integer, A constraints.Integer, CA Checker[A], EA Reporter](
	a Value[A, CA, EA], count int,
) (Value[P, Native[P], EA], error) {
	var e EA

	if a.v < 0 {
		return Value[P, Native[P], EA]{}, e.OverflowError("right shift of negative value undefined")
	}

	if count < 0 || count >= checked.Width[A]() {
		return Value[P, Native[P], EA]{}, e.OverflowError("shift count out of range")
	}

	pa, ok := cast.To[P](a.v)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("left operand not representable in result type")
	}

	shifted, ok := checked.Shr(pa, count)
	if !ok {
		return Value[P, Native[P], EA]{}, e.OverflowError("right shift overflow")
	}

	return Value[P, Native[P], EA]{v: shifted}, nil
}
