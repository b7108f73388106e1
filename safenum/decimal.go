package safenum

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/LerianStudio/lib-safenum/safenum/checked"
)

// FromDecimal constructs a Value from a decimal amount. The amount must be
// an exact integer within the concrete type's range; fractional or
// out-of-range input is a range violation.
//
// Example:
//
//	cents, err := safenum.FromDecimal[int64, safenum.Native[int64], safenum.Strict](amount)
func FromDecimal[R constraints.Integer, C Checker[R], E Reporter](d decimal.Decimal) (Value[R, C, E], error) {
	var e E

	if !d.IsInteger() {
		return Value[R, C, E]{}, e.RangeError("not an integral value")
	}

	bi := d.BigInt()

	switch {
	case bi.IsInt64():
		return From[R, C, E](bi.Int64())
	case bi.IsUint64():
		return From[R, C, E](bi.Uint64())
	}

	return Value[R, C, E]{}, e.RangeError("invalid value")
}

// Decimal returns the stored value as a decimal amount. The widening is
// always lossless.
func (x Value[R, C, E]) Decimal() decimal.Decimal {
	if checked.IsSigned[R]() {
		return decimal.NewFromInt(int64(x.v))
	}

	return decimal.NewFromUint64(uint64(x.v))
}
