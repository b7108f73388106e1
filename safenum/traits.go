package safenum

import (
	"golang.org/x/exp/constraints"

	"github.com/LerianStudio/lib-safenum/safenum/checked"
)

// Trait queries let generic numeric code treat wrapped and native integers
// uniformly without special-casing.

// wrapped is the marker interface satisfied by every Value instantiation.
type wrapped interface {
	isWrapped()
}

func (Value[R, C, E]) isWrapped() {}

// IsWrapped reports whether v is a safe-wrapped integer value.
func IsWrapped(v any) bool {
	_, ok := v.(wrapped)
	return ok
}

// Base returns the underlying representation value of v, which may be either
// a safe-wrapped integer whose representation is R or a native R itself.
// The second result is false when v is neither.
func Base[R constraints.Integer](v any) (R, bool) {
	if u, ok := v.(interface{ Raw() R }); ok {
		return u.Raw(), true
	}

	if r, ok := v.(R); ok {
		return r, true
	}

	var zero R

	return zero, false
}

// Default policy metadata for the fixed-width aliases.
type (
	// DefaultChecker is the checker used when a concrete safe type does not
	// supply its own range.
	DefaultChecker[R constraints.Integer] = Native[R]
	// DefaultReporter is the report policy used when a concrete safe type
	// does not supply its own.
	DefaultReporter = Strict
)

// Width returns the bit width of the representation type R.
func Width[R constraints.Integer]() int {
	return checked.Width[R]()
}

// IsSignedRepr reports whether the representation type R is signed.
func IsSignedRepr[R constraints.Integer]() bool {
	return checked.IsSigned[R]()
}
