package safenum

import "errors"

// ErrRange is returned when a constructed or assigned value fails the
// concrete type's validity check.
var ErrRange = errors.New("value out of range")

// ErrOverflow is returned when a computed result falls outside the
// representable range of its result type, or a shift parameter is invalid.
var ErrOverflow = errors.New("arithmetic overflow")

// ErrDivisionByZero is returned when attempting to divide by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Kind classifies a violation.
type Kind uint8

// Violation kinds, one per error taxonomy entry.
const (
	KindRange Kind = iota
	KindOverflow
	KindDomain
)

// String returns the string representation of a violation kind.
func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindOverflow:
		return "overflow"
	case KindDomain:
		return "domain"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindRange:
		return ErrRange
	case KindOverflow:
		return ErrOverflow
	case KindDomain:
		return ErrDivisionByZero
	default:
		return ErrRange
	}
}

// Violation is the error produced by the shipped report policies. It carries
// the violation kind and a human-readable message, and unwraps to the
// corresponding sentinel for errors.Is.
type Violation struct {
	Kind    Kind
	Message string
}

// Error returns the formatted violation message.
func (v *Violation) Error() string {
	if v == nil {
		return ErrRange.Error()
	}

	return v.Kind.String() + " violation: " + v.Message
}

// Unwrap returns the sentinel error for the violation's kind.
func (v *Violation) Unwrap() error {
	if v == nil {
		return ErrRange
	}

	return v.Kind.sentinel()
}
