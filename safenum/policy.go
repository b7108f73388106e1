package safenum

import "golang.org/x/exp/constraints"

// Checker is the capability a concrete safe-integer type supplies: deciding
// whether a candidate value lies within the type's legal range. Checkers
// are injected as type parameters and must be zero-size stateless structs,
// so validation resolves at compile time with no per-instance cost.
type Checker[R constraints.Integer] interface {
	Validate(candidate R) bool
}

// Native is the default checker: it accepts every value representable in R.
// Overflow into R is already rejected by the checked arithmetic layer, so
// there is nothing left to narrow.
type Native[R constraints.Integer] struct{}

// Validate accepts every representable value of R.
func (Native[R]) Validate(R) bool { return true }

// Reporter maps a violation to an action. The core invokes exactly one
// entry point per failure and never recovers locally; whether the program
// receives an error, panics, or logs and carries on is entirely the
// policy's decision. Implementations must be zero-size stateless structs
// and safe for concurrent use.
type Reporter interface {
	// RangeError reports a constructed or assigned value rejected by the
	// concrete type's validator.
	RangeError(msg string) error
	// OverflowError reports a computed result outside the representable
	// range of its result type, or an invalid shift parameter.
	OverflowError(msg string) error
	// DomainError reports a division or modulus by zero.
	DomainError(msg string) error
}

// Strict is the error-returning report policy. Every violation becomes a
// *Violation error wrapping the kind's sentinel.
type Strict struct{}

// RangeError returns a range violation error.
func (Strict) RangeError(msg string) error {
	return &Violation{Kind: KindRange, Message: msg}
}

// OverflowError returns an overflow violation error.
func (Strict) OverflowError(msg string) error {
	return &Violation{Kind: KindOverflow, Message: msg}
}

// DomainError returns a domain violation error.
func (Strict) DomainError(msg string) error {
	return &Violation{Kind: KindDomain, Message: msg}
}

// Panic is the terminating report policy: every violation panics with the
// *Violation. Use it where an out-of-range value is a programming error
// rather than an input condition.
type Panic struct{}

// RangeError panics with a range violation.
func (Panic) RangeError(msg string) error {
	panic(&Violation{Kind: KindRange, Message: msg})
}

// OverflowError panics with an overflow violation.
func (Panic) OverflowError(msg string) error {
	panic(&Violation{Kind: KindOverflow, Message: msg})
}

// DomainError panics with a domain violation.
func (Panic) DomainError(msg string) error {
	panic(&Violation{Kind: KindDomain, Message: msg})
}

// Logging is the record-and-sentinel report policy: every violation is
// written through the logger configured with SetLogger, counted on the
// meter configured with InitMetrics, and then returned as a *Violation
// error exactly like Strict.
type Logging struct{}

// RangeError records and returns a range violation.
func (Logging) RangeError(msg string) error {
	return recordViolation(KindRange, msg)
}

// OverflowError records and returns an overflow violation.
func (Logging) OverflowError(msg string) error {
	return recordViolation(KindOverflow, msg)
}

// DomainError records and returns a domain violation.
func (Logging) DomainError(msg string) error {
	return recordViolation(KindDomain, msg)
}
