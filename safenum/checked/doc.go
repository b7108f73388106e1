// Package checked implements basic integer arithmetic with overflow checks.
//
// Every operation returns the computed value together with an ok flag; a
// false flag means the mathematical result is not representable in the
// operand type (or, for shifts, that the count is out of range). Callers
// decide how to surface the failure.
package checked
