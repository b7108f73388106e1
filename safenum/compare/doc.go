// Package compare orders integer values across signedness and width.
//
// Native Go comparisons require both operands to have the same type, which
// forces a conversion that can reinterpret a sign bit as magnitude. The
// functions here compare the mathematical values instead: a negative signed
// operand is always less than any unsigned operand, and no operand is ever
// truncated to the width of the other.
package compare
