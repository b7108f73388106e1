package checked

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Add returns a + b with an overflow check.
func Add[T constraints.Integer](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}

	return sum, true
}

// Sub returns a - b with an overflow check.
func Sub[T constraints.Integer](a, b T) (T, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}

	return diff, true
}

// Mul returns a * b with an overflow check.
func Mul[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	// The division-based check below cannot be used when either operand is
	// -1: the most negative value divided by -1 is itself an overflow.
	if ones := ^T(0); ones < 0 {
		if b == ones {
			if a < 0 && -a == a {
				return 0, false
			}

			return -a, true
		}

		if a == ones {
			if b < 0 && -b == b {
				return 0, false
			}

			return -b, true
		}
	}

	product := a * b
	if product/b != a {
		return 0, false
	}

	return product, true
}

// Div returns a / b with an overflow check. It reports false for a zero
// divisor and for the most negative value divided by -1.
func Div[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}

	if ones := ^T(0); ones < 0 && b == ones && a < 0 && -a == a {
		return 0, false
	}

	return a / b, true
}

// Mod returns a % b with the same checks as Div.
func Mod[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}

	if ones := ^T(0); ones < 0 && b == ones && a < 0 && -a == a {
		return 0, false
	}

	return a % b, true
}

// Neg returns -a with an overflow check. Negation is only defined for signed
// types; negating the most negative value reports false.
func Neg[T constraints.Signed](a T) (T, bool) {
	if a < 0 && -a == a {
		return 0, false
	}

	return -a, true
}

// Shl returns a << count with an overflow check. A negative count or a count
// of Width[T] bits or more reports false, as does a shift that discards
// significant bits.
func Shl[T constraints.Integer](a T, count int) (T, bool) {
	if count < 0 || count >= Width[T]() {
		return 0, false
	}

	shifted := a << uint(count)
	if shifted>>uint(count) != a {
		return 0, false
	}

	return shifted, true
}

// Shr returns a >> count. A negative count or a count of Width[T] bits or
// more reports false.
func Shr[T constraints.Integer](a T, count int) (T, bool) {
	if count < 0 || count >= Width[T]() {
		return 0, false
	}

	return a >> uint(count), true
}

// Width returns the bit width of T.
func Width[T constraints.Integer]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}
