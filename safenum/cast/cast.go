package cast

import "golang.org/x/exp/constraints"

// To converts v to type To, reporting whether the result represents v exactly.
// Both narrowing and cross-signedness conversions are checked: a value that
// would be truncated, or whose sign would be reinterpreted as magnitude,
// yields false.
//
// Example:
//
//	n, ok := cast.To[int8](someInt64)
//	if !ok {
//	    return fmt.Errorf("value %d does not fit int8", someInt64)
//	}
func To[To, From constraints.Integer](v From) (To, bool) {
	converted := To(v)
	if From(converted) != v {
		return 0, false
	}

	if (v < 0) != (converted < 0) {
		return 0, false
	}

	return converted, true
}

// Fits reports whether v is exactly representable in type To.
//
// Example:
//
//	if !cast.Fits[uint16](count) {
//	    return ErrRange
//	}
func Fits[T, From constraints.Integer](v From) bool {
	_, ok := To[T](v)
	return ok
}
