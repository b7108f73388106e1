package safenum

// Compound assignment is computed as self = self op rhs: each method
// delegates to its package-scope binary operator with result representation
// R and then the Set path, so it inherits the operator's overflow semantics
// and the assignment's validation without duplicating either.

// AddAssign computes x = x + rhs.
func (x *Value[R, C, E]) AddAssign(rhs Value[R, C, E]) error {
	res, err := Add[R](*x, rhs)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// SubAssign computes x = x - rhs.
func (x *Value[R, C, E]) SubAssign(rhs Value[R, C, E]) error {
	res, err := Sub[R](*x, rhs)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// MulAssign computes x = x * rhs.
func (x *Value[R, C, E]) MulAssign(rhs Value[R, C, E]) error {
	res, err := Mul[R](*x, rhs)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// DivAssign computes x = x / rhs.
func (x *Value[R, C, E]) DivAssign(rhs Value[R, C, E]) error {
	res, err := Div[R](*x, rhs)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// ModAssign computes x = x % rhs.
func (x *Value[R, C, E]) ModAssign(rhs Value[R, C, E]) error {
	res, err := Mod[R](*x, rhs)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// AndAssign computes x = x & rhs.
func (x *Value[R, C, E]) AndAssign(rhs Value[R, C, E]) error {
	res, err := And[R](*x, rhs)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// OrAssign computes x = x | rhs.
func (x *Value[R, C, E]) OrAssign(rhs Value[R, C, E]) error {
	res, err := Or[R](*x, rhs)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// XorAssign computes x = x ^ rhs.
func (x *Value[R, C, E]) XorAssign(rhs Value[R, C, E]) error {
	res, err := Xor[R](*x, rhs)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// ShlAssign computes x = x << count.
func (x *Value[R, C, E]) ShlAssign(count int) error {
	res, err := Shl[R](*x, count)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}

// ShrAssign computes x = x >> count.
func (x *Value[R, C, E]) ShrAssign(count int) error {
	res, err := Shr[R](*x, count)
	if err != nil {
		return err
	}

	return x.Set(res.Raw())
}
