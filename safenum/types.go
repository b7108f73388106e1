package safenum

// Fixed-width concrete types pairing each native representation with its
// full range and the error-returning Strict policy. Custom-ranged or
// custom-policy types are instantiated the same way with a user-defined
// checker or reporter.
type (
	// Int8 is a safe 8-bit signed integer.
	Int8 = Value[int8, Native[int8], Strict]
	// Int16 is a safe 16-bit signed integer.
	Int16 = Value[int16, Native[int16], Strict]
	// Int32 is a safe 32-bit signed integer.
	Int32 = Value[int32, Native[int32], Strict]
	// Int64 is a safe 64-bit signed integer.
	Int64 = Value[int64, Native[int64], Strict]
	// Int is a safe platform-width signed integer.
	Int = Value[int, Native[int], Strict]

	// Uint8 is a safe 8-bit unsigned integer.
	Uint8 = Value[uint8, Native[uint8], Strict]
	// Uint16 is a safe 16-bit unsigned integer.
	Uint16 = Value[uint16, Native[uint16], Strict]
	// Uint32 is a safe 32-bit unsigned integer.
	Uint32 = Value[uint32, Native[uint32], Strict]
	// Uint64 is a safe 64-bit unsigned integer.
	Uint64 = Value[uint64, Native[uint64], Strict]
	// Uint is a safe platform-width unsigned integer.
	Uint = Value[uint, Native[uint], Strict]
)

// NewInt8 constructs a safe 8-bit signed integer.
func NewInt8(raw int8) (Int8, error) {
	return New[int8, Native[int8], Strict](raw)
}

// NewInt16 constructs a safe 16-bit signed integer.
func NewInt16(raw int16) (Int16, error) {
	return New[int16, Native[int16], Strict](raw)
}

// NewInt32 constructs a safe 32-bit signed integer.
func NewInt32(raw int32) (Int32, error) {
	return New[int32, Native[int32], Strict](raw)
}

// NewInt64 constructs a safe 64-bit signed integer.
func NewInt64(raw int64) (Int64, error) {
	return New[int64, Native[int64], Strict](raw)
}

// NewInt constructs a safe platform-width signed integer.
func NewInt(raw int) (Int, error) {
	return New[int, Native[int], Strict](raw)
}

// NewUint8 constructs a safe 8-bit unsigned integer.
func NewUint8(raw uint8) (Uint8, error) {
	return New[uint8, Native[uint8], Strict](raw)
}

// NewUint16 constructs a safe 16-bit unsigned integer.
func NewUint16(raw uint16) (Uint16, error) {
	return New[uint16, Native[uint16], Strict](raw)
}

// NewUint32 constructs a safe 32-bit unsigned integer.
func NewUint32(raw uint32) (Uint32, error) {
	return New[uint32, Native[uint32], Strict](raw)
}

// NewUint64 constructs a safe 64-bit unsigned integer.
func NewUint64(raw uint64) (Uint64, error) {
	return New[uint64, Native[uint64], Strict](raw)
}

// NewUint constructs a safe platform-width unsigned integer.
func NewUint(raw uint) (Uint, error) {
	return New[uint, Native[uint], Strict](raw)
}
