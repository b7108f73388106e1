//go:build unit

package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   int8
		want   int8
		wantOK bool
	}{
		{name: "plain", a: 100, b: 27, want: 127, wantOK: true},
		{name: "overflow at max", a: 127, b: 1, wantOK: false},
		{name: "underflow at min", a: -128, b: -1, wantOK: false},
		{name: "negative plus positive", a: -128, b: 127, want: -1, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Add(tt.a, tt.b)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAdd_Unsigned(t *testing.T) {
	t.Parallel()

	got, ok := Add(uint8(254), uint8(1))
	assert.True(t, ok)
	assert.Equal(t, uint8(255), got)

	_, ok = Add(uint8(255), uint8(1))
	assert.False(t, ok)
}

func TestSub(t *testing.T) {
	t.Parallel()

	got, ok := Sub(int8(-28), int8(100))
	assert.True(t, ok)
	assert.Equal(t, int8(-128), got)

	_, ok = Sub(int8(-128), int8(1))
	assert.False(t, ok)

	_, ok = Sub(uint8(0), uint8(1))
	assert.False(t, ok)

	_, ok = Sub(int8(0), int8(-128))
	assert.False(t, ok)
}

func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   int8
		want   int8
		wantOK bool
	}{
		{name: "plain", a: -16, b: 8, want: -128, wantOK: true},
		{name: "overflow", a: 16, b: 8, wantOK: false},
		{name: "zero operand", a: 0, b: 127, want: 0, wantOK: true},
		{name: "min times minus one", a: -128, b: -1, wantOK: false},
		{name: "minus one times min", a: -1, b: -128, wantOK: false},
		{name: "max times minus one", a: 127, b: -1, want: -127, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Mul(tt.a, tt.b)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMul_Unsigned(t *testing.T) {
	t.Parallel()

	got, ok := Mul(uint64(math.MaxUint32), uint64(math.MaxUint32))
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint32)*uint64(math.MaxUint32), got)

	_, ok = Mul(uint64(math.MaxUint64), uint64(2))
	assert.False(t, ok)
}

func TestDiv(t *testing.T) {
	t.Parallel()

	got, ok := Div(int8(10), int8(-2))
	assert.True(t, ok)
	assert.Equal(t, int8(-5), got)

	_, ok = Div(int8(10), int8(0))
	assert.False(t, ok)

	_, ok = Div(int8(-128), int8(-1))
	assert.False(t, ok)
}

func TestMod(t *testing.T) {
	t.Parallel()

	got, ok := Mod(int8(10), int8(3))
	assert.True(t, ok)
	assert.Equal(t, int8(1), got)

	_, ok = Mod(int8(10), int8(0))
	assert.False(t, ok)

	_, ok = Mod(int8(-128), int8(-1))
	assert.False(t, ok)
}

func TestNeg(t *testing.T) {
	t.Parallel()

	got, ok := Neg(int8(127))
	assert.True(t, ok)
	assert.Equal(t, int8(-127), got)

	got, ok = Neg(int8(-127))
	assert.True(t, ok)
	assert.Equal(t, int8(127), got)

	_, ok = Neg(int8(-128))
	assert.False(t, ok)
}

func TestShl(t *testing.T) {
	t.Parallel()

	got, ok := Shl(uint8(1), 7)
	assert.True(t, ok)
	assert.Equal(t, uint8(128), got)

	_, ok = Shl(uint8(1), 8)
	assert.False(t, ok, "count equal to width is out of range")

	_, ok = Shl(uint8(1), -1)
	assert.False(t, ok)

	_, ok = Shl(uint8(192), 1)
	assert.False(t, ok, "discarded significant bit")

	_, ok = Shl(int8(64), 1)
	assert.False(t, ok, "shift into the sign bit")
}

func TestShr(t *testing.T) {
	t.Parallel()

	got, ok := Shr(uint8(128), 7)
	assert.True(t, ok)
	assert.Equal(t, uint8(1), got)

	_, ok = Shr(uint8(128), 8)
	assert.False(t, ok)

	_, ok = Shr(uint8(128), -1)
	assert.False(t, ok)
}

func TestWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, Width[int8]())
	assert.Equal(t, 16, Width[uint16]())
	assert.Equal(t, 32, Width[int32]())
	assert.Equal(t, 64, Width[uint64]())
}

func TestIsSigned(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSigned[int8]())
	assert.True(t, IsSigned[int64]())
	assert.False(t, IsSigned[uint8]())
	assert.False(t, IsSigned[uint64]())
}
