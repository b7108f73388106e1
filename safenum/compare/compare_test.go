//go:build unit

package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLess_CrossSignedness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{name: "negative int8 vs zero uint64", got: Less(int8(-1), uint64(0)), want: true},
		{name: "negative int64 vs max uint64", got: Less(int64(-1), uint64(math.MaxUint64)), want: true},
		{name: "max uint64 vs negative int8", got: Less(uint64(math.MaxUint64), int8(-1)), want: false},
		{name: "max uint64 vs max int64", got: Less(uint64(math.MaxUint64), int64(math.MaxInt64)), want: false},
		{name: "max int64 vs max uint64", got: Less(int64(math.MaxInt64), uint64(math.MaxUint64)), want: true},
		{name: "negative int8 vs negative int64", got: Less(int8(-1), int64(-2)), want: false},
		{name: "min int64 vs min int8", got: Less(int64(math.MinInt64), int8(math.MinInt8)), want: true},
		{name: "equal across width", got: Less(int8(42), uint64(42)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEqual_CrossSignedness(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(int8(-1), int64(-1)))
	assert.True(t, Equal(uint8(255), int64(255)))
	assert.True(t, Equal(int32(0), uint64(0)))

	// The sign bit of -1 reinterpreted as magnitude equals MaxUint64; the
	// mathematical values are never equal.
	assert.False(t, Equal(int64(-1), uint64(math.MaxUint64)))
	assert.False(t, Equal(int8(-1), uint8(255)))
}

func TestTotalOrder(t *testing.T) {
	t.Parallel()

	signed := []int64{math.MinInt64, math.MinInt8, -1, 0, 1, math.MaxInt8, math.MaxInt64}
	unsigned := []uint64{0, 1, math.MaxInt8, math.MaxInt64, math.MaxUint64}

	for _, a := range signed {
		for _, b := range unsigned {
			less := Less(a, b)
			greater := Greater(a, b)
			equal := Equal(a, b)

			count := 0
			for _, holds := range []bool{less, greater, equal} {
				if holds {
					count++
				}
			}

			assert.Equal(t, 1, count, "exactly one of less/greater/equal must hold for %d vs %d", a, b)
		}
	}
}

func TestDerivedForms(t *testing.T) {
	t.Parallel()

	values := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}

	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, !Equal(a, b), NotEqual(a, b))
			assert.Equal(t, !Less(a, b), GreaterEqual(a, b))
			assert.Equal(t, !Greater(a, b), LessEqual(a, b))
		}
	}
}
