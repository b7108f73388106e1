package safenum_test

import (
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-safenum/safenum"
)

func ExampleNewInt8() {
	v, err := safenum.NewInt8(127)

	fmt.Println(err == nil)
	fmt.Println(v.Raw())

	// Output:
	// true
	// 127
}

func ExampleAdd() {
	a, _ := safenum.NewInt8(-1)
	b, _ := safenum.NewUint8(200)

	sum, err := safenum.Add[int16](a, b)

	fmt.Println(err == nil)
	fmt.Println(sum.Raw())

	// Output:
	// true
	// 199
}

func ExampleValue_Inc() {
	v, _ := safenum.NewInt8(127)

	_, err := v.Inc()

	fmt.Println(errors.Is(err, safenum.ErrOverflow))
	fmt.Println(v.Raw())

	// Output:
	// true
	// 127
}

func ExampleDiv() {
	a, _ := safenum.NewInt32(100)
	zero, _ := safenum.NewInt32(0)

	_, err := safenum.Div[int32](a, zero)

	fmt.Println(errors.Is(err, safenum.ErrDivisionByZero))

	// Output:
	// true
}
