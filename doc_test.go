package rational_test

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/govalues/decimal"
	"github.com/govalues/rational"
)

func ExampleNew() {
	fmt.Println(rational.New(7, 2))
	fmt.Println(rational.New(6, -8))
	fmt.Println(rational.New(0, 5))
	fmt.Println(rational.New(1, 0))
	// Output:
	// 7/2
	// -3/4
	// 0/1
	// 1/0
}

func ExampleNewFromBig() {
	num := big.NewInt(123)
	den := big.NewInt(-5321)
	fmt.Println(rational.NewFromBig(num, den))
	// Output: -123/5321
}

func ExampleParse() {
	r, err := rational.Parse("3 1/2")
	fmt.Println(r, err)
	// Output: 7/2 <nil>
}

func ExampleParse_scientific() {
	// With an explicit exponent the digits concatenate and the exponent
	// alone sets the scale: 125 / 10^2.
	r, err := rational.Parse("1.25e-2")
	fmt.Println(r, err)
	// Output: 5/4 <nil>
}

func ExampleMustParse() {
	r := rational.MustParse("-1.5")
	fmt.Println(r)
	// Output: -3/2
}

func ExampleTryParse() {
	r, ok := rational.TryParse("not a number")
	fmt.Println(r, ok)
	// Output: 0/0 false
}

func ExampleRational_Add() {
	a := rational.MustParse("1/2")
	b := rational.MustParse("1/3")
	fmt.Println(a.Add(b))
	// Output: 5/6
}

func ExampleRational_Sub() {
	a := rational.MustParse("3/4")
	b := rational.MustParse("1/2")
	fmt.Println(a.Sub(b))
	// Output: 1/4
}

func ExampleRational_Mul() {
	a := rational.MustParse("2/3")
	b := rational.MustParse("3/4")
	fmt.Println(a.Mul(b))
	// Output: 1/2
}

func ExampleRational_Quo() {
	a := rational.MustParse("3/4")
	b := rational.MustParse("2/3")
	fmt.Println(a.Quo(b))
	// Output: 9/8
}

func ExampleRational_Rem() {
	a := rational.MustParse("-7/2")
	b := rational.MustParse("3/2")
	fmt.Println(a.Rem(b))
	fmt.Println(a.Mod(b))
	// Output:
	// -1/2
	// 1/1
}

func ExampleRational_Inv() {
	fmt.Println(rational.MustParse("-7/2").Inv())
	fmt.Println(rational.Zero.Inv())
	// Output:
	// -2/7
	// 1/0
}

func ExampleRational_Pow() {
	fmt.Println(rational.MustParse("2/3").Pow(3))
	fmt.Println(rational.MustParse("2/3").Pow(-2))
	// Output:
	// 8/27
	// 9/4
}

func ExampleRational_Floor() {
	x := rational.MustParse("-7/2")
	fmt.Println(x.Floor(), x.Ceil(), x.Trunc(), x.Round())
	// Output: -4/1 -3/1 -3/1 -3/1
}

func ExampleRational_Cmp() {
	a := rational.MustParse("1/3")
	b := rational.MustParse("1/2")
	fmt.Println(a.Cmp(b))
	fmt.Println(rational.NaN.Cmp(rational.NegInf))
	fmt.Println(rational.NaN.Cmp(rational.NaN))
	// Output:
	// -1
	// -1
	// 0
}

func ExampleRational_Equal() {
	fmt.Println(rational.New(2, 4).Equal(rational.Half))
	fmt.Println(rational.NaN.Equal(rational.NaN))
	// Output:
	// true
	// false
}

func ExampleRational_String() {
	fmt.Println(rational.One.String())
	fmt.Println(rational.NaN.String())
	// Output:
	// 1/1
	// 0/0
}

func ExampleRational_FloatString() {
	fmt.Println(rational.MustParse("7/2").FloatString(3))
	fmt.Println(rational.MustParse("1/3").FloatString(5))
	// Output:
	// 3.500
	// 0.33333
}

func ExampleRational_MixedString() {
	fmt.Println(rational.MustParse("7/2").MixedString())
	fmt.Println(rational.MustParse("-7/2").MixedString())
	// Output:
	// 3 1/2
	// -3 1/2
}

func ExampleRational_Format() {
	r := rational.MustParse("7/2")
	fmt.Printf("%s %.3f %m\n", r, r, r)
	// Output: 7/2 3.500 3 1/2
}

func ExampleNewFromFloat64() {
	fmt.Println(rational.NewFromFloat64(0.5))
	fmt.Println(rational.NewFromFloat64(0.1))
	// Output:
	// 1/2
	// 3602879701896397/36028797018963968
}

func ExampleRational_Float64() {
	fmt.Println(rational.MustParse("7/2").Float64())
	fmt.Println(rational.MustParse("1/3").Float64())
	// Output:
	// 3.5
	// 0.3333333333333333
}

func ExampleNewFromDecimal() {
	d := decimal.MustParse("123.456")
	fmt.Println(rational.NewFromDecimal(d))
	// Output: 15432/125
}

func ExampleRational_Decimal() {
	d, err := rational.MustParse("5/4").Decimal()
	fmt.Println(d, err)
	// Output: 1.25 <nil>
}

func ExampleRational_Int64() {
	i, err := rational.MustParse("-7/2").Int64()
	fmt.Println(i, err)
	// Output: -3 <nil>
}

func ExampleRational_ContinuedFraction() {
	for term := range rational.MustParse("649/200").ContinuedFraction() {
		fmt.Println(term)
	}
	// Output:
	// 3
	// 4
	// 12
	// 4
}

func ExampleFromContinuedFraction() {
	terms := slices.Collect(rational.MustParse("355/113").ContinuedFraction())
	fmt.Println(rational.FromContinuedFraction(terms))
	// Output: 355/113
}
