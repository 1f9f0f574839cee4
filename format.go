package rational

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// defaultDigits is the fractional precision of the decimal form when no
// explicit precision is given.
const defaultDigits = 15

// String implements the [fmt.Stringer] interface and returns the canonical
// fraction form "numerator/denominator".
// Non-finite values render as their encoding: "0/0" for NaN, "1/0" for
// positive infinity, and "-1/0" for negative infinity.
// See also methods [Rational.FloatString], [Rational.MixedString], and
// [Rational.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	return r.num.String() + "/" + r.den.String()
}

// FloatString returns the decimal form of r with exactly the given number
// of digits after the decimal point: the truncated whole part, then the
// scaled remainder zero-padded on the left.
// The fractional part is truncated, not rounded.
// Negative digit counts are treated as zero, and with zero digits only the
// whole part is returned.
// Non-finite values fall back to the fraction form of [Rational.String].
func (r Rational) FloatString(digits int) string {
	if !r.IsFinite() {
		return r.String()
	}
	if digits < 0 {
		digits = 0
	}
	var sb strings.Builder
	if r.num.Sign() < 0 {
		sb.WriteByte('-')
	}
	a := new(big.Int).Abs(&r.num)
	q, rem := new(big.Int).QuoRem(a, &r.den, new(big.Int))
	sb.WriteString(q.String())
	if digits == 0 {
		return sb.String()
	}
	rem.Mul(rem, pow10(digits))
	rem.Quo(rem, &r.den)
	frac := rem.String()
	sb.WriteByte('.')
	for i := len(frac); i < digits; i++ {
		sb.WriteByte('0')
	}
	sb.WriteString(frac)
	return sb.String()
}

// MixedString returns the mixed-number form "whole num/den", where the
// whole part is the truncated integer part carrying the sign and num is the
// remainder |numerator| mod denominator.
// For example, MustParse("-7/2").MixedString() is "-3 1/2".
// Non-finite values fall back to the fraction form of [Rational.String].
func (r Rational) MixedString() string {
	if !r.IsFinite() {
		return r.String()
	}
	a := new(big.Int).Abs(&r.num)
	q, rem := new(big.Int).QuoRem(a, &r.den, new(big.Int))
	sign := ""
	if r.num.Sign() < 0 {
		sign = "-"
	}
	return sign + q.String() + " " + rem.String() + "/" + r.den.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example  | Description                      |
//	| ------ | -------- | -------------------------------- |
//	| %s, %v | 7/2      | Fraction form                    |
//	| %q     | "7/2"    | Quoted fraction form             |
//	| %f     | 3.500000 | Decimal form, precision digits   |
//	| %m     | 3 1/2    | Mixed-number form                |
//
// The default precision of the %f verb is 15 digits; the fractional part is
// truncated, not rounded.
// Width and the '-' flag are supported by all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rational) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = r.String()
	case 'q', 'Q':
		s = strconv.Quote(r.String())
	case 'f', 'F':
		digits := defaultDigits
		if p, ok := state.Precision(); ok {
			digits = p
		}
		s = r.FloatString(digits)
	case 'm', 'M':
		s = r.MixedString()
	default:
		//nolint:errcheck
		io.WriteString(state, "%!"+string(verb)+"(rational.Rational="+r.String()+")")
		return
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	//nolint:errcheck
	io.WriteString(state, s)
}
