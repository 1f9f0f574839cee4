package rational

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Grammar patterns, compiled once at startup and read-only thereafter.
// Parse tries them in this order; the first match wins.
var (
	reInteger  = regexp.MustCompile(`^[+-]?[0-9]+$`)
	reFraction = regexp.MustCompile(`^([+-]?[0-9]+)/([0-9]+)$`)
	reDecimal  = regexp.MustCompile(`^([+-]?[0-9]+)(?:\.([0-9]+))?(?:[eE]([+-]?[0-9]+))?$`)
	reMixed    = regexp.MustCompile(`^([+-]?[0-9]+)\s+([0-9]+)/([0-9]+)$`)
)

// Parse converts a string to a rational number.
// Leading and trailing whitespace is ignored.
// Four notations are recognized, tried in order:
//
//	integer             "123", "-4"
//	fraction            "7/2", "-6/8"
//	decimal/scientific  "1.25", "-0.5", "1.234e-100", "2e3"
//	mixed number        "3 1/2", "-3 1/2"
//
// Fractions need not be in lowest terms; the result is canonical.
// In decimal notation the numerator is the concatenation of the integer and
// fractional digits.
// When an exponent marker is present, the exponent alone sets the scale, so
// "1.234e-100" is 1234/10^100; without a marker the scale is the number of
// fractional digits, so "1.25" is 125/100.
// A mixed number -i n/d means -(i + n/d).
//
// Parse returns an error if the string matches none of the notations.
// See also [MustParse] and [TryParse].
func Parse(s string) (Rational, error) {
	r, ok := parse(s)
	if !ok {
		return NaN, fmt.Errorf("parsing %q: %w", s, ErrFormat)
	}
	return r, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rationals.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return r
}

// TryParse is the non-failing variant of [Parse]: on a malformed string it
// reports false and returns the NaN sentinel instead of an error.
func TryParse(s string) (Rational, bool) {
	return parse(s)
}

// parse is the inner matcher shared by the failing and non-failing entry
// points. It never constructs an error.
func parse(s string) (Rational, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NaN, false
	}
	if reInteger.MatchString(s) {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return NaN, false
		}
		return newRat(n, big.NewInt(1)), true
	}
	if m := reFraction.FindStringSubmatch(s); m != nil {
		num, ok1 := new(big.Int).SetString(m[1], 10)
		den, ok2 := new(big.Int).SetString(m[2], 10)
		if !ok1 || !ok2 {
			return NaN, false
		}
		return newRat(num, den), true
	}
	if m := reDecimal.FindStringSubmatch(s); m != nil {
		return parseDecimal(m[1], m[2], m[3])
	}
	if m := reMixed.FindStringSubmatch(s); m != nil {
		return parseMixed(m[1], m[2], m[3])
	}
	return NaN, false
}

// parseDecimal converts the integer digits, fractional digits, and explicit
// exponent of a decimal/scientific literal.
// The numerator is the concatenation of the integer and fractional digit
// strings.
// An explicit exponent e alone determines the scale: positive multiplies
// the numerator by 10^e, negative sets the denominator to 10^(-e).
// Without an exponent marker the implied exponent is minus the number of
// fractional digits.
func parseDecimal(ipart, fpart, epart string) (Rational, bool) {
	neg := strings.HasPrefix(ipart, "-")
	digits := strings.TrimLeft(ipart, "+-") + fpart
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return NaN, false
	}
	if neg {
		num.Neg(num)
	}
	den := big.NewInt(1)
	switch {
	case epart != "":
		e, err := strconv.Atoi(epart)
		if err != nil {
			return NaN, false
		}
		if e >= 0 {
			num.Mul(num, pow10(e))
		} else {
			den = pow10(-e)
		}
	case fpart != "":
		den = pow10(len(fpart))
	}
	return newRat(num, den), true
}

// parseMixed converts a signed integer part and an unsigned fraction into
// sign(i) * (|i|*den + num) / den.
func parseMixed(ipart, npart, dpart string) (Rational, bool) {
	neg := strings.HasPrefix(ipart, "-")
	whole, ok1 := new(big.Int).SetString(strings.TrimLeft(ipart, "+-"), 10)
	num, ok2 := new(big.Int).SetString(npart, 10)
	den, ok3 := new(big.Int).SetString(dpart, 10)
	if !ok1 || !ok2 || !ok3 {
		return NaN, false
	}
	num.Add(num, whole.Mul(whole, den))
	if neg {
		num.Neg(num)
	}
	return newRat(num, den), true
}
