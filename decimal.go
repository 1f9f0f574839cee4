package rational

import (
	"math/big"

	"github.com/govalues/decimal"
)

// NewFromDecimal converts a decimal number to an exact rational: the
// numerator is the signed coefficient and the denominator is 10^scale.
// The conversion never loses precision.
// See also method [Rational.Decimal].
func NewFromDecimal(d decimal.Decimal) Rational {
	num := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		num.Neg(num)
	}
	return newRat(num, pow10(d.Scale()))
}

// Decimal converts r to a decimal number.
// The value is rendered at the smallest scale that represents it exactly;
// when no scale up to [decimal.MaxScale] suffices, the fractional part is
// truncated at [decimal.MaxScale] digits, the same scheme as
// [Rational.FloatString].
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if:
//   - r is NaN or an infinity;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (r Rational) Decimal() (decimal.Decimal, error) {
	if !r.IsFinite() {
		return decimal.Decimal{}, errConversion(r, "decimal", ErrNonFinite)
	}
	scale := decimal.MaxScale
	for s := 0; s < decimal.MaxScale; s++ {
		if new(big.Int).Rem(pow10(s), &r.den).Sign() == 0 {
			scale = s
			break
		}
	}
	d, err := decimal.Parse(r.FloatString(scale))
	if err != nil {
		return decimal.Decimal{}, errConversion(r, "decimal", err)
	}
	return d, nil
}
