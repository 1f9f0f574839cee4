package rational

import (
	"iter"
	"math/big"
)

// ContinuedFraction returns the finite continued-fraction expansion of r as
// a lazy sequence of integer terms [a0; a1, a2, ...]: repeatedly the
// truncated integer part is taken, subtracted, and the fractional remainder
// inverted, until the remainder is exactly zero.
// The sequence is a pure function of r: it can be restarted and iterated
// concurrently, and each yielded integer is freshly allocated.
// Non-finite values yield no terms.
// See also [FromContinuedFraction].
func (r Rational) ContinuedFraction() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		if !r.IsFinite() {
			return
		}
		num := new(big.Int).Set(&r.num)
		den := new(big.Int).Set(&r.den)
		for {
			q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
			if !yield(q) {
				return
			}
			if rem.Sign() == 0 {
				return
			}
			// Invert the remainder rem/den for the next term.
			num, den = den, rem
		}
	}
}

// FromContinuedFraction folds a sequence of continued-fraction terms back
// into a rational, from the last term to the first: the accumulator is
// seeded with positive infinity and each step computes term + Inv(acc).
// An empty sequence therefore yields positive infinity.
// For every finite rational r, FromContinuedFraction of the collected terms
// of [Rational.ContinuedFraction] equals r.
func FromContinuedFraction(terms []*big.Int) Rational {
	acc := PosInf
	for i := len(terms) - 1; i >= 0; i-- {
		acc = NewFromBigInt(terms[i]).Add(acc.Inv())
	}
	return acc
}
