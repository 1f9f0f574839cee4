package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	// ErrFormat is returned when a string matches none of the supported notations.
	ErrFormat = errors.New("invalid rational format")
	// ErrOverflow is returned when a conversion target cannot represent the value.
	ErrOverflow = errors.New("overflow")
	// ErrNonFinite is returned when an exact conversion is requested for NaN or an infinity.
	ErrNonFinite = errors.New("value is not finite")
)

// Rational type represents an exact rational number as a reduced
// numerator/denominator pair of arbitrary-precision integers.
// The denominator is never negative; a zero denominator encodes NaN or an
// infinity, depending on the numerator.
// Its zero value corresponds to NaN.
// Rational is designed to be safe for concurrent use by multiple goroutines.
//
// Do not compare Rational values with the == operator; use [Rational.Equal]
// or [Rational.Cmp] instead.
type Rational struct {
	num big.Int // numerator, carries the sign
	den big.Int // denominator, always >= 0
}

// Named values, initialized once and never mutated.
var (
	NaN       = Rational{}   // 0/0
	PosInf    = New(1, 0)    // 1/0
	NegInf    = New(-1, 0)   // -1/0
	Zero      = New(0, 1)    // 0/1
	One       = New(1, 1)    // 1/1
	MinusOne  = New(-1, 1)   // -1/1
	Half      = New(1, 2)    // 1/2
	MinusHalf = New(-1, 2)   // -1/2
)

var (
	intOne = big.NewInt(1)
	intTen = big.NewInt(10)
)

// pow10 returns 10^e as a fresh big integer.
func pow10(e int) *big.Int {
	return new(big.Int).Exp(intTen, big.NewInt(int64(e)), nil)
}

// normalize brings a raw numerator/denominator pair to canonical form:
// the sign is moved to the numerator, the pair is reduced to lowest terms,
// and a zero denominator collapses the numerator to its sign.
// It is the single point of invariant enforcement; every constructor and
// operation routes its result through it.
func normalize(num, den *big.Int) {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	switch {
	case den.Sign() == 0:
		num.SetInt64(int64(num.Sign()))
	case den.Cmp(intOne) > 0:
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
		if g.Cmp(intOne) > 0 {
			num.Quo(num, g)
			den.Quo(den, g)
		}
	}
}

// newRat normalizes num/den and adopts the integers.
// Use it only with integers that are not retained by the caller.
func newRat(num, den *big.Int) Rational {
	normalize(num, den)
	return Rational{num: *num, den: *den}
}

// New returns a rational number equal to num/den in canonical form.
// A zero denominator yields NaN, positive infinity, or negative infinity,
// depending on the sign of the numerator.
func New(num, den int64) Rational {
	return newRat(big.NewInt(num), big.NewInt(den))
}

// NewFromInt64 returns a rational number equal to i.
func NewFromInt64(i int64) Rational {
	return New(i, 1)
}

// NewFromUint64 returns a rational number equal to u.
func NewFromUint64(u uint64) Rational {
	return newRat(new(big.Int).SetUint64(u), big.NewInt(1))
}

// NewFromBigInt returns a rational number equal to n.
// The input is copied, never aliased.
func NewFromBigInt(n *big.Int) Rational {
	return newRat(new(big.Int).Set(n), big.NewInt(1))
}

// NewFromBig returns a rational number equal to num/den in canonical form.
// The inputs are copied, never aliased.
// A zero denominator yields NaN, positive infinity, or negative infinity,
// depending on the sign of the numerator.
func NewFromBig(num, den *big.Int) Rational {
	return newRat(new(big.Int).Set(num), new(big.Int).Set(den))
}

// Num returns a copy of the numerator of the canonical form.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(&r.num)
}

// Den returns a copy of the denominator of the canonical form.
// The denominator is never negative; it is zero only for NaN and infinities.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(&r.den)
}

// IsNaN reports whether r is the NaN value.
func (r Rational) IsNaN() bool {
	return r.den.Sign() == 0 && r.num.Sign() == 0
}

// IsInf reports whether r is an infinity, according to sign:
//
//	sign > 0 - positive infinity only
//	sign < 0 - negative infinity only
//	sign = 0 - either infinity
func (r Rational) IsInf(sign int) bool {
	if r.den.Sign() != 0 {
		return false
	}
	s := r.num.Sign()
	return (sign >= 0 && s > 0) || (sign <= 0 && s < 0)
}

// IsFinite reports whether r is neither NaN nor an infinity.
func (r Rational) IsFinite() bool {
	return r.den.Sign() != 0
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r = 0 or r is NaN
//	+1 if r > 0
func (r Rational) Sign() int {
	return r.num.Sign()
}

// IsNeg returns:
//
//	true  if r < 0
//	false otherwise
func (r Rational) IsNeg() bool {
	return r.num.Sign() < 0
}

// IsPos returns:
//
//	true  if r > 0
//	false otherwise
func (r Rational) IsPos() bool {
	return r.num.Sign() > 0
}

// IsZero returns:
//
//	true  if r = 0
//	false otherwise
func (r Rational) IsZero() bool {
	return r.den.Sign() != 0 && r.num.Sign() == 0
}

// IsOne returns:
//
//	true  if r = -1 or r = 1
//	false otherwise
func (r Rational) IsOne() bool {
	return r.den.Cmp(intOne) == 0 && r.num.CmpAbs(intOne) == 0
}

// IsInt returns true if r is a finite integer.
func (r Rational) IsInt() bool {
	return r.den.Cmp(intOne) == 0
}

// Add returns the exact sum r + b.
func (r Rational) Add(b Rational) Rational {
	num := new(big.Int).Mul(&r.num, &b.den)
	num.Add(num, new(big.Int).Mul(&b.num, &r.den))
	den := new(big.Int).Mul(&r.den, &b.den)
	return newRat(num, den)
}

// Sub returns the exact difference r - b.
func (r Rational) Sub(b Rational) Rational {
	num := new(big.Int).Mul(&r.num, &b.den)
	num.Sub(num, new(big.Int).Mul(&b.num, &r.den))
	den := new(big.Int).Mul(&r.den, &b.den)
	return newRat(num, den)
}

// Mul returns the exact product r * b.
func (r Rational) Mul(b Rational) Rational {
	num := new(big.Int).Mul(&r.num, &b.num)
	den := new(big.Int).Mul(&r.den, &b.den)
	return newRat(num, den)
}

// Quo returns the exact quotient r / b, computed by multiplying r with the
// reciprocal of b.
// Division by zero does not fail: it yields an infinity for a nonzero
// dividend and NaN for 0/0.
func (r Rational) Quo(b Rational) Rational {
	num := new(big.Int).Mul(&r.num, &b.den)
	den := new(big.Int).Mul(&r.den, &b.num)
	return newRat(num, den)
}

// Neg returns a rational with the opposite sign.
func (r Rational) Neg() Rational {
	num := new(big.Int).Neg(&r.num)
	return Rational{num: *num, den: *new(big.Int).Set(&r.den)}
}

// Abs returns the absolute value of r.
func (r Rational) Abs() Rational {
	num := new(big.Int).Abs(&r.num)
	return Rational{num: *num, den: *new(big.Int).Set(&r.den)}
}

// Inv returns the reciprocal of r.
// Inv(0) is positive infinity, Inv of an infinity is 0, and Inv(NaN) is NaN.
func (r Rational) Inv() Rational {
	return newRat(new(big.Int).Set(&r.den), new(big.Int).Set(&r.num))
}

// Inc returns r + 1, computed by adding the denominator to the numerator.
func (r Rational) Inc() Rational {
	num := new(big.Int).Add(&r.num, &r.den)
	return newRat(num, new(big.Int).Set(&r.den))
}

// Dec returns r - 1, computed by subtracting the denominator from the numerator.
func (r Rational) Dec() Rational {
	num := new(big.Int).Sub(&r.num, &r.den)
	return newRat(num, new(big.Int).Set(&r.den))
}

// Trunc returns the integer part of r, rounding toward zero.
// Non-finite values pass through unchanged.
func (r Rational) Trunc() Rational {
	if !r.IsFinite() || r.IsInt() {
		return r
	}
	q := new(big.Int).Quo(&r.num, &r.den)
	return Rational{num: *q, den: *big.NewInt(1)}
}

// Floor returns the largest integer not greater than r, so Floor(r) <= r.
// Non-finite values pass through unchanged.
func (r Rational) Floor() Rational {
	if !r.IsFinite() || r.IsInt() {
		return r
	}
	q := new(big.Int).Quo(&r.num, &r.den)
	if r.num.Sign() < 0 {
		q.Sub(q, intOne)
	}
	return Rational{num: *q, den: *big.NewInt(1)}
}

// Ceil returns the smallest integer not less than r, so r <= Ceil(r).
// Non-finite values pass through unchanged.
func (r Rational) Ceil() Rational {
	if !r.IsFinite() || r.IsInt() {
		return r
	}
	q := new(big.Int).Quo(&r.num, &r.den)
	if r.num.Sign() > 0 {
		q.Add(q, intOne)
	}
	return Rational{num: *q, den: *big.NewInt(1)}
}

// Round returns the nearest integer to r, rounding half up: Round(r) is
// Floor(r + 1/2).
// Non-finite values pass through unchanged.
func (r Rational) Round() Rational {
	if !r.IsFinite() {
		return r
	}
	return r.Add(Half).Floor()
}

// Rem returns the truncating remainder r - b*Trunc(r/b), whose sign follows
// the dividend.
// See also method [Rational.Mod], which differs on mixed-sign operands.
func (r Rational) Rem(b Rational) Rational {
	return r.Sub(b.Mul(r.Quo(b).Trunc()))
}

// Mod returns the floored remainder r - b*Floor(r/b), whose sign follows
// the divisor.
// See also method [Rational.Rem], which differs on mixed-sign operands.
func (r Rational) Mod(b Rational) Rational {
	return r.Sub(b.Mul(r.Quo(b).Floor()))
}

// Pow returns r raised to the given integer power.
// NaN is absorbing; otherwise an exponent of zero yields One and a negative
// exponent inverts the base.
// The numerator and denominator are raised independently; coprimality is
// preserved by exponentiation, so the result is already in lowest terms.
func (r Rational) Pow(exp int64) Rational {
	switch {
	case r.IsNaN():
		return NaN
	case exp == 0:
		return One
	case exp == math.MinInt64:
		return r.Inv().Pow(-(exp + 1)).Mul(r.Inv())
	case exp < 0:
		return r.Inv().Pow(-exp)
	}
	e := big.NewInt(exp)
	num := new(big.Int).Exp(&r.num, e, nil)
	den := new(big.Int).Exp(&r.den, e, nil)
	return newRat(num, den)
}

// Log returns the natural logarithm of r as a float64.
// The result is lossy: it is computed as log(numerator) - log(denominator)
// in double precision, though it stays finite even when the operands exceed
// the float64 range.
func (r Rational) Log() float64 {
	switch {
	case r.IsNaN():
		return math.NaN()
	case r.IsInf(1):
		return math.Inf(1)
	case r.num.Sign() < 0:
		return math.NaN()
	case r.num.Sign() == 0:
		return math.Inf(-1)
	}
	return bigLog(&r.num) - bigLog(&r.den)
}

// Log10 returns the base-10 logarithm of r as a float64.
// Like [Rational.Log], the result is lossy.
func (r Rational) Log10() float64 {
	return r.Log() / math.Ln10
}

// LogBase returns the logarithm of r in the given base as a float64.
// Like [Rational.Log], the result is lossy.
func (r Rational) LogBase(base float64) float64 {
	return r.Log() / math.Log(base)
}

// bigLog returns the natural logarithm of a positive big integer.
// The mantissa/exponent split keeps the result finite for integers far
// beyond the float64 range.
func bigLog(x *big.Int) float64 {
	mant := new(big.Float)
	exp := new(big.Float).SetInt(x).MantExp(mant)
	m, _ := mant.Float64()
	return math.Log(m) + float64(exp)*math.Ln2
}

// Equal reports whether r and b are equal, following IEEE 754 semantics:
// NaN is not equal to anything, including itself.
// All other pairs compare by componentwise equality of the canonical
// numerator/denominator form.
// See also method [Rational.Cmp], which treats NaN differently.
func (r Rational) Equal(b Rational) bool {
	if r.IsNaN() || b.IsNaN() {
		return false
	}
	return r.num.Cmp(&b.num) == 0 && r.den.Cmp(&b.den) == 0
}

// Cmp compares r and b under a total order suitable for sorting and returns:
//
//	-1 if r < b
//	 0 if r = b
//	+1 if r > b
//
// NaN compares less than every other value, including negative infinity,
// and equal only to NaN.
// Finite values compare by cross-multiplication, which is valid because
// denominators are never negative.
// See also method [Rational.Equal], which treats NaN differently.
func (r Rational) Cmp(b Rational) int {
	rn, bn := r.IsNaN(), b.IsNaN()
	switch {
	case rn && bn:
		return 0
	case rn:
		return -1
	case bn:
		return 1
	}
	if r.den.Sign() == 0 && b.den.Sign() == 0 {
		// Two infinities, compare by sign.
		return r.num.Cmp(&b.num)
	}
	lhs := new(big.Int).Mul(&r.num, &b.den)
	rhs := new(big.Int).Mul(&b.num, &r.den)
	return lhs.Cmp(rhs)
}

// Min returns the smaller of r and b under the total order of [Rational.Cmp],
// so NaN is smaller than any other value.
func (r Rational) Min(b Rational) Rational {
	if r.Cmp(b) <= 0 {
		return r
	}
	return b
}

// Max returns the larger of r and b under the total order of [Rational.Cmp].
func (r Rational) Max(b Rational) Rational {
	if r.Cmp(b) >= 0 {
		return r
	}
	return b
}

// errConversion annotates conversion errors in a uniform way.
func errConversion(r Rational, target string, err error) error {
	return fmt.Errorf("converting %v to %s: %w", r, target, err)
}
