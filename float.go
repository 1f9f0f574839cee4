package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/x448/float16"
)

var errImaginary = errors.New("nonzero imaginary part")

// floatForm describes a binary floating-point format by its bit layout.
type floatForm struct {
	expBits  uint
	mantBits uint
	bias     int
}

var (
	form16 = floatForm{expBits: 5, mantBits: 10, bias: 15}
	form32 = floatForm{expBits: 8, mantBits: 23, bias: 127}
	form64 = floatForm{expBits: 11, mantBits: 52, bias: 1023}
)

// decompose converts a raw floating-point bit pattern to an exact rational:
//
//   - zero exponent field: zero when the mantissa is zero, otherwise a
//     subnormal with denominator 2^(bias-1+mantBits);
//   - all-ones exponent field: an infinity when the mantissa is zero,
//     otherwise NaN;
//   - anything else: a normal number (mantissa + 2^mantBits) / 2^mantBits,
//     shifted by exponent - bias - mantBits.
func decompose(bits uint64, f floatForm) Rational {
	neg := bits>>(f.expBits+f.mantBits)&1 == 1
	expField := bits >> f.mantBits & (1<<f.expBits - 1)
	mant := bits & (1<<f.mantBits - 1)
	switch expField {
	case 0:
		if mant == 0 {
			return Zero
		}
		num := new(big.Int).SetUint64(mant)
		if neg {
			num.Neg(num)
		}
		den := new(big.Int).Lsh(intOne, uint(f.bias-1)+f.mantBits)
		return newRat(num, den)
	case 1<<f.expBits - 1:
		if mant == 0 {
			if neg {
				return NegInf
			}
			return PosInf
		}
		return NaN
	}
	num := new(big.Int).SetUint64(mant | 1<<f.mantBits)
	den := new(big.Int).Lsh(intOne, f.mantBits)
	if e := int(expField) - f.bias - int(f.mantBits); e < 0 {
		den.Lsh(den, uint(-e))
	} else {
		num.Lsh(num, uint(e))
	}
	if neg {
		num.Neg(num)
	}
	return newRat(num, den)
}

// NewFromFloat64 converts a float64 to an exact rational by bit-level
// decomposition of the IEEE 754 binary64 pattern.
// NaN and the infinities map to the corresponding non-finite rationals;
// every finite float, including subnormals, converts without loss.
// See also method [Rational.Float64].
func NewFromFloat64(f float64) Rational {
	return decompose(math.Float64bits(f), form64)
}

// NewFromFloat32 is like [NewFromFloat64] for the binary32 format.
// See also method [Rational.Float32].
func NewFromFloat32(f float32) Rational {
	return decompose(uint64(math.Float32bits(f)), form32)
}

// NewFromFloat16 is like [NewFromFloat64] for the binary16 format.
// See also method [Rational.Float16].
func NewFromFloat16(f float16.Float16) Rational {
	return decompose(uint64(f.Bits()), form16)
}

// Precision windows for reconstruction: the largest denominator bit length
// whose native conversion cannot overflow the target format during the
// final division.
const (
	window64 = 1023
	window32 = 127
)

// split prepares |r| for native reconstruction: it separates the truncated
// quotient from the remainder and, when the denominator exceeds the given
// precision window, right-shifts the remainder and denominator by the
// excess so the native division cannot overflow.
// The rescaling is deliberately lossy: values whose reduced denominator
// fits the window convert exactly, deeper subnormals only approximately.
func (r Rational) split(window int) (neg bool, q, rem, den *big.Int) {
	neg = r.num.Sign() < 0
	a := new(big.Int).Abs(&r.num)
	q, rem = new(big.Int).QuoRem(a, &r.den, new(big.Int))
	den = &r.den
	if excess := den.BitLen() - window; excess > 0 {
		den = new(big.Int).Rsh(den, uint(excess))
		rem.Rsh(rem, uint(excess))
	}
	return neg, q, rem, den
}

// Float64 returns the nearest float64 to r.
// Non-finite rationals map to the native NaN and infinities, and magnitudes
// beyond the float64 range saturate to an infinity.
// See also constructor [NewFromFloat64].
func (r Rational) Float64() float64 {
	if !r.IsFinite() {
		switch r.num.Sign() {
		case 1:
			return math.Inf(1)
		case -1:
			return math.Inf(-1)
		}
		return math.NaN()
	}
	neg, q, rem, den := r.split(window64)
	qf, _ := new(big.Float).SetInt(q).Float64()
	rf, _ := new(big.Float).SetInt(rem).Float64()
	df, _ := new(big.Float).SetInt(den).Float64()
	f := qf + rf/df
	if neg {
		f = -f
	}
	return f
}

// float32Value reconstructs r in float32 arithmetic.
func (r Rational) float32Value() float32 {
	if !r.IsFinite() {
		switch r.num.Sign() {
		case 1:
			return float32(math.Inf(1))
		case -1:
			return float32(math.Inf(-1))
		}
		return float32(math.NaN())
	}
	neg, q, rem, den := r.split(window32)
	qf, _ := new(big.Float).SetInt(q).Float32()
	rf, _ := new(big.Float).SetInt(rem).Float32()
	df, _ := new(big.Float).SetInt(den).Float32()
	f := qf + rf/df
	if neg {
		f = -f
	}
	return f
}

// Float32 is like [Rational.Float64] for the binary32 format.
// See also constructor [NewFromFloat32].
func (r Rational) Float32() float32 {
	return r.float32Value()
}

// Float16 is like [Rational.Float64] for the binary16 format: the value is
// reconstructed in float32 arithmetic and rounded to the nearest
// half-precision value.
// See also constructor [NewFromFloat16].
func (r Rational) Float16() float16.Float16 {
	return float16.Fromfloat32(r.float32Value())
}

// Complex128 embeds r on the real axis of a complex number with a zero
// imaginary part, using the lossy conversion of [Rational.Float64] for the
// real part.
// See also constructor [NewFromComplex128].
func (r Rational) Complex128() complex128 {
	return complex(r.Float64(), 0)
}

// NewFromComplex128 converts a complex number lying on the real axis to an
// exact rational.
//
// NewFromComplex128 returns an error if the imaginary part is nonzero.
func NewFromComplex128(c complex128) (Rational, error) {
	if imag(c) != 0 {
		return NaN, fmt.Errorf("converting complex %v: %w", c, errImaginary)
	}
	return NewFromFloat64(real(c)), nil
}
