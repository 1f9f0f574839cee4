package rational

import (
	"math/big"
)

// BigInt returns the integer part of r, rounding toward zero.
//
// BigInt returns an error if r is NaN or an infinity.
func (r Rational) BigInt() (*big.Int, error) {
	if !r.IsFinite() {
		return nil, errConversion(r, "integer", ErrNonFinite)
	}
	return new(big.Int).Quo(&r.num, &r.den), nil
}

// signedInt truncates r and range-checks the result against a signed
// integer of the given width.
func (r Rational) signedInt(bits int, target string) (int64, error) {
	n, err := r.BigInt()
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() {
		return 0, errConversion(r, target, ErrOverflow)
	}
	i := n.Int64()
	if bits < 64 && (i < -1<<(bits-1) || i > 1<<(bits-1)-1) {
		return 0, errConversion(r, target, ErrOverflow)
	}
	return i, nil
}

// unsignedInt truncates r and range-checks the result against an unsigned
// integer of the given width.
func (r Rational) unsignedInt(bits int, target string) (uint64, error) {
	n, err := r.BigInt()
	if err != nil {
		return 0, err
	}
	if n.Sign() < 0 || !n.IsUint64() {
		return 0, errConversion(r, target, ErrOverflow)
	}
	u := n.Uint64()
	if bits < 64 && u > 1<<bits-1 {
		return 0, errConversion(r, target, ErrOverflow)
	}
	return u, nil
}

// Int64 returns the integer part of r, rounding toward zero.
//
// Int64 returns an error if r is non-finite or does not fit in an int64.
func (r Rational) Int64() (int64, error) {
	return r.signedInt(64, "int64")
}

// Int32 is like [Rational.Int64] for int32.
func (r Rational) Int32() (int32, error) {
	i, err := r.signedInt(32, "int32")
	return int32(i), err
}

// Int16 is like [Rational.Int64] for int16.
func (r Rational) Int16() (int16, error) {
	i, err := r.signedInt(16, "int16")
	return int16(i), err
}

// Int8 is like [Rational.Int64] for int8.
func (r Rational) Int8() (int8, error) {
	i, err := r.signedInt(8, "int8")
	return int8(i), err
}

// Uint64 returns the integer part of r, rounding toward zero.
//
// Uint64 returns an error if r is non-finite, negative with a nonzero
// integer part, or does not fit in a uint64.
func (r Rational) Uint64() (uint64, error) {
	return r.unsignedInt(64, "uint64")
}

// Uint32 is like [Rational.Uint64] for uint32.
func (r Rational) Uint32() (uint32, error) {
	u, err := r.unsignedInt(32, "uint32")
	return uint32(u), err
}

// Uint16 is like [Rational.Uint64] for uint16.
func (r Rational) Uint16() (uint16, error) {
	u, err := r.unsignedInt(16, "uint16")
	return uint16(u), err
}

// Uint8 is like [Rational.Uint64] for uint8.
func (r Rational) Uint8() (uint8, error) {
	u, err := r.unsignedInt(8, "uint8")
	return uint8(u), err
}
