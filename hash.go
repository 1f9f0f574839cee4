package rational

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of the canonical numerator/denominator pair.
// Values that are equal according to [Rational.Equal] hash identically.
// NaN also hashes consistently, which is permitted even though NaN is never
// equal to itself.
func (r Rational) Hash() uint64 {
	d := xxhash.New()
	var pre [9]byte
	if r.num.Sign() < 0 {
		pre[0] = 1
	}
	nb := r.num.Bytes()
	// Length prefix keeps (num, den) pairs with shared byte boundaries distinct.
	binary.BigEndian.PutUint64(pre[1:], uint64(len(nb)))
	d.Write(pre[:])
	d.Write(nb)
	d.Write(r.den.Bytes())
	return d.Sum64()
}
