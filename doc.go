/*
Package rational implements exact arbitrary-precision rational numbers.

A [Rational] is an immutable numerator/denominator pair of [math/big.Int]
values held in canonical form: the denominator is non-negative, and when it
is greater than 1 the pair is reduced to lowest terms.
A zero denominator encodes the three non-finite values: NaN (numerator 0),
positive infinity (numerator 1), and negative infinity (numerator -1).

# Features

  - Immutable values, safe for concurrent use by multiple goroutines
  - Exact arithmetic: addition, subtraction, multiplication, division,
    truncated and floored remainders, powers
  - Floor, ceiling, rounding, and truncation to integers
  - Parsing of integer, fraction, decimal/scientific, and mixed-number
    notations, and formatting back to fraction, decimal, and mixed forms
  - Bit-exact conversion from 16-, 32-, and 64-bit IEEE 754 floating-point
    values and from [decimal.Decimal] values
  - Continued-fraction encoding and decoding

# Representation

Construction is the single point of canonicalization: every constructor and
every arithmetic operation routes its raw numerator/denominator pair through
the same normalization, so all publicly observable values satisfy the
invariants above.
The zero value of Rational is NaN (0/0) and is valid for all operations.

# Comparison

Two deliberately different semantics are provided.
[Rational.Equal] follows IEEE 754: NaN is not equal to anything, including
itself.
[Rational.Cmp] is a total order suitable for sorting: NaN compares less than
every other value and equal to NaN.
Do not compare Rational values with the == operator; the internal big.Int
representation makes struct equality meaningless.

# Errors

Parsing returns an error when the input matches none of the supported
notations; [TryParse] converts that into a boolean failure and the NaN
sentinel.
Conversions to exact integer and decimal types return an error when the
value is non-finite or does not fit the target.
Conversions to binary floating-point types never fail: non-finite rationals
map to the native NaN and infinities, and out-of-range magnitudes saturate.
*/
package rational
