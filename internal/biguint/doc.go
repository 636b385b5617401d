// Package biguint implements arbitrary-precision unsigned integers stored as
// little-endian sequences of decimal limbs in base 10^19.
//
// A decimal base makes rendering a value as a string a concatenation of
// fixed-width limb strings. Carry and borrow arithmetic therefore works modulo
// Base rather than with bit shifts, and every limb-pair combination goes
// through a double-word intermediate from math/bits.
//
// # Values
//
// [Value] is immutable. Every operation returns a new Value (possibly sharing
// backing storage with an argument, which is safe because nothing writes to
// it afterwards). Zero is the empty limb sequence and every Value returned by
// an exported function has a non-zero most-significant limb.
//
// # Multiplication
//
// [Mul] dispatches on the byte length of the smaller operand to one of three
// strategies that must agree bit for bit:
//
//   - [StrategySchoolbook]: quadratic limb-by-limb products.
//   - [StrategyKaratsuba]: recursive three-product splitting, recombined with
//     [AddShifted].
//   - [StrategyNTT]: number-theoretic transform over the prime 29·2^57+1 on
//     base-10^k sub-words.
//
// A [Multiplier] carries its own [Thresholds], an optional [Observer] and a
// zerolog logger; the package-level functions use a default instance.
package biguint
