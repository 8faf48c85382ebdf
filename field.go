// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [HAC]: Handbook of Applied Cryptography Menezes, van Oorschot, Vanstone.
//     http://cacr.uwaterloo.ca/hac/

// All elliptic curve operations for secp256k1 are done in a finite field
// characterized by a 256-bit prime.  Given this precision is larger than the
// biggest available native type, obviously some form of bignum math is needed.
// This code implements specialized fixed-precision field arithmetic rather
// than relying on an arbitrary-precision arithmetic package such as math/big
// for dealing with the math modulo the prime since the size is known.  As a
// result, rather large performance gains are achieved by taking advantage of
// many optimizations not available to arbitrary-precision arithmetic and
// generic modular arithmetic algorithms.
//
// The value is represented as 4 uint64 words with the least significant word
// first, and every exported and unexported operation keeps the value fully
// reduced to the range [0, p).  The secp256k1 prime is equivalent to
// 2^256 - 4294968273, so trading each multiple of 2^256 for a single
// 4294968273 (which comfortably fits into a uint64) reduces products and sums
// without any division.
//
// All operations that can run in constant time do so: the carry and borrow
// chains have fixed length, reductions use masked additions instead of
// branches, and the exponentiation ladder performs the identical instruction
// sequence for every exponent.

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

const (
	// fieldPrimeWordZero is the least significant word of the secp256k1
	// prime p = 2^256 - 2^32 - 977.  The three remaining words of the prime
	// are all 2^64 - 1.
	fieldPrimeWordZero = 0xfffffffefffffc2f

	// fieldComplement is the complement of the prime with respect to 2^256,
	// i.e. 2^256 - p = 2^32 + 977.  Since 2^256 = fieldComplement (mod p),
	// reductions trade overflowed multiples of 2^256 for additions of this
	// value.
	fieldComplement = 0x1000003d1
)

var (
	// fieldPrimeMinusTwo is p - 2 as 32 big-endian bytes.  It is the
	// exponent used to compute multiplicative inverses per Fermat's little
	// theorem.
	fieldPrimeMinusTwo = [32]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xfe, 0xff, 0xff, 0xfc, 0x2d,
	}

	// fieldSqrtExp is (p + 1) / 4 as 32 big-endian bytes.  Since the
	// secp256k1 prime is congruent to 3 mod 4, raising a quadratic residue
	// to this power yields one of its two square roots.
	fieldSqrtExp = [32]byte{
		0x3f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xbf, 0xff, 0xff, 0x0c,
	}

	// fieldPrimeMinusOrder is the field prime minus the group order (p - n)
	// as 4 uint64 words with the least significant word first.  It is used
	// when determining whether an ECDSA signature R value can represent more
	// than one X coordinate modulo the prime.
	fieldPrimeMinusOrder = [4]uint64{
		0x402da1722fc9baee, 0x4551231950b75fc4, 0x0000000000000001, 0,
	}
)

// FieldVal implements optimized fixed-precision arithmetic over the secp256k1
// finite field.  This means all arithmetic is performed modulo
// 0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f.
//
// WARNING: Since it is so important for the field arithmetic to be extremely
// fast for high performance crypto, this type does not perform any validation
// of documented preconditions where it would significantly degrade speed.  As
// a result, the value is always assumed to have been produced by this package
// and is therefore fully reduced.  Values from untrusted sources must enter
// through SetBytes or SetByteSlice which report whether a reduction occurred.
type FieldVal struct {
	// The field value is represented as 4 uint64 words with the most
	// significant word at the highest index:
	//   n[3]*2^192 + n[2]*2^128 + n[1]*2^64 + n[0]
	//
	// Every operation maintains the invariant that the represented value is
	// in the canonical range [0, p).
	n [4]uint64
}

// String returns the field value as a human-readable hex string.
func (f FieldVal) String() string {
	return hex.EncodeToString(f.Bytes()[:])
}

// Zero sets the field value to zero in constant time.  A newly created field
// value is already set to zero.  This function can be useful to clear an
// existing field value for reuse.
func (f *FieldVal) Zero() {
	f.n[0], f.n[1], f.n[2], f.n[3] = 0, 0, 0, 0
}

// Set sets the field value equal to the passed value in constant time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f := new(FieldVal).Set(f2).Add(f3) so that f = f2 + f3 where f2 is not
// modified.
func (f *FieldVal) Set(val *FieldVal) *FieldVal {
	*f = *val
	return f
}

// SetInt sets the field value to the passed integer in constant time.  This
// is a convenience function since it is fairly common to perform some
// arithmetic with small native integers.
//
// The field value is returned to support chaining.  This enables syntax such
// as f := new(FieldVal).SetInt(2).Mul(f2) so that f = 2 * f2.
func (f *FieldVal) SetInt(ui uint16) *FieldVal {
	f.n[0] = uint64(ui)
	f.n[1], f.n[2], f.n[3] = 0, 0, 0
	return f
}

// overflows returns 1 when the current value is greater than or equal to the
// field prime and must therefore be reduced, or 0 otherwise, in constant
// time.
func (f *FieldVal) overflows() uint64 {
	// Trial subtraction of the prime.  The absence of a final borrow means
	// the value is at least the prime.
	var borrow uint64
	_, borrow = bits.Sub64(f.n[0], fieldPrimeWordZero, 0)
	_, borrow = bits.Sub64(f.n[1], 0xffffffffffffffff, borrow)
	_, borrow = bits.Sub64(f.n[2], 0xffffffffffffffff, borrow)
	_, borrow = bits.Sub64(f.n[3], 0xffffffffffffffff, borrow)
	return borrow ^ 1
}

// reduce256 reduces the current value modulo the prime in constant time
// according to the provided overflow flag.  The flag must be 1 when the
// represented value (including a potential discarded carry out of the fourth
// word) is at least the prime and 0 otherwise.
//
// Since p = 2^256 - fieldComplement, subtracting the prime from a value in
// the range [p, 2p) is the same as adding the complement and discarding the
// carry word.
func (f *FieldVal) reduce256(overflow uint64) *FieldVal {
	mask := -overflow
	var c uint64
	f.n[0], c = bits.Add64(f.n[0], fieldComplement&mask, 0)
	f.n[1], c = bits.Add64(f.n[1], 0, c)
	f.n[2], c = bits.Add64(f.n[2], 0, c)
	f.n[3], _ = bits.Add64(f.n[3], 0, c)
	return f
}

// SetBytes packs the passed 32-byte big-endian value into the internal field
// value representation in constant time, reducing it modulo the prime, and
// returns 1 when the passed value was greater than or equal to the prime (and
// was therefore reduced) or 0 otherwise.
//
// Note that a bool is not used here because it is not possible in Go to
// convert from a bool to numeric value in constant time and many
// constant-time operations require a numeric value.  Callers that enforce
// canonical encodings must reject inputs for which this reports 1.
func (f *FieldVal) SetBytes(b *[32]byte) uint32 {
	f.n[0] = binary.BigEndian.Uint64(b[24:32])
	f.n[1] = binary.BigEndian.Uint64(b[16:24])
	f.n[2] = binary.BigEndian.Uint64(b[8:16])
	f.n[3] = binary.BigEndian.Uint64(b[0:8])
	overflow := f.overflows()
	f.reduce256(overflow)
	return uint32(overflow)
}

// SetByteSlice interprets the provided slice as a 256-bit big-endian unsigned
// integer (meaning it is truncated to the first 32 bytes), packs it into the
// internal field value representation reduced modulo the prime, and returns
// whether or not the resulting truncated 256-bit integer was greater than or
// equal to the prime (aka it overflowed) in constant time.
//
// Note that since passing a slice with more than 32 bytes is truncated, it is
// possible that the truncated value is less than the prime and hence it will
// not be reported as having overflowed in that case.  It is up to the caller
// to decide whether it needs to provide numbers of the appropriate size or
// whether or not the truncation and overflow behavior is acceptable.
func (f *FieldVal) SetByteSlice(b []byte) bool {
	var b32 [32]byte
	b = b[:constantTimeMin(uint32(len(b)), 32)]
	copy(b32[32-len(b):], b)
	result := f.SetBytes(&b32) != 0
	zeroArray32(&b32)
	return result
}

// PutBytesUnchecked unpacks the field value to a 32-byte big-endian value
// directly into the passed byte slice in constant time.  The target slice
// must have at least 32 bytes available or it will panic.
//
// There is a similar function, PutBytes, which unpacks the field value into a
// 32-byte array directly.  This version is provided since it can be useful to
// write directly into part of a larger buffer without needing a separate
// allocation.
//
// Preconditions:
//   - The target slice MUST have at least 32 bytes available
func (f *FieldVal) PutBytesUnchecked(b []byte) {
	binary.BigEndian.PutUint64(b[0:8], f.n[3])
	binary.BigEndian.PutUint64(b[8:16], f.n[2])
	binary.BigEndian.PutUint64(b[16:24], f.n[1])
	binary.BigEndian.PutUint64(b[24:32], f.n[0])
}

// PutBytes unpacks the field value to a 32-byte big-endian value using the
// passed byte array in constant time.
//
// There is a similar function, Bytes, which unpacks the field value into a
// slice that it allocates.  This version is provided since it can be useful
// to cut down on the number of allocations by allowing the caller to reuse a
// buffer.
func (f *FieldVal) PutBytes(b *[32]byte) {
	f.PutBytesUnchecked(b[:])
}

// Bytes unpacks the field value to a 32-byte big-endian value.  See PutBytes
// and PutBytesUnchecked for variants that allow the reuse of a buffer.
func (f *FieldVal) Bytes() *[32]byte {
	b := new([32]byte)
	f.PutBytesUnchecked(b[:])
	return b
}

// IsZeroBit returns 1 when the field value is equal to zero or 0 otherwise in
// constant time.
//
// Note that a bool is not used here because it is not possible in Go to
// convert from a bool to numeric value in constant time and many
// constant-time operations require a numeric value.  See IsZero for the
// version that returns a bool.
func (f *FieldVal) IsZeroBit() uint32 {
	w := f.n[0] | f.n[1] | f.n[2] | f.n[3]
	return uint32(constantTimeEq64(w, 0))
}

// IsZero returns whether or not the field value is equal to zero.
func (f *FieldVal) IsZero() bool {
	// The value can only be zero if no bits are set in any of the words.
	return (f.n[0] | f.n[1] | f.n[2] | f.n[3]) == 0
}

// IsOne returns whether or not the field value is equal to one.
func (f *FieldVal) IsOne() bool {
	return ((f.n[0] ^ 1) | f.n[1] | f.n[2] | f.n[3]) == 0
}

// IsOddBit returns 1 when the field value is an odd number or 0 otherwise in
// constant time.
//
// Note that a bool is not used here because it is not possible in Go to
// convert from a bool to numeric value in constant time and many
// constant-time operations require a numeric value.  See IsOdd for the
// version that returns a bool.
func (f *FieldVal) IsOddBit() uint32 {
	return uint32(f.n[0] & 1)
}

// IsOdd returns whether or not the field value is an odd number.
func (f *FieldVal) IsOdd() bool {
	// Only odd numbers have the bottom bit set.
	return f.n[0]&1 == 1
}

// Equals returns whether or not the two field values are the same.
func (f *FieldVal) Equals(val *FieldVal) bool {
	// Xor only sets bits when they are different, so the two field values
	// can only be the same if no bits are set after xoring each word.  The
	// comparison needs no prior normalization since both values are always
	// fully reduced.
	w := (f.n[0] ^ val.n[0]) | (f.n[1] ^ val.n[1]) | (f.n[2] ^ val.n[2]) |
		(f.n[3] ^ val.n[3])
	return w == 0
}

// NegateVal negates the passed value and stores the result in f in constant
// time.  The result is the additive inverse modulo the prime, so negating
// zero yields zero.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.NegateVal(f2).AddInt(1) so that f = -f2 + 1.
func (f *FieldVal) NegateVal(val *FieldVal) *FieldVal {
	// The additive inverse of any nonzero value is p - value, and the
	// subtraction can never borrow since the value is fully reduced.  Mask
	// the result with a nonzero flag so that negating zero produces the
	// canonical zero rather than p.
	mask := -(1 ^ constantTimeEq64(val.n[0]|val.n[1]|val.n[2]|val.n[3], 0))
	var borrow uint64
	f.n[0], borrow = bits.Sub64(fieldPrimeWordZero, val.n[0], 0)
	f.n[1], borrow = bits.Sub64(0xffffffffffffffff, val.n[1], borrow)
	f.n[2], borrow = bits.Sub64(0xffffffffffffffff, val.n[2], borrow)
	f.n[3], _ = bits.Sub64(0xffffffffffffffff, val.n[3], borrow)
	f.n[0] &= mask
	f.n[1] &= mask
	f.n[2] &= mask
	f.n[3] &= mask
	return f
}

// Negate negates the field value in constant time.  The result is the
// additive inverse modulo the prime, so negating zero yields zero.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.Negate().AddInt(1) so that f = -f + 1.
func (f *FieldVal) Negate() *FieldVal {
	return f.NegateVal(f)
}

// AddInt adds the passed integer to the existing field value and stores the
// result in f in constant time.  This is a convenience function since it is
// fairly common to perform some arithmetic with small native integers.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.AddInt(1) so that f = f + 1.
func (f *FieldVal) AddInt(ui uint16) *FieldVal {
	var c uint64
	f.n[0], c = bits.Add64(f.n[0], uint64(ui), 0)
	f.n[1], c = bits.Add64(f.n[1], 0, c)
	f.n[2], c = bits.Add64(f.n[2], 0, c)
	f.n[3], c = bits.Add64(f.n[3], 0, c)
	f.reduce256(c | f.overflows())
	return f
}

// Add2 adds the passed two field values together and stores the result in f
// in constant time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f3.Add2(f, f2) so that f3 = f + f2.
func (f *FieldVal) Add2(val *FieldVal, val2 *FieldVal) *FieldVal {
	// Since both inputs are below the prime, the sum is below 2p, so a
	// single masked reduction produces the canonical result.  A carry out
	// of the final word and a remaining value of at least the prime cannot
	// happen at the same time, hence the flags can simply be combined.
	var c uint64
	f.n[0], c = bits.Add64(val.n[0], val2.n[0], 0)
	f.n[1], c = bits.Add64(val.n[1], val2.n[1], c)
	f.n[2], c = bits.Add64(val.n[2], val2.n[2], c)
	f.n[3], c = bits.Add64(val.n[3], val2.n[3], c)
	f.reduce256(c | f.overflows())
	return f
}

// Add adds the passed value to the existing field value and stores the result
// in f in constant time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.Add(f2) so that f = f + f2.
func (f *FieldVal) Add(val *FieldVal) *FieldVal {
	return f.Add2(f, val)
}

// Sub2 subtracts val2 from val and stores the result in f in constant time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f3.Sub2(f, f2) so that f3 = f - f2.
func (f *FieldVal) Sub2(val *FieldVal, val2 *FieldVal) *FieldVal {
	// A final borrow means the difference wrapped around 2^256, in which
	// case the represented value is off by exactly 2^256 - p, i.e. the
	// complement, which the masked second chain removes.
	var borrow uint64
	f.n[0], borrow = bits.Sub64(val.n[0], val2.n[0], 0)
	f.n[1], borrow = bits.Sub64(val.n[1], val2.n[1], borrow)
	f.n[2], borrow = bits.Sub64(val.n[2], val2.n[2], borrow)
	f.n[3], borrow = bits.Sub64(val.n[3], val2.n[3], borrow)
	mask := -borrow
	var b uint64
	f.n[0], b = bits.Sub64(f.n[0], fieldComplement&mask, 0)
	f.n[1], b = bits.Sub64(f.n[1], 0, b)
	f.n[2], b = bits.Sub64(f.n[2], 0, b)
	f.n[3], _ = bits.Sub64(f.n[3], 0, b)
	return f
}

// Sub subtracts the passed value from the existing field value and stores the
// result in f in constant time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.Sub(f2) so that f = f - f2.
func (f *FieldVal) Sub(val *FieldVal) *FieldVal {
	return f.Sub2(f, val)
}

// MulInt multiplies the field value by the passed int and stores the result
// in f in constant time.  This is a convenience function since it is fairly
// common to perform some arithmetic with small native integers.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.MulInt(2) so that f = f * 2.
func (f *FieldVal) MulInt(val uint8) *FieldVal {
	// The product is at most 255*(2^256-1) which occupies a single extra
	// word, so folding that word via the complement and performing one
	// masked reduction yields the canonical result.
	m := uint64(val)
	var c uint64
	hi0, lo0 := bits.Mul64(f.n[0], m)
	hi1, lo1 := bits.Mul64(f.n[1], m)
	hi2, lo2 := bits.Mul64(f.n[2], m)
	hi3, lo3 := bits.Mul64(f.n[3], m)
	f.n[0] = lo0
	f.n[1], c = bits.Add64(lo1, hi0, 0)
	f.n[2], c = bits.Add64(lo2, hi1, c)
	f.n[3], c = bits.Add64(lo3, hi2, c)
	t4 := hi3 + c

	hi, lo := bits.Mul64(t4, fieldComplement)
	f.n[0], c = bits.Add64(f.n[0], lo, 0)
	f.n[1], c = bits.Add64(f.n[1], hi, c)
	f.n[2], c = bits.Add64(f.n[2], 0, c)
	f.n[3], c = bits.Add64(f.n[3], 0, c)
	f.reduce256(c | f.overflows())
	return f
}

// Mul2 multiplies the passed two field values together and stores the result
// in f in constant time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f3.Mul2(f, f2) so that f3 = f * f2.
func (f *FieldVal) Mul2(val *FieldVal, val2 *FieldVal) *FieldVal {
	// 96-bit accumulator for the schoolbook multiplication columns.  The
	// values c0, c1, c2 form a little-endian 192-bit number with c2 only
	// ever holding the spillover of column carries.
	var c0, c1, c2 uint64

	// muladd adds a*b to the accumulator.
	muladd := func(a, b uint64) {
		hi, lo := bits.Mul64(a, b)
		var carry uint64
		c0, carry = bits.Add64(c0, lo, 0)
		c1, carry = bits.Add64(c1, hi, carry)
		c2 += carry
	}

	// muladdFast adds a*b to the accumulator for columns where the carry
	// word c2 is known to stay zero.
	muladdFast := func(a, b uint64) {
		hi, lo := bits.Mul64(a, b)
		var carry uint64
		c0, carry = bits.Add64(c0, lo, 0)
		c1, _ = bits.Add64(c1, hi, carry)
	}

	// sumaddFast adds a single word to the accumulator for columns where
	// the carry word c2 is known to stay zero.
	sumaddFast := func(a uint64) {
		var carry uint64
		c0, carry = bits.Add64(c0, a, 0)
		c1, _ = bits.Add64(c1, 0, carry)
	}

	// extract returns the lowest word of the accumulator and shifts the
	// accumulator right by one word.
	extract := func() uint64 {
		w := c0
		c0, c1, c2 = c1, c2, 0
		return w
	}

	// Compute the full 512-bit product into t with the least significant
	// word first.
	var t [8]uint64
	muladdFast(val.n[0], val2.n[0])
	t[0] = extract()
	muladd(val.n[0], val2.n[1])
	muladd(val.n[1], val2.n[0])
	t[1] = extract()
	muladd(val.n[0], val2.n[2])
	muladd(val.n[1], val2.n[1])
	muladd(val.n[2], val2.n[0])
	t[2] = extract()
	muladd(val.n[0], val2.n[3])
	muladd(val.n[1], val2.n[2])
	muladd(val.n[2], val2.n[1])
	muladd(val.n[3], val2.n[0])
	t[3] = extract()
	muladd(val.n[1], val2.n[3])
	muladd(val.n[2], val2.n[2])
	muladd(val.n[3], val2.n[1])
	t[4] = extract()
	muladd(val.n[2], val2.n[3])
	muladd(val.n[3], val2.n[2])
	t[5] = extract()
	muladdFast(val.n[3], val2.n[3])
	t[6] = extract()
	t[7] = c0

	// Fold the upper half into the lower half.  Each upper word contributes
	// word*fieldComplement at its corresponding position since
	// 2^256 = fieldComplement (mod p).  The per-column sums stay well below
	// 2^128, so the carry word is never needed here.
	c0, c1, c2 = t[0], 0, 0
	muladdFast(t[4], fieldComplement)
	f.n[0] = extract()
	sumaddFast(t[1])
	muladdFast(t[5], fieldComplement)
	f.n[1] = extract()
	sumaddFast(t[2])
	muladdFast(t[6], fieldComplement)
	f.n[2] = extract()
	sumaddFast(t[3])
	muladdFast(t[7], fieldComplement)
	f.n[3] = extract()
	t4 := c0

	// Fold the remaining overflow word the same way.  It is at most 33 bits,
	// so its contribution spans two words, and at most one final masked
	// reduction is needed for a canonical result.
	var c uint64
	hi, lo := bits.Mul64(t4, fieldComplement)
	f.n[0], c = bits.Add64(f.n[0], lo, 0)
	f.n[1], c = bits.Add64(f.n[1], hi, c)
	f.n[2], c = bits.Add64(f.n[2], 0, c)
	f.n[3], c = bits.Add64(f.n[3], 0, c)
	f.reduce256(c | f.overflows())
	return f
}

// Mul multiplies the passed value to the existing field value and stores the
// result in f in constant time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.Mul(f2) so that f = f * f2.
func (f *FieldVal) Mul(val *FieldVal) *FieldVal {
	return f.Mul2(f, val)
}

// SquareVal squares the passed value and stores the result in f in constant
// time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f3.SquareVal(f).Mul(f) so that f3 = f^2 * f = f^3.
func (f *FieldVal) SquareVal(val *FieldVal) *FieldVal {
	return f.Mul2(val, val)
}

// Square squares the field value in constant time.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.Square().Mul(f2) so that f = f^2 * f2.
func (f *FieldVal) Square() *FieldVal {
	return f.SquareVal(f)
}

// cmov conditionally overwrites f with val in constant time.  The mask must
// be all one bits to move val into f or all zero bits to leave f unchanged.
func (f *FieldVal) cmov(val *FieldVal, mask uint64) {
	f.n[0] = (f.n[0] &^ mask) | (val.n[0] & mask)
	f.n[1] = (f.n[1] &^ mask) | (val.n[1] & mask)
	f.n[2] = (f.n[2] &^ mask) | (val.n[2] & mask)
	f.n[3] = (f.n[3] &^ mask) | (val.n[3] & mask)
}

// Pow raises the field value to the power of the passed 256-bit big-endian
// exponent and stores the result in f.
//
// The computation is a fixed ladder: one squaring, one multiplication, and
// one masked selection per exponent bit, so the executed instruction sequence
// is identical for every value and exponent.
//
// The field value is returned to support chaining.
func (f *FieldVal) Pow(exp *[32]byte) *FieldVal {
	var result, candidate FieldVal
	result.SetInt(1)
	for _, b := range exp {
		for bit := 7; bit >= 0; bit-- {
			result.Square()
			candidate.Mul2(&result, f)
			result.cmov(&candidate, -uint64(b>>uint(bit)&1))
		}
	}
	return f.Set(&result)
}

// Inverse finds the modular multiplicative inverse of the field value in
// constant time and stores it in f.  The inverse of zero is defined to be
// zero; callers for which a zero operand is invalid must reject it before
// inverting.
//
// The field value is returned to support chaining.  This enables syntax like:
// f.Inverse().Mul(f2) so that f = f^-1 * f2.
func (f *FieldVal) Inverse() *FieldVal {
	// Fermat's little theorem states that for a nonzero number a and prime
	// p, a^(p-1) = 1 (mod p), and therefore a^(p-2) is the multiplicative
	// inverse.  Zero simply stays zero through the ladder.
	return f.Pow(&fieldPrimeMinusTwo)
}

// SquareRootVal either calculates the square root of the passed value when it
// exists and stores the result in f in constant time, or returns false when
// the passed value is not a quadratic residue modulo the field prime.
//
// Since the secp256k1 prime is congruent to 3 mod 4, the candidate root is
// val^((p+1)/4), and squaring the candidate determines whether val actually
// has a root.
func (f *FieldVal) SquareRootVal(val *FieldVal) bool {
	f.Set(val).Pow(&fieldSqrtExp)
	var square FieldVal
	square.SquareVal(f)
	return square.Equals(val)
}

// IsGtOrEqPrimeMinusOrder returns whether or not the field value exceeds the
// field prime minus the group order in constant time.
func (f *FieldVal) IsGtOrEqPrimeMinusOrder() bool {
	var borrow uint64
	_, borrow = bits.Sub64(f.n[0], fieldPrimeMinusOrder[0], 0)
	_, borrow = bits.Sub64(f.n[1], fieldPrimeMinusOrder[1], borrow)
	_, borrow = bits.Sub64(f.n[2], fieldPrimeMinusOrder[2], borrow)
	_, borrow = bits.Sub64(f.n[3], fieldPrimeMinusOrder[3], borrow)
	return borrow == 0
}
