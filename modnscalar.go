// Copyright (c) 2020-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//
//   [HAC]: Handbook of Applied Cryptography Menezes, van Oorschot, Vanstone.
//     http://cacr.uwaterloo.ca/hac/

// Many elliptic curve operations require working with scalars in a finite
// field characterized by the order of the group underlying the secp256k1
// curve.  Given this precision is larger than the biggest available native
// type, obviously some form of bignum math is needed.  This code implements
// specialized fixed-precision field arithmetic rather than relying on an
// arbitrary-precision arithmetic package such as math/big for dealing with
// the math modulo the group order since the size is known.  As a result,
// rather large performance gains are achieved by taking advantage of many
// optimizations not available to arbitrary-precision arithmetic and generic
// modular arithmetic algorithms.
//
// The scalar is represented as 4 uint64 words with the least significant
// word first and is always fully reduced to the range [0, N).  Since the
// group order is 2^256 minus a roughly 129-bit complement, reductions trade
// each overflowed multiple of 2^256 for one addition of that complement,
// mirroring the approach used for the field arithmetic.

const (
	// These fields provide convenient access to the individual words of the
	// secp256k1 curve group order N with the least significant word first:
	//
	//  N = FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE BAAEDCE6AF48A03B BFD25E8CD0364141
	orderWordZero  uint64 = 0xbfd25e8cd0364141
	orderWordOne   uint64 = 0xbaaedce6af48a03b
	orderWordTwo   uint64 = 0xfffffffffffffffe
	orderWordThree uint64 = 0xffffffffffffffff

	// These fields provide convenient access to the individual words of the
	// two's complement of the group order (2^256 - N) with the least
	// significant word first.  The most significant word is zero.
	//
	//  2^256 - N = 00000000000000000000000000000001 45512319 50B75FC4 402DA173 2FC9BEBF
	orderComplementWordZero uint64 = 0x402da1732fc9bebf
	orderComplementWordOne  uint64 = 0x4551231950b75fc4
	orderComplementWordTwo  uint64 = 0x0000000000000001

	// These fields provide convenient access to the individual words of the
	// group order divided by two with the least significant word first.
	halfOrderWordZero  uint64 = 0xdfe92f46681b20a0
	halfOrderWordOne   uint64 = 0x5d576e7357a4501d
	halfOrderWordTwo   uint64 = 0xffffffffffffffff
	halfOrderWordThree uint64 = 0x7fffffffffffffff
)

// orderMinusTwo is the group order minus two as 32 big-endian bytes.  It is
// the exponent used to compute multiplicative inverses in the scalar field
// per Fermat's little theorem.
var orderMinusTwo = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
	0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
	0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x3f,
}

// constantTimeEq64 returns 1 if a == b or 0 otherwise in constant time.
func constantTimeEq64(a, b uint64) uint64 {
	x := a ^ b
	return 1 ^ ((x | -x) >> 63)
}

// constantTimeLess returns 1 if a < b or 0 otherwise in constant time.
func constantTimeLess(a, b uint32) uint32 {
	return uint32((uint64(a) - uint64(b)) >> 63)
}

// constantTimeMin returns min(a,b) in constant time.
func constantTimeMin(a, b uint32) uint32 {
	return b ^ ((a ^ b) & -constantTimeLess(a, b))
}

// ModNScalar implements optimized 256-bit constant-time fixed-precision
// arithmetic over the secp256k1 group order.  This means all arithmetic is
// performed modulo:
//
//	0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141
//
// WARNING: Since it is so important for the arithmetic to be extremely fast
// for high performance crypto, this type does not perform any validation of
// documented preconditions where it would significantly degrade speed.  As a
// result, the value is always assumed to have been produced by this package
// and is therefore fully reduced.  Values from untrusted sources must enter
// through SetBytes or SetByteSlice which report whether a reduction occurred.
type ModNScalar struct {
	// The scalar is represented as 4 uint64 words with the most significant
	// word at the highest index:
	//   n[3]*2^192 + n[2]*2^128 + n[1]*2^64 + n[0]
	n [4]uint64
}

// String returns the scalar as a human-readable hex string.
func (s ModNScalar) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}

// Set sets the scalar equal to a copy of the passed one in constant time.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s := new(ModNScalar).Set(s2).Add(s3) so that s = s2 + s3.
func (s *ModNScalar) Set(val *ModNScalar) *ModNScalar {
	*s = *val
	return s
}

// Zero sets the scalar to zero in constant time.  A newly created scalar is
// already set to zero.  This function can be useful to clear an existing
// scalar for reuse.
func (s *ModNScalar) Zero() {
	s.n[0], s.n[1], s.n[2], s.n[3] = 0, 0, 0, 0
}

// SetInt sets the scalar to the passed integer in constant time.  This is a
// convenience function since it is fairly common to perform some arithmetic
// with small native integers.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s := new(ModNScalar).SetInt(2).Mul(s2) so that s = 2 * s2.
func (s *ModNScalar) SetInt(ui uint32) *ModNScalar {
	s.n[0] = uint64(ui)
	s.n[1], s.n[2], s.n[3] = 0, 0, 0
	return s
}

// overflows returns 1 when the current value is greater than or equal to the
// group order and must therefore be reduced, or 0 otherwise, in constant
// time.
func (s *ModNScalar) overflows() uint64 {
	// Trial subtraction of the order.  The absence of a final borrow means
	// the value is at least the order.
	var borrow uint64
	_, borrow = bits.Sub64(s.n[0], orderWordZero, 0)
	_, borrow = bits.Sub64(s.n[1], orderWordOne, borrow)
	_, borrow = bits.Sub64(s.n[2], orderWordTwo, borrow)
	_, borrow = bits.Sub64(s.n[3], orderWordThree, borrow)
	return borrow ^ 1
}

// reduce256 reduces the current value modulo the group order in constant
// time according to the provided overflow flag.  The flag must be 1 when the
// represented value (including a potential discarded carry out of the fourth
// word) is at least the group order and 0 otherwise.
//
// Since N = 2^256 - orderComplement, subtracting the order from a value in
// the range [N, 2N) is the same as adding the complement and discarding the
// carry word.
func (s *ModNScalar) reduce256(overflow uint64) *ModNScalar {
	mask := -overflow
	var c uint64
	s.n[0], c = bits.Add64(s.n[0], orderComplementWordZero&mask, 0)
	s.n[1], c = bits.Add64(s.n[1], orderComplementWordOne&mask, c)
	s.n[2], c = bits.Add64(s.n[2], orderComplementWordTwo&mask, c)
	s.n[3], _ = bits.Add64(s.n[3], 0, c)
	return s
}

// SetBytes interprets the provided array as a 256-bit big-endian unsigned
// integer, packs it into the internal scalar representation reduced modulo
// the group order, and returns 1 when the value was greater than or equal to
// the group order (and was therefore reduced) or 0 otherwise, all in
// constant time.
//
// Note that a bool is not used here because it is not possible in Go to
// convert from a bool to numeric value in constant time and many
// constant-time operations require a numeric value.  Callers that enforce
// canonical encodings must reject inputs for which this reports 1.
func (s *ModNScalar) SetBytes(b *[32]byte) uint32 {
	s.n[0] = binary.BigEndian.Uint64(b[24:32])
	s.n[1] = binary.BigEndian.Uint64(b[16:24])
	s.n[2] = binary.BigEndian.Uint64(b[8:16])
	s.n[3] = binary.BigEndian.Uint64(b[0:8])
	overflow := s.overflows()
	s.reduce256(overflow)
	return uint32(overflow)
}

// SetByteSlice interprets the provided slice as a 256-bit big-endian unsigned
// integer (meaning it is truncated to the first 32 bytes), packs it into the
// internal scalar representation reduced modulo the group order, and returns
// whether or not the resulting truncated 256-bit integer was greater than or
// equal to the group order (aka it overflowed) in constant time.
//
// Note that since passing a slice with more than 32 bytes is truncated, it is
// possible that the truncated value is less than the order of the curve and
// hence it will not be reported as having overflowed in that case.  It is up
// to the caller to decide whether it needs to provide numbers of the
// appropriate size or whether or not the truncation and overflow behavior is
// acceptable.
func (s *ModNScalar) SetByteSlice(b []byte) bool {
	var b32 [32]byte
	b = b[:constantTimeMin(uint32(len(b)), 32)]
	copy(b32[32-len(b):], b)
	result := s.SetBytes(&b32) != 0
	zeroArray32(&b32)
	return result
}

// PutBytesUnchecked unpacks the scalar to a 32-byte big-endian value directly
// into the passed byte slice in constant time.  The target slice must have at
// least 32 bytes available or it will panic.
//
// There is a similar function, PutBytes, which unpacks the scalar into a
// 32-byte array directly.  This version is provided since it can be useful to
// write directly into part of a larger buffer without needing a separate
// allocation.
//
// Preconditions:
//   - The target slice MUST have at least 32 bytes available
func (s *ModNScalar) PutBytesUnchecked(b []byte) {
	binary.BigEndian.PutUint64(b[0:8], s.n[3])
	binary.BigEndian.PutUint64(b[8:16], s.n[2])
	binary.BigEndian.PutUint64(b[16:24], s.n[1])
	binary.BigEndian.PutUint64(b[24:32], s.n[0])
}

// PutBytes unpacks the scalar to a 32-byte big-endian value using the passed
// byte array in constant time.
//
// There is a similar function, Bytes, which unpacks the scalar into a new
// array and returns that.  This version is provided since it can be useful to
// cut down on the number of allocations by allowing the caller to reuse a
// buffer or write directly into part of a larger buffer.
func (s *ModNScalar) PutBytes(b *[32]byte) {
	s.PutBytesUnchecked(b[:])
}

// Bytes returns the scalar as a 32-byte big-endian value.  See PutBytes and
// PutBytesUnchecked for variants that allow the reuse of a buffer.
func (s *ModNScalar) Bytes() [32]byte {
	var b [32]byte
	s.PutBytesUnchecked(b[:])
	return b
}

// IsZero returns whether or not the scalar is equal to zero.
func (s *ModNScalar) IsZero() bool {
	// The scalar can only be zero if no bits are set in any of the words.
	return (s.n[0] | s.n[1] | s.n[2] | s.n[3]) == 0
}

// IsOdd returns whether or not the scalar is an odd number.
func (s *ModNScalar) IsOdd() bool {
	// Only odd numbers have the bottom bit set.
	return s.n[0]&1 == 1
}

// Equals returns whether or not the two scalars are the same.
func (s *ModNScalar) Equals(val *ModNScalar) bool {
	// Xor only sets bits when they are different, so the two scalars can
	// only be the same if no bits are set after xoring each word.
	w := (s.n[0] ^ val.n[0]) | (s.n[1] ^ val.n[1]) | (s.n[2] ^ val.n[2]) |
		(s.n[3] ^ val.n[3])
	return w == 0
}

// Add2 adds the passed two scalars together modulo the group order in
// constant time and stores the result in s.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s3.Add2(s, s2).Mul(s4) so that s3 = (s + s2) * s4.
func (s *ModNScalar) Add2(val1, val2 *ModNScalar) *ModNScalar {
	// Since both inputs are below the order, the sum is below 2N, so a
	// single masked reduction produces the canonical result.  A carry out
	// of the final word and a remaining value of at least the order cannot
	// both happen, hence the flags can simply be combined.
	var c uint64
	s.n[0], c = bits.Add64(val1.n[0], val2.n[0], 0)
	s.n[1], c = bits.Add64(val1.n[1], val2.n[1], c)
	s.n[2], c = bits.Add64(val1.n[2], val2.n[2], c)
	s.n[3], c = bits.Add64(val1.n[3], val2.n[3], c)
	s.reduce256(c | s.overflows())
	return s
}

// Add adds the passed scalar to the existing one modulo the group order in
// constant time and stores the result in s.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s.Add(s2).Mul(s3) so that s = (s + s2) * s3.
func (s *ModNScalar) Add(val *ModNScalar) *ModNScalar {
	return s.Add2(s, val)
}

// Sub2 subtracts val2 from val1 modulo the group order in constant time and
// stores the result in s.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s3.Sub2(s, s2) so that s3 = s - s2.
func (s *ModNScalar) Sub2(val1, val2 *ModNScalar) *ModNScalar {
	// A final borrow means the difference wrapped around 2^256, in which
	// case the represented value is off by exactly the order complement,
	// which the masked second chain removes.
	var borrow uint64
	s.n[0], borrow = bits.Sub64(val1.n[0], val2.n[0], 0)
	s.n[1], borrow = bits.Sub64(val1.n[1], val2.n[1], borrow)
	s.n[2], borrow = bits.Sub64(val1.n[2], val2.n[2], borrow)
	s.n[3], borrow = bits.Sub64(val1.n[3], val2.n[3], borrow)
	mask := -borrow
	var b uint64
	s.n[0], b = bits.Sub64(s.n[0], orderComplementWordZero&mask, 0)
	s.n[1], b = bits.Sub64(s.n[1], orderComplementWordOne&mask, b)
	s.n[2], b = bits.Sub64(s.n[2], orderComplementWordTwo&mask, b)
	s.n[3], _ = bits.Sub64(s.n[3], 0, b)
	return s
}

// Sub subtracts the passed scalar from the existing one modulo the group
// order in constant time and stores the result in s.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s.Sub(s2) so that s = s - s2.
func (s *ModNScalar) Sub(val *ModNScalar) *ModNScalar {
	return s.Sub2(s, val)
}

// NegateVal negates the passed scalar modulo the group order in constant time
// and stores the result in s.  Negating zero yields zero.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s.NegateVal(s2).Add(s3) so that s = -s2 + s3.
func (s *ModNScalar) NegateVal(val *ModNScalar) *ModNScalar {
	// The additive inverse of any nonzero scalar is N - value, and the
	// subtraction can never borrow since the value is fully reduced.  Mask
	// the result with a nonzero flag so that negating zero produces the
	// canonical zero rather than N.
	mask := -(1 ^ constantTimeEq64(val.n[0]|val.n[1]|val.n[2]|val.n[3], 0))
	var borrow uint64
	s.n[0], borrow = bits.Sub64(orderWordZero, val.n[0], 0)
	s.n[1], borrow = bits.Sub64(orderWordOne, val.n[1], borrow)
	s.n[2], borrow = bits.Sub64(orderWordTwo, val.n[2], borrow)
	s.n[3], _ = bits.Sub64(orderWordThree, val.n[3], borrow)
	s.n[0] &= mask
	s.n[1] &= mask
	s.n[2] &= mask
	s.n[3] &= mask
	return s
}

// Negate negates the scalar modulo the group order in constant time and
// stores the result in s.  Negating zero yields zero.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s.Negate().Add(s2) so that s = -s + s2.
func (s *ModNScalar) Negate() *ModNScalar {
	return s.NegateVal(s)
}

// mul512 computes the full 512-bit product of the two passed scalars into the
// provided 8-word array with the least significant word first.
func (s *ModNScalar) mul512(val1, val2 *ModNScalar, t *[8]uint64) {
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

	// extract returns the lowest word of the accumulator and shifts the
	// accumulator right by one word.
	extract := func() uint64 {
		w := c0
		c0, c1, c2 = c1, c2, 0
		return w
	}

	muladdFast(val1.n[0], val2.n[0])
	t[0] = extract()
	muladd(val1.n[0], val2.n[1])
	muladd(val1.n[1], val2.n[0])
	t[1] = extract()
	muladd(val1.n[0], val2.n[2])
	muladd(val1.n[1], val2.n[1])
	muladd(val1.n[2], val2.n[0])
	t[2] = extract()
	muladd(val1.n[0], val2.n[3])
	muladd(val1.n[1], val2.n[2])
	muladd(val1.n[2], val2.n[1])
	muladd(val1.n[3], val2.n[0])
	t[3] = extract()
	muladd(val1.n[1], val2.n[3])
	muladd(val1.n[2], val2.n[2])
	muladd(val1.n[3], val2.n[1])
	t[4] = extract()
	muladd(val1.n[2], val2.n[3])
	muladd(val1.n[3], val2.n[2])
	t[5] = extract()
	muladdFast(val1.n[3], val2.n[3])
	t[6] = extract()
	t[7] = c0
}

// reduce512 reduces the passed 512-bit product (8 words, least significant
// first) modulo the group order in constant time and stores the result in s.
//
// The reduction happens in three fixed folding steps: 512 to 385 bits, 385
// to 258 bits, and finally 258 to a canonical 256-bit value.  Each step
// trades the words above 2^256 for additions of the order complement since
// 2^256 = orderComplement (mod N).
func (s *ModNScalar) reduce512(t *[8]uint64) *ModNScalar {
	var c0, c1, c2 uint64

	muladd := func(a, b uint64) {
		hi, lo := bits.Mul64(a, b)
		var carry uint64
		c0, carry = bits.Add64(c0, lo, 0)
		c1, carry = bits.Add64(c1, hi, carry)
		c2 += carry
	}

	muladdFast := func(a, b uint64) {
		hi, lo := bits.Mul64(a, b)
		var carry uint64
		c0, carry = bits.Add64(c0, lo, 0)
		c1, _ = bits.Add64(c1, hi, carry)
	}

	// sumadd adds a single word to the accumulator.
	sumadd := func(a uint64) {
		var carry uint64
		c0, carry = bits.Add64(c0, a, 0)
		c1, carry = bits.Add64(c1, 0, carry)
		c2 += carry
	}

	// sumaddFast adds a single word to the accumulator for columns where
	// the carry word c2 is known to stay zero.
	sumaddFast := func(a uint64) {
		var carry uint64
		c0, carry = bits.Add64(c0, a, 0)
		c1, _ = bits.Add64(c1, 0, carry)
	}

	extract := func() uint64 {
		w := c0
		c0, c1, c2 = c1, c2, 0
		return w
	}

	n0, n1, n2, n3 := t[4], t[5], t[6], t[7]

	// Reduce 512 bits into 385:
	// m[0..6] = t[0..3] + n[0..3] * orderComplement.  Multiplications by
	// the third complement word are plain additions since that word is one.
	var m [7]uint64
	c0, c1, c2 = t[0], 0, 0
	muladdFast(n0, orderComplementWordZero)
	m[0] = extract()
	sumaddFast(t[1])
	muladd(n1, orderComplementWordZero)
	muladd(n0, orderComplementWordOne)
	m[1] = extract()
	sumadd(t[2])
	muladd(n2, orderComplementWordZero)
	muladd(n1, orderComplementWordOne)
	sumadd(n0)
	m[2] = extract()
	sumadd(t[3])
	muladd(n3, orderComplementWordZero)
	muladd(n2, orderComplementWordOne)
	sumadd(n1)
	m[3] = extract()
	muladd(n3, orderComplementWordOne)
	sumadd(n2)
	m[4] = extract()
	sumaddFast(n3)
	m[5] = extract()
	m[6] = c0

	// Reduce 385 bits into 258:
	// p[0..4] = m[0..3] + m[4..6] * orderComplement.
	var p [5]uint64
	c0, c1, c2 = m[0], 0, 0
	muladdFast(m[4], orderComplementWordZero)
	p[0] = extract()
	sumaddFast(m[1])
	muladd(m[5], orderComplementWordZero)
	muladd(m[4], orderComplementWordOne)
	p[1] = extract()
	sumadd(m[2])
	muladd(m[6], orderComplementWordZero)
	muladd(m[5], orderComplementWordOne)
	sumadd(m[4])
	p[2] = extract()
	sumaddFast(m[3])
	muladdFast(m[6], orderComplementWordOne)
	sumaddFast(m[5])
	p[3] = extract()
	p[4] = c0 + m[6]

	// Reduce 258 bits into a canonical 256-bit scalar:
	// r = p[0..3] + p[4] * orderComplement followed by at most one final
	// masked reduction.  The two carry chains together can wrap 2^256 at
	// most once since the addend is under 132 bits.
	hi0, lo0 := bits.Mul64(p[4], orderComplementWordZero)
	hi1, lo1 := bits.Mul64(p[4], orderComplementWordOne)
	var c uint64
	s.n[0], c = bits.Add64(p[0], lo0, 0)
	s.n[1], c = bits.Add64(p[1], lo1, c)
	s.n[2], c = bits.Add64(p[2], p[4], c)
	s.n[3], c = bits.Add64(p[3], 0, c)
	overflow := c
	s.n[1], c = bits.Add64(s.n[1], hi0, 0)
	s.n[2], c = bits.Add64(s.n[2], hi1, c)
	s.n[3], c = bits.Add64(s.n[3], 0, c)
	s.reduce256(overflow | c | s.overflows())
	return s
}

// Mul2 multiplies the passed two scalars modulo the group order in constant
// time and stores the result in s.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s3.Mul2(s, s2).Add(s4) so that s3 = (s * s2) + s4.
func (s *ModNScalar) Mul2(val, val2 *ModNScalar) *ModNScalar {
	var t [8]uint64
	s.mul512(val, val2, &t)
	return s.reduce512(&t)
}

// Mul multiplies the passed scalar with the existing one modulo the group
// order in constant time and stores the result in s.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s.Mul(s2).Add(s3) so that s = (s * s2) + s3.
func (s *ModNScalar) Mul(val *ModNScalar) *ModNScalar {
	return s.Mul2(s, val)
}

// SquareVal squares the passed scalar modulo the group order in constant time
// and stores the result in s.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s3.SquareVal(s).Mul(s) so that s3 = s^2 * s = s^3.
func (s *ModNScalar) SquareVal(val *ModNScalar) *ModNScalar {
	return s.Mul2(val, val)
}

// Square squares the scalar modulo the group order in constant time and
// stores the result in s.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s.Square().Mul(s2) so that s = s^2 * s2.
func (s *ModNScalar) Square() *ModNScalar {
	return s.SquareVal(s)
}

// InverseValNonConst finds the modular multiplicative inverse of the passed
// scalar and stores result in s in *non-constant* time.  The inverse of zero
// is defined to be zero.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s3.InverseValNonConst(s).Mul(s2) so that s3 = s^-1 * s2.
func (s *ModNScalar) InverseValNonConst(val *ModNScalar) *ModNScalar {
	// Fermat's little theorem states that for a nonzero scalar a and the
	// prime group order N, a^(N-1) = 1 (mod N), and therefore a^(N-2) is
	// the multiplicative inverse.  The exponent is a fixed public constant,
	// so the branches of this square-and-multiply ladder leak nothing about
	// the operand.
	var result ModNScalar
	result.SetInt(1)
	for _, b := range orderMinusTwo {
		for bit := 7; bit >= 0; bit-- {
			result.Square()
			if b>>uint(bit)&1 == 1 {
				result.Mul(val)
			}
		}
	}
	*s = result
	return s
}

// InverseNonConst finds the modular multiplicative inverse of the scalar in
// *non-constant* time and stores it in s.  The inverse of zero is defined to
// be zero.
//
// The scalar is returned to support chaining.  This enables syntax like:
// s.InverseNonConst().Mul(s2) so that s = s^-1 * s2.
func (s *ModNScalar) InverseNonConst() *ModNScalar {
	return s.InverseValNonConst(s)
}

// IsOverHalfOrder returns whether or not the scalar exceeds the group order
// divided by 2 in constant time.
func (s *ModNScalar) IsOverHalfOrder() bool {
	// The scalar is over the half order when subtracting it from the half
	// order requires a borrow.
	var borrow uint64
	_, borrow = bits.Sub64(halfOrderWordZero, s.n[0], 0)
	_, borrow = bits.Sub64(halfOrderWordOne, s.n[1], borrow)
	_, borrow = bits.Sub64(halfOrderWordTwo, s.n[2], borrow)
	_, borrow = bits.Sub64(halfOrderWordThree, s.n[3], borrow)
	return borrow == 1
}
