// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"fmt"

	"github.com/coinkit/secp256k1"
)

// References:
//   [BIP340]: Schnorr Signatures for secp256k1
//     https://github.com/bitcoin/bips/blob/master/bip-0340.mediawiki

const (
	// SignatureSize is the size of an encoded Schnorr signature.
	SignatureSize = 64

	// scalarSize is the size of an encoded big endian scalar.
	scalarSize = 32

	// maxSignAttempts is the maximum number of fallback nonces to try when
	// signing before giving up and returning an error.
	maxSignAttempts = 64
)

var (
	// rfc6979ExtraDataV0 is the extra data to feed to RFC6979 when falling
	// back to deterministic nonces.  It ensures the fallback does not
	// generate the same nonce for the same message and key as other signing
	// algorithms such as ECDSA.
	//
	// It is equal to SHA-256([]byte("BIP-340")).
	rfc6979ExtraDataV0 = [32]byte{
		0xa3, 0xeb, 0x4c, 0x18, 0x2f, 0xae, 0x7e, 0xf4,
		0xe8, 0x10, 0xc6, 0xee, 0x13, 0xb0, 0xe9, 0x26,
		0x68, 0x6d, 0x71, 0xe8, 0x7f, 0x39, 0x4f, 0x79,
		0x9c, 0x00, 0xa5, 0x21, 0x03, 0xcb, 0x4e, 0x17,
	}

	// zeroAuxRand is the default auxiliary randomness, all zeros, which makes
	// signing fully deterministic for a given key and message.
	zeroAuxRand [32]byte
)

// Signature is a type representing a Schnorr signature.
type Signature struct {
	r secp256k1.FieldVal
	s secp256k1.ModNScalar
}

// NewSignature instantiates a new signature given some r and s values.
func NewSignature(r *secp256k1.FieldVal, s *secp256k1.ModNScalar) *Signature {
	var sig Signature
	sig.r.Set(r)
	sig.s.Set(s)
	return &sig
}

// Serialize returns the Schnorr signature in the more strict format.
//
// The signatures are encoded as:
//
//	sig[0:32]  x coordinate of the point R, encoded as a big-endian uint256
//	sig[32:64] s, encoded also as big-endian uint256
func (sig Signature) Serialize() []byte {
	// Total length of returned signature is the length of r and s.
	var b [SignatureSize]byte
	sig.r.PutBytesUnchecked(b[0:32])
	sig.s.PutBytesUnchecked(b[32:64])
	return b[:]
}

// ParseSignature parses a signature according to the [BIP340] specification
// and enforces the following additional restrictions specific to secp256k1:
//
// - The r component must be in the valid range for secp256k1 field elements
// - The s component must be in the valid range for secp256k1 scalars
func ParseSignature(sig []byte) (*Signature, error) {
	// The signature must be the correct length.
	sigLen := len(sig)
	if sigLen < SignatureSize {
		str := fmt.Sprintf("malformed signature: too short: %d < %d", sigLen,
			SignatureSize)
		return nil, signatureError(ErrSigTooShort, str)
	}
	if sigLen > SignatureSize {
		str := fmt.Sprintf("malformed signature: too long: %d > %d", sigLen,
			SignatureSize)
		return nil, signatureError(ErrSigTooLong, str)
	}

	// The signature is validly encoded at this point, however, enforce
	// additional restrictions to ensure r is in the range [0, p-1], and s is
	// in the range [0, n-1] since valid Schnorr signatures are required to be
	// in that range per spec.
	var r secp256k1.FieldVal
	if overflow := r.SetByteSlice(sig[0:32]); overflow {
		str := "invalid signature: r >= field prime"
		return nil, signatureError(ErrSigRTooBig, str)
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		str := "invalid signature: s >= group order"
		return nil, signatureError(ErrSigSTooBig, str)
	}

	// Return the signature.
	return NewSignature(&r, &s), nil
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.  A signature is equivalent to another,
// if they both have the same scalar value for r and s.
func (sig Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Equals(&otherSig.r) && sig.s.Equals(&otherSig.s)
}

// schnorrVerify attempts to verify the signature for the provided hash and
// x-only serialized public key and either returns nil if successful or a
// specific error indicating why it failed if not successful.
//
// This differs from the exported Verify method in that it returns a specific
// error to support better testing while the exported method simply returns a
// bool indicating success or failure.
func schnorrVerify(sig *Signature, hash []byte, pubKeyBytes []byte) error {
	// The algorithm for verifying a BIP-340 signature is described in
	// [BIP340] and is reproduced here for reference:
	//
	// G = curve generator
	// n = curve order
	// p = field size
	// pk = public key
	// m = message
	// r, s = signature
	//
	// 1. Fail if m is not 32 bytes
	// 2. P = lift_x(int(pk)); fail if that fails
	// 3. r = int(sig[0:32]); fail if r >= p
	// 4. s = int(sig[32:64]); fail if s >= n
	// 5. e = int(tagged_hash("BIP0340/challenge", bytes(r) || bytes(P) || m)) mod n
	// 6. R = s*G - e*P
	// 7. Fail if is_infinite(R)
	// 8. Fail if not has_even_y(R)
	// 9. Fail if x(R) != r
	// 10. Return success iff failure did not occur before reaching this point

	// Step 1.
	//
	// Fail if m is not 32 bytes
	if len(hash) != scalarSize {
		str := fmt.Sprintf("wrong size for message hash (got %v, want %v)",
			len(hash), scalarSize)
		return signatureError(ErrInvalidHashLen, str)
	}

	// Step 2.
	//
	// P = lift_x(int(pk))
	//
	// Fail if P is not a point on the curve.
	pubKey, err := ParsePubKey(pubKeyBytes)
	if err != nil {
		return err
	}
	if !pubKey.IsOnCurve() {
		str := "pubkey point is not on curve"
		return signatureError(ErrPubKeyNotOnCurve, str)
	}

	// Steps 3 and 4 are enforced by the signature parsing since the r and s
	// types can only represent reduced values.

	// Step 5.
	//
	// e = int(tagged_hash("BIP0340/challenge", bytes(r) || bytes(P) || m)) mod n
	var rBytes [32]byte
	sig.r.PutBytes(&rBytes)
	pBytes := SerializePubKey(pubKey)

	commitment := TaggedHash(TagBIP0340Challenge, rBytes[:], pBytes, hash)

	var e secp256k1.ModNScalar
	e.SetBytes(commitment)

	// Negate e here so that AddNonConst below adds -e*P to s*G which works
	// out to the required s*G - e*P.
	e.Negate()

	// Step 6.
	//
	// R = s*G - e*P
	var P, R, sG, eP secp256k1.JacobianPoint
	pubKey.AsJacobian(&P)
	secp256k1.ScalarBaseMultNonConst(&sig.s, &sG)
	secp256k1.ScalarMultNonConst(&e, &P, &eP)
	secp256k1.AddNonConst(&sG, &eP, &R)

	// Step 7.
	//
	// Fail if R is the point at infinity
	if (R.X.IsZero() && R.Y.IsZero()) || R.Z.IsZero() {
		str := "calculated R point is the point at infinity"
		return signatureError(ErrSigRNotOnCurve, str)
	}

	// Step 8.
	//
	// Fail if R.y is odd
	//
	// Note that R must be in affine coordinates for this check.
	R.ToAffine()
	if R.Y.IsOdd() {
		str := "calculated R y-value is odd"
		return signatureError(ErrSigRYIsOdd, str)
	}

	// Step 9.
	//
	// Verified if R.x == r
	//
	// Note that R must be in affine coordinates for this check.
	if !sig.r.Equals(&R.X) {
		str := "calculated R point was not given R"
		return signatureError(ErrUnequalRValues, str)
	}

	// Step 10.
	//
	// Return success iff failure did not occur before reaching this point.
	return nil
}

// Verify returns whether or not the signature is valid for the provided hash
// and secp256k1 public key.  The y coordinate of the public key is ignored
// per the x-only [BIP340] conventions.
func (sig *Signature) Verify(hash []byte, pubKey *secp256k1.PublicKey) bool {
	pubKeyBytes := SerializePubKey(pubKey)
	return schnorrVerify(sig, hash, pubKeyBytes) == nil
}

// signOptions houses the optional parameters that alter the way signatures
// are generated.
type signOptions struct {
	// auxRand is the auxiliary randomness mixed into the nonce derivation
	// per [BIP340].
	auxRand []byte
}

// SignOption is a functional option argument that allows callers to modify
// the way signatures are produced.
type SignOption func(*signOptions)

// defaultSignOptions returns the default signing options, which use all-zero
// auxiliary randomness and therefore produce fully deterministic signatures.
func defaultSignOptions() *signOptions {
	return &signOptions{
		auxRand: zeroAuxRand[:],
	}
}

// WithAuxRandomness mixes the provided bytes into the nonce derivation as the
// [BIP340] auxiliary randomness.  Supplying 32 bytes of fresh randomness
// hardens signing against fault injection and side channel analysis at the
// cost of repeatable signatures.
func WithAuxRandomness(aux []byte) SignOption {
	return func(opts *signOptions) {
		opts.auxRand = aux
	}
}

// schnorrSign generates a [BIP340] signature over the secp256k1 curve for the
// provided hash (which should be the result of hashing a larger message)
// using the given nonce and private key.  The produced signature is
// deterministic (same message, nonce, and key yield the same signature) and
// canonical.
//
// WARNING: The hash MUST be 32 bytes and both the nonce and private key MUST
// NOT be 0.  Since this is an internal use function, these preconditions MUST
// be satisfied by the caller.
func schnorrSign(privKey, nonce *secp256k1.ModNScalar, pubKey *secp256k1.PublicKey, hash []byte) (*Signature, error) {
	// This function performs the final steps of the [BIP340] signing
	// algorithm given a nonce k':
	//
	// 10. R = k'*G
	// 11. Negate k if R.y is odd
	// 12. e = tagged_hash("BIP0340/challenge", bytes(R) || bytes(P) || m) mod n
	// 13. sig = bytes(R) || bytes((k + e*d)) mod n
	// 14. If Verify(bytes(P), m, sig) fails, abort.
	// 15. Return sig

	// Step 10.
	//
	// R = k'*G
	//
	// Note that the nonce is a secret, so the constant-time base point
	// multiplication is used.
	k := *nonce
	var R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultConst(&k, &R)

	// Step 11.
	//
	// Negate k if R.y is odd.
	//
	// Note that R must be in affine coordinates for this check.
	R.ToAffine()
	if R.Y.IsOdd() {
		k.Negate()
	}

	// Step 12.
	//
	// e = tagged_hash("BIP0340/challenge", bytes(R) || bytes(P) || m) mod n
	//
	// Note that bytes(R) is the big-endian x coordinate of the point R and
	// bytes(P) is the x-only serialization of the public key.
	var rBytes [32]byte
	r := &R.X
	r.PutBytes(&rBytes)
	pBytes := SerializePubKey(pubKey)

	commitment := TaggedHash(TagBIP0340Challenge, rBytes[:], pBytes, hash)

	var e secp256k1.ModNScalar
	e.SetBytes(commitment)

	// Step 13.
	//
	// s = k + e*d mod n
	s := new(secp256k1.ModNScalar).Mul2(&e, privKey).Add(&k)
	k.Zero()
	sig := NewSignature(r, s)

	// Step 14.
	//
	// If Verify(bytes(P), m, sig) fails, abort.
	if err := schnorrVerify(sig, hash, pBytes); err != nil {
		return nil, err
	}

	// Step 15.
	//
	// Return sig.
	return sig, nil
}

// Sign generates a [BIP340] signature over the secp256k1 curve for the
// provided hash (which should be the result of hashing a larger message)
// using the given private key.  With the default all-zero auxiliary
// randomness the produced signature is deterministic (same message and same
// key yield the same signature); mix in fresh randomness per signature with
// WithAuxRandomness to trade that property for extra side channel hardening.
//
// Note that the current signing implementation has a few remaining variable
// time aspects which make use of the private key and the generated nonce,
// which can expose the signer to constant time attacks.  As a result, this
// function should not be used in situations where there is the possibility
// of someone having EM field/cache/etc access.
func Sign(privKey *secp256k1.PrivateKey, hash []byte, signOpts ...SignOption) (*Signature, error) {
	// First, parse the set of optional signing options.
	opts := defaultSignOptions()
	for _, opt := range signOpts {
		opt(opts)
	}

	// The algorithm for producing a BIP-340 signature is described in
	// [BIP340] and is reproduced here for reference:
	//
	// G = curve generator
	// n = curve order
	// d' = private key
	// m = message
	// a = input randomness
	// r, s = signature
	//
	// 1. d' = int(d)
	// 2. Fail if m is not 32 bytes
	// 3. Fail if d = 0 or d >= n
	// 4. P = d'*G
	// 5. Negate d if P.y is odd
	// 6. t = bytes(d) xor tagged_hash("BIP0340/aux", a)
	// 7. rand = tagged_hash("BIP0340/nonce", t || bytes(P) || m)
	// 8. k' = int(rand) mod n
	// 9. Fail if k' = 0
	// 10. R = k'*G
	// 11. Negate k if R.y is odd
	// 12. e = tagged_hash("BIP0340/challenge", bytes(R) || bytes(P) || m) mod n
	// 13. sig = bytes(R) || bytes((k + e*d)) mod n
	// 14. If Verify(bytes(P), m, sig) fails, abort.
	// 15. Return sig

	// Step 1.
	//
	// d' = int(d)
	var privKeyScalar secp256k1.ModNScalar
	privKeyScalar.Set(&privKey.Key)

	// Step 2.
	//
	// Fail if m is not 32 bytes
	if len(hash) != scalarSize {
		str := fmt.Sprintf("wrong size for message hash (got %v, want %v)",
			len(hash), scalarSize)
		return nil, signatureError(ErrInvalidHashLen, str)
	}

	// Step 3.
	//
	// Fail if d = 0 or d >= n
	if privKeyScalar.IsZero() {
		str := "private key is zero"
		return nil, signatureError(ErrPrivateKeyIsZero, str)
	}

	// Step 4.
	//
	// P = d'*G
	pub := privKey.PubKey()

	// Step 5.
	//
	// Negate d if P.y is odd.
	pubKeyBytes := pub.SerializeCompressed()
	if pubKeyBytes[0] == secp256k1.PubKeyFormatCompressedOdd {
		privKeyScalar.Negate()
	}
	privKeyBytes := privKeyScalar.Bytes()
	defer zeroArray(&privKeyBytes)

	// Step 6.
	//
	// t = bytes(d) xor tagged_hash("BIP0340/aux", a)
	t := *TaggedHash(TagBIP0340Aux, opts.auxRand)
	for i, b := range privKeyBytes {
		t[i] ^= b
	}
	defer zeroArray(&t)

	// Step 7.
	//
	// rand = tagged_hash("BIP0340/nonce", t || bytes(P) || m)
	//
	// Note that bytes(P) is the x-only serialization of the public key.
	rand := TaggedHash(TagBIP0340Nonce, t[:], pubKeyBytes[1:], hash)

	// Step 8.
	//
	// k' = int(rand) mod n
	var kPrime secp256k1.ModNScalar
	kPrime.SetBytes(rand)

	// Step 9.
	//
	// Fail if k' = 0.
	//
	// A zero nonce is astronomically improbable, but rather than failing
	// outright, fall back to deterministic RFC6979 nonces with increasing
	// iteration counts the way ECDSA signing handles its retry cases, with
	// dedicated extra data binding the nonces to this scheme.  Give up after
	// a bounded number of attempts.
	for iteration := uint32(0); kPrime.IsZero(); iteration++ {
		if iteration == maxSignAttempts {
			str := "exhausted candidate nonces (broken tagged hash?)"
			return nil, signatureError(ErrNonceGenFailed, str)
		}
		k := secp256k1.NonceRFC6979(privKeyBytes[:], hash,
			rfc6979ExtraDataV0[:], nil, iteration)
		kPrime.Set(k)
		k.Zero()
	}

	// Steps 10-15.
	sig, err := schnorrSign(&privKeyScalar, &kPrime, pub, hash)
	kPrime.Zero()
	privKeyScalar.Zero()
	if err != nil {
		return nil, err
	}
	return sig, nil
}

// zeroArray zeroes the memory of a scalar byte array.
func zeroArray(a *[scalarSize]byte) {
	for i := 0; i < scalarSize; i++ {
		a[i] = 0x00
	}
}
