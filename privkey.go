// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/ecdsa"
	cryptorand "crypto/rand"
	"io"
	"math/big"
)

// PrivateKey provides facilities for working with secp256k1 private keys
// within this package and includes functionality such as serializing and
// parsing them as well as computing their associated public key.
type PrivateKey struct {
	Key ModNScalar
}

// NewPrivateKey instantiates a new private key from a scalar encoded as a
// big integer.
func NewPrivateKey(key *ModNScalar) *PrivateKey {
	return &PrivateKey{Key: *key}
}

// PrivKeyFromBytes returns a private key based on the provided byte slice
// which is interpreted as an unsigned 256-bit big-endian integer in the range
// [0, N-1], where N is the order of the curve.
//
// WARNING: This means passing a slice with more than 32 bytes is truncated and
// that truncated value is reduced modulo N.  Further, 0 is not a valid private
// key.  It is up to the caller to provide a value in the appropriate range of
// [1, N-1].  Failure to do so will either result in an invalid private key or
// potentially weak private keys that have bias that could be exploited.
//
// This function primarily exists to provide a mechanism for converting
// serialized private keys that are already known to be good.
//
// Typically callers should make use of GeneratePrivateKey or
// GeneratePrivateKeyFromRand when creating private keys since they properly
// handle the aforementioned range checks.
func PrivKeyFromBytes(privKeyBytes []byte) *PrivateKey {
	var privKey PrivateKey
	privKey.Key.SetByteSlice(privKeyBytes)
	return &privKey
}

// PrivKeyFromScalar instantiates a new private key from the provided scalar
// after verifying it is usable, which means it must be nonzero.  An error with
// the kind ErrPrivateKeyIsZero is returned for the zero scalar since the
// associated public key would be the point at infinity.
func PrivKeyFromScalar(key *ModNScalar) (*PrivateKey, error) {
	if key.IsZero() {
		str := "zero is not a valid private key"
		return nil, makeError(ErrPrivateKeyIsZero, str)
	}
	return &PrivateKey{Key: *key}, nil
}

// maxKeyGenAttempts is the maximum number of candidate scalars read from an
// entropy source before key generation gives up.  The group order is so close
// to 2^256 that a working entropy source produces a valid candidate on the
// first read except with negligible probability, so reaching this limit means
// the source is broken.
const maxKeyGenAttempts = 64

// generatePrivateKey generates and returns a new private key that is suitable
// for use with secp256k1 using the provided reader as a source of entropy.
func generatePrivateKey(rand io.Reader) (*PrivateKey, error) {
	// The private key is only valid when it is in the range [1, N-1], where
	// N is the order of the curve, so sample candidates until one is in
	// range.  Each attempt reads exactly 32 bytes.
	var key PrivateKey
	var b32 [32]byte
	defer zeroArray32(&b32)
	for attempts := 0; attempts < maxKeyGenAttempts; attempts++ {
		if _, err := io.ReadFull(rand, b32[:]); err != nil {
			return nil, err
		}
		overflow := key.Key.SetBytes(&b32)
		if overflow == 0 && !key.Key.IsZero() {
			return &key, nil
		}
	}

	str := "exhausted candidate private keys (broken entropy source?)"
	return nil, makeError(ErrKeyGenExhausted, str)
}

// GeneratePrivateKey generates and returns a new cryptographically secure
// private key that is suitable for use with secp256k1.
func GeneratePrivateKey() (*PrivateKey, error) {
	return generatePrivateKey(cryptorand.Reader)
}

// GeneratePrivateKeyFromRand generates a private key that is suitable for use
// with secp256k1 using the provided reader as a source of entropy.
func GeneratePrivateKeyFromRand(rand io.Reader) (*PrivateKey, error) {
	return generatePrivateKey(rand)
}

// PubKey computes and returns the public key corresponding to this private
// key.
func (p *PrivateKey) PubKey() *PublicKey {
	var result JacobianPoint
	ScalarBaseMultConst(&p.Key, &result)
	result.ToAffine()
	return NewPublicKey(&result.X, &result.Y)
}

// IsZero returns whether or not the private key is the zero scalar and hence
// unusable for signing.
func (p *PrivateKey) IsZero() bool {
	return p.Key.IsZero()
}

// Zero manually clears the memory associated with the private key.  This can
// be used to explicitly clear key material from memory for enhanced security
// against memory scraping.
func (p *PrivateKey) Zero() {
	p.Key.Zero()
}

// ToECDSA returns the private key as a *ecdsa.PrivateKey from the Go standard
// library.
func (p *PrivateKey) ToECDSA() *ecdsa.PrivateKey {
	var privKeyECDSA ecdsa.PrivateKey

	keyBytes := p.Key.Bytes()
	privKeyECDSA.Curve = S256()
	privKeyECDSA.D = new(big.Int).SetBytes(keyBytes[:])
	privKeyECDSA.PublicKey = *p.PubKey().ToECDSA()
	zeroArray32(&keyBytes)

	return &privKeyECDSA
}

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p PrivateKey) Serialize() []byte {
	privKeyBytes := p.Key.Bytes()
	return privKeyBytes[:]
}

// zero32 is an array of 32 zero bytes used to clear the contents of private
// key material.
var zero32 = [32]byte{}

// zeroArray32 zeroes the provided 32-byte buffer.
func zeroArray32(b *[32]byte) {
	copy(b[:], zero32[:])
}
