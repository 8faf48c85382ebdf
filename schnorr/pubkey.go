// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"fmt"

	"github.com/coinkit/secp256k1"
)

// PubKeyBytesLen is the length of the x-only public key serialization used by
// [BIP340] signatures.
const PubKeyBytesLen = 32

// ParsePubKey parses a public key for a [BIP340] signature, returning the key
// if it is valid, or an error otherwise.  The bytes are interpreted as the
// 32-byte big-endian x coordinate of a curve point whose y coordinate is even
// per the lift_x convention of [BIP340].
func ParsePubKey(pubKeyBytes []byte) (*secp256k1.PublicKey, error) {
	if len(pubKeyBytes) != PubKeyBytesLen {
		return nil, fmt.Errorf("malformed public key: invalid length: %d != %d",
			len(pubKeyBytes), PubKeyBytesLen)
	}

	// Prepend the even y coordinate format byte so the existing compressed
	// public key parsing can lift the x coordinate onto the curve.
	var keyCompressed [secp256k1.PubKeyBytesLenCompressed]byte
	keyCompressed[0] = secp256k1.PubKeyFormatCompressedEven
	copy(keyCompressed[1:], pubKeyBytes)
	return secp256k1.ParsePubKey(keyCompressed[:])
}

// SerializePubKey serializes a public key as specified by [BIP340].  Public
// keys in this format are 32 bytes in length and implicitly have an even y
// coordinate.
func SerializePubKey(pub *secp256k1.PublicKey) []byte {
	pBytes := pub.SerializeCompressed()
	return pBytes[1:]
}
