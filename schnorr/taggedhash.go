// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schnorr

import (
	"crypto/sha256"
)

// References:
//   [BIP340]: Schnorr Signatures for secp256k1
//     https://github.com/bitcoin/bips/blob/master/bip-0340.mediawiki

const (
	// TagBIP0340Aux is the tag used by [BIP340] to hash auxiliary randomness.
	TagBIP0340Aux = "BIP0340/aux"

	// TagBIP0340Nonce is the tag used by [BIP340] to derive signing nonces.
	TagBIP0340Nonce = "BIP0340/nonce"

	// TagBIP0340Challenge is the tag used by [BIP340] to compute the signature
	// challenge.
	TagBIP0340Challenge = "BIP0340/challenge"
)

// precomputedTagHashes houses the SHA-256 digests of the [BIP340] tags so the
// two copies of the digest that prefix every tagged hash do not need to be
// recomputed for each call.
var precomputedTagHashes = map[string][32]byte{
	TagBIP0340Aux:       sha256.Sum256([]byte(TagBIP0340Aux)),
	TagBIP0340Nonce:     sha256.Sum256([]byte(TagBIP0340Nonce)),
	TagBIP0340Challenge: sha256.Sum256([]byte(TagBIP0340Challenge)),
}

// TaggedHash implements the tagged hash scheme described in [BIP340].  It
// binds a message to a specific context using a tag:
//
//	SHA-256(SHA-256(tag) || SHA-256(tag) || data...)
//
// The digests of the three [BIP340] tags are precomputed, so hashing with
// those tags only invokes SHA-256 once per call.
func TaggedHash(tag string, data ...[]byte) *[32]byte {
	tagHash, ok := precomputedTagHashes[tag]
	if !ok {
		tagHash = sha256.Sum256([]byte(tag))
	}

	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	for _, d := range data {
		h.Write(d)
	}

	var taggedHash [32]byte
	h.Sum(taggedHash[:0])
	return &taggedHash
}
