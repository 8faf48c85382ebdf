// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"testing"
)

// TestNonceRFC6979 ensures that the deterministic nonces generated by
// NonceRFC6979 produce the expected nonces, including proper handling of the
// optional extra data and version arguments as well as the padding and
// truncation rules for the private key and hash.
func TestNonceRFC6979(t *testing.T) {
	tests := []struct {
		name       string
		key        string // hex encoded private key
		hash       string // hex encoded hash
		extraData  string // hex encoded extra data
		version    string // hex encoded version
		iterations uint32 // extra iterations to request
		expected   string // expected hex encoded nonce
	}{{
		name:     "key 0x1, sha256('Satoshi Nakamoto')",
		key:      "0000000000000000000000000000000000000000000000000000000000000001",
		hash:     "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		expected: "8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15",
	}, {
		name:     "key 0x1, sha256(blade runner quote)",
		key:      "0000000000000000000000000000000000000000000000000000000000000001",
		hash:     "7d1833f54854ac51659521afcd0ec6dca2ce2351429614bfa28a756b1b3c637f",
		expected: "38aa22d72376b4dbc472e06c3ba403ee0a394da63fc58d88686c611aba98d6b3",
	}, {
		name:     "key N-1, sha256('Satoshi Nakamoto')",
		key:      "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
		hash:     "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		expected: "33a19b60e25fb6f4435af53a3d42d493644827367e6453928554f43e49aa6f90",
	}, {
		name:     "sha256('Alan Turing')",
		key:      "f8b8af8ce3c7cca5e300d33939540c10d45ce001b8f252bfbc57ba0342904181",
		hash:     "4ba38d48a60f1b29e9eb726eaff08b2e83d8d81e031666fee50e85900d7dc1ef",
		expected: "525a82b70e67874398067543fd84c83d30c175fdc45fdeee082fe13b1d7cfdf1",
	}, {
		name:     "sha256(Feynman computer disease quote)",
		key:      "e91671c46231f833a6406ccbea0e3e392c76c167bac1cb013f6f1013980455c2",
		hash:     "1609a53bb33ef00e0cc1e784b436d7924956d87ec2b399574378312f07cba3e8",
		expected: "1f4b84c23a86a221d233f2521be018d9318639d5b8bbd6374a8a59232d16ad3d",
	}, {
		name:      "32-byte extra data changes the nonce",
		key:       "0000000000000000000000000000000000000000000000000000000000000001",
		hash:      "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		extraData: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		expected:  "3262ba5feaf7c959d799f4cb84bd85935de97b31d77309647a4232e07e2becdb",
	}, {
		name:      "16-byte version changes the nonce further",
		key:       "0000000000000000000000000000000000000000000000000000000000000001",
		hash:      "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		extraData: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		version:   "000102030405060708090a0b0c0d0e0f",
		expected:  "d3da0d65cdf951c27c7ca0d824d711da26722981f221d9bc7f2f2db5c9de0378",
	}, {
		name:     "version without extra data",
		key:      "0000000000000000000000000000000000000000000000000000000000000001",
		hash:     "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		version:  "000102030405060708090a0b0c0d0e0f",
		expected: "821058c208da95785170add17968a89319f725407c1092bf2883ebe9cd87d9f3",
	}, {
		name:      "extra data with invalid size is ignored",
		key:       "0000000000000000000000000000000000000000000000000000000000000001",
		hash:      "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		extraData: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e",
		expected:  "8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15",
	}, {
		name:      "version with invalid size is ignored",
		key:       "0000000000000000000000000000000000000000000000000000000000000001",
		hash:      "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		extraData: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		version:   "000102030405060708090a0b0c0d0e",
		expected:  "3262ba5feaf7c959d799f4cb84bd85935de97b31d77309647a4232e07e2becdb",
	}, {
		name:       "extra iteration 1",
		key:        "0000000000000000000000000000000000000000000000000000000000000001",
		hash:       "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		iterations: 1,
		expected:   "f15fb763a6bcbbacbde0a6a9ae2a02482bd92f3e75a50b357bd551ddd771045e",
	}, {
		name:       "extra iteration 2",
		key:        "0000000000000000000000000000000000000000000000000000000000000001",
		hash:       "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		iterations: 2,
		expected:   "872b0d837884b32fafbcc50e31a1d92ff5ec12c2db539d36b0a7e69c24ef9999",
	}, {
		name:     "short private key is zero padded",
		key:      "01",
		hash:     "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		expected: "8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15",
	}, {
		name: "long private key is truncated",
		key: "0000000000000000000000000000000000000000000000000000000000000001" +
			"ff",
		hash:     "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e",
		expected: "8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15",
	}, {
		name: "long hash is truncated",
		key:  "0000000000000000000000000000000000000000000000000000000000000001",
		hash: "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e" +
			"00",
		expected: "8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15",
	}, {
		name:     "short hash is zero padded",
		key:      "0000000000000000000000000000000000000000000000000000000000000001",
		hash:     "01",
		expected: "9a409dab05968059da3efb323dc67c96f234571b965fd39810ca0643fbb795ac",
	}, {
		name:      "Alan Turing key with extra data",
		key:       "f8b8af8ce3c7cca5e300d33939540c10d45ce001b8f252bfbc57ba0342904181",
		hash:      "4ba38d48a60f1b29e9eb726eaff08b2e83d8d81e031666fee50e85900d7dc1ef",
		extraData: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		expected:  "5229add911deddab27c772cfb3d2a4d7d359dcb3b9d941ca75bab9ed9811b850",
	}}

	for _, test := range tests {
		privKey := hexToBytes(test.key)
		hash := hexToBytes(test.hash)
		extraData := hexToBytes(test.extraData)
		version := hexToBytes(test.version)
		wantNonce := hexToBytes(test.expected)

		// Ensure deterministically generated nonce is the expected value.
		gotNonce := NonceRFC6979(privKey, hash, extraData, version,
			test.iterations)
		gotNonceBytes := gotNonce.Bytes()
		if !bytes.Equal(gotNonceBytes[:], wantNonce) {
			t.Errorf("%s: unexpected nonce -- got %x, want %x", test.name,
				gotNonceBytes, wantNonce)
			continue
		}
	}
}
