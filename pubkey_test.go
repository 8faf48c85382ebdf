// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"errors"
	"testing"
)

// TestParsePubKey ensures that public keys are properly parsed according to
// the ANSI X9.62-1998 formats, including rejection of all malformed variants.
func TestParsePubKey(t *testing.T) {
	tests := []struct {
		name  string // test description
		key   string // hex encoded public key
		err   error  // expected error kind
		wantX string // hex encoded expected x coordinate
		wantY string // hex encoded expected y coordinate
	}{{
		name: "uncompressed with even y",
		key: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		wantX: "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		wantY: "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
	}, {
		name: "uncompressed with odd y",
		key: "04fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556" +
			"ae12777aacfbb620f3be96017f45c560de80f0f6518fe4a03c870c36b075f297",
		wantX: "fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556",
		wantY: "ae12777aacfbb620f3be96017f45c560de80f0f6518fe4a03c870c36b075f297",
	}, {
		name:  "compressed with even y",
		key:   "022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4",
		wantX: "2f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4",
		wantY: "d8ac222636e5e3d6d4dba9dda6c9c426f788271bab0d6840dca87d3aa6ac62d6",
	}, {
		name:  "compressed with odd y",
		key:   "03fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556",
		wantX: "fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556",
		wantY: "ae12777aacfbb620f3be96017f45c560de80f0f6518fe4a03c870c36b075f297",
	}, {
		name: "hybrid with even y",
		key: "0679be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		wantX: "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		wantY: "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
	}, {
		name: "hybrid with odd y",
		key: "07fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556" +
			"ae12777aacfbb620f3be96017f45c560de80f0f6518fe4a03c870c36b075f297",
		wantX: "fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556",
		wantY: "ae12777aacfbb620f3be96017f45c560de80f0f6518fe4a03c870c36b075f297",
	}, {
		name: "empty",
		key:  "",
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "wrong length (32 bytes)",
		key:  "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "wrong length (64 bytes, no format byte)",
		key: "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		err: ErrPubKeyInvalidLen,
	}, {
		name: "unsupported format byte for uncompressed length",
		key: "0579be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		err: ErrPubKeyInvalidFormat,
	}, {
		name: "unsupported format byte for compressed length",
		key:  "012f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4",
		err:  ErrPubKeyInvalidFormat,
	}, {
		name: "uncompressed x >= field prime",
		key: "04fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		err: ErrPubKeyXTooBig,
	}, {
		name: "uncompressed y >= field prime",
		key: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		err: ErrPubKeyYTooBig,
	}, {
		name: "uncompressed not on curve",
		key: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b9",
		err: ErrPubKeyNotOnCurve,
	}, {
		name: "hybrid with mismatched oddness",
		key: "0779be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		err: ErrPubKeyMismatchedOddness,
	}, {
		name: "compressed x >= field prime",
		key:  "02fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		err:  ErrPubKeyXTooBig,
	}, {
		name: "compressed x not on curve",
		key:  "020000000000000000000000000000000000000000000000000000000000000005",
		err:  ErrPubKeyNotOnCurve,
	}}

	for _, test := range tests {
		pubKey, err := ParsePubKey(hexToBytes(test.key))
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched error -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if test.err != nil {
			continue
		}

		wantX := setHex(test.wantX)
		wantY := setHex(test.wantY)
		if !pubKey.x.Equals(wantX) {
			t.Errorf("%s: mismatched x -- got %v, want %v", test.name,
				pubKey.x, wantX)
			continue
		}
		if !pubKey.y.Equals(wantY) {
			t.Errorf("%s: mismatched y -- got %v, want %v", test.name,
				pubKey.y, wantY)
		}
	}
}

// TestPublicKeySerialize ensures that serializing public keys in both the
// compressed and uncompressed formats and parsing those serializations back
// round trips properly for both even and odd y coordinates.
func TestPublicKeySerialize(t *testing.T) {
	tests := []struct {
		name         string // test description
		x, y         string // hex encoded coordinates
		compressed   string // hex encoded compressed serialization
		uncompressed string // hex encoded uncompressed serialization
	}{{
		name:       "even y",
		x:          "2f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4",
		y:          "d8ac222636e5e3d6d4dba9dda6c9c426f788271bab0d6840dca87d3aa6ac62d6",
		compressed: "022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4",
		uncompressed: "042f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4" +
			"d8ac222636e5e3d6d4dba9dda6c9c426f788271bab0d6840dca87d3aa6ac62d6",
	}, {
		name:       "odd y",
		x:          "fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556",
		y:          "ae12777aacfbb620f3be96017f45c560de80f0f6518fe4a03c870c36b075f297",
		compressed: "03fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556",
		uncompressed: "04fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556" +
			"ae12777aacfbb620f3be96017f45c560de80f0f6518fe4a03c870c36b075f297",
	}}

	for _, test := range tests {
		pubKey := NewPublicKey(setHex(test.x), setHex(test.y))

		compressed := pubKey.SerializeCompressed()
		if !bytes.Equal(compressed, hexToBytes(test.compressed)) {
			t.Errorf("%s: mismatched compressed serialization -- got %x, "+
				"want %s", test.name, compressed, test.compressed)
			continue
		}

		uncompressed := pubKey.SerializeUncompressed()
		if !bytes.Equal(uncompressed, hexToBytes(test.uncompressed)) {
			t.Errorf("%s: mismatched uncompressed serialization -- got %x, "+
				"want %s", test.name, uncompressed, test.uncompressed)
			continue
		}

		// Parsing either serialization must produce the original key again.
		fromCompressed, err := ParsePubKey(compressed)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if !fromCompressed.IsEqual(pubKey) {
			t.Errorf("%s: compressed round trip changed the key", test.name)
			continue
		}
		fromUncompressed, err := ParsePubKey(uncompressed)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if !fromUncompressed.IsEqual(pubKey) {
			t.Errorf("%s: uncompressed round trip changed the key", test.name)
		}
	}
}

// TestPublicKeyIsEqual ensures that equality testing between two public keys
// works as expected.
func TestPublicKeyIsEqual(t *testing.T) {
	pubKey1, err := ParsePubKey(hexToBytes("022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pubKey2, err := ParsePubKey(hexToBytes("03fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !pubKey1.IsEqual(pubKey1) {
		t.Fatal("public key is not equal to itself")
	}
	if pubKey1.IsEqual(pubKey2) {
		t.Fatal("distinct public keys compare as equal")
	}

	copied := NewPublicKey(&pubKey1.x, &pubKey1.y)
	if !pubKey1.IsEqual(copied) {
		t.Fatal("public key is not equal to a copy of itself")
	}
}

// TestPublicKeyAsJacobian ensures converting a public key to a Jacobian point
// works as expected.
func TestPublicKeyAsJacobian(t *testing.T) {
	pubKey, err := ParsePubKey(hexToBytes("022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var point JacobianPoint
	pubKey.AsJacobian(&point)
	if !point.X.Equals(&pubKey.x) || !point.Y.Equals(&pubKey.y) {
		t.Fatal("mismatched coordinates")
	}
	if !point.Z.IsOne() {
		t.Fatalf("z is not one -- got %v", point.Z)
	}
}

// TestPublicKeyIsOnCurve ensures public key curve membership is reported
// properly, since NewPublicKey intentionally accepts arbitrary coordinates.
func TestPublicKeyIsOnCurve(t *testing.T) {
	valid := NewPublicKey(
		setHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		setHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"))
	if !valid.IsOnCurve() {
		t.Fatal("base point reported as not on the curve")
	}

	invalid := NewPublicKey(setHex("1"), setHex("1"))
	if invalid.IsOnCurve() {
		t.Fatal("(1, 1) reported as on the curve")
	}
}

// TestPublicKeyToECDSA ensures the conversion to a stdlib ecdsa.PublicKey
// carries the coordinates over intact.
func TestPublicKeyToECDSA(t *testing.T) {
	pubKey, err := ParsePubKey(hexToBytes("022f8bde4d1a07209355b4a7250a5c5128e88b84bddc619ab7cba8d569b240efe4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ecdsaPubKey := pubKey.ToECDSA()
	if ecdsaPubKey.Curve != S256() {
		t.Fatal("converted key is not on the secp256k1 curve")
	}
	if ecdsaPubKey.X.Cmp(pubKey.X()) != 0 || ecdsaPubKey.Y.Cmp(pubKey.Y()) != 0 {
		t.Fatal("mismatched public key coordinates")
	}
}
