package ecckd

import (
	"testing"

	"github.com/ModChain/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/coinkit/secp256k1"
	"github.com/stretchr/testify/assert"
)

func TestWIF(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name       string
		key        string // hex encoded private key
		net        Network
		compressed bool
		wif        string
	}{{
		name:       "mainnet uncompressed",
		key:        "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
		net:        MainNet,
		compressed: false,
		wif:        "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ",
	}, {
		name:       "mainnet compressed",
		key:        "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
		net:        MainNet,
		compressed: true,
		wif:        "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617",
	}, {
		name:       "testnet uncompressed",
		key:        "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
		net:        TestNet,
		compressed: false,
		wif:        "91gGn1HgSap6CbU12F6z3pJri26xzp7Ay1VW6NHCoEayNXwRpu2",
	}, {
		name:       "testnet compressed",
		key:        "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
		net:        TestNet,
		compressed: true,
		wif:        "cMzLdeGd5vEqxB8B6VFQoRopQ3sLAAvEzDAoQgvX54xwofSWj1fx",
	}, {
		name:       "second key mainnet compressed",
		key:        "6bd69fb16bdd9d3afa47144c2c02a0bbc79b0b6955fa807a456ac19c18d4bbf5",
		net:        MainNet,
		compressed: true,
		wif:        "KzqLMozoFXgSE3ENcYPHaYrGknMs5LGgPW77zjLyH9ib6zurN941",
	}, {
		name:       "second key testnet uncompressed",
		key:        "6bd69fb16bdd9d3afa47144c2c02a0bbc79b0b6955fa807a456ac19c18d4bbf5",
		net:        TestNet,
		compressed: false,
		wif:        "92QQkSNfu1zUjFS4rP2E8Sue1uiJAEuRM4TR3JQDdzQUGefHQK5",
	}}

	for _, test := range tests {
		priv := secp256k1.PrivKeyFromBytes(mustHex(t, test.key))
		assert.Equal(test.wif, EncodeWIF(priv, test.net, test.compressed),
			test.name)

		decoded, net, compressed, err := DecodeWIF(test.wif)
		assert.NoError(err, test.name)
		assert.Equal(priv.Serialize(), decoded.Serialize(), test.name)
		assert.Equal(test.net, net, test.name)
		assert.Equal(test.compressed, compressed, test.name)
	}
}

func TestDecodeWIFErrors(t *testing.T) {
	assert := assert.New(t)

	// encode appends a valid checksum and base58 encodes the payload.
	encode := func(payload []byte) string {
		full := append([]byte(nil), payload...)
		full = append(full, chainhash.DoubleHashB(payload)[:4]...)
		return base58.Bitcoin.Encode(full)
	}
	keyBytes := mustHex(t, "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be"+
		"89827e19d72aa1d")

	// Characters outside the base58 alphabet.
	_, _, _, err := DecodeWIF("0OIl")
	assert.Error(err)

	// Payload with the wrong length.
	short := append([]byte{byte(MainNet)}, keyBytes[:31]...)
	_, _, _, err = DecodeWIF(encode(short))
	assert.ErrorIs(err, ErrMalformedWIF)

	// Corrupted payload fails the checksum.
	valid := append([]byte{byte(MainNet)}, keyBytes...)
	full, err := base58.Bitcoin.Decode(encode(valid))
	assert.NoError(err)
	full[1] ^= 0x01
	_, _, _, err = DecodeWIF(base58.Bitcoin.Encode(full))
	assert.ErrorIs(err, ErrBadChecksum)

	// Version byte that is neither mainnet nor testnet.
	unknown := append([]byte{0x42}, keyBytes...)
	_, _, _, err = DecodeWIF(encode(unknown))
	assert.ErrorIs(err, ErrUnknownNetwork)

	// A 38 byte payload must end in the 0x01 compression marker.
	badMarker := append([]byte{byte(MainNet)}, keyBytes...)
	badMarker = append(badMarker, 0x02)
	_, _, _, err = DecodeWIF(encode(badMarker))
	assert.ErrorIs(err, ErrMalformedWIF)

	// Zero and out of range keys are rejected.
	zero := append([]byte{byte(MainNet)}, make([]byte, 32)...)
	_, _, _, err = DecodeWIF(encode(zero))
	assert.ErrorIs(err, ErrInvalidKey)

	over := append([]byte{byte(MainNet)}, mustHex(t, "fffffffffffffffffffffff"+
		"ffffffffebaaedce6af48a03bbfd25e8cd0364141")...)
	_, _, _, err = DecodeWIF(encode(over))
	assert.ErrorIs(err, ErrInvalidKey)
}
