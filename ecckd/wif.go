package ecckd

import (
	"math/big"

	"github.com/ModChain/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/coinkit/secp256k1"
)

// Network selects the version byte that prefixes a WIF encoded private key.
type Network byte

const (
	// MainNet is the main Bitcoin network.
	MainNet Network = 0x80

	// TestNet covers the Bitcoin test and regression networks.
	TestNet Network = 0xef
)

// EncodeWIF returns the private key serialized in wallet import format.  The
// compressed flag records whether the corresponding public key should be
// serialized in compressed form when deriving an address from the key.
func EncodeWIF(priv *secp256k1.PrivateKey, net Network, compressed bool) string {
	// version (1) || ser256(d) || [0x01 if compressed] || checksum (4)
	buf := make([]byte, 0, 38+4)
	buf = append(buf, byte(net))
	buf = append(buf, priv.Serialize()...)
	if compressed {
		buf = append(buf, 0x01)
	}
	checkSum := chainhash.DoubleHashB(buf)[:4]
	buf = append(buf, checkSum...)
	return base58.Bitcoin.Encode(buf)
}

// DecodeWIF decodes a wallet import format string into the private key it
// wraps along with the network it is destined for and whether the matching
// public key should be treated as compressed.
func DecodeWIF(wif string) (*secp256k1.PrivateKey, Network, bool, error) {
	bin, err := base58.Bitcoin.Decode(wif)
	if err != nil {
		return nil, 0, false, err
	}
	// version (1) || key (32) || possible compression marker (1) || checksum (4)
	if len(bin) != 37 && len(bin) != 38 {
		return nil, 0, false, ErrMalformedWIF
	}

	payload := bin[:len(bin)-4]
	checkSum := bin[len(bin)-4:]
	if string(checkSum) != string(chainhash.DoubleHashB(payload)[:4]) {
		return nil, 0, false, ErrBadChecksum
	}

	net := Network(payload[0])
	switch net {
	case MainNet, TestNet:
	default:
		return nil, 0, false, ErrUnknownNetwork
	}

	compressed := len(bin) == 38
	if compressed && payload[33] != 0x01 {
		return nil, 0, false, ErrMalformedWIF
	}

	// Ensure the key is within the range of the order of the secp256k1
	// curve and not 0.
	keyData := payload[1:33]
	keyNum := new(big.Int).SetBytes(keyData)
	if keyNum.Cmp(secp256k1.S256().N) >= 0 || keyNum.Sign() == 0 {
		return nil, 0, false, ErrInvalidKey
	}

	return secp256k1.PrivKeyFromBytes(keyData), net, compressed, nil
}
