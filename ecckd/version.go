package ecckd

// KeyVersion is the 4 byte network and key type prefix of a serialized
// extended key.  It determines both the network the key belongs to and
// whether the key data holds a private or a public key.
type KeyVersion [4]byte

var (
	BitcoinMainnetPublic  = KeyVersion{0x04, 0x88, 0xb2, 0x1e}
	BitcoinMainnetPrivate = KeyVersion{0x04, 0x88, 0xad, 0xe4}
	BitcoinTestnetPublic  = KeyVersion{0x04, 0x35, 0x87, 0xcf}
	BitcoinTestnetPrivate = KeyVersion{0x04, 0x35, 0x83, 0x94}

	// SLIP-0132 registered versions used by segwit capable wallets to
	// signal the intended script type of the derived addresses.
	BitcoinYpub = KeyVersion{0x04, 0x9d, 0x7c, 0xb2} // P2WPKH nested in P2SH (BIP49)
	BitcoinYprv = KeyVersion{0x04, 0x9d, 0x78, 0x78}
	BitcoinZpub = KeyVersion{0x04, 0xb2, 0x47, 0x46} // native P2WPKH (BIP84)
	BitcoinZprv = KeyVersion{0x04, 0xb2, 0x43, 0x0c}
)

// IsPrivate returns true if the version is for a private key
func (kv KeyVersion) IsPrivate() bool {
	switch kv {
	case BitcoinMainnetPrivate, BitcoinTestnetPrivate, BitcoinYprv, BitcoinZprv:
		return true
	}
	return false
}

func (kv KeyVersion) ToPublic() KeyVersion {
	switch kv {
	case BitcoinMainnetPrivate:
		return BitcoinMainnetPublic
	case BitcoinTestnetPrivate:
		return BitcoinTestnetPublic
	case BitcoinYprv:
		return BitcoinYpub
	case BitcoinZprv:
		return BitcoinZpub
	}
	return kv
}

// VersionForPurpose returns the SLIP-0132 version that wallets expect to pair
// with the given BIP43 purpose index.  The purpose may be given with or
// without the hardened bit set, so both 84 and 84|HardenedBit select the
// native segwit versions.  ErrInvalidKeyPurpose is returned for purposes
// without a registered version.
func VersionForPurpose(purpose uint32, private bool) (KeyVersion, error) {
	switch purpose &^ HardenedBit {
	case 44:
		if private {
			return BitcoinMainnetPrivate, nil
		}
		return BitcoinMainnetPublic, nil
	case 49:
		if private {
			return BitcoinYprv, nil
		}
		return BitcoinYpub, nil
	case 84:
		if private {
			return BitcoinZprv, nil
		}
		return BitcoinZpub, nil
	}
	return KeyVersion{}, ErrInvalidKeyPurpose
}
