package ecckd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyVersionIsPrivate(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		version KeyVersion
		private bool
	}{
		{BitcoinMainnetPrivate, true},
		{BitcoinMainnetPublic, false},
		{BitcoinTestnetPrivate, true},
		{BitcoinTestnetPublic, false},
		{BitcoinYprv, true},
		{BitcoinYpub, false},
		{BitcoinZprv, true},
		{BitcoinZpub, false},
		{KeyVersion{0xde, 0xad, 0xbe, 0xef}, false},
	}

	for _, test := range tests {
		assert.Equal(test.private, test.version.IsPrivate(), "%x", test.version)
	}
}

func TestKeyVersionToPublic(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		version KeyVersion
		want    KeyVersion
	}{
		{BitcoinMainnetPrivate, BitcoinMainnetPublic},
		{BitcoinTestnetPrivate, BitcoinTestnetPublic},
		{BitcoinYprv, BitcoinYpub},
		{BitcoinZprv, BitcoinZpub},
		{BitcoinMainnetPublic, BitcoinMainnetPublic},
		{BitcoinZpub, BitcoinZpub},
		{KeyVersion{0xde, 0xad, 0xbe, 0xef}, KeyVersion{0xde, 0xad, 0xbe, 0xef}},
	}

	for _, test := range tests {
		assert.Equal(test.want, test.version.ToPublic(), "%x", test.version)
	}
}

func TestVersionForPurpose(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		purpose uint32
		private bool
		want    KeyVersion
		err     error
	}{
		{44, true, BitcoinMainnetPrivate, nil},
		{44, false, BitcoinMainnetPublic, nil},
		{49, true, BitcoinYprv, nil},
		{49, false, BitcoinYpub, nil},
		{84, true, BitcoinZprv, nil},
		{84, false, BitcoinZpub, nil},
		{44 | HardenedBit, true, BitcoinMainnetPrivate, nil},
		{84 | HardenedBit, false, BitcoinZpub, nil},
		{0, true, KeyVersion{}, ErrInvalidKeyPurpose},
		{86, false, KeyVersion{}, ErrInvalidKeyPurpose},
	}

	for _, test := range tests {
		got, err := VersionForPurpose(test.purpose, test.private)
		if test.err != nil {
			assert.ErrorIs(err, test.err, "purpose %d", test.purpose)
			continue
		}
		assert.NoError(err, "purpose %d", test.purpose)
		assert.Equal(test.want, got, "purpose %d", test.purpose)
	}
}

// TestSLIP132Accounts derives the BIP49 and BIP84 account keys from the BIP84
// reference seed and checks the SLIP-0132 serializations against the wallet
// ecosystem values.
func TestSLIP132Accounts(t *testing.T) {
	assert := assert.New(t)

	seed := mustHex(t, "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aae"+
		"d6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce"+
		"9e38e4")
	master, err := FromBitcoinSeed(seed)
	assert.NoError(err)

	tests := []struct {
		purpose  uint32
		wantPriv string
		wantPub  string
	}{{
		purpose: 44,
		wantPriv: "xprv9xpXFhFpqdQK3TmytPBqXtGSwS3DLjojFhTGht8gwAAii8py5X6pxe" +
			"BnQ6ehJiyJ6nDjWGJfZ95WxByFXVkDxHXrqu53WCRGypk2ttuqncb",
		wantPub: "xpub6BosfCnifzxcFwrSzQiqu2DBVTshkCXacvNsWGYJVVhhawA7d4R5WSW" +
			"GFNbi8Aw6ZRc1brxMyWMzG3DSSSSoekkudhUd9yLb6qx39T9nMdj",
	}, {
		purpose: 49,
		wantPriv: "yprvAHwhK6RbpuS3dgCYHM5jc2ZvEKd7Bi61u9FVhYMpgMSuZS613T1xxQ" +
			"eKTffhrHY79hZ5PsskBjcc6C2V7DrnsMsNaGDaWev3GLRQRgV7hxF",
		wantPub: "ypub6Ww3ibxVfGzLrAH1PNcjyAWenMTbbAosGNB6VvmSEgytSER9azLDWCx" +
			"oJwW7Ke7icmizBMXrzBx9979FfaHxHcrArf3zbeJJJUZPf663zsP",
	}, {
		purpose: 84,
		wantPriv: "zprvAdG4iTXWBoARxkkzNpNh8r6Qag3irQB8PzEMkAFeTRXxHpbF9z4QgE" +
			"vBRmfvqWvGp42t42nvgGpNgYSJA9iefm1yYNZKEm7z6qUWCroSQnE",
		wantPub: "zpub6rFR7y4Q2AijBEqTUquhVz398htDFrtymD9xYYfG1m4wAcvPhXNfE3E" +
			"fH1r1ADqtfSdVCToUG868RvUUkgDKf31mGDtKsAYz2oz2AGutZYs",
	}}

	for _, test := range tests {
		acct, err := master.Derive([]uint32{test.purpose | HardenedBit,
			HardenedBit, HardenedBit})
		assert.NoError(err, "purpose %d", test.purpose)

		ver, err := VersionForPurpose(test.purpose, true)
		assert.NoError(err, "purpose %d", test.purpose)
		acct.Version = ver
		assert.Equal(test.wantPriv, acct.String(), "purpose %d", test.purpose)

		pub, err := acct.Public()
		assert.NoError(err, "purpose %d", test.purpose)
		assert.Equal(test.wantPub, pub.String(), "purpose %d", test.purpose)

		// SLIP-0132 serializations must parse back with the version intact.
		decoded, err := FromString(test.wantPriv)
		assert.NoError(err, "purpose %d", test.purpose)
		assert.True(decoded.IsPrivate(), "purpose %d", test.purpose)
		assert.Equal(ver, decoded.Version, "purpose %d", test.purpose)
		assert.Equal(test.wantPriv, decoded.String(), "purpose %d", test.purpose)
	}
}
