package ecckd

import (
	"crypto/sha256"
	"math/big"

	"github.com/coinkit/secp256k1"
	"golang.org/x/crypto/ripemd160"
)

// ripemd160 + sha256
func rmd160sha256(in []byte) []byte {
	a := sha256.Sum256(in)
	rmd := ripemd160.New()
	rmd.Write(a[:])
	return rmd.Sum(nil)
}

func asFV(v *big.Int) *secp256k1.FieldVal {
	fv := new(secp256k1.FieldVal)
	fv.SetByteSlice(v.Bytes())
	return fv
}

// paddedAppend appends src to dst, prefixing it with enough zero bytes that
// exactly size bytes are added when src is shorter than size.
func paddedAppend(size int, dst, src []byte) []byte {
	for i := 0; i < size-len(src); i++ {
		dst = append(dst, 0)
	}
	return append(dst, src...)
}
