// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package schnorr provides BIP-340 Schnorr signing and verification via
secp256k1.

This package provides data structures and functions necessary to produce and
verify deterministic canonical Schnorr signatures for the scheme described in
BIP-340, which is the variant deployed by Bitcoin taproot.  Public keys use
the 32-byte x-only serialization, signatures are the 64-byte concatenation of
the R point x coordinate and the s scalar, and nonces are derived with the
tagged hash scheme the proposal specifies.  The auxiliary randomness defaults
to all zeros so that signatures for a given key and message are repeatable;
callers that prefer extra side channel hardening over determinism can mix in
fresh randomness per signature with the WithAuxRandomness option.

Errors returned by this package are of type schnorr.Error and fully support
the standard library errors.Is and errors.As functions.  This allows the
caller to programmatically determine the specific error by examining the
ErrorKind field of the type asserted schnorr.Error while still providing rich
error messages with contextual information.
*/
package schnorr
