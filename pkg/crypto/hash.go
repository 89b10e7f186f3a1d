// Package crypto provides the signing and hashing primitives for Vero accounts.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"

	"github.com/vero-network/vero-sdk/pkg/types"
)

// Sha256 computes a SHA-256 hash of the input data.
func Sha256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// Hash160 computes RIPEMD-160 over SHA-256 of the input data.
// This is the digest chain used for account addresses.
func Hash160(data []byte) []byte {
	r := ripemd160.New()
	r.Write(Sha256(data))
	return r.Sum(nil)
}

// AddressFromPubKey derives an account address from a compressed public key.
// Address = RIPEMD160(SHA256(compressed_pubkey)).
func AddressFromPubKey(pubKey []byte) types.Address {
	var addr types.Address
	copy(addr[:], Hash160(pubKey))
	return addr
}
