package wallet

import "errors"

// Sentinel errors returned by wallet construction. All are deterministic
// for a given input; retrying with the same input fails identically.
var (
	// ErrInvalidMnemonic indicates a phrase that fails BIP-39 word count,
	// wordlist, or checksum validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrDerivationFailed indicates an invalid intermediate scalar during
	// HD derivation. Probability on the order of 2^-128 per step.
	ErrDerivationFailed = errors.New("hd derivation failed")

	// ErrInvalidKey indicates derived bytes that do not form a valid
	// secp256k1 scalar (zero or at/above the curve order).
	ErrInvalidKey = errors.New("invalid signing key")

	// ErrEncodingFailed indicates a prefix the bech32 address encoding
	// rejects. A caller configuration bug, caught at construction.
	ErrEncodingFailed = errors.New("address encoding failed")
)
