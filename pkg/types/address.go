// Package types defines the account address type shared across the SDK.
package types

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// AddressSize is the length of an account address in bytes.
const AddressSize = 20

// Address represents a 160-bit account address (hash of the public key).
type Address [AddressSize]byte

// IsZero returns true if the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Hex returns the raw hex-encoded address without prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// Bytes returns a copy of the address as a byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// Encode returns the bech32 string form of the address under the given
// human-readable prefix (e.g. "ve" yields "ve1...").
func (a Address) Encode(prefix string) (string, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return "", err
	}
	conv, err := bech32.ConvertBits(a[:], 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert bits: %w", err)
	}
	s, err := bech32.Encode(prefix, conv)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return s, nil
}

// DecodeAddress parses a bech32 account address string, returning the
// human-readable prefix and the 20-byte address.
func DecodeAddress(s string) (string, Address, error) {
	hrp, conv, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return "", Address{}, fmt.Errorf("bech32 decode: %w", err)
	}
	if version != bech32.Version0 {
		return "", Address{}, fmt.Errorf("not a bech32 (classic) address")
	}
	data, err := bech32.ConvertBits(conv, 5, 8, false)
	if err != nil {
		return "", Address{}, fmt.Errorf("convert bits: %w", err)
	}
	if len(data) != AddressSize {
		return "", Address{}, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(data))
	}
	var a Address
	copy(a[:], data)
	return hrp, a, nil
}

// ValidatePrefix checks that a string is usable as a bech32 human-readable
// prefix: non-empty, ASCII in the [33,126] range, and lowercase (bech32
// forbids mixed case, and account addresses are emitted lowercase).
func ValidatePrefix(prefix string) error {
	if len(prefix) == 0 {
		return fmt.Errorf("empty prefix")
	}
	for _, c := range prefix {
		if c < 33 || c > 126 {
			return fmt.Errorf("invalid prefix character %q", c)
		}
		if c >= 'A' && c <= 'Z' {
			return fmt.Errorf("prefix must be lowercase, got %q", c)
		}
	}
	return nil
}

// HexToAddress converts a raw 40-character hex string to an Address.
func HexToAddress(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("address must be %d bytes, got %d", AddressSize, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
