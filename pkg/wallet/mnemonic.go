// Package wallet derives Vero account keys and addresses from BIP-39
// mnemonics and signs transaction bytes with them.
package wallet

import (
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
)

// Supported entropy sizes for mnemonic generation.
const (
	// EntropyBits12 produces a 12-word mnemonic.
	EntropyBits12 = 128

	// EntropyBits24 produces a 24-word mnemonic.
	EntropyBits24 = 256
)

// GenerateMnemonic creates a new BIP-39 mnemonic from entropy drawn off
// the given reader. The reader must be a cryptographically secure source
// in production; tests may pass a deterministic one. bits must be 128
// (12 words) or 256 (24 words).
func GenerateMnemonic(rand io.Reader, bits int) (string, error) {
	if bits != EntropyBits12 && bits != EntropyBits24 {
		return "", fmt.Errorf("entropy must be %d or %d bits, got %d", EntropyBits12, EntropyBits24, bits)
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(rand, entropy); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
