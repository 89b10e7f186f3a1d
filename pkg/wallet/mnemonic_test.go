package wallet

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"
)

func TestGenerateMnemonic(t *testing.T) {
	mnemonic, err := GenerateMnemonic(rand.Reader, EntropyBits24)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	words := strings.Fields(mnemonic)
	if len(words) != 24 {
		t.Errorf("word count = %d, want 24", len(words))
	}
}

func TestGenerateMnemonic_TwelveWords(t *testing.T) {
	mnemonic, err := GenerateMnemonic(rand.Reader, EntropyBits12)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	words := strings.Fields(mnemonic)
	if len(words) != 12 {
		t.Errorf("word count = %d, want 12", len(words))
	}
}

func TestGenerateMnemonic_Unique(t *testing.T) {
	m1, err := GenerateMnemonic(rand.Reader, EntropyBits24)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}
	m2, err := GenerateMnemonic(rand.Reader, EntropyBits24)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if m1 == m2 {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestGenerateMnemonic_Valid(t *testing.T) {
	mnemonic, err := GenerateMnemonic(rand.Reader, EntropyBits24)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if !ValidateMnemonic(mnemonic) {
		t.Error("generated mnemonic should validate")
	}
}

func TestGenerateMnemonic_InjectedEntropy(t *testing.T) {
	// All-zero 128-bit entropy encodes to the standard BIP-39 vector.
	zero := bytes.NewReader(make([]byte, 16))

	mnemonic, err := GenerateMnemonic(zero, EntropyBits12)
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if mnemonic != want {
		t.Errorf("mnemonic = %q, want %q", mnemonic, want)
	}
}

func TestGenerateMnemonic_InvalidBits(t *testing.T) {
	for _, bits := range []int{0, 64, 160, 512} {
		if _, err := GenerateMnemonic(rand.Reader, bits); err == nil {
			t.Errorf("GenerateMnemonic(%d bits) should fail", bits)
		}
	}
}

func TestGenerateMnemonic_ShortEntropySource(t *testing.T) {
	short := bytes.NewReader(make([]byte, 4))
	if _, err := GenerateMnemonic(short, EntropyBits12); err == nil {
		t.Error("should fail when the entropy source runs dry")
	}
}

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{
			name:     "valid 24-word BIP-39",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			valid:    true,
		},
		{
			name:     "valid 12-word BIP-39",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			valid:    true,
		},
		{
			name:     "word outside the wordlist",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon notaword",
			valid:    false,
		},
		{
			name:     "wrong checksum word",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			valid:    false,
		},
		{
			name:     "wrong word count",
			mnemonic: "abandon abandon abandon",
			valid:    false,
		},
		{
			name:     "empty",
			mnemonic: "",
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMnemonic(tt.mnemonic); got != tt.valid {
				t.Errorf("ValidateMnemonic() = %v, want %v", got, tt.valid)
			}
		})
	}
}
