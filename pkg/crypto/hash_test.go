package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSha256(t *testing.T) {
	// FIPS 180-2 vector: SHA-256("abc")
	got := Sha256([]byte("abc"))
	want, _ := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if !bytes.Equal(got, want) {
		t.Errorf("Sha256(\"abc\") = %x, want %x", got, want)
	}
}

func TestHash160(t *testing.T) {
	// Compressed pubkey at m/44'/118'/0'/0/0 for the BIP-39 vector
	// mnemonic "abandon" x11 + "about".
	pub, _ := hex.DecodeString("024f4e2ad99c34d60b9ba6283c9431a8418af8673212961f97a77b6377fcd05b62")

	got := Hash160(pub)
	want, _ := hex.DecodeString("28ff5c6d57d8cfd492b6fb42614536ed648e01fd")
	if !bytes.Equal(got, want) {
		t.Errorf("Hash160() = %x, want %x", got, want)
	}
	if len(got) != 20 {
		t.Errorf("Hash160() length = %d, want 20", len(got))
	}
}

func TestAddressFromPubKey(t *testing.T) {
	pub, _ := hex.DecodeString("024f4e2ad99c34d60b9ba6283c9431a8418af8673212961f97a77b6377fcd05b62")

	addr := AddressFromPubKey(pub)
	if addr.Hex() != "28ff5c6d57d8cfd492b6fb42614536ed648e01fd" {
		t.Errorf("AddressFromPubKey() = %s", addr.Hex())
	}
}

func TestAddressFromPubKey_Deterministic(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() error: %v", err)
	}
	pub := key.PublicKey()

	a1 := AddressFromPubKey(pub)
	a2 := AddressFromPubKey(pub)
	if a1 != a2 {
		t.Error("same pubkey should produce same address")
	}
}
