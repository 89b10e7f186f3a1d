package wallet

import (
	"crypto/rand"
	"fmt"

	"github.com/vero-network/vero-sdk/pkg/crypto"
	"github.com/vero-network/vero-sdk/pkg/types"
)

// Wallet holds a derived secp256k1 signing key and the bech32 prefix its
// address is encoded under. It is immutable after construction: the
// address, public key, and signatures are pure functions of its state, so
// concurrent read use is safe without locking.
type Wallet struct {
	key    *crypto.PrivateKey
	prefix string
}

// FromMnemonic derives a wallet from a BIP-39 mnemonic at the account path
// m/44'/118'/0'/0/0 with an empty passphrase. The prefix is validated here
// so Address never fails afterwards.
func FromMnemonic(mnemonic, prefix string) (*Wallet, error) {
	if err := types.ValidatePrefix(prefix); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEncodingFailed, err)
	}
	seed, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}
	master, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	account, err := master.DeriveAccount(DefaultAccount, ChangeExternal, DefaultIndex)
	if err != nil {
		return nil, err
	}
	key, err := account.Signer()
	if err != nil {
		return nil, err
	}
	return &Wallet{key: key, prefix: prefix}, nil
}

// Generate creates a wallet from a fresh 24-word mnemonic drawn from the
// system CSPRNG. The phrase is returned alongside the wallet so the caller
// can display it for backup; it is not retained here.
func Generate(prefix string) (*Wallet, string, error) {
	mnemonic, err := GenerateMnemonic(rand.Reader, EntropyBits24)
	if err != nil {
		return nil, "", err
	}
	w, err := FromMnemonic(mnemonic, prefix)
	if err != nil {
		return nil, "", err
	}
	return w, mnemonic, nil
}

// Address returns the bech32 account address,
// bech32(prefix, ripemd160(sha256(pubkey))). Recomputed on each call.
func (w *Wallet) Address() string {
	addr := crypto.AddressFromPubKey(w.PublicKey())
	// The prefix was validated at construction; encoding a fixed-size hash
	// under it cannot fail.
	s, err := addr.Encode(w.prefix)
	if err != nil {
		return w.prefix + ":" + addr.Hex()
	}
	return s
}

// PublicKey returns the SEC1-compressed 33-byte public key.
func (w *Wallet) PublicKey() []byte {
	return w.key.PublicKey()
}

// Prefix returns the bech32 prefix the wallet encodes its address under.
func (w *Wallet) Prefix() string {
	return w.prefix
}

// Sign produces a deterministic ECDSA signature (RFC 6979) over the
// SHA-256 hash of msg, in the 64-byte compact r || s encoding. Identical
// (key, message) pairs always yield identical signatures.
func (w *Wallet) Sign(msg []byte) ([]byte, error) {
	return w.key.Sign(crypto.Sha256(msg))
}

// Zero securely zeroes the wallet's key material. The wallet must not be
// used afterwards.
func (w *Wallet) Zero() {
	w.key.Zero()
}
