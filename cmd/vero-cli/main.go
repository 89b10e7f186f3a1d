// vero-cli is a developer utility for Vero account keys: it generates and
// recovers wallets, prints addresses, and signs or verifies raw bytes.
// Transaction assembly and broadcasting live in the generated SDK layers.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/vero-network/vero-sdk/internal/log"
	"github.com/vero-network/vero-sdk/pkg/crypto"
	"github.com/vero-network/vero-sdk/pkg/types"
	"github.com/vero-network/vero-sdk/pkg/wallet"
)

// DefaultPrefix is the bech32 prefix for Vero account addresses.
const DefaultPrefix = "ve"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	prefix := DefaultPrefix
	logLevel := "warn"
	jsonLog := false

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--prefix" && len(args) > 1:
			prefix = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--prefix="):
			prefix = args[0][len("--prefix="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-log":
			jsonLog = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if err := log.Init(logLevel, jsonLog, ""); err != nil {
		fatal("init logging: %v", err)
	}

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "generate":
		cmdGenerate(cmdArgs, prefix)
	case "recover":
		cmdRecover(cmdArgs, prefix)
	case "sign":
		cmdSign(cmdArgs, prefix)
	case "verify":
		cmdVerify(cmdArgs)
	case "decode":
		cmdDecode(cmdArgs)
	case "help", "-h", "--help":
		usage()
	default:
		fatal("Unknown command: %s (run 'vero-cli help')", cmd)
	}
}

func cmdGenerate(args []string, prefix string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	words := fs.Int("words", 24, "Mnemonic length: 12 or 24 words")
	fs.Parse(args)

	bits := wallet.EntropyBits24
	if *words == 12 {
		bits = wallet.EntropyBits12
	} else if *words != 24 {
		fatal("--words must be 12 or 24")
	}

	log.CLI.Debug().Int("entropy_bits", bits).Str("prefix", prefix).Msg("generating wallet")

	var w *wallet.Wallet
	var mnemonic string
	var err error
	if bits == wallet.EntropyBits24 {
		w, mnemonic, err = wallet.Generate(prefix)
	} else {
		mnemonic, err = wallet.GenerateMnemonic(rand.Reader, bits)
		if err == nil {
			w, err = wallet.FromMnemonic(mnemonic, prefix)
		}
	}
	if err != nil {
		fatal("generate wallet: %v", err)
	}

	fmt.Printf("Address:  %s\n", w.Address())
	fmt.Printf("Pubkey:   %s\n", hex.EncodeToString(w.PublicKey()))
	fmt.Printf("Mnemonic: %s\n", mnemonic)
	fmt.Fprintln(os.Stderr, "\nWrite the mnemonic down and store it safely; it is the only backup.")
	w.Zero()
}

func cmdRecover(args []string, prefix string) {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	mnemonicFlag := fs.String("mnemonic", "", "Mnemonic phrase (omit to be prompted without echo)")
	fs.Parse(args)

	w := recoverWallet(*mnemonicFlag, prefix)
	defer w.Zero()

	fmt.Printf("Address: %s\n", w.Address())
	fmt.Printf("Pubkey:  %s\n", hex.EncodeToString(w.PublicKey()))
}

func cmdSign(args []string, prefix string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	mnemonicFlag := fs.String("mnemonic", "", "Mnemonic phrase (omit to be prompted without echo)")
	msg := fs.String("msg", "", "Message to sign (UTF-8 string, or hex with --hex)")
	isHex := fs.Bool("hex", false, "Treat --msg as hex-encoded bytes")
	fs.Parse(args)

	if *msg == "" {
		fatal("Usage: vero-cli sign --msg <message> [--hex] [--mnemonic \"...\"]")
	}
	data := messageBytes(*msg, *isHex)

	w := recoverWallet(*mnemonicFlag, prefix)
	defer w.Zero()

	sig, err := w.Sign(data)
	if err != nil {
		fatal("sign: %v", err)
	}

	fmt.Printf("Address:   %s\n", w.Address())
	fmt.Printf("Pubkey:    %s\n", hex.EncodeToString(w.PublicKey()))
	fmt.Printf("Signature: %s\n", hex.EncodeToString(sig))
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	pubHex := fs.String("pub", "", "Compressed public key (hex)")
	msg := fs.String("msg", "", "Signed message (UTF-8 string, or hex with --hex)")
	isHex := fs.Bool("hex", false, "Treat --msg as hex-encoded bytes")
	sigHex := fs.String("sig", "", "Compact signature (hex)")
	fs.Parse(args)

	if *pubHex == "" || *msg == "" || *sigHex == "" {
		fatal("Usage: vero-cli verify --pub <hex> --msg <message> --sig <hex> [--hex]")
	}

	pub, err := hex.DecodeString(*pubHex)
	if err != nil {
		fatal("invalid pubkey hex: %v", err)
	}
	sig, err := hex.DecodeString(*sigHex)
	if err != nil {
		fatal("invalid signature hex: %v", err)
	}
	data := messageBytes(*msg, *isHex)

	if crypto.VerifySignature(crypto.Sha256(data), sig, pub) {
		fmt.Println("Signature: OK")
	} else {
		fmt.Println("Signature: INVALID")
		os.Exit(1)
	}
}

func cmdDecode(args []string) {
	if len(args) != 1 {
		fatal("Usage: vero-cli decode <address>")
	}

	hrp, addr, err := types.DecodeAddress(args[0])
	if err != nil {
		fatal("decode address: %v", err)
	}

	fmt.Printf("Prefix: %s\n", hrp)
	fmt.Printf("Hash:   %s\n", addr.Hex())
}

// recoverWallet builds a wallet from the given mnemonic, prompting for it
// with hidden input when none was supplied on the command line.
func recoverWallet(mnemonic, prefix string) *wallet.Wallet {
	if mnemonic == "" {
		m, err := readSecret("Mnemonic: ")
		if err != nil {
			fatal("read mnemonic: %v", err)
		}
		mnemonic = strings.TrimSpace(string(m))
	}

	w, err := wallet.FromMnemonic(mnemonic, prefix)
	if err != nil {
		fatal("recover wallet: %v", err)
	}
	log.Wallet.Debug().Str("address", w.Address()).Msg("wallet recovered")
	return w
}

func messageBytes(msg string, isHex bool) []byte {
	if !isHex {
		return []byte(msg)
	}
	data, err := hex.DecodeString(msg)
	if err != nil {
		fatal("invalid message hex: %v", err)
	}
	return data
}

// readSecret prompts on stderr and reads a line without echoing it.
func readSecret(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return secret, nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: vero-cli [global flags] <command> [flags]

Global flags:
  --prefix <hrp>      Bech32 address prefix (default: ve)
  --log-level <lvl>   debug, info, warn (default), or error
  --json-log          Emit structured JSON logs

Commands:
  generate [--words 12|24]        Create a new wallet and print its
                                  address, pubkey, and backup mnemonic
  recover [--mnemonic "..."]      Recover a wallet and print its address
  sign --msg <m> [--hex]          Sign bytes with a recovered wallet
  verify --pub <hex> --msg <m> --sig <hex> [--hex]
                                  Verify a compact signature
  decode <address>                Decode a bech32 account address
`)
}
