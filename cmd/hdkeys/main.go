// hdkeys is a command-line tool for deterministic wallet keys: mnemonic
// generation, entropy encoding, seed stretching and derivation-path walking.
package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/Klingon-tech/hdkeys/internal/log"
	"github.com/Klingon-tech/hdkeys/internal/seal"
	"github.com/Klingon-tech/hdkeys/pkg/hdkey"
	"github.com/Klingon-tech/hdkeys/pkg/mnemonic"
	"golang.org/x/term"
)

func main() {
	args := os.Args[1:]
	level := "warn"

	// Scan global flags that appear before the subcommand.
	for len(args) > 0 {
		switch {
		case args[0] == "--verbose" || args[0] == "-v":
			level = "debug"
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(level, false)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "generate":
		cmdGenerate(cmdArgs)
	case "encode":
		cmdEncode(cmdArgs)
	case "decode":
		cmdDecode(cmdArgs)
	case "validate":
		cmdValidate(cmdArgs)
	case "seed":
		cmdSeed(cmdArgs)
	case "derive":
		cmdDerive(cmdArgs)
	case "protect":
		cmdProtect(cmdArgs)
	case "reveal":
		cmdReveal(cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hdkeys [global flags] <command> [flags]

Global flags:
  --verbose, -v       Enable debug logging

Commands:
  generate [--words <12|15|18|21|24>]
                                  Generate a new mnemonic (default 24 words)
  encode <entropy-hex>            Encode entropy as a mnemonic
  decode <mnemonic...>            Decode a mnemonic back to entropy hex
  validate <mnemonic...>          Check a mnemonic's words and checksum
  seed [--passphrase-prompt] <mnemonic...>
                                  Stretch a mnemonic into a 64-byte seed
  derive --path <m/44'/0'/0'/0/0> (--seed <hex> | --mnemonic "...")
                                  Derive the key at a path
  protect <mnemonic...>           Seal a mnemonic with a passphrase (hex out)
  reveal <sealed-hex>             Unseal a protected mnemonic
`)
}

// ── generate ────────────────────────────────────────────────────────────

func cmdGenerate(args []string) {
	words := 24
	for len(args) > 0 {
		switch {
		case args[0] == "--words" && len(args) > 1:
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fatal("invalid --words value %q", args[1])
			}
			words = n
			args = args[2:]
		default:
			fatal("unexpected argument %q", args[0])
		}
	}
	if words%3 != 0 || words < 12 || words > 24 {
		fatal("--words must be 12, 15, 18, 21 or 24")
	}

	bits := words / 3 * 32
	log.Debug().Int("words", words).Int("entropy_bits", bits).Msg("generating mnemonic")

	phrase, err := mnemonic.Generate(bits)
	if err != nil {
		fatal("generate mnemonic: %v", err)
	}
	fmt.Println(phrase)
}

// ── encode / decode / validate ──────────────────────────────────────────

func cmdEncode(args []string) {
	if len(args) != 1 {
		fatal("usage: hdkeys encode <entropy-hex>")
	}
	entropy, err := hex.DecodeString(args[0])
	if err != nil {
		fatal("invalid entropy hex: %v", err)
	}
	phrase, err := mnemonic.Encode(entropy)
	if err != nil {
		fatal("encode: %v", err)
	}
	fmt.Println(phrase)
}

func cmdDecode(args []string) {
	phrase := strings.Join(args, " ")
	entropy, err := mnemonic.Decode(phrase)
	if err != nil {
		fatal("decode: %v", err)
	}
	fmt.Println(hex.EncodeToString(entropy))
}

func cmdValidate(args []string) {
	phrase := strings.Join(args, " ")
	if !mnemonic.IsValid(phrase) {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
}

// ── seed ────────────────────────────────────────────────────────────────

func cmdSeed(args []string) {
	prompt := false
	for len(args) > 0 && strings.HasPrefix(args[0], "--") {
		switch args[0] {
		case "--passphrase-prompt":
			prompt = true
			args = args[1:]
		default:
			fatal("unknown flag %q", args[0])
		}
	}
	phrase := strings.Join(args, " ")
	if phrase == "" {
		fatal("usage: hdkeys seed [--passphrase-prompt] <mnemonic...>")
	}
	if !mnemonic.IsValid(phrase) {
		fatal("mnemonic failed validation")
	}

	var passphrase string
	if prompt {
		pw, err := readPassword("Passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		passphrase = string(pw)
	}

	seed, err := mnemonic.Seed(phrase, passphrase)
	if err != nil {
		fatal("stretch seed: %v", err)
	}
	fmt.Println(hex.EncodeToString(seed))
}

// ── derive ──────────────────────────────────────────────────────────────

func cmdDerive(args []string) {
	var path, seedHex, phrase string
	for len(args) > 0 {
		switch {
		case args[0] == "--path" && len(args) > 1:
			path = args[1]
			args = args[2:]
		case args[0] == "--seed" && len(args) > 1:
			seedHex = args[1]
			args = args[2:]
		case args[0] == "--mnemonic" && len(args) > 1:
			phrase = args[1]
			args = args[2:]
		default:
			fatal("unexpected argument %q", args[0])
		}
	}
	if path == "" {
		fatal("--path is required")
	}
	if (seedHex == "") == (phrase == "") {
		fatal("exactly one of --seed or --mnemonic is required")
	}

	var root *hdkey.Key
	var err error
	if seedHex != "" {
		seed, derr := hex.DecodeString(seedHex)
		if derr != nil {
			fatal("invalid seed hex: %v", derr)
		}
		root, err = hdkey.NewMaster(seed)
	} else {
		root, err = hdkey.NewMasterFromMnemonic(phrase)
	}
	if err != nil {
		fatal("build master key: %v", err)
	}

	log.Debug().Str("path", path).Msg("walking derivation path")
	key, err := root.DerivePath(path)
	if err != nil {
		fatal("derive %s: %v", path, err)
	}

	fmt.Printf("path:        %s\n", key.Path())
	fmt.Printf("depth:       %d\n", key.Depth())
	fmt.Printf("private_key: %s\n", hex.EncodeToString(key.PrivateKeyBytes()))
	fmt.Printf("public_key:  %s\n", hex.EncodeToString(key.PublicKeyBytes()))
	fmt.Printf("chain_code:  %s\n", hex.EncodeToString(key.ChainCode()))
}

// ── protect / reveal ────────────────────────────────────────────────────

func cmdProtect(args []string) {
	phrase := strings.Join(args, " ")
	if phrase == "" {
		line, err := readLine("Mnemonic: ")
		if err != nil {
			fatal("read mnemonic: %v", err)
		}
		phrase = strings.TrimSpace(line)
	}
	if !mnemonic.IsValid(phrase) {
		fatal("mnemonic failed validation")
	}

	pw, err := readPassword("Passphrase: ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	confirm, err := readPassword("Confirm passphrase: ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	if !bytes.Equal(pw, confirm) {
		fatal("passphrases do not match")
	}

	sealed, err := seal.Seal([]byte(phrase), pw, seal.DefaultParams())
	if err != nil {
		fatal("seal: %v", err)
	}
	fmt.Println(hex.EncodeToString(sealed))
}

func cmdReveal(args []string) {
	if len(args) != 1 {
		fatal("usage: hdkeys reveal <sealed-hex>")
	}
	sealed, err := hex.DecodeString(args[0])
	if err != nil {
		fatal("invalid sealed hex: %v", err)
	}

	pw, err := readPassword("Passphrase: ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}

	secret, err := seal.Open(sealed, pw)
	if err != nil {
		fatal("unseal: %v", err)
	}
	fmt.Println(string(secret))
}

// ── helpers ─────────────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

func readLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	return reader.ReadString('\n')
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
