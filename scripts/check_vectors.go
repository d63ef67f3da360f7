// check_vectors.go re-derives the published BIP-32/BIP-39 test vectors and
// prints PASS or FAIL for each. Useful as a quick sanity check after
// touching the derivation or codec internals.
// Usage: go run scripts/check_vectors.go
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/Klingon-tech/hdkeys/pkg/hdkey"
	"github.com/Klingon-tech/hdkeys/pkg/mnemonic"
)

var failed bool

func check(name string, got, want string) {
	if got == want {
		fmt.Printf("PASS %s\n", name)
		return
	}
	failed = true
	fmt.Printf("FAIL %s\n  got:  %s\n  want: %s\n", name, got, want)
}

func main() {
	// BIP-39: zero entropy.
	entropy := make([]byte, 16)
	phrase, err := mnemonic.Encode(entropy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	check("bip39 encode zero entropy", phrase,
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	seed, err := mnemonic.Seed(phrase, "TREZOR")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	check("bip39 seed TREZOR", hex.EncodeToString(seed),
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553"+
			"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")

	// BIP-32 vector 1: m/0' from seed 000102030405060708090a0b0c0d0e0f.
	rawSeed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := hdkey.NewMaster(rawSeed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	check("bip32 master private key", hex.EncodeToString(master.PrivateKeyBytes()),
		"e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35")
	check("bip32 master chain code", hex.EncodeToString(master.ChainCode()),
		"873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508")

	child, err := master.DerivePath("m/0'")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	check("bip32 m/0' private key", hex.EncodeToString(child.PrivateKeyBytes()),
		"edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea")
	check("bip32 m/0' public key", hex.EncodeToString(child.PublicKeyBytes()),
		"035a784662a4a20a65bf6aab9ae98a6c068a81c52e4b032c0fb5400c706cfccc56")
	check("bip32 m/0' chain code", hex.EncodeToString(child.ChainCode()),
		"47fdacbd0f1097043b78c63c20c34ef4ed9a111d980047ad16282c7ae6236141")

	if failed {
		os.Exit(1)
	}
}
