package mnemonic

import (
	"crypto/sha512"
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a stretched seed in bytes (512 bits).
const SeedSize = 64

// Protocol-fixed stretching parameters, not configurable.
const (
	seedIterations = 2048
	saltPrefix     = "mnemonic"
)

// ErrUnsupportedCharset is returned when a phrase or passphrase is not
// valid UTF-8 and therefore cannot be normalized.
var ErrUnsupportedCharset = errors.New("phrase or passphrase is not valid UTF-8")

// Seed stretches a mnemonic phrase and optional passphrase into a 64-byte
// seed using PBKDF2-HMAC-SHA512 over the NFKD-normalized inputs. Input
// that cannot be normalized is rejected, never silently reinterpreted.
//
// The phrase is not checksum-validated here; callers wanting validation
// decode it first.
func Seed(phrase, passphrase string) ([]byte, error) {
	if !utf8.ValidString(phrase) || !utf8.ValidString(passphrase) {
		return nil, ErrUnsupportedCharset
	}
	password := norm.NFKD.String(phrase)
	salt := saltPrefix + norm.NFKD.String(passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedSize, sha512.New), nil
}
