// Package mnemonic converts between raw entropy and checksummed word
// phrases, and stretches a phrase into a 64-byte wallet seed.
package mnemonic

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
)

// Entropy length bounds in bytes. Entropy must also be a multiple of
// 4 bytes so the combined entropy+checksum bit string divides into
// 11-bit word indices.
const (
	MinEntropyBytes = 16
	MaxEntropyBytes = 32
)

var (
	// ErrInvalidEntropy is returned for entropy whose length is not a
	// multiple of 4 bytes in [16,32].
	ErrInvalidEntropy = errors.New("entropy must be a multiple of 4 bytes between 16 and 32")

	// ErrInvalidMnemonic is returned for a phrase with a bad word count
	// or a word outside the dictionary.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidChecksum is returned when the checksum bits carried in a
	// phrase do not match the decoded entropy.
	ErrInvalidChecksum = errors.New("mnemonic checksum mismatch")
)

// Encode converts entropy into a mnemonic phrase. The top len(entropy)/4
// bits of SHA-256(entropy) are appended as a checksum, and the combined
// bit string is split MSB-first into 11-bit dictionary indices.
func Encode(entropy []byte) (string, error) {
	if len(entropy)%4 != 0 || len(entropy) < MinEntropyBytes || len(entropy) > MaxEntropyBytes {
		return "", ErrInvalidEntropy
	}

	csBits := uint(len(entropy) / 4)
	sum := sha256.Sum256(entropy)

	// Bit accumulator: push entropy bits then checksum bits, draining a
	// word whenever 11 bits are buffered. The combined length is a
	// multiple of 11, so the accumulator ends empty.
	words := make([]string, 0, (len(entropy)*8+int(csBits))/11)
	var acc uint32
	var n uint
	drain := func() {
		for n >= 11 {
			n -= 11
			words = append(words, wordList[(acc>>n)&(dictSize-1)])
			acc &= 1<<n - 1
		}
	}
	for _, b := range entropy {
		acc = acc<<8 | uint32(b)
		n += 8
		drain()
	}
	acc = acc<<csBits | uint32(sum[0]>>(8-csBits))
	n += csBits
	drain()

	return strings.Join(words, " "), nil
}

// Decode converts a mnemonic phrase back into its entropy, verifying the
// checksum. Matching is case-insensitive.
func Decode(phrase string) ([]byte, error) {
	words := strings.Fields(strings.ToLower(phrase))
	wc := len(words)
	if wc%3 != 0 || wc < 12 || wc > 24 {
		return nil, fmt.Errorf("%w: word count must be a multiple of 3 between 12 and 24, got %d", ErrInvalidMnemonic, wc)
	}

	entropyLen := wc / 3 * 4
	csBits := uint(wc / 3)

	// Rebuild the bit string from the 11-bit word indices into an owned
	// buffer; the final partial byte holds the checksum bits, left
	// aligned.
	buf := make([]byte, 0, entropyLen+1)
	var acc uint32
	var n uint
	for _, w := range words {
		idx, ok := wordIndex[w]
		if !ok {
			return nil, fmt.Errorf("%w: unknown word %q", ErrInvalidMnemonic, w)
		}
		acc = acc<<11 | idx
		n += 11
		for n >= 8 {
			n -= 8
			buf = append(buf, byte(acc>>n))
			acc &= 1<<n - 1
		}
	}
	if n > 0 {
		buf = append(buf, byte(acc<<(8-n)))
	}

	sum := sha256.Sum256(buf[:entropyLen])
	mask := byte(0xff) << (8 - csBits)
	if (buf[entropyLen]^sum[0])&mask != 0 {
		return nil, ErrInvalidChecksum
	}

	entropy := make([]byte, entropyLen)
	copy(entropy, buf[:entropyLen])
	return entropy, nil
}

// IsValid reports whether the phrase decodes cleanly. Every failure kind
// collapses to false.
func IsValid(phrase string) bool {
	_, err := Decode(phrase)
	return err == nil
}
