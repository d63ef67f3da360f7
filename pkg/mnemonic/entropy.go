package mnemonic

import (
	"crypto/rand"
	"fmt"
)

// NewEntropy returns fresh cryptographically random entropy of the given
// bit size. bits must be a multiple of 32 in [128, 256].
func NewEntropy(bits int) ([]byte, error) {
	if bits%32 != 0 || bits < MinEntropyBytes*8 || bits > MaxEntropyBytes*8 {
		return nil, ErrInvalidEntropy
	}
	entropy := make([]byte, bits/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}
	return entropy, nil
}

// Generate creates a new random mnemonic from bits of fresh entropy.
// bits follows the same rules as NewEntropy; 256 bits yields 24 words.
func Generate(bits int) (string, error) {
	entropy, err := NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return Encode(entropy)
}
