// Package keypair adapts secp256k1 to the narrow surface the key
// derivation engine needs: constructing keys from raw scalars, compressed
// public points, and addition of scalars modulo the curve order.
package keypair

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PrivateKeySize is the length of a serialized private scalar.
	PrivateKeySize = 32

	// PublicKeySize is the length of a compressed public point.
	PublicKeySize = 33
)

// ErrInvalidScalar is returned when a scalar is zero or not below the
// curve order.
var ErrInvalidScalar = errors.New("scalar is zero or not below the curve order")

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// Generate creates a new random private key.
func Generate() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// FromBytes creates a PrivateKey from a 32-byte big-endian scalar.
// Zero scalars and scalars not below the curve order are rejected.
func FromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	if overflow || s.IsZero() {
		return nil, ErrInvalidScalar
	}
	key := secp256k1.NewPrivateKey(&s)
	s.Zero()
	return &PrivateKey{key: key}, nil
}

// Serialize returns the 32-byte big-endian scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// PubKeyCompressed returns the compressed 33-byte public point.
func (pk *PrivateKey) PubKeyCompressed() []byte {
	return pk.key.PubKey().SerializeCompressed()
}

// TweakAdd returns a new private key holding (pk + tweak) mod N.
// The tweak must be below the curve order and the sum must be non-zero;
// either violation yields ErrInvalidScalar.
func (pk *PrivateKey) TweakAdd(tweak []byte) (*PrivateKey, error) {
	if len(tweak) != PrivateKeySize {
		return nil, fmt.Errorf("tweak must be %d bytes, got %d", PrivateKeySize, len(tweak))
	}
	var t secp256k1.ModNScalar
	if overflow := t.SetByteSlice(tweak); overflow {
		return nil, ErrInvalidScalar
	}
	t.Add(&pk.key.Key)
	if t.IsZero() {
		return nil, ErrInvalidScalar
	}
	child := secp256k1.NewPrivateKey(&t)
	t.Zero()
	return &PrivateKey{key: child}, nil
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}
