// Package hdkey implements hierarchical deterministic key derivation: a
// tree of keypairs grown from a single seed, where every node can
// deterministically derive children by index.
package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"github.com/Klingon-tech/hdkeys/pkg/keypair"
)

const (
	// FirstHardened is the first hardened child index (top bit set).
	FirstHardened uint32 = 0x80000000

	// ChainCodeSize is the length of a chain code in bytes.
	ChainCodeSize = 32
)

var (
	// ErrInvalidSeed is returned for seeds outside [16,64] bytes, or for
	// the astronomically unlikely seed that expands to an unusable
	// master scalar.
	ErrInvalidSeed = errors.New("seed must be between 16 and 64 bytes")

	// ErrHardenedFromPublicKey is returned when hardened derivation is
	// attempted on a public-only key; it is cryptographically
	// impossible.
	ErrHardenedFromPublicKey = errors.New("hardened derivation requires a private key")

	// ErrPublicDerivationUnsupported is returned for non-hardened
	// derivation from a public-only key, which is possible in principle
	// but not supported here.
	ErrPublicDerivationUnsupported = errors.New("public-only child derivation is not supported")

	// ErrInvalidChild is returned when the derived scalar is unusable
	// (overflows the curve order or sums to zero); callers should retry
	// with the next index.
	ErrInvalidChild = errors.New("derived child key is invalid, use the next index")

	// ErrInvalidPath is returned for a malformed derivation path.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrInvalidDerivationIndex is returned for a child index outside
	// [0, 2^31).
	ErrInvalidDerivationIndex = errors.New("derivation index must be below 2^31")
)

// Key is one position in the derivation tree. Keys are immutable value
// objects: deriving a child never mutates the parent, and no state is
// shared between ancestor and descendant after ChildKey returns.
type Key struct {
	priv        *keypair.PrivateKey // nil for public-only keys
	pub         []byte              // 33-byte compressed point, always set
	chainCode   [ChainCodeSize]byte
	index       uint32
	depth       uint8
	path        string
	mnemonic    string
	hasMnemonic bool
}

// IsPrivate reports whether the key holds private material.
func (k *Key) IsPrivate() bool {
	return k.priv != nil
}

// PrivateKeyBytes returns the 32-byte private scalar, big endian, or nil
// for a public-only key.
func (k *Key) PrivateKeyBytes() []byte {
	if k.priv == nil {
		return nil
	}
	return k.priv.Serialize()
}

// PublicKeyBytes returns the compressed 33-byte public point.
func (k *Key) PublicKeyBytes() []byte {
	out := make([]byte, len(k.pub))
	copy(out, k.pub)
	return out
}

// ChainCode returns a copy of the 32-byte chain code.
func (k *Key) ChainCode() []byte {
	out := make([]byte, ChainCodeSize)
	copy(out, k.chainCode[:])
	return out
}

// Index returns the child index this key was derived at, including the
// hardened bit. The root index is 0.
func (k *Key) Index() uint32 {
	return k.index
}

// Hardened reports whether this key was derived at a hardened index.
func (k *Key) Hardened() bool {
	return k.index >= FirstHardened
}

// Depth returns the number of derivation steps from the root.
func (k *Key) Depth() uint8 {
	return k.depth
}

// Path returns the derivation route from the root, e.g. "m/44'/0'/0'/0/0".
func (k *Key) Path() string {
	return k.path
}

// Mnemonic returns the phrase the root was built from, if any. The phrase
// is carried for provenance only and is never reinterpreted.
func (k *Key) Mnemonic() (string, bool) {
	return k.mnemonic, k.hasMnemonic
}

// ChildKey derives the child at the given index (CKDpriv). Hardened
// children use indices at or above FirstHardened. The call is a pure
// function of the parent and the index, so deriving different siblings
// concurrently from the same parent is safe.
func (k *Key) ChildKey(index uint32) (*Key, error) {
	if k.priv == nil {
		if index >= FirstHardened {
			return nil, ErrHardenedFromPublicKey
		}
		return nil, ErrPublicDerivationUnsupported
	}

	// 37-byte HMAC-SHA512 input keyed by the chain code:
	// hardened:     0x00 || priv(32) || index(4)
	// non-hardened: pub(33) || index(4)
	data := make([]byte, 0, 37)
	if index >= FirstHardened {
		data = append(data, 0x00)
		data = append(data, k.priv.Serialize()...)
	} else {
		data = append(data, k.pub...)
	}
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, k.chainCode[:])
	mac.Write(data)
	sum := mac.Sum(nil)

	priv, err := k.priv.TweakAdd(sum[:32])
	if err != nil {
		return nil, ErrInvalidChild
	}

	child := &Key{
		priv:        priv,
		pub:         priv.PubKeyCompressed(),
		index:       index,
		depth:       k.depth + 1,
		path:        childPath(k.path, index),
		mnemonic:    k.mnemonic,
		hasMnemonic: k.hasMnemonic,
	}
	copy(child.chainCode[:], sum[32:])
	return child, nil
}

// Derive applies ChildKey sequentially along the given indices. Each step
// feeds the next, so a multi-step derivation is inherently sequential.
func (k *Key) Derive(indices ...uint32) (*Key, error) {
	current := k
	for _, index := range indices {
		child, err := current.ChildKey(index)
		if err != nil {
			return nil, fmt.Errorf("derive child %d at depth %d: %w", index, current.depth, err)
		}
		current = child
	}
	return current, nil
}

// Neuter returns a public-only copy of the key for watch-only use. The
// private scalar and the mnemonic are both dropped.
func (k *Key) Neuter() *Key {
	n := *k
	n.priv = nil
	n.mnemonic = ""
	n.hasMnemonic = false
	return &n
}

// childPath appends the segment for index to the parent path, marking
// hardened indices with a trailing apostrophe.
func childPath(parent string, index uint32) string {
	s := parent + "/" + strconv.FormatUint(uint64(index&^FirstHardened), 10)
	if index >= FirstHardened {
		s += "'"
	}
	return s
}
