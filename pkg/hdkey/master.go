package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"

	"github.com/Klingon-tech/hdkeys/pkg/keypair"
	"github.com/Klingon-tech/hdkeys/pkg/mnemonic"
)

// Seed length bounds in bytes.
const (
	MinSeedBytes = 16
	MaxSeedBytes = 64
)

// masterHMACKey is the protocol-fixed HMAC key for master seed expansion.
var masterHMACKey = []byte("Bitcoin seed")

// NewMaster builds the root of a derivation tree from raw seed bytes.
func NewMaster(seed []byte) (*Key, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, ErrInvalidSeed
	}

	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)

	priv, err := keypair.FromBytes(sum[:32])
	if err != nil {
		// An unusable master scalar makes the whole seed unusable.
		return nil, ErrInvalidSeed
	}

	root := &Key{
		priv: priv,
		pub:  priv.PubKeyCompressed(),
		path: "m",
	}
	copy(root.chainCode[:], sum[32:])
	return root, nil
}

// NewMasterFromMnemonic validates the phrase, stretches it with an empty
// passphrase, and builds the root key with the phrase attached.
func NewMasterFromMnemonic(phrase string) (*Key, error) {
	if _, err := mnemonic.Decode(phrase); err != nil {
		return nil, err
	}
	seed, err := mnemonic.Seed(phrase, "")
	if err != nil {
		return nil, err
	}
	root, err := NewMaster(seed)
	if err != nil {
		return nil, err
	}
	root.mnemonic = phrase
	root.hasMnemonic = true
	return root, nil
}
