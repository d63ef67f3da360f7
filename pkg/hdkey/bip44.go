package hdkey

// BIP-44 style account derivation: m/purpose'/coin'/account'/change/index.

const (
	// PurposeBIP44 is the default purpose field.
	PurposeBIP44 uint32 = 44

	// ChangeExternal selects the receiving chain.
	ChangeExternal uint32 = 0

	// ChangeInternal selects the change chain.
	ChangeInternal uint32 = 1
)

// Harden converts a plain index into its hardened form. Indices that
// already carry the hardened bit are rejected.
func Harden(index uint32) (uint32, error) {
	if index >= FirstHardened {
		return 0, ErrInvalidDerivationIndex
	}
	return index | FirstHardened, nil
}

// DeriveAccount derives m/purpose'/coin'/account'/change/index from this
// key. purpose, coin and account are hardened automatically; change and
// index stay non-hardened. All five fields must be below 2^31.
func (k *Key) DeriveAccount(purpose, coin, account, change, index uint32) (*Key, error) {
	p, err := Harden(purpose)
	if err != nil {
		return nil, err
	}
	c, err := Harden(coin)
	if err != nil {
		return nil, err
	}
	a, err := Harden(account)
	if err != nil {
		return nil, err
	}
	if change >= FirstHardened || index >= FirstHardened {
		return nil, ErrInvalidDerivationIndex
	}
	return k.Derive(p, c, a, change, index)
}
