package hdkey

import (
	"bytes"
	"errors"
	"testing"
)

func TestHarden(t *testing.T) {
	h, err := Harden(44)
	if err != nil {
		t.Fatalf("Harden() error: %v", err)
	}
	if h != FirstHardened+44 {
		t.Errorf("Harden(44) = %#x, want %#x", h, FirstHardened+44)
	}

	if _, err := Harden(FirstHardened); !errors.Is(err, ErrInvalidDerivationIndex) {
		t.Errorf("Harden(2^31) error = %v, want ErrInvalidDerivationIndex", err)
	}
}

func TestDeriveAccount(t *testing.T) {
	master, err := NewMaster(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatalf("NewMaster() error: %v", err)
	}

	key, err := master.DeriveAccount(PurposeBIP44, 0, 0, ChangeExternal, 0)
	if err != nil {
		t.Fatalf("DeriveAccount() error: %v", err)
	}
	if key.Path() != "m/44'/0'/0'/0/0" {
		t.Errorf("path = %q, want m/44'/0'/0'/0/0", key.Path())
	}

	want, err := master.DerivePath("m/44'/0'/0'/0/0")
	if err != nil {
		t.Fatalf("DerivePath() error: %v", err)
	}
	if !bytes.Equal(key.PrivateKeyBytes(), want.PrivateKeyBytes()) {
		t.Error("DeriveAccount disagrees with DerivePath")
	}
}

func TestDeriveAccount_IndexOutOfRange(t *testing.T) {
	master, err := NewMaster(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatalf("NewMaster() error: %v", err)
	}

	tests := []struct {
		name                                  string
		purpose, coin, account, change, index uint32
	}{
		{"purpose", FirstHardened, 0, 0, 0, 0},
		{"coin", 44, FirstHardened, 0, 0, 0},
		{"account", 44, 0, FirstHardened, 0, 0},
		{"change", 44, 0, 0, FirstHardened, 0},
		{"index", 44, 0, 0, 0, FirstHardened},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := master.DeriveAccount(tt.purpose, tt.coin, tt.account, tt.change, tt.index)
			if !errors.Is(err, ErrInvalidDerivationIndex) {
				t.Errorf("DeriveAccount() error = %v, want ErrInvalidDerivationIndex", err)
			}
		})
	}
}
