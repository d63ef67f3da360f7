package mnemonic

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEntropy(t *testing.T) {
	tests := []struct {
		bits  int
		bytes int
	}{
		{128, 16},
		{160, 20},
		{192, 24},
		{224, 28},
		{256, 32},
	}
	for _, tt := range tests {
		entropy, err := NewEntropy(tt.bits)
		if err != nil {
			t.Fatalf("NewEntropy(%d) error: %v", tt.bits, err)
		}
		if len(entropy) != tt.bytes {
			t.Errorf("NewEntropy(%d) length = %d, want %d", tt.bits, len(entropy), tt.bytes)
		}
	}
}

func TestNewEntropy_InvalidSize(t *testing.T) {
	for _, bits := range []int{0, 96, 130, 288} {
		if _, err := NewEntropy(bits); !errors.Is(err, ErrInvalidEntropy) {
			t.Errorf("NewEntropy(%d) error = %v, want ErrInvalidEntropy", bits, err)
		}
	}
}

func TestGenerate(t *testing.T) {
	phrase, err := Generate(256)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := len(strings.Fields(phrase)); got != 24 {
		t.Errorf("word count = %d, want 24", got)
	}
	if !IsValid(phrase) {
		t.Error("generated mnemonic should validate")
	}
}

func TestGenerate_Unique(t *testing.T) {
	m1, err := Generate(128)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	m2, err := Generate(128)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if m1 == m2 {
		t.Error("two generated mnemonics should not be identical")
	}
}
