package hdkey

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		indices []uint32
		rooted  bool
	}{
		{"root only", "m", nil, true},
		{"single hardened", "m/0'", []uint32{FirstHardened}, true},
		{"bip44", "m/44'/0'/0'/0/0", []uint32{FirstHardened + 44, FirstHardened, FirstHardened, 0, 0}, true},
		{"relative", "1/2", []uint32{1, 2}, false},
		{"max index", "m/2147483647'", []uint32{0xffffffff}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices, rooted, err := ParsePath(tt.path)
			if err != nil {
				t.Fatalf("ParsePath(%q) error: %v", tt.path, err)
			}
			if rooted != tt.rooted {
				t.Errorf("rooted = %v, want %v", rooted, tt.rooted)
			}
			if len(indices) != len(tt.indices) {
				t.Fatalf("indices = %v, want %v", indices, tt.indices)
			}
			for i := range indices {
				if indices[i] != tt.indices[i] {
					t.Errorf("index[%d] = %d, want %d", i, indices[i], tt.indices[i])
				}
			}
		})
	}
}

func TestParsePath_Invalid(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"letter segment", "1/2/x"},
		{"m past start", "m/0/m"},
		{"trailing slash", "m/0/"},
		{"leading slash", "/0"},
		{"bare apostrophe", "m/'"},
		{"index too large", "m/2147483648"},
		{"negative", "m/-1"},
		{"double apostrophe", "m/0''"},
		{"hex index", "m/0x10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParsePath(tt.path); !errors.Is(err, ErrInvalidPath) {
				t.Errorf("ParsePath(%q) error = %v, want ErrInvalidPath", tt.path, err)
			}
		})
	}
}

func TestDerivePath(t *testing.T) {
	master, err := NewMaster(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatalf("NewMaster() error: %v", err)
	}

	leaf, err := master.DerivePath("m/44'/0'/0'/0/0")
	if err != nil {
		t.Fatalf("DerivePath() error: %v", err)
	}
	if leaf.Depth() != 5 {
		t.Errorf("depth = %d, want 5", leaf.Depth())
	}
	if leaf.Path() != "m/44'/0'/0'/0/0" {
		t.Errorf("path = %q, want m/44'/0'/0'/0/0", leaf.Path())
	}

	// A step-by-step walk must agree with the single call.
	manual, err := master.Derive(FirstHardened+44, FirstHardened, FirstHardened, 0, 0)
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	if string(manual.PrivateKeyBytes()) != string(leaf.PrivateKeyBytes()) {
		t.Error("DerivePath and Derive disagree")
	}
}

func TestDerivePath_RootMarkerPastRoot(t *testing.T) {
	master, err := NewMaster(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatalf("NewMaster() error: %v", err)
	}
	node, err := master.DerivePath("m/1/2")
	if err != nil {
		t.Fatalf("DerivePath() error: %v", err)
	}

	// "m" is only legal from a depth-0 key.
	if _, err := node.DerivePath("m/1/2"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("DerivePath() error = %v, want ErrInvalidPath", err)
	}

	// A relative path from the same key is fine.
	leaf, err := node.DerivePath("1/2")
	if err != nil {
		t.Fatalf("relative DerivePath() error: %v", err)
	}
	if leaf.Depth() != 4 {
		t.Errorf("depth = %d, want 4", leaf.Depth())
	}
	if leaf.Path() != "m/1/2/1/2" {
		t.Errorf("path = %q, want m/1/2/1/2", leaf.Path())
	}
}

func TestDerivePath_RootNoop(t *testing.T) {
	master, err := NewMaster(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatalf("NewMaster() error: %v", err)
	}
	same, err := master.DerivePath("m")
	if err != nil {
		t.Fatalf("DerivePath(m) error: %v", err)
	}
	if same.Depth() != 0 || same.Path() != "m" {
		t.Errorf("DerivePath(m) = depth %d path %q, want 0 and m", same.Depth(), same.Path())
	}
}
