package security

import (
	"testing"
)

func TestZeroBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	ZeroBytes(data)

	for i, b := range data {
		if b != 0 {
			t.Errorf("byte %d not zeroed: %d", i, b)
		}
	}

	// Must not panic on empty or nil input.
	ZeroBytes(nil)
	ZeroBytes([]byte{})
}

func TestSecureCompare(t *testing.T) {
	tests := []struct {
		name string
		a    []byte
		b    []byte
		want bool
	}{
		{"equal", []byte("abcdef"), []byte("abcdef"), true},
		{"unequal same length", []byte("abcdef"), []byte("abcdeg"), false},
		{"different lengths", []byte("abc"), []byte("abcdef"), false},
		{"first longer", []byte("abcdef"), []byte("abc"), false},
		{"both empty", []byte{}, []byte{}, true},
		{"one empty", []byte{}, []byte("a"), false},
		{"nil and empty", nil, []byte{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecureCompare(tt.a, tt.b); got != tt.want {
				t.Errorf("SecureCompare = %v, want %v", got, tt.want)
			}
		})
	}
}
