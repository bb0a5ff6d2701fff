package security

import (
	"crypto/subtle"
	"runtime"
)

// ZeroBytes securely zeros a byte slice so derived key material does not
// outlive the call that produced it.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}

	for i := range data {
		data[i] = 0
	}

	runtime.KeepAlive(data)
}

// SecureCompare performs constant-time comparison of two byte slices.
// Slices of different lengths compare unequal, still in time proportional
// only to the longer length.
func SecureCompare(a, b []byte) bool {
	if len(a) != len(b) {
		// Burn the same amount of work before failing.
		longer := a
		if len(b) > len(longer) {
			longer = b
		}
		subtle.ConstantTimeCompare(longer, longer)
		return false
	}

	return subtle.ConstantTimeCompare(a, b) == 1
}
