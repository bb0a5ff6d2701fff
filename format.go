package initdata

import (
	"fmt"
	"strings"
)

// Init data arrives as a launch query string; anything beyond this length is
// not a launch payload.
const maxInitDataLength = 65536

const hashLength = 64

// checkFormat is the structural gate applied before any decoding is
// attempted. It rejects input that cannot possibly be a query string.
func checkFormat(initData string) error {
	if initData == "" {
		return fmt.Errorf("%w: init data is empty", ErrUnexpectedFormat)
	}
	if len(initData) > maxInitDataLength {
		return fmt.Errorf("%w: init data exceeds %d bytes", ErrUnexpectedFormat, maxInitDataLength)
	}
	if strings.ContainsRune(initData, ';') {
		return fmt.Errorf("%w: semicolon separators are not supported", ErrUnexpectedFormat)
	}
	if !strings.ContainsRune(initData, '=') {
		return fmt.Errorf("%w: no key=value pairs", ErrUnexpectedFormat)
	}
	return nil
}

// isHexDigest reports whether s is exactly 64 ASCII hex digits, the textual
// form of a 256-bit digest.
func isHexDigest(s string) bool {
	if len(s) != hashLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
