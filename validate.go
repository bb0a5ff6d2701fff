package initdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/cybergodev/initdata/internal/query"
	"github.com/cybergodev/initdata/internal/signing"
)

const hashMarker = "&hash="

// extractHash locates the hash parameter by literal substring search over
// the raw (still percent-encoded) string and returns the base string to
// re-sign together with the presented digest.
//
// Values must be percent-encoded on the wire, which escapes '&' and '='; an
// unescaped "&hash=" inside a value would mis-split here. That is a
// constraint of the wire format, not of this function.
func extractHash(initData string) (base, hash string, err error) {
	pos := strings.Index(initData, hashMarker)
	if pos < 0 {
		return "", "", ErrHashMissing
	}

	base = initData[:pos]
	hash = initData[pos+len(hashMarker):]

	if !isHexDigest(hash) {
		return "", "", fmt.Errorf("%w: expected %d hex characters", ErrHashInvalid, hashLength)
	}

	return base, hash, nil
}

// Validate authenticates first-party init data: it extracts the presented
// hash, recomputes the expected digest over the remaining parameters under
// token, compares the two in constant time, and decodes the result.
//
// expiresIn bounds the accepted age of the data (auth_date plus expiresIn
// must not be in the past); pass 0 to disable the check, or
// DefaultExpiration for the standard 24-hour window.
func Validate(initData, token string, expiresIn time.Duration) (*InitData, error) {
	return validate(initData, token, "", expiresIn)
}

// ValidateWithFallback behaves like Validate but accepts init data signed
// under either of two independent tokens, supporting staged token rotation.
// The returned data does not reveal which token matched. An empty fallback
// token never matches.
func ValidateWithFallback(initData, token, fallbackToken string, expiresIn time.Duration) (*InitData, error) {
	return validate(initData, token, fallbackToken, expiresIn)
}

func validate(initData, token, fallbackToken string, expiresIn time.Duration) (*InitData, error) {
	if err := checkFormat(initData); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrUnexpectedFormat)
	}

	base, presented, err := extractHash(initData)
	if err != nil {
		return nil, err
	}

	checkString := query.CheckString(query.Parse(base), "hash")

	// Both comparisons always run so neither the result nor the timing
	// reveals which token matched.
	matched := signing.VerifyCheckString(checkString, token, presented)
	fallbackMatched := fallbackToken != "" &&
		signing.VerifyCheckString(checkString, fallbackToken, presented)

	if !matched && !fallbackMatched {
		return nil, ErrHashInvalid
	}

	data, err := Parse(initData)
	if err != nil {
		return nil, err
	}

	if err := checkExpiration(data.AuthDate.Time, expiresIn, time.Now()); err != nil {
		return nil, err
	}

	return data, nil
}

// checkExpiration rejects data whose auth_date plus the window lies in the
// past. A non-positive window disables the check.
func checkExpiration(authDate time.Time, expiresIn time.Duration, now time.Time) error {
	if expiresIn <= 0 {
		return nil
	}
	if authDate.Add(expiresIn).Before(now) {
		return ErrExpired
	}
	return nil
}
