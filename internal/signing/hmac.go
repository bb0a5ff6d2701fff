package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/cybergodev/initdata/internal/security"
)

// DomainSeparationLabel is the fixed key mixed into the first derivation
// stage. It prevents a bot token from producing usable key material for any
// other HMAC-based protocol.
const DomainSeparationLabel = "WebAppData"

// SecretKey derives the per-token signing key:
// HMAC-SHA256(key = "WebAppData", message = token).
// The caller owns the returned slice and should zero it when done.
func SecretKey(token string) []byte {
	mac := hmac.New(sha256.New, []byte(DomainSeparationLabel))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

// SignCheckString computes the lowercase hex digest Telegram publishes for a
// data-check-string: HMAC-SHA256 keyed with the derived secret. The derived
// key is zeroed before returning.
func SignCheckString(checkString, token string) string {
	secret := SecretKey(token)
	defer security.ZeroBytes(secret)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(checkString))
	digest := mac.Sum(nil)
	defer security.ZeroBytes(digest)

	return hex.EncodeToString(digest)
}

// VerifyCheckString reports whether the presented hex digest matches the one
// recomputed for checkString under token. The digests are compared in their
// hex form, in constant time.
func VerifyCheckString(checkString, token, presentedHex string) bool {
	expectedHex := SignCheckString(checkString, token)
	return security.SecureCompare([]byte(presentedHex), []byte(expectedHex))
}
