package signing

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	errBadPublicKey = errors.New("verification key must be 32 hex-encoded bytes")
	errBadSignature = errors.New("signature verification failed")
)

// ParsePublicKey decodes a hex-encoded Ed25519 verification key.
func ParsePublicKey(keyHex string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadPublicKey, err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: got %d bytes", errBadPublicKey, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// VerifySignature checks a base64url-encoded (unpadded) Ed25519 signature
// over message. Every failure collapses into the same error so callers never
// learn whether the encoding, the length or the verification was at fault.
func VerifySignature(publicKey ed25519.PublicKey, message []byte, signatureB64 string) error {
	signature, err := base64.RawURLEncoding.DecodeString(signatureB64)
	if err != nil {
		return errBadSignature
	}
	if len(signature) != ed25519.SignatureSize {
		return errBadSignature
	}
	if !ed25519.Verify(publicKey, message, signature) {
		return errBadSignature
	}
	return nil
}
