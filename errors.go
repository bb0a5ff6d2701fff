package initdata

import (
	"errors"
)

// Predefined errors for init data validation.
// Match with errors.Is; wrapped values carry additional context.
var (
	// Format errors
	ErrUnexpectedFormat = errors.New("init data has unexpected format")
	ErrAuthDateMissing  = errors.New("auth_date is missing")

	// First-party validation errors
	ErrHashMissing = errors.New("hash is missing")
	ErrHashInvalid = errors.New("hash is invalid")

	// Third-party validation errors
	ErrSignatureMissing = errors.New("signature is missing")
	ErrSignatureInvalid = errors.New("signature is invalid")

	// Expiration errors
	ErrExpired = errors.New("init data is expired")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// System errors
	ErrInternalCrypto = errors.New("internal error: failed to construct cryptographic primitive")
)
