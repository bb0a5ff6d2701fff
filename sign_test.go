package initdata

import (
	"errors"
	"strings"
	"testing"
)

func TestSignKnownVector(t *testing.T) {
	// The digest Telegram documents for the example payload.
	const want = "c501b71e775f74ce10e377dea85a7ea24ecd640b223ea86dfe453e0eaed2e2b2"

	base, _, _ := strings.Cut(validInitData, "&hash=")

	got, err := Sign(base, testBotToken)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if got != want {
		t.Errorf("Sign = %q, want %q", got, want)
	}

	// An existing hash parameter is excluded from the check string, so
	// signing the full payload produces the same digest.
	got, err = Sign(validInitData, testBotToken)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if got != want {
		t.Errorf("Sign over payload with hash = %q, want %q", got, want)
	}
}

func TestSignFormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		initData string
		token    string
	}{
		{"empty init data", "", "12345:token"},
		{"empty token", "query_id=test&auth_date=123", ""},
		{"no equals", "no_pairs_here", "12345:token"},
		{"semicolon separators", "a=1;b=2", "12345:token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sign(tt.initData, tt.token); !errors.Is(err, ErrUnexpectedFormat) {
				t.Errorf("expected ErrUnexpectedFormat, got %v", err)
			}
		})
	}
}

func TestSignDeterminism(t *testing.T) {
	const initData = "auth_date=1662771648&query_id=test123"

	first, err := Sign(initData, "12345:token")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	second, err := Sign(initData, "12345:token")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if first != second {
		t.Errorf("Sign is not deterministic: %q vs %q", first, second)
	}

	if len(first) != 64 {
		t.Errorf("digest length = %d, want 64", len(first))
	}
	if first != strings.ToLower(first) {
		t.Error("digest is not lowercase hex")
	}
}

func TestSignOrderInvariance(t *testing.T) {
	a, err := Sign("auth_date=1662771648&query_id=test123", "12345:token")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	b, err := Sign("query_id=test123&auth_date=1662771648", "12345:token")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if a != b {
		t.Errorf("parameter order changed the digest: %q vs %q", a, b)
	}
}

func TestSignDifferentTokens(t *testing.T) {
	const initData = "auth_date=1662771648&query_id=test123"

	a, err := Sign(initData, "token1")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	b, err := Sign(initData, "token2")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if a == b {
		t.Error("different tokens produced the same digest")
	}
}

func TestSignDuplicateKeysLastWins(t *testing.T) {
	a, err := Sign("query_id=first&query_id=second&auth_date=123", "12345:token")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	b, err := Sign("query_id=second&auth_date=123", "12345:token")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if a != b {
		t.Error("duplicate keys should collapse to the last occurrence")
	}
}
