package initdata

import (
	"fmt"

	"github.com/cybergodev/initdata/internal/query"
	"github.com/cybergodev/initdata/internal/signing"
)

// Sign computes the first-party hex digest for initData under the given bot
// token, following Telegram's published scheme: the parameters (minus any
// existing hash) are serialized into the canonical data-check-string, the
// token is stretched into a signing key with the "WebAppData" label, and the
// check string is HMAC-SHA256 signed with that key.
//
// The result is deterministic and independent of the parameter order in
// initData.
// See: https://core.telegram.org/bots/webapps#validating-data-received-via-the-mini-app
func Sign(initData, token string) (string, error) {
	if err := checkFormat(initData); err != nil {
		return "", err
	}
	if token == "" {
		return "", fmt.Errorf("%w: token is empty", ErrUnexpectedFormat)
	}

	checkString := query.CheckString(query.Parse(initData), "hash")

	return signing.SignCheckString(checkString, token), nil
}
