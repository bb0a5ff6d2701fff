package initdata

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cybergodev/initdata/internal/query"
	"github.com/cybergodev/initdata/internal/signing"
)

// ValidateThirdParty authenticates init data without access to the bot
// token, using the Ed25519 signature Telegram attaches for exactly this
// purpose. The verification message is the bot ID, the "WebAppData" label
// and the canonical check string (all parameters except signature and hash).
//
// env selects between Telegram's production and test verification keys.
// expiresIn bounds the accepted age of the data; pass 0 to disable the
// check.
// See: https://core.telegram.org/bots/webapps#validating-data-for-third-party-use
func ValidateThirdParty(initData string, botID int64, expiresIn time.Duration, env Environment) (*InitData, error) {
	cfg := DefaultConfig()
	cfg.BotID = botID
	cfg.ExpiresIn = expiresIn
	cfg.Environment = env

	return validateThirdParty(initData, &cfg)
}

func validateThirdParty(initData string, cfg *Config) (*InitData, error) {
	if err := checkFormat(initData); err != nil {
		return nil, err
	}

	pairs := query.Parse(initData)
	params := query.Collect(pairs)

	signatureB64, ok := params["signature"]
	if !ok {
		return nil, ErrSignatureMissing
	}

	message := fmt.Sprintf("%d:%s\n%s",
		cfg.BotID,
		signing.DomainSeparationLabel,
		query.CheckString(pairs, "signature", "hash"),
	)

	publicKey, err := signing.ParsePublicKey(cfg.publicKeyHex())
	if err != nil {
		// The verification key comes from our own configuration, never from
		// the caller's input, so this is not a signature failure.
		return nil, fmt.Errorf("%w: %v", ErrInternalCrypto, err)
	}

	if err := signing.VerifySignature(publicKey, []byte(message), signatureB64); err != nil {
		return nil, ErrSignatureInvalid
	}

	if cfg.ExpiresIn > 0 {
		if authDate, err := strconv.ParseInt(params["auth_date"], 10, 64); err == nil {
			if err := checkExpiration(time.Unix(authDate, 0), cfg.ExpiresIn, time.Now()); err != nil {
				return nil, err
			}
		}
	}

	return Parse(initData)
}
