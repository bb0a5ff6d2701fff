package initdata

// Validator validates init data against a fixed configuration: the bot
// credentials, the expiration window and the platform verification keys are
// bound once at construction instead of being threaded through every call.
//
// A Validator holds no mutable state and derives fresh key material per
// call, so a single instance is safe for concurrent use.
type Validator struct {
	cfg Config
}

// New creates a Validator from the given configuration.
// Start from DefaultConfig and override what you need:
//
//	cfg := initdata.DefaultConfig()
//	cfg.BotToken = token
//	v, err := initdata.New(cfg)
func New(cfg Config) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Validator{cfg: cfg}, nil
}

// Sign computes the expected first-party digest for initData under the
// configured bot token.
func (v *Validator) Sign(initData string) (string, error) {
	return Sign(initData, v.cfg.BotToken)
}

// Validate runs the first-party pipeline with the configured token(s) and
// expiration window. When a fallback token is configured, init data signed
// under either token is accepted.
func (v *Validator) Validate(initData string) (*InitData, error) {
	return validate(initData, v.cfg.BotToken, v.cfg.FallbackToken, v.cfg.ExpiresIn)
}

// ValidateThirdParty runs the asymmetric pipeline with the configured bot
// ID, environment and verification keys.
func (v *Validator) ValidateThirdParty(initData string) (*InitData, error) {
	return validateThirdParty(initData, &v.cfg)
}
