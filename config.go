package initdata

import (
	"fmt"
	"time"

	"github.com/cybergodev/initdata/internal/signing"
)

// Environment selects which platform verification key third-party validation
// uses.
type Environment string

const (
	// EnvironmentProduction verifies against Telegram's production key
	EnvironmentProduction Environment = "production"

	// EnvironmentTest verifies against the key of Telegram's test environment
	EnvironmentTest Environment = "test"
)

// DefaultExpiration is the window applied by DefaultConfig: init data older
// than 24 hours is rejected.
const DefaultExpiration = 24 * time.Hour

// Ed25519 verification keys published by Telegram for validating init data
// without access to the bot token.
// See: https://core.telegram.org/bots/webapps#validating-data-for-third-party-use
const (
	TestPublicKeyHex       = "40055058a4ee38156a06562e52eece92a771bcd8346a8c4615cb7376eddf72ec"
	ProductionPublicKeyHex = "e7bf03a2fa4602af4580703d88dda5bb59f32ed8b02a56c187fe7d34caed242d"
)

// Config represents validator configuration
type Config struct {
	// BotToken is the shared secret used for first-party validation
	BotToken string `yaml:"bot_token" json:"bot_token"`

	// FallbackToken, when set, is also accepted during validation. It allows
	// staged token rotation: init data signed under either token validates.
	FallbackToken string `yaml:"fallback_token" json:"fallback_token"`

	// BotID identifies the bot for third-party validation
	BotID int64 `yaml:"bot_id" json:"bot_id"`

	// ExpiresIn bounds the accepted age of init data (zero disables the check)
	ExpiresIn time.Duration `yaml:"expires_in" json:"expires_in"`

	// Environment selects the platform verification key (defaults to production)
	Environment Environment `yaml:"environment" json:"environment"`

	// PublicKeys optionally overrides the built-in hex-encoded Ed25519
	// verification keys per environment, for key rotation without redeploy.
	PublicKeys map[Environment]string `yaml:"public_keys" json:"public_keys"`
}

// DefaultConfig returns a configuration with the standard 24-hour expiration
// window and the production verification key
func DefaultConfig() Config {
	return Config{
		ExpiresIn:   DefaultExpiration,
		Environment: EnvironmentProduction,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}

	if c.BotToken == "" && c.BotID == 0 {
		return fmt.Errorf("%w: either BotToken or BotID is required", ErrInvalidConfig)
	}

	if c.FallbackToken != "" && c.BotToken == "" {
		return fmt.Errorf("%w: FallbackToken requires BotToken", ErrInvalidConfig)
	}

	if c.ExpiresIn < 0 {
		return fmt.Errorf("%w: ExpiresIn must not be negative", ErrInvalidConfig)
	}

	switch c.Environment {
	case EnvironmentProduction, EnvironmentTest, "":
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, c.Environment)
	}

	for env, keyHex := range c.PublicKeys {
		if _, err := signing.ParsePublicKey(keyHex); err != nil {
			return fmt.Errorf("%w: public key for environment %q: %v", ErrInvalidConfig, env, err)
		}
	}

	return nil
}

func (c *Config) environment() Environment {
	if c.Environment == "" {
		return EnvironmentProduction
	}
	return c.Environment
}

// publicKeyHex resolves the verification key for the configured environment,
// preferring an injected override over the built-in constants.
func (c *Config) publicKeyHex() string {
	env := c.environment()
	if key, ok := c.PublicKeys[env]; ok {
		return key
	}
	if env == EnvironmentTest {
		return TestPublicKeyHex
	}
	return ProductionPublicKeyHex
}
