// Package secret holds the process-wide token signing secret.
//
// The secret is read once from AUTH_SIGNING_SECRET before the server starts
// serving and is passed explicitly to the token codec and the auth gate.
// Nothing in the request path reads the environment.
package secret

import (
	"errors"

	"github.com/dmitrymomot/brewauth/pkg/config"
)

// RecommendedLength is the minimum secret size, in bytes, that gives
// HMAC-SHA256 its full strength. Shorter secrets are accepted but should be
// reported at startup.
const RecommendedLength = 32

var (
	ErrMissingSecret = errors.New("secret: signing secret is not configured")
	ErrLoadConfig    = errors.New("secret: failed to load configuration")
)

// Config is the immutable signing secret configuration.
type Config struct {
	SigningSecret string `env:"AUTH_SIGNING_SECRET,required,notEmpty"`
}

// New builds a Config from raw key bytes.
func New(key []byte) (Config, error) {
	if len(key) == 0 {
		return Config{}, ErrMissingSecret
	}
	return Config{SigningSecret: string(key)}, nil
}

// Load reads the secret from the environment. A missing or empty
// AUTH_SIGNING_SECRET is an error the caller must treat as fatal.
func Load() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, ErrMissingSecret, err)
	}
	if cfg.IsZero() {
		return Config{}, ErrMissingSecret
	}
	return cfg, nil
}

// MustLoad is like Load but panics when the secret is unavailable.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Key returns a copy of the secret bytes.
func (c Config) Key() []byte {
	return []byte(c.SigningSecret)
}

// IsZero reports whether the config carries no usable secret.
func (c Config) IsZero() bool {
	return c.SigningSecret == ""
}

// IsWeak reports whether the secret is shorter than RecommendedLength.
func (c Config) IsWeak() bool {
	return len(c.SigningSecret) < RecommendedLength
}

// String never reveals the secret.
func (c Config) String() string {
	if c.IsZero() {
		return "secret.Config(unset)"
	}
	return "secret.Config(redacted)"
}

// GoString keeps the secret out of %#v output.
func (c Config) GoString() string {
	return c.String()
}
