package jwt

import (
	"time"
)

// DefaultTTL is the lifetime of tokens issued by a Codec: seven days.
const DefaultTTL = 7 * 24 * time.Hour

// Codec binds Encode and Decode to a signing secret, a clock and a token lifetime.
// It is immutable after construction and safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTTL sets the lifetime of issued tokens. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// NewCodec returns a Codec signing with a copy of secret.
func NewCodec(secret []byte, opts ...Option) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSigningKey
	}

	c := &Codec{
		secret: append([]byte(nil), secret...),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Issue creates a token for subject that expires after the configured TTL.
func (c *Codec) Issue(subject string, metadata map[string]string) (string, Claims, error) {
	if subject == "" {
		return "", Claims{}, ErrMissingSubject
	}

	now := c.now()
	claims := Claims{
		Subject:   subject,
		Context:   metadata,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(c.ttl).Unix(),
	}

	token, err := Encode(claims, c.secret)
	if err != nil {
		return "", Claims{}, err
	}

	return token, claims, nil
}

// Encode signs claims with the codec's secret.
func (c *Codec) Encode(claims Claims) (string, error) {
	return Encode(claims, c.secret)
}

// Decode verifies token and checks expiry against the codec's clock.
func (c *Codec) Decode(token string) (Claims, error) {
	return decode(token, c.secret, c.now())
}

// TTL returns the lifetime of issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
