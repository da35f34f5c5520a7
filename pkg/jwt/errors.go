package jwt

import "errors"

// Decode failures. Callers branch on these with errors.Is.
var (
	ErrMalformedToken   = errors.New("jwt: malformed token")
	ErrInvalidSignature = errors.New("jwt: invalid signature")
	ErrInvalidPayload   = errors.New("jwt: invalid payload")
	ErrTokenExpired     = errors.New("jwt: token is expired")
)

// Encode failures.
var (
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrMissingExpiry     = errors.New("jwt: claims have no expiry")
	ErrMissingSubject    = errors.New("jwt: claims have no subject")
)
