package jwt

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// JWT header constants required by RFC 7519.
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Header represents the JWT header as defined in RFC 7515.
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

var encoding = base64.RawURLEncoding

// Encode signs claims with secret and returns header.payload.signature.
func Encode(claims Claims, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSigningKey
	}
	if claims.ExpiresAt == 0 {
		return "", ErrMissingExpiry
	}

	headerJSON, err := json.Marshal(Header{Algorithm: HeaderAlgorithm, Type: HeaderType})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	signingInput := encoding.EncodeToString(headerJSON) + "." + encoding.EncodeToString(claimsJSON)
	return signingInput + "." + encoding.EncodeToString(sign(signingInput, secret)), nil
}

// Decode verifies token against secret and returns its claims.
// Expiry is evaluated against the wall clock; see Codec for an injectable clock.
func Decode(token string, secret []byte) (Claims, error) {
	return decode(token, secret, time.Now())
}

func decode(token string, secret []byte, now time.Time) (Claims, error) {
	if len(secret) == 0 {
		return Claims{}, ErrMissingSigningKey
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Claims{}, ErrMalformedToken
	}

	// The MAC covers the received segments as-is and is compared in its
	// encoded form, so only the canonical signature string is accepted.
	// Nothing from the header or payload is interpreted before this passes.
	expected := encoding.EncodeToString(sign(parts[0]+"."+parts[1], secret))
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return Claims{}, ErrInvalidSignature
	}

	if err := checkHeader(parts[0]); err != nil {
		return Claims{}, err
	}

	claims, err := decodePayload(parts[1])
	if err != nil {
		return Claims{}, err
	}

	if claims.ExpiresAt <= now.Unix() {
		return Claims{}, ErrTokenExpired
	}

	return claims, nil
}

func checkHeader(segment string) error {
	raw, err := encoding.DecodeString(segment)
	if err != nil {
		return fmt.Errorf("%w: header encoding", ErrMalformedToken)
	}

	var header Header
	if err := json.Unmarshal(raw, &header); err != nil {
		return fmt.Errorf("%w: header json", ErrMalformedToken)
	}

	// Reject tokens using unexpected algorithms to prevent algorithm confusion attacks.
	if header.Algorithm != HeaderAlgorithm {
		return fmt.Errorf("%w: unexpected algorithm %q", ErrMalformedToken, header.Algorithm)
	}

	return nil
}

func decodePayload(segment string) (Claims, error) {
	raw, err := encoding.DecodeString(segment)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: payload encoding", ErrInvalidPayload)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return Claims{}, fmt.Errorf("%w: payload is not an object", ErrInvalidPayload)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Claims{}, errors.Join(ErrInvalidPayload, err)
	}
	if p.ExpiresAt == nil {
		return Claims{}, fmt.Errorf("%w: missing exp", ErrInvalidPayload)
	}

	claims := Claims{
		Context:   p.Context,
		ExpiresAt: *p.ExpiresAt,
		IssuedAt:  p.IssuedAt,
	}
	if p.Subject != nil {
		claims.Subject = *p.Subject
	}

	return claims, nil
}

// sign creates an HMAC-SHA256 MAC for the signing input.
func sign(signingInput string, secret []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(signingInput))
	return h.Sum(nil)
}
