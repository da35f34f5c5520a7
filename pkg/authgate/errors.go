package authgate

import (
	"errors"
	"net/http"
)

// Kind classifies why a request was rejected.
type Kind string

const (
	KindNone                     Kind = ""
	KindMissingOrMalformedHeader Kind = "missing_or_malformed_header"
	KindConfiguration            Kind = "configuration"
	KindInvalidToken             Kind = "invalid_token"
	KindTokenExpired             Kind = "token_expired"
	KindInvalidPayload           Kind = "invalid_payload"
)

var (
	ErrMissingOrMalformedHeader = errors.New("authgate: missing or malformed authorization header")
	ErrConfiguration            = errors.New("authgate: signing secret is not configured")
	ErrInvalidToken             = errors.New("authgate: invalid token")
	ErrTokenExpired             = errors.New("authgate: token has expired")
	ErrInvalidPayload           = errors.New("authgate: token has no subject")
)

// Status returns the HTTP status code a rejection of this kind maps to.
func (k Kind) Status() int {
	switch k {
	case KindNone:
		return http.StatusOK
	case KindConfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusUnauthorized
	}
}

// Message is the client-facing text for a rejection of this kind.
func (k Kind) Message() string {
	switch k {
	case KindMissingOrMalformedHeader:
		return "missing or malformed authorization header"
	case KindConfiguration:
		return "authentication is not configured"
	case KindTokenExpired:
		return "token has expired"
	case KindInvalidPayload:
		return "invalid token payload"
	case KindInvalidToken:
		return "invalid token"
	default:
		return ""
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissingOrMalformedHeader:
		return ErrMissingOrMalformedHeader
	case KindConfiguration:
		return ErrConfiguration
	case KindTokenExpired:
		return ErrTokenExpired
	case KindInvalidPayload:
		return ErrInvalidPayload
	default:
		return ErrInvalidToken
	}
}
