package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
)

// fingerprintLength is how many hex characters of the token digest are logged.
const fingerprintLength = 12

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// SubjectID records the authenticated subject under the key "subject_id".
func SubjectID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("subject_id", id)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the client address under the key "client_ip".
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// Kind records a failure classification under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// TokenFingerprint logs a short hex prefix of sha256(token) under the key
// "token_fingerprint". Distinct tokens get distinct values; no part of the
// token itself is logged.
func TokenFingerprint(token string) slog.Attr {
	if token == "" {
		return slog.Attr{}
	}
	sum := sha256.Sum256([]byte(token))
	return slog.String("token_fingerprint", hex.EncodeToString(sum[:])[:fingerprintLength])
}
