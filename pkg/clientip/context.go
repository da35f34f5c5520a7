package clientip

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/brewauth/pkg/logger"
)

type ctxKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ip)
}

// FromContext returns the client ip stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(ctxKey{}).(string)
	return ip
}

// LoggerExtractor adds the client ip to log records written with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ip := FromContext(ctx)
		if ip == "" {
			return slog.Attr{}, false
		}
		return logger.ClientIP(ip), true
	}
}
