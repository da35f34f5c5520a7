package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/brewauth/pkg/logger"
)

// LoggerExtractor adds the request id to every log record written with a
// request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}
