package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/brewauth/pkg/binder"
	"github.com/dmitrymomot/brewauth/pkg/logger"
	"github.com/dmitrymomot/brewauth/pkg/requestid"
)

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps err to a status and a message safe to show clients.
// Unknown errors become a generic 500 so internals never leak.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Text()
	case errors.Is(err, binder.ErrBodyTooLarge):
		info.StatusCode = http.StatusRequestEntityTooLarge
		info.Message = "request body too large"
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Message = "expected application/json"
	case errors.Is(err, binder.ErrFailedToParseJSON):
		info.StatusCode = http.StatusBadRequest
		info.Message = "invalid JSON request body"
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// NewErrorHandler returns an ErrorHandler that logs err and writes a
// {"message": ...} body. A nil logger uses slog.Default.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	return func(ctx Context, err error) {
		l := log
		if l == nil {
			l = slog.Default()
		}

		info := classifyError(err)
		r := ctx.Request()
		l.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		WriteError(ctx.ResponseWriter(), info.StatusCode, info.Message)
	}
}
