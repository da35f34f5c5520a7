package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize caps request bodies at 64 KiB; credentials payloads are tiny.
const DefaultMaxJSONSize int64 = 64 << 10

// Func decodes a request into v.
type Func func(r *http.Request, v any) error

type jsonConfig struct {
	maxSize int64
}

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

// WithMaxSize overrides the body size limit. Non-positive values are ignored.
func WithMaxSize(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// JSON returns a binder that decodes a single application/json object into v.
// Unknown fields and trailing data are rejected.
func JSON(opts ...JSONOption) Func {
	cfg := jsonConfig{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		body := http.MaxBytesReader(nil, r.Body, cfg.maxSize)
		decoder := json.NewDecoder(body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			return classify(err)
		}

		if decoder.More() {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}
		if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return classify(err)
			}
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}

func classify(err error) error {
	var (
		tooLarge  *http.MaxBytesError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &tooLarge):
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: truncated body", ErrFailedToParseJSON)
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("%w: syntax error at offset %d", ErrFailedToParseJSON, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: field %q must be %s", ErrFailedToParseJSON, typeErr.Field, typeErr.Type)
	default:
		return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
}
