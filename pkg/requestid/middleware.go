package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the canonical request id header.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Generator produces a fresh request id.
type Generator func() string

type options struct {
	header    string
	generate  Generator
	trustPeer bool
}

// Option configures the middleware.
type Option func(*options)

// WithHeader overrides the header name used for both reading and echoing the id.
func WithHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.header = name
		}
	}
}

// WithGenerator replaces the default UUIDv4 generator.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		if g != nil {
			o.generate = g
		}
	}
}

// WithoutClientIDs ignores ids supplied by the client and always generates one.
func WithoutClientIDs() Option {
	return func(o *options) { o.trustPeer = false }
}

// New returns middleware that attaches a request id to the request context
// and echoes it in the response header. A client supplied id is reused only
// when it is short and made of [a-zA-Z0-9_-].
func New(opts ...Option) func(http.Handler) http.Handler {
	o := options{header: Header, generate: uuid.NewString, trustPeer: true}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if o.trustPeer {
				id = r.Header.Get(o.header)
			}
			if !Valid(id) {
				id = o.generate()
			}
			w.Header().Set(o.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

// Valid reports whether id may be propagated as-is.
func Valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}
