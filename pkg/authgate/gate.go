package authgate

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/brewauth/pkg/jwt"
	"github.com/dmitrymomot/brewauth/pkg/logger"
	"github.com/dmitrymomot/brewauth/pkg/secret"
)

// AuthorizationHeader is the request header the gate reads.
const AuthorizationHeader = "Authorization"

const bearerPrefix = "Bearer "

// Gate decides, per request, whether a bearer token is valid.
// It holds no per-request state and is safe for concurrent use.
type Gate struct {
	codec   *jwt.Codec
	log     *slog.Logger
	metrics *metrics
}

type options struct {
	log *slog.Logger
	reg prometheus.Registerer
	now func() time.Time
}

// Option configures a Gate.
type Option func(*options)

// WithLogger sets the logger used for rejection records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRegisterer registers the gate's counters on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.reg = reg }
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New builds a gate verifying tokens with cfg's secret. A zero cfg is
// accepted so the failure surfaces as KindConfiguration on every request
// instead of a nil dereference; servers should refuse to start before that.
func New(cfg secret.Config, opts ...Option) *Gate {
	o := options{log: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Gate{
		log:     o.log.With(logger.Component("authgate")),
		metrics: newMetrics(o.reg),
	}
	if !cfg.IsZero() {
		// NewCodec only fails on an empty key, ruled out above.
		g.codec, _ = jwt.NewCodec(cfg.Key(), jwt.WithClock(o.now))
	}

	return g
}

// Authenticate classifies r. It never writes to the response.
func (g *Gate) Authenticate(r *http.Request) Result {
	res := g.authenticate(r)
	g.metrics.observe(res)
	return res
}

func (g *Gate) authenticate(r *http.Request) Result {
	token, ok := BearerToken(r)
	if !ok {
		return rejected(KindMissingOrMalformedHeader, nil)
	}

	if g.codec == nil {
		return rejected(KindConfiguration, nil)
	}

	claims, err := g.codec.Decode(token)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return rejected(KindTokenExpired, err)
	case err != nil:
		return rejected(KindInvalidToken, err)
	}

	if claims.Subject == "" {
		return rejected(KindInvalidPayload, nil)
	}

	return authenticated(claims)
}

// BearerToken extracts the token from a single "Authorization: Bearer <token>"
// header. The scheme is case-sensitive and exactly one space must separate it
// from a non-empty token.
func BearerToken(r *http.Request) (string, bool) {
	values := r.Header.Values(AuthorizationHeader)
	if len(values) != 1 {
		return "", false
	}

	token, ok := strings.CutPrefix(values[0], bearerPrefix)
	if !ok || token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}

	return token, true
}

// logRejection relies on the logger's context extractors for request id and
// client ip.
func (g *Gate) logRejection(r *http.Request, res Result) {
	ctx := r.Context()
	attrs := []slog.Attr{
		logger.Kind(string(res.Kind)),
		logger.Status(res.Status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	}
	if token, ok := BearerToken(r); ok {
		attrs = append(attrs, logger.TokenFingerprint(token))
	}

	if res.Kind == KindConfiguration {
		g.log.LogAttrs(ctx, slog.LevelError, "authentication unavailable", attrs...)
		return
	}

	attrs = append(attrs, logger.Error(res.Err))
	g.log.LogAttrs(ctx, slog.LevelWarn, "unauthorized request", attrs...)
}
