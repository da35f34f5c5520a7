package logger_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brewauth/pkg/logger"
)

type ctxKey struct{}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_JSONDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("app", "brew")))

	log.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug is below default level")

	log.Info("hello")
	rec := decodeLine(t, &buf)
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "brew", rec["app"])
}

func TestNew_Environment(t *testing.T) {
	t.Parallel()

	t.Run("development is text at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("development", "brewauth"))
		log.Debug("dbg")

		out := buf.String()
		assert.Contains(t, out, "msg=dbg")
		assert.Contains(t, out, "service=brewauth")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production is json at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("prod", "brewauth"))
		log.Debug("dbg")
		assert.Zero(t, buf.Len())

		log.Info("ready")
		rec := decodeLine(t, &buf)
		assert.Equal(t, "production", rec["env"])
	})
}

func TestWithLevelName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevelName("warn"))
	log.Info("skip")
	assert.Zero(t, buf.Len())

	var buf2 bytes.Buffer
	log = logger.New(logger.WithOutput(&buf2), logger.WithLevelName("bogus"))
	log.Info("kept")
	assert.NotZero(t, buf2.Len(), "unknown level leaves default")
}

func TestWithFormat_Invalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextValue("trace", ctxKey{}),
		logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
			return slog.String("static", "yes"), true
		}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "t-1")
	log.With("k", "v").InfoContext(ctx, "with context")

	rec := decodeLine(t, &buf)
	assert.Equal(t, "t-1", rec["trace"])
	assert.Equal(t, "yes", rec["static"])
	assert.Equal(t, "v", rec["k"])
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("boom")).Key)

	assert.True(t, logger.SubjectID("").Equal(slog.Attr{}))
	assert.Equal(t, "u1", logger.SubjectID("u1").Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.Equal(t, "request_id", logger.RequestID("abc").Key)

	assert.Equal(t, "token_expired", logger.Kind("token_expired").Value.String())
	assert.Equal(t, int64(401), logger.Status(401).Value.Int64())
	assert.Equal(t, "authgate", logger.Component("authgate").Value.String())
	assert.Equal(t, "login", logger.Event("login").Value.String())
}

func TestTokenFingerprint(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.TokenFingerprint("").Equal(slog.Attr{}))

	const token = "eyJhbGciOiJIUzI1NiJ9.payload.signature"
	sum := sha256.Sum256([]byte(token))

	attr := logger.TokenFingerprint(token)
	assert.Equal(t, "token_fingerprint", attr.Key)
	assert.Equal(t, hex.EncodeToString(sum[:])[:12], attr.Value.String())
	assert.NotContains(t, attr.Value.String(), "eyJ")

	// Tokens sharing the fixed header prefix still fingerprint differently.
	other := logger.TokenFingerprint("eyJhbGciOiJIUzI1NiJ9.other.signature")
	assert.NotEqual(t, attr.Value.String(), other.Value.String())

	assert.Equal(t, attr.Value.String(), logger.TokenFingerprint(token).Value.String())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { logger.Discard().Error("nothing") })
}
