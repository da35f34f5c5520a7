package authgate_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brewauth/pkg/authgate"
	"github.com/dmitrymomot/brewauth/pkg/jwt"
	"github.com/dmitrymomot/brewauth/pkg/logger"
	"github.com/dmitrymomot/brewauth/pkg/secret"
)

var (
	testKey = []byte("test-signing-secret-0123456789abcdef")
	epoch   = time.Unix(1_700_000_000, 0)
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newGate(t *testing.T, opts ...authgate.Option) *authgate.Gate {
	t.Helper()

	cfg, err := secret.New(testKey)
	require.NoError(t, err)

	opts = append([]authgate.Option{
		authgate.WithLogger(logger.Discard()),
		authgate.WithClock(fixedClock(epoch)),
	}, opts...)
	return authgate.New(cfg, opts...)
}

func issue(t *testing.T, key []byte, subject string, ttl time.Duration) string {
	t.Helper()

	codec, err := jwt.NewCodec(key, jwt.WithClock(fixedClock(epoch)), jwt.WithTTL(ttl))
	require.NoError(t, err)
	token, _, err := codec.Issue(subject, map[string]string{"email": "a@b.co"})
	require.NoError(t, err)
	return token
}

func request(header ...string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	for _, h := range header {
		req.Header.Add(authgate.AuthorizationHeader, h)
	}
	return req
}

func TestGate_Authenticate(t *testing.T) {
	t.Parallel()

	gate := newGate(t)

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		res := gate.Authenticate(request("Bearer " + issue(t, testKey, "u1", jwt.DefaultTTL)))
		require.True(t, res.Authenticated())
		assert.Equal(t, "u1", res.SubjectID)
		assert.Equal(t, authgate.KindNone, res.Kind)
		assert.Equal(t, http.StatusOK, res.Status)
		assert.NoError(t, res.Err)
		email, ok := res.Claims.ContextString("email")
		assert.True(t, ok)
		assert.Equal(t, "a@b.co", email)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		res := gate.Authenticate(request())
		assert.False(t, res.Authenticated())
		assert.Equal(t, authgate.KindMissingOrMalformedHeader, res.Kind)
		assert.Equal(t, http.StatusUnauthorized, res.Status)
		assert.ErrorIs(t, res.Err, authgate.ErrMissingOrMalformedHeader)
	})

	t.Run("malformed headers", func(t *testing.T) {
		t.Parallel()

		token := issue(t, testKey, "u1", time.Hour)
		for _, h := range []string{
			"Basic dXNlcjpwYXNz",
			"bearer " + token,
			"BEARER " + token,
			"Bearer",
			"Bearer ",
			"Bearer  " + token,
			"Bearer " + token + " extra",
			"Token " + token,
			token,
		} {
			res := gate.Authenticate(request(h))
			assert.Equal(t, authgate.KindMissingOrMalformedHeader, res.Kind, "header %q", h)
			assert.Equal(t, http.StatusUnauthorized, res.Status)
		}
	})

	t.Run("duplicate headers", func(t *testing.T) {
		t.Parallel()

		token := issue(t, testKey, "u1", time.Hour)
		res := gate.Authenticate(request("Bearer "+token, "Bearer "+token))
		assert.Equal(t, authgate.KindMissingOrMalformedHeader, res.Kind)
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		res := gate.Authenticate(request("Bearer garbage"))
		assert.Equal(t, authgate.KindInvalidToken, res.Kind)
		assert.Equal(t, http.StatusUnauthorized, res.Status)
		assert.Equal(t, "invalid token", res.Message())
		assert.ErrorIs(t, res.Err, authgate.ErrInvalidToken)
		assert.ErrorIs(t, res.Err, jwt.ErrMalformedToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		res := gate.Authenticate(request("Bearer " + issue(t, []byte("some-other-secret"), "u1", time.Hour)))
		assert.Equal(t, authgate.KindInvalidToken, res.Kind)
		assert.ErrorIs(t, res.Err, jwt.ErrInvalidSignature)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		claims := jwt.Claims{Subject: "u1", ExpiresAt: epoch.Add(-time.Second).Unix()}
		token, err := jwt.Encode(claims, testKey)
		require.NoError(t, err)

		res := gate.Authenticate(request("Bearer " + token))
		assert.Equal(t, authgate.KindTokenExpired, res.Kind)
		assert.Equal(t, http.StatusUnauthorized, res.Status)
		assert.Equal(t, "token has expired", res.Message())
		assert.ErrorIs(t, res.Err, authgate.ErrTokenExpired)
		assert.ErrorIs(t, res.Err, jwt.ErrTokenExpired)
	})

	t.Run("empty subject", func(t *testing.T) {
		t.Parallel()

		token, err := jwt.Encode(jwt.Claims{ExpiresAt: epoch.Add(time.Hour).Unix()}, testKey)
		require.NoError(t, err)

		res := gate.Authenticate(request("Bearer " + token))
		assert.Equal(t, authgate.KindInvalidPayload, res.Kind)
		assert.Equal(t, http.StatusUnauthorized, res.Status)
		assert.ErrorIs(t, res.Err, authgate.ErrInvalidPayload)
	})

	t.Run("payload without expiry", func(t *testing.T) {
		t.Parallel()

		token := signed(t, `{"sub":"u1"}`)
		res := gate.Authenticate(request("Bearer " + token))
		assert.Equal(t, authgate.KindInvalidToken, res.Kind)
		assert.ErrorIs(t, res.Err, jwt.ErrInvalidPayload)
	})
}

func TestGate_WithoutSecret(t *testing.T) {
	t.Parallel()

	gate := authgate.New(secret.Config{}, authgate.WithLogger(logger.Discard()))

	res := gate.Authenticate(request("Bearer " + issue(t, testKey, "u1", time.Hour)))
	assert.Equal(t, authgate.KindConfiguration, res.Kind)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.ErrorIs(t, res.Err, authgate.ErrConfiguration)

	// Header problems are reported before configuration problems.
	res = gate.Authenticate(request())
	assert.Equal(t, authgate.KindMissingOrMalformedHeader, res.Kind)
}

func TestGate_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	const ttl = 604800 * time.Second
	token := issue(t, testKey, "u1", ttl)
	cfg, err := secret.New(testKey)
	require.NoError(t, err)

	at := func(offset time.Duration) authgate.Result {
		gate := authgate.New(cfg,
			authgate.WithLogger(logger.Discard()),
			authgate.WithClock(fixedClock(epoch.Add(offset))),
		)
		return gate.Authenticate(request("Bearer " + token))
	}

	assert.True(t, at(0).Authenticated())
	assert.True(t, at(ttl-time.Second).Authenticated())
	assert.Equal(t, authgate.KindTokenExpired, at(ttl).Kind)
	assert.Equal(t, authgate.KindTokenExpired, at(ttl+time.Second).Kind)
}

func TestGate_Concurrent(t *testing.T) {
	t.Parallel()

	gate := newGate(t)
	good := request("Bearer " + issue(t, testKey, "u1", time.Hour))
	bad := request("Bearer garbage")

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.Equal(t, "u1", gate.Authenticate(good).SubjectID)
			} else {
				assert.Equal(t, authgate.KindInvalidToken, gate.Authenticate(bad).Kind)
			}
		}(i)
	}
	wg.Wait()
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	gate := newGate(t)

	protected := gate.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authgate.ClaimsFromContext(r.Context())
		require.True(t, ok)
		token, ok := jwt.TokenFromContext(r.Context())
		require.True(t, ok)
		assert.NotEmpty(t, token)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"subject": authgate.SubjectID(r.Context()),
			"claims":  claims.Subject,
		})
	}))

	t.Run("authenticated request reaches handler", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, request("Bearer "+issue(t, testKey, "u1", time.Hour)))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "u1", body["subject"])
		assert.Equal(t, "u1", body["claims"])
	})

	tests := []struct {
		name    string
		headers []string
		status  int
		message string
	}{
		{"missing header", nil, http.StatusUnauthorized, "missing or malformed authorization header"},
		{"garbage", []string{"Bearer garbage"}, http.StatusUnauthorized, "invalid token"},
		{"wrong scheme", []string{"Basic Zm9vOmJhcg=="}, http.StatusUnauthorized, "missing or malformed authorization header"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, request(tt.headers...))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, rec.Body.String())
		})
	}

	t.Run("unconfigured gate returns 500", func(t *testing.T) {
		t.Parallel()

		called := false
		h := authgate.New(secret.Config{}, authgate.WithLogger(logger.Discard())).Require(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }),
		)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, request("Bearer "+issue(t, testKey, "u1", time.Hour)))

		assert.False(t, called)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
		assert.JSONEq(t, `{"message":"authentication is not configured"}`, rec.Body.String())
	})
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, authgate.KindNone.Status())
	assert.Equal(t, http.StatusInternalServerError, authgate.KindConfiguration.Status())
	for _, k := range []authgate.Kind{
		authgate.KindMissingOrMalformedHeader,
		authgate.KindInvalidToken,
		authgate.KindTokenExpired,
		authgate.KindInvalidPayload,
	} {
		assert.Equal(t, http.StatusUnauthorized, k.Status(), k)
		assert.NotEmpty(t, k.Message(), k)
	}
	assert.False(t, errors.Is(authgate.ErrInvalidToken, authgate.ErrTokenExpired))
}
