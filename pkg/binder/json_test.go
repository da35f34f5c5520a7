package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brewauth/pkg/binder"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func newRequest(contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes object", func(t *testing.T) {
		t.Parallel()

		var v credentials
		err := bind(newRequest("application/json; charset=utf-8", `{"email":"a@b.co","password":"  spaced  "}`), &v)
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", v.Email)
		assert.Equal(t, "  spaced  ", v.Password)
	})

	tests := []struct {
		name        string
		contentType string
		body        string
		want        error
	}{
		{"missing content type", "", `{}`, binder.ErrMissingContentType},
		{"wrong media type", "text/plain", `{}`, binder.ErrUnsupportedMediaType},
		{"broken media type", "application/json; =", `{}`, binder.ErrUnsupportedMediaType},
		{"empty body", "application/json", ``, binder.ErrFailedToParseJSON},
		{"syntax error", "application/json", `{"email":}`, binder.ErrFailedToParseJSON},
		{"truncated", "application/json", `{"email":"a@b.co"`, binder.ErrFailedToParseJSON},
		{"wrong type", "application/json", `{"email":42}`, binder.ErrFailedToParseJSON},
		{"unknown field", "application/json", `{"email":"a","role":"admin"}`, binder.ErrFailedToParseJSON},
		{"trailing data", "application/json", `{"email":"a"} {"email":"b"}`, binder.ErrFailedToParseJSON},
		{"trailing garbage", "application/json", `{"email":"a"} x`, binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var v credentials
			err := bind(newRequest(tt.contentType, tt.body), &v)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJSON_MaxSize(t *testing.T) {
	t.Parallel()

	bind := binder.JSON(binder.WithMaxSize(32))
	body := `{"email":"` + strings.Repeat("a", 64) + `"}`

	var v credentials
	err := bind(newRequest("application/json", body), &v)
	assert.ErrorIs(t, err, binder.ErrBodyTooLarge)

	err = bind(newRequest("application/json", `{"email":"a"}`), &v)
	assert.NoError(t, err)
}
