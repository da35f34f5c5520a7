package secret_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brewauth/pkg/config"
	"github.com/dmitrymomot/brewauth/pkg/secret"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("with key", func(t *testing.T) {
		t.Parallel()

		cfg, err := secret.New([]byte("k"))
		require.NoError(t, err)
		assert.False(t, cfg.IsZero())
		assert.True(t, cfg.IsWeak())
		assert.Equal(t, []byte("k"), cfg.Key())
	})

	t.Run("with empty key", func(t *testing.T) {
		t.Parallel()

		cfg, err := secret.New(nil)
		require.ErrorIs(t, err, secret.ErrMissingSecret)
		assert.True(t, cfg.IsZero())
	})

	t.Run("strong key", func(t *testing.T) {
		t.Parallel()

		cfg, err := secret.New([]byte(strings.Repeat("x", secret.RecommendedLength)))
		require.NoError(t, err)
		assert.False(t, cfg.IsWeak())
	})
}

func TestConfig_KeyReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg, err := secret.New([]byte("immutable"))
	require.NoError(t, err)

	key := cfg.Key()
	key[0] = 'X'
	assert.Equal(t, []byte("immutable"), cfg.Key())
}

func TestConfig_String(t *testing.T) {
	t.Parallel()

	cfg, err := secret.New([]byte("super-secret-value"))
	require.NoError(t, err)

	for _, out := range []string{cfg.String(), fmt.Sprint(cfg), fmt.Sprintf("%v", cfg), fmt.Sprintf("%#v", cfg)} {
		assert.NotContains(t, out, "super-secret-value")
	}
	assert.Equal(t, "secret.Config(unset)", secret.Config{}.String())
}

func TestLoad(t *testing.T) {
	t.Run("from environment", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("AUTH_SIGNING_SECRET", "env-secret")

		cfg, err := secret.Load()
		require.NoError(t, err)
		assert.Equal(t, []byte("env-secret"), cfg.Key())
	})

	t.Run("missing is an error", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("AUTH_SIGNING_SECRET", "")
		require.NoError(t, os.Unsetenv("AUTH_SIGNING_SECRET"))

		cfg, err := secret.Load()
		require.ErrorIs(t, err, secret.ErrMissingSecret)
		assert.True(t, cfg.IsZero())
	})

	t.Run("empty is an error", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("AUTH_SIGNING_SECRET", "")

		_, err := secret.Load()
		require.ErrorIs(t, err, secret.ErrMissingSecret)

		assert.Panics(t, func() { secret.MustLoad() })
	})
}
