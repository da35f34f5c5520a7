package main

import (
	"time"

	"github.com/dmitrymomot/brewauth/pkg/clientip"
	"github.com/dmitrymomot/brewauth/pkg/config"
	"github.com/dmitrymomot/brewauth/pkg/httpserver"
	"github.com/dmitrymomot/brewauth/pkg/pg"
	"github.com/dmitrymomot/brewauth/pkg/secret"
)

type appConfig struct {
	Env         string        `env:"APP_ENV" envDefault:"development"`
	ServiceName string        `env:"APP_NAME" envDefault:"brewauth"`
	LogLevel    string        `env:"LOG_LEVEL"`
	TokenTTL    time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"168h"`
}

type settings struct {
	app    appConfig
	secret secret.Config
	http   httpserver.Config
	pg     pg.Config
	ip     clientip.Config
}

// loadSettings reads every config section. A missing signing secret is an
// error; the caller must not start serving.
func loadSettings() (settings, error) {
	var s settings

	if err := config.Load(&s.app); err != nil {
		return s, err
	}
	if err := config.Load(&s.http); err != nil {
		return s, err
	}
	if err := config.Load(&s.pg); err != nil {
		return s, err
	}
	if err := config.Load(&s.ip); err != nil {
		return s, err
	}

	sec, err := secret.Load()
	if err != nil {
		return s, err
	}
	s.secret = sec

	return s, nil
}
