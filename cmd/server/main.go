// Command server runs the brewauth HTTP API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/brewauth/pkg/clientip"
	"github.com/dmitrymomot/brewauth/pkg/httpserver"
	"github.com/dmitrymomot/brewauth/pkg/logger"
	"github.com/dmitrymomot/brewauth/pkg/requestid"
	"github.com/dmitrymomot/brewauth/pkg/secret"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := loadSettings()

	log := logger.New(
		logger.WithEnvironment(s.app.Env, s.app.ServiceName),
		logger.WithLevelName(s.app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err != nil {
		if errors.Is(err, secret.ErrMissingSecret) {
			log.ErrorContext(ctx, "AUTH_SIGNING_SECRET is not set, refusing to start", logger.Error(err))
		} else {
			log.ErrorContext(ctx, "failed to load configuration", logger.Error(err))
		}
		return err
	}
	if s.secret.IsWeak() {
		log.WarnContext(ctx, "AUTH_SIGNING_SECRET is shorter than recommended",
			logger.Component("secret"),
			slog.Int("recommended_bytes", secret.RecommendedLength),
		)
	}

	storage, checks, closeStorage, err := openStorage(ctx, s.pg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to open storage", logger.Error(err))
		return err
	}
	defer closeStorage()

	router, err := newRouter(deps{
		log:      log,
		secret:   s.secret,
		tokenTTL: s.app.TokenTTL,
		storage:  storage,
		checks:   checks,
		registry: newRegistry(),
		clientIP: clientip.NewFromConfig(s.ip),
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to build router", logger.Error(err))
		return err
	}

	srv := httpserver.NewFromConfig(s.http, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "http server failed", logger.Error(err))
		return err
	}
	return nil
}
