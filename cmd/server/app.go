package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/brewauth/handler"
	"github.com/dmitrymomot/brewauth/modules/account"
	"github.com/dmitrymomot/brewauth/pkg/authgate"
	"github.com/dmitrymomot/brewauth/pkg/clientip"
	"github.com/dmitrymomot/brewauth/pkg/httpserver"
	"github.com/dmitrymomot/brewauth/pkg/jwt"
	"github.com/dmitrymomot/brewauth/pkg/logger"
	"github.com/dmitrymomot/brewauth/pkg/pg"
	"github.com/dmitrymomot/brewauth/pkg/requestid"
	"github.com/dmitrymomot/brewauth/pkg/secret"
	accountsvc "github.com/dmitrymomot/brewauth/svc/account"
)

// deps are the runtime collaborators the router needs.
type deps struct {
	log      *slog.Logger
	secret   secret.Config
	tokenTTL time.Duration
	storage  accountsvc.Storage
	checks   map[string]httpserver.Check
	registry *prometheus.Registry
	clientIP *clientip.Resolver
}

// newRouter builds the HTTP surface and mounts the account module next to
// /health and /metrics.
func newRouter(d deps) (http.Handler, error) {
	codec, err := jwt.NewCodec(d.secret.Key(), jwt.WithTTL(d.tokenTTL))
	if err != nil {
		return nil, fmt.Errorf("token codec: %w", err)
	}

	gate := authgate.New(d.secret,
		authgate.WithLogger(d.log),
		authgate.WithRegisterer(d.registry),
	)
	svc := accountsvc.NewService(d.storage, codec, accountsvc.WithLogger(d.log))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(d.clientIP.Middleware)
	r.Use(middleware.Recoverer)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handler.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", httpserver.HealthCheckHandler(d.log, d.checks))
	r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{Registry: d.registry}))
	r.Mount("/", account.Router(account.RouterOptions{
		Auth: account.NewAuthHandlers(svc, gate, account.WithLogger(d.log)),
	}))

	return r, nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// openStorage returns the Postgres store when PG_CONN_URL is set and the
// in-memory store otherwise, plus the health checks and a cleanup func.
func openStorage(ctx context.Context, cfg pg.Config, log *slog.Logger) (accountsvc.Storage, map[string]httpserver.Check, func(), error) {
	if !cfg.Enabled() {
		log.WarnContext(ctx, "PG_CONN_URL is not set, users are kept in memory and lost on restart",
			logger.Component("storage"),
		)
		mem := accountsvc.NewMemoryStorage()
		return mem, map[string]httpserver.Check{"storage": mem.Ping}, func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := pg.Migrate(ctx, pool, accountsvc.Migrations, accountsvc.MigrationsDir, cfg, log); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	checks := map[string]httpserver.Check{"postgres": pg.Healthcheck(pool)}
	return accountsvc.NewPostgresStorage(pool), checks, pool.Close, nil
}
