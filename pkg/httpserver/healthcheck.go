package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/brewauth/pkg/logger"
)

// Check probes one dependency.
type Check func(context.Context) error

// HealthCheckHandler reports {"status":"ok"} when every named check passes
// and 503 with {"status":"unavailable","failed":[...]} otherwise. With no
// checks it acts as a liveness probe. Checks share a 2s deadline derived from
// the request context.
func HealthCheckHandler(log *slog.Logger, checks map[string]Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		failed := make([]string, 0)
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					slog.String("check", name),
					logger.Error(err),
				)
				failed = append(failed, name)
			}
		}

		body := map[string]any{"status": "ok"}
		status := http.StatusOK
		if len(failed) > 0 {
			status = http.StatusServiceUnavailable
			body = map[string]any{"status": "unavailable", "failed": failed}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
