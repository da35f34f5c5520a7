// Package httpserver runs an http.Server with sane timeouts and graceful
// shutdown.
//
// Run blocks until the context is cancelled or the process receives SIGINT or
// SIGTERM, then calls http.Server.Shutdown bounded by the shutdown timeout.
// Configuration comes from HTTP_* environment variables through Config and
// NewFromConfig, or from Option values.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves a JSON health endpoint over a set of named checks.
package httpserver
