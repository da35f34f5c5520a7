// Package logger builds the service's *slog.Logger and provides attribute
// helpers so log keys stay consistent across packages.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "brewauth"),
//		logger.WithLevelName(cfg.Level),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "request rejected",
//		logger.Kind("token_expired"),
//		logger.TokenFingerprint(token),
//	)
//
// Helpers return an empty slog.Attr for empty input, which slog drops, so
// callers need no nil checks. Never log secrets, passwords or full tokens;
// TokenFingerprint exists for the latter.
package logger
