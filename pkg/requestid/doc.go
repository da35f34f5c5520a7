// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUIDv4, stores it in the request context and echoes it back in
// the response. LoggerExtractor plugs the id into pkg/logger so every record
// written with the request context carries "request_id".
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
