// Package clientip resolves the originating client address of a request.
//
// By default only the TCP peer address is used. Proxy headers such as
// X-Forwarded-For or CF-Connecting-IP are honored only when listed in
// Config.Headers (CLIENT_IP_HEADERS), since clients can set them freely.
//
//	res := clientip.NewFromConfig(cfg)
//	r.Use(res.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
