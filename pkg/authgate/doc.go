// Package authgate is the per-request authorization check every protected
// handler goes through.
//
// A request is authenticated when it carries exactly one
// "Authorization: Bearer <token>" header whose token verifies against the
// process signing secret, has not expired and names a subject. Every other
// request is rejected with a Kind:
//
//	KindMissingOrMalformedHeader  401  no header, wrong scheme, empty token
//	KindConfiguration             500  gate built without a secret
//	KindTokenExpired              401  "token has expired"
//	KindInvalidToken              401  "invalid token", any other decode failure
//	KindInvalidPayload            401  token without a subject
//
// Result.Err joins the kind's sentinel with the codec error, so callers can
// still test for jwt.ErrMalformedToken or jwt.ErrInvalidSignature.
//
// Usage:
//
//	gate := authgate.New(secretCfg,
//		authgate.WithLogger(log),
//		authgate.WithRegisterer(prometheus.DefaultRegisterer),
//	)
//	r.With(gate.Middleware()).Get("/auth/me", me)
//
//	func me(w http.ResponseWriter, r *http.Request) {
//		id := authgate.SubjectID(r.Context())
//		...
//	}
//
// Decisions are counted in brewauth_authgate_decisions_total{outcome}.
package authgate
