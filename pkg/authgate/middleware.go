package authgate

import (
	"net/http"

	"github.com/dmitrymomot/brewauth/handler"
	"github.com/dmitrymomot/brewauth/pkg/jwt"
)

// Middleware rejects unauthenticated requests with the result's status and
// a {"message": ...} body. Authenticated requests continue with the subject
// id, claims and raw token in their context.
func (g *Gate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := g.Authenticate(r)
			if !res.Authenticated() {
				g.logRejection(r, res)
				writeRejection(w, res.Status, res.Message())
				return
			}

			ctx := WithSubjectID(r.Context(), res.SubjectID)
			ctx = jwt.WithClaims(ctx, res.Claims)
			if token, ok := BearerToken(r); ok {
				ctx = jwt.WithToken(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require is Middleware for a single handler.
func (g *Gate) Require(next http.Handler) http.Handler {
	return g.Middleware()(next)
}

// writeRejection adds the auth specific headers and writes the shared
// {"message": ...} body.
func writeRejection(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Cache-Control", "no-store")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="brewauth"`)
	}
	handler.WriteError(w, status, message)
}
