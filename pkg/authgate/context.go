package authgate

import (
	"context"

	"github.com/dmitrymomot/brewauth/pkg/jwt"
)

type subjectKey struct{}

// WithSubjectID stores the authenticated subject id in ctx.
func WithSubjectID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, subjectKey{}, id)
}

// SubjectID returns the subject id set by the middleware, or "".
func SubjectID(ctx context.Context) string {
	id, _ := ctx.Value(subjectKey{}).(string)
	return id
}

// ClaimsFromContext returns the verified claims set by the middleware.
func ClaimsFromContext(ctx context.Context) (jwt.Claims, bool) {
	return jwt.ClaimsFromContext(ctx)
}
