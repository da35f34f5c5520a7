package authgate

import (
	"errors"

	"github.com/dmitrymomot/brewauth/pkg/jwt"
)

// Result is the outcome of authenticating one request. Exactly one of
// SubjectID (success) or Kind (rejection) is set.
type Result struct {
	SubjectID string
	Claims    jwt.Claims

	Kind   Kind
	Status int
	Err    error
}

// Authenticated reports whether the request carried a valid token.
func (r Result) Authenticated() bool {
	return r.Kind == KindNone && r.SubjectID != ""
}

// Message is the client-facing rejection text, empty on success.
func (r Result) Message() string {
	return r.Kind.Message()
}

func authenticated(claims jwt.Claims) Result {
	return Result{
		SubjectID: claims.Subject,
		Claims:    claims,
		Status:    KindNone.Status(),
	}
}

// rejected joins the kind's sentinel with the cause so both stay reachable
// through errors.Is.
func rejected(kind Kind, cause error) Result {
	err := kind.sentinel()
	if cause != nil {
		err = errors.Join(err, cause)
	}
	return Result{
		Kind:   kind,
		Status: kind.Status(),
		Err:    err,
	}
}
