package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a sub-router that can be attached under a prefix.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures what the account module mounts.
type RouterOptions struct {
	// Auth serves /auth/register, /auth/login and /auth/me.
	Auth Mountable
}

// Router returns the account module router.
//
//	r := chi.NewRouter()
//	r.Mount("/", account.Router(account.RouterOptions{
//		Auth: account.NewAuthHandlers(svc, gate),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.Auth != nil {
		r.Mount("/auth", opts.Auth.Handle())
	}
	return r
}
