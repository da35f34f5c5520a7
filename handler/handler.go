package handler

import (
	"net/http"

	"github.com/dmitrymomot/brewauth/pkg/binder"
)

// HandlerFunc handles a decoded request of type R and returns a Response.
//
//	login := handler.HandlerFunc[LoginRequest](
//		func(ctx handler.Context, req LoginRequest) handler.Response {
//			...
//			return handler.JSON(resp)
//		},
//	)
//	r.Post("/auth/login", handler.Wrap(login, handler.WithBinder[LoginRequest](binder.JSON())))
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler writes a response for an error from binding or rendering.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to Wrap is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []binder.Func
	errorHandler ErrorHandler
	decorators   []Decorator[R]
}

// WithBinder appends a request binder. Binders run in order.
func WithBinder[R any](b binder.Func) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if b != nil {
			c.binders = append(c.binders, b)
		}
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{
		errorHandler: NewErrorHandler(nil),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := final(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// Error returns a Response that hands err to the ErrorHandler configured on
// Wrap, so domain failures are classified, logged and written in one place.
func Error(err error) Response {
	return errorResponse{err: err}
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	if e.err == nil {
		return ErrInternalServerError
	}
	return e.err
}
