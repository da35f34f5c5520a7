package account

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/brewauth/handler"
	"github.com/dmitrymomot/brewauth/pkg/authgate"
	"github.com/dmitrymomot/brewauth/pkg/binder"
	"github.com/dmitrymomot/brewauth/pkg/logger"
	accountsvc "github.com/dmitrymomot/brewauth/svc/account"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Token     string `json:"token"`
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// AuthHandlers serves the token issuance endpoints.
type AuthHandlers struct {
	svc          *accountsvc.Service
	gate         *authgate.Gate
	errorHandler handler.ErrorHandler
}

// AuthOption configures AuthHandlers.
type AuthOption func(*AuthHandlers)

// WithLogger routes request errors to log.
func WithLogger(log *slog.Logger) AuthOption {
	return func(h *AuthHandlers) {
		if log != nil {
			h.errorHandler = handler.NewErrorHandler(log.With(logger.Component("account")))
		}
	}
}

// NewAuthHandlers builds the handlers. gate protects /auth/me.
func NewAuthHandlers(svc *accountsvc.Service, gate *authgate.Gate, opts ...AuthOption) *AuthHandlers {
	h := &AuthHandlers{
		svc:          svc,
		gate:         gate,
		errorHandler: handler.NewErrorHandler(logger.Discard()),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle implements Mountable.
func (h *AuthHandlers) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handler.Wrap[RegisterRequest](h.register,
		handler.WithBinder[RegisterRequest](binder.JSON()),
		handler.WithErrorHandler[RegisterRequest](h.errorHandler),
	))
	r.Post("/login", handler.Wrap[LoginRequest](h.login,
		handler.WithBinder[LoginRequest](binder.JSON()),
		handler.WithErrorHandler[LoginRequest](h.errorHandler),
	))
	r.With(h.gate.Middleware()).Get("/me", handler.Wrap[struct{}](h.me,
		handler.WithErrorHandler[struct{}](h.errorHandler),
	))

	return r
}

func (h *AuthHandlers) register(ctx handler.Context, req RegisterRequest) handler.Response {
	sess, err := h.svc.Register(ctx, accountsvc.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return handler.Error(mapError(err))
	}
	return handler.Created(tokenResponse(sess))
}

func (h *AuthHandlers) login(ctx handler.Context, req LoginRequest) handler.Response {
	sess, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return handler.Error(mapError(err))
	}
	return handler.JSON(tokenResponse(sess))
}

func (h *AuthHandlers) me(ctx handler.Context, _ struct{}) handler.Response {
	user, err := h.svc.Profile(ctx, authgate.SubjectID(ctx))
	if err != nil {
		return handler.Error(mapError(err))
	}
	return handler.JSON(user.Profile())
}

func tokenResponse(sess *accountsvc.Session) TokenResponse {
	return TokenResponse{
		Token:     sess.Token,
		SubjectID: sess.User.ID.String(),
		Email:     sess.User.Email,
		Name:      sess.User.Name,
	}
}

// mapError converts service errors to HTTP errors. Unknown errors pass
// through and become a 500 without exposing their text.
func mapError(err error) error {
	switch {
	case errors.Is(err, accountsvc.ErrInvalidCredentials):
		return handler.ErrUnauthorized.WithMessage(accountsvc.ErrInvalidCredentials.Error())
	case errors.Is(err, accountsvc.ErrEmailAlreadyExists):
		return handler.ErrConflict.WithMessage("email is already registered")
	case errors.Is(err, accountsvc.ErrUserNotFound):
		return handler.ErrNotFound.WithMessage("user not found")
	case errors.Is(err, accountsvc.ErrInvalidEmail),
		errors.Is(err, accountsvc.ErrWeakPassword),
		errors.Is(err, accountsvc.ErrInvalidName):
		return handler.ErrUnprocessableEntity.WithMessage(validationMessage(err))
	default:
		return err
	}
}

func validationMessage(err error) string {
	msg := ""
	for _, e := range []error{accountsvc.ErrInvalidEmail, accountsvc.ErrWeakPassword, accountsvc.ErrInvalidName} {
		if errors.Is(err, e) {
			if msg != "" {
				msg += "; "
			}
			msg += e.Error()
		}
	}
	return msg
}
