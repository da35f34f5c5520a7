package account

import (
	"context"

	"github.com/google/uuid"
)

// Storage persists users. Implementations return ErrUserNotFound and
// ErrEmailAlreadyExists so the service can branch with errors.Is.
// Emails are stored in normalized form and are unique.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
