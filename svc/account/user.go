package account

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. PasswordHash is the stored credential in
// password package format and never leaves the service.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the client-facing view of a user.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the public fields of u.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

// Session is the result of a successful registration or login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}
