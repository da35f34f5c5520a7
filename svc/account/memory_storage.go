package account

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage keeps users in process memory. Data is lost on restart.
type MemoryStorage struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

// NewMemoryStorage returns an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byID:    make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStorage) CreateUser(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return ErrEmailAlreadyExists
	}

	u := *user
	s.byID[u.ID] = &u
	s.byEmail[u.Email] = u.ID
	return nil
}

func (s *MemoryStorage) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	id, ok := s.byEmail[email]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.GetUserByID(ctx, id)
}

// Ping always succeeds; it lets the memory store stand in for a database in
// health checks.
func (s *MemoryStorage) Ping(context.Context) error {
	return nil
}
