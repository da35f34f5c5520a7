package account_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/brewauth/pkg/jwt"
	"github.com/dmitrymomot/brewauth/svc/account"
)

// MockStorage is a mock implementation of account.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

// MockIssuer is a mock implementation of account.Issuer.
type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(subject string, metadata map[string]string) (string, jwt.Claims, error) {
	args := m.Called(subject, metadata)
	return args.String(0), args.Get(1).(jwt.Claims), args.Error(2)
}

// MockHasher is a mock implementation of password.Hasher.
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Verify(password, stored string) bool {
	args := m.Called(password, stored)
	return args.Bool(0)
}
