package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/brewauth/pkg/pg"
)

// DB is the subset of *pgxpool.Pool used by PostgresStorage.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorage stores users in the users table created by Migrations.
type PostgresStorage struct {
	db DB
}

// NewPostgresStorage wraps db.
func NewPostgresStorage(db DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const (
	insertUserSQL = `INSERT INTO users (id, email, name, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)`

	selectUserColumns = `SELECT id, email, name, password_hash, created_at FROM users`
)

func (s *PostgresStorage) CreateUser(ctx context.Context, user *User) error {
	_, err := s.db.Exec(ctx, insertUserSQL,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrEmailAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.scanUser(s.db.QueryRow(ctx, selectUserColumns+` WHERE id = $1`, id))
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.scanUser(s.db.QueryRow(ctx, selectUserColumns+` WHERE email = $1`, email))
}

func (s *PostgresStorage) scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if pg.IsNotFoundError(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}
