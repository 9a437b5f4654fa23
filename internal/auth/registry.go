package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pharmadesk/domain"
)

// ErrDuplicateUser is returned by Register when the username is taken.
var ErrDuplicateUser = errors.New("user already exists")

// Registry stores user accounts. There is no session state: Authenticate
// answers a single credential check and nothing else.
type Registry struct {
	db *sqlx.DB
}

func NewRegistry(db *sqlx.DB) *Registry {
	return &Registry{db: db}
}

// Register creates a new user with a freshly hashed password.
func (r *Registry) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT COUNT(*) FROM users WHERE username = ?`, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists > 0 {
		return nil, ErrDuplicateUser
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		username, hash, role)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domain.User{ID: id, Username: username, PasswordHash: hash, Role: role}, nil
}

// Authenticate reports whether the username exists and the password matches.
// An unknown username is not an error, just a false result.
func (r *Registry) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, `SELECT id, username, password_hash, role, created_at FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("look up user: %w", err)
	}
	return VerifyPassword(user.PasswordHash, password), nil
}
