package ports

import (
	"context"

	"github.com/billigi/lending-api/internal/core/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	StudentID string
}

// LoginResult is returned on a successful login. Token is the signed value
// placed in the session cookie.
type LoginResult struct {
	Token   string
	Session *domain.Session
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}
