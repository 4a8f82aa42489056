package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/billigi/lending-api/internal/core/domain"
	"github.com/billigi/lending-api/internal/core/ports"
)

// AuthService implements registration, login and server-side sessions.
type AuthService struct {
	repo       ports.AuthRepository
	sessions   ports.SessionStore
	tokens     *sessionTokens
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, sessions ports.SessionStore, secret string, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:       repo,
		sessions:   sessions,
		tokens:     newSessionTokens(secret),
		sessionTTL: sessionTTL,
		log:        log,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.StudentID) == "" {
		return nil, fmt.Errorf("%w: email, password, name and studentId are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		StudentID:    in.StudentID,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.log.Info().Str("email", in.Email).Msg("register rejected: email already exists")
		}
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and opens a new session. Unknown email and
// wrong password are both reported as domain.ErrInvalidCredentials; only the
// log tells them apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Info().Str("email", email).Msg("login failed: user not found")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("email", email).Msg("login failed: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		CreatedAt: now,
	}
	if err := s.sessions.Save(ctx, sess, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.tokens.sign(sess.ID, user.ID, now, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	s.log.Info().Str("email", email).Str("user_id", user.ID).Msg("login succeeded")
	return &ports.LoginResult{Token: token, Session: sess}, nil
}

// Logout destroys the session behind token. A token that does not parse
// names no session, so there is nothing to destroy.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	id, err := s.tokens.parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Info().Str("session_id", id).Msg("logout succeeded")
	return nil
}

// Authenticate resolves a cookie token to its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	id, err := s.tokens.parse(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}
