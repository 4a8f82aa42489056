package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/billigi/lending-api/internal/core/domain"
	"github.com/billigi/lending-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "uid-" + user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubSessionStore struct {
	sessions map[string]domain.Session
	lastTTL  time.Duration
	saveErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.lastTTL = ttl
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func newTestAuthService() (*AuthService, *stubAuthRepo, *stubSessionStore) {
	repo := newStubAuthRepo()
	store := newStubSessionStore()
	return NewAuthService(repo, store, "secret", time.Hour, discardLogger), repo, store
}

func registerInput(email, password, name string) ports.RegisterInput {
	return ports.RegisterInput{Email: email, Password: password, Name: name, StudentID: "24-101001"}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), registerInput("alice@example.com", "pass123", "Alice"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Name != "Alice" || user.StudentID != "24-101001" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService()

	cases := []ports.RegisterInput{
		{Password: "p", Name: "n", StudentID: "s"},
		{Email: "e@x.com", Name: "n", StudentID: "s"},
		{Email: "e@x.com", Password: "p", StudentID: "s"},
		{Email: "e@x.com", Password: "p", Name: "n"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), registerInput("bob@example.com", "pass", "Bob")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("bob@example.com", "pass2", "Bobby")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, store := newTestAuthService()

	if _, err := svc.Register(context.Background(), registerInput("carol@example.com", "s3cret", "Carol")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if res.Session.UserName != "Carol" {
		t.Fatalf("expected display name Carol, got %q", res.Session.UserName)
	}
	if _, ok := store.sessions[res.Session.ID]; !ok {
		t.Fatalf("session was not persisted")
	}
	if store.lastTTL != time.Hour {
		t.Fatalf("expected session ttl 1h, got %v", store.lastTTL)
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.ID != res.Session.ID {
		t.Fatalf("token jti %q does not name session %q", claims.ID, res.Session.ID)
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()
	_, _ = svc.Register(context.Background(), registerInput("dave@example.com", "goodpass", "Dave"))

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknown := svc.Login(context.Background(), "ghost@example.com", "pass")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknown)
	}
}

func TestAuthService_Login_SessionStoreError(t *testing.T) {
	svc, _, store := newTestAuthService()
	_, _ = svc.Register(context.Background(), registerInput("erin@example.com", "pw", "Erin"))
	store.saveErr = errors.New("redis down")

	if _, err := svc.Login(context.Background(), "erin@example.com", "pw"); err == nil {
		t.Fatal("expected error when session store fails")
	}
}

func TestAuthService_AuthenticateAndLogout(t *testing.T) {
	svc, _, store := newTestAuthService()
	_, _ = svc.Register(context.Background(), registerInput("frank@example.com", "pw", "Frank"))
	res, err := svc.Login(context.Background(), "frank@example.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	sess, err := svc.Authenticate(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if sess.UserName != "Frank" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := svc.Logout(context.Background(), res.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("expected session to be destroyed, %d left", len(store.sessions))
	}
	if _, err := svc.Authenticate(context.Background(), res.Token); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}
}

func TestAuthService_Authenticate_RejectsForeignToken(t *testing.T) {
	svc, _, store := newTestAuthService()
	store.sessions["sid-1"] = domain.Session{ID: "sid-1", UserName: "Mallory"}

	forged, err := newSessionTokens("other-secret").sign("sid-1", "uid", time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), forged); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), ""); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for empty token, got %v", err)
	}
}

func TestAuthService_Logout_GarbageTokenIsNoop(t *testing.T) {
	svc, _, _ := newTestAuthService()
	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
