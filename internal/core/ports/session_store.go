package ports

import (
	"context"
	"time"

	"github.com/billigi/lending-api/internal/core/domain"
)

// SessionStore persists sessions with a store-managed expiry.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
