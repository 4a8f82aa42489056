package ports

import (
	"context"

	"github.com/billigi/lending-api/internal/core/domain"
)

// ItemRepository defines persistence operations for item listings.
type ItemRepository interface {
	List(ctx context.Context) ([]*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// Claim atomically moves an available item to borrowed, setting field
	// ("owner" or "borrower") to name. It returns domain.ErrItemNotAvailable
	// when the item exists but is no longer available.
	Claim(ctx context.Context, id, field, name string) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
