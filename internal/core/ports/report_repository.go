package ports

import (
	"context"

	"github.com/billigi/lending-api/internal/core/domain"
)

// ReportRepository defines persistence operations for lost-and-found reports.
type ReportRepository interface {
	List(ctx context.Context) ([]*domain.Report, error)
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	Delete(ctx context.Context, id string) error
}
