package ports

import (
	"context"

	"github.com/billigi/lending-api/internal/core/domain"
)

// CreateItemInput is the DTO passed from the transport layer to ItemService.
type CreateItemInput struct {
	Name        string
	Description string
	Type        string
	ActingName  string
}

// ItemService defines use-case operations for loan listings.
type ItemService interface {
	ListItems(ctx context.Context) ([]*domain.Item, error)
	CreateItem(ctx context.Context, in CreateItemInput) (*domain.Item, error)
	ClaimItem(ctx context.Context, id, actingName string) (*domain.Item, error)
	DeleteItem(ctx context.Context, id, actingName string) error
}

// CreateReportInput is the DTO for a new lost-and-found report.
type CreateReportInput struct {
	Title       string
	Description string
	Status      string
	ActingName  string
}

// ReportService defines use-case operations for lost-and-found reports.
type ReportService interface {
	ListReports(ctx context.Context) ([]*domain.Report, error)
	CreateReport(ctx context.Context, in CreateReportInput) (*domain.Report, error)
	DeleteReport(ctx context.Context, id, actingName string) error
}
