package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/billigi/lending-api/internal/core/domain"
	"github.com/billigi/lending-api/internal/core/ports"
)

type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

// ListItems returns every listing in storage order.
func (s *ItemService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// CreateItem posts a new available listing. The acting user becomes the
// owner of a lending item or the borrower of a borrowing request.
func (s *ItemService) CreateItem(ctx context.Context, in ports.CreateItemInput) (*domain.Item, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: name and description are required", domain.ErrValidation)
	}
	if in.ActingName == "" {
		return nil, domain.ErrUnauthenticated
	}
	typ, err := domain.ParseItemType(in.Type)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Create(ctx, domain.NewItem(in.Name, in.Description, typ, in.ActingName))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Str("item_id", item.ID).Str("type", string(item.Type)).Str("by", in.ActingName).Msg("item created")
	return item, nil
}

// ClaimItem fulfils a listing on behalf of actingName, who must not already
// be named on it: a lending item gets a borrower, a borrowing request gets
// an owner. The store applies the change
// only while the item is still available, so of two racing claims exactly
// one wins and the other gets domain.ErrItemNotAvailable.
func (s *ItemService) ClaimItem(ctx context.Context, id, actingName string) (*domain.Item, error) {
	if actingName == "" {
		return nil, domain.ErrUnauthenticated
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.IsParty(actingName) {
		s.logger.Warn().Str("item_id", id).Str("by", actingName).Msg("claim refused: already a party to the item")
		return nil, domain.ErrForbidden
	}
	if current.Status != domain.ItemAvailable {
		return nil, domain.ErrItemNotAvailable
	}

	claimed, err := s.repo.Claim(ctx, id, current.Type.ClaimField(), actingName)
	if err != nil {
		s.logger.Info().Err(err).Str("item_id", id).Str("by", actingName).Msg("claim rejected")
		return nil, err
	}

	s.logger.Info().Str("item_id", id).Str("by", actingName).Msg("item claimed")
	return claimed, nil
}

// DeleteItem removes a listing. Only the owner or borrower named on it may do so.
func (s *ItemService) DeleteItem(ctx context.Context, id, actingName string) error {
	if actingName == "" {
		return domain.ErrUnauthenticated
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !item.IsParty(actingName) {
		s.logger.Warn().Str("item_id", id).Str("by", actingName).Msg("delete refused: not a party to the item")
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("item_id", id).Str("by", actingName).Msg("item deleted")
	return nil
}
