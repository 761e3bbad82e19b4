package service

import (
	"context"
	"fmt"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the user's cart with computed count and total.
func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error) {
	items, err := s.cartRepo.GetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if items == nil {
		items = []model.CartItem{}
	}

	return &model.CartResponse{
		Items: items,
		Count: model.CartCount(items),
		Total: model.CartTotal(items),
	}, nil
}

// Sync replaces the server-side cart with the provided items. The stored
// state equals the sent list exactly, so repeating the same call is a no-op.
func (s *cartService) Sync(ctx context.Context, userID uuid.UUID, items []model.CartItem) (*model.CartResponse, error) {
	for i, item := range items {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity in sync")
			return nil, model.ErrInvalidQuantity
		}
		if item.Stock > 0 && item.Quantity > item.Stock {
			return nil, model.ErrOutOfStock
		}
	}

	if err := s.cartRepo.ReplaceItems(ctx, userID, items); err != nil {
		return nil, fmt.Errorf("failed to sync cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID.String()).
		Int("count", len(items)).
		Msg("cart synced")

	if items == nil {
		items = []model.CartItem{}
	}

	return &model.CartResponse{
		Items: items,
		Count: model.CartCount(items),
		Total: model.CartTotal(items),
	}, nil
}

// Clear removes all items from the user's cart.
func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
