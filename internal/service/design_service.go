package service

import (
	"context"
	"fmt"
	"time"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// designService implements DesignService.
type designService struct {
	designRepo repository.DesignOrderRepository
	logger     zerolog.Logger
}

// NewDesignService creates a new custom design order service.
func NewDesignService(designRepo repository.DesignOrderRepository, logger zerolog.Logger) DesignService {
	return &designService{
		designRepo: designRepo,
		logger:     logger.With().Str("service", "design").Logger(),
	}
}

// Submit records a new design request. Price starts at zero and is quoted
// manually by an admin.
func (s *designService) Submit(ctx context.Context, userID uuid.UUID, req *model.DesignOrderRequest) (*model.DesignOrder, error) {
	if req == nil {
		return nil, fmt.Errorf("design order request is nil")
	}
	if req.ProductType == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Product type is required")
	}
	if req.Description == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Description is required")
	}

	now := time.Now()
	order := &model.DesignOrder{
		ID:            uuid.New(),
		UserID:        userID,
		ProductType:   req.ProductType,
		Material:      req.Material,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
		Price:         decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.designRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to submit design order: %w", err)
	}

	s.logger.Info().
		Str("design_order_id", order.ID.String()).
		Str("product_type", order.ProductType).
		Msg("design order submitted")

	return order, nil
}

// GetByID retrieves a design order.
func (s *designService) GetByID(ctx context.Context, id uuid.UUID) (*model.DesignOrder, error) {
	order, err := s.designRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get design order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// ListByUser retrieves the design orders submitted by a user.
func (s *designService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DesignOrder, error) {
	orders, err := s.designRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list design orders: %w", err)
	}
	return orders, nil
}

// ListAll retrieves design orders across all users with pagination.
func (s *designService) ListAll(ctx context.Context, limit, offset int) ([]model.DesignOrder, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	orders, err := s.designRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list design orders: %w", err)
	}
	return orders, nil
}

// Update applies admin pricing and status changes. Nil fields stay unchanged.
func (s *designService) Update(ctx context.Context, id uuid.UUID, req *model.DesignOrderUpdateRequest) (*model.DesignOrder, error) {
	if req == nil {
		return nil, fmt.Errorf("design order update request is nil")
	}

	order, err := s.designRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update design order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, model.NewDomainError(model.ErrCodeMissingField, "Price cannot be negative")
		}
		order.Price = *req.Price
	}
	order.UpdatedAt = time.Now()

	if err := s.designRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update design order: %w", err)
	}

	s.logger.Info().
		Str("design_order_id", order.ID.String()).
		Str("status", order.Status).
		Msg("design order updated")

	return order, nil
}
