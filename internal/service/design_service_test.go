package service

import (
	"context"
	"testing"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDesignService_Submit_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockDesignRepo := new(MockDesignOrderRepository)
	service := NewDesignService(mockDesignRepo, zerolog.Nop())

	mockDesignRepo.On("Create", ctx, mock.AnythingOfType("*model.DesignOrder")).Return(nil)

	order, err := service.Submit(ctx, userID, &model.DesignOrderRequest{
		ProductType: "bracelet",
		Material:    "silver",
		Description: "Initials engraved on a braided band",
		ImageURL:    "https://cdn.example/sketch.jpg",
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.True(t, order.Price.IsZero())
	mockDesignRepo.AssertExpectations(t)
}

func TestDesignService_Submit_RequiresProductTypeAndDescription(t *testing.T) {
	ctx := context.Background()

	mockDesignRepo := new(MockDesignOrderRepository)
	service := NewDesignService(mockDesignRepo, zerolog.Nop())

	_, err := service.Submit(ctx, uuid.New(), &model.DesignOrderRequest{Description: "x"})
	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)

	_, err = service.Submit(ctx, uuid.New(), &model.DesignOrderRequest{ProductType: "ring"})
	require.ErrorAs(t, err, &domainErr)

	mockDesignRepo.AssertNotCalled(t, "Create")
}

func TestDesignService_Update_AppliesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	existing := &model.DesignOrder{
		ID:            orderID,
		ProductType:   "bracelet",
		Status:        "pending",
		PaymentStatus: "pending",
		Price:         decimal.Zero,
	}

	mockDesignRepo := new(MockDesignOrderRepository)
	service := NewDesignService(mockDesignRepo, zerolog.Nop())

	mockDesignRepo.On("GetByID", ctx, orderID).Return(existing, nil)
	mockDesignRepo.On("Update", ctx, mock.AnythingOfType("*model.DesignOrder")).Return(nil)

	price := decimal.RequireFromString("250.00")
	status := "quoted"

	order, err := service.Update(ctx, orderID, &model.DesignOrderUpdateRequest{
		Status: &status,
		Price:  &price,
	})

	require.NoError(t, err)
	assert.Equal(t, "quoted", order.Status)
	assert.True(t, order.Price.Equal(price))
	// PaymentStatus was not provided and must remain untouched
	assert.Equal(t, "pending", order.PaymentStatus)
}

func TestDesignService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	mockDesignRepo := new(MockDesignOrderRepository)
	service := NewDesignService(mockDesignRepo, zerolog.Nop())

	mockDesignRepo.On("GetByID", ctx, orderID).Return(nil, nil)

	order, err := service.Update(ctx, orderID, &model.DesignOrderUpdateRequest{})

	assert.Nil(t, order)
	assert.Equal(t, model.ErrOrderNotFound, err)
}
