package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Create_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	productA := model.Product{
		ID:    uuid.New(),
		Name:  "Braided Bracelet",
		Price: decimal.RequireFromString("49.90"),
		Stock: 10,
	}
	productB := model.Product{
		ID:    uuid.New(),
		Name:  "NFC Wristband",
		Price: decimal.RequireFromString("15.00"),
		Stock: 5,
	}

	req := &model.OrderRequest{
		Items: []model.OrderItemRequest{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		},
		ShippingAddr: "1 Test Street",
		BillingAddr:  "1 Test Street",
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockCartRepo := new(MockCartRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, mockCartRepo, zerolog.Nop())

	mockProductRepo.On("GetByIDs", ctx, []uuid.UUID{productA.ID, productB.ID}).
		Return([]model.Product{productA, productB}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockCartRepo.On("Clear", ctx, userID).Return(nil)

	resp, err := service.Create(ctx, userID, req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEqual(t, uuid.Nil, resp.Order.ID)
	assert.Equal(t, userID, resp.Order.UserID)
	assert.Equal(t, model.OrderStatusPending, resp.Order.Status)
	assert.True(t, strings.HasPrefix(resp.Order.OrderNumber, "NFC-"))
	assert.Len(t, resp.Items, 2)

	// 2×49.90 + 1×15.00
	assert.True(t, resp.Order.TotalAmount.Equal(decimal.RequireFromString("114.80")),
		"got total %s", resp.Order.TotalAmount)

	mockOrderRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
	mockCartRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
	assert.True(t, mockTx.committed)
	assert.False(t, mockTx.rolledBack)
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	knownID := uuid.New()
	unknownID := uuid.New()

	req := &model.OrderRequest{
		Items: []model.OrderItemRequest{
			{ProductID: knownID, Quantity: 1},
			{ProductID: unknownID, Quantity: 1},
		},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockCartRepo := new(MockCartRepository)

	service := NewOrderService(mockOrderRepo, mockProductRepo, mockCartRepo, zerolog.Nop())

	// Only one of the two requested products exists
	mockProductRepo.On("GetByIDs", ctx, []uuid.UUID{knownID, unknownID}).
		Return([]model.Product{{ID: knownID, Price: decimal.RequireFromString("10.00")}}, nil)

	resp, err := service.Create(ctx, userID, req)

	assert.Nil(t, resp)
	assert.Equal(t, model.ErrProductNotFound, err)
	mockOrderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_Create_InvalidQuantity(t *testing.T) {
	ctx := context.Background()

	req := &model.OrderRequest{
		Items: []model.OrderItemRequest{
			{ProductID: uuid.New(), Quantity: 0},
		},
	}

	mockProductRepo := new(MockProductRepository)
	service := NewOrderService(new(MockOrderRepository), mockProductRepo, new(MockCartRepository), zerolog.Nop())

	resp, err := service.Create(ctx, uuid.New(), req)

	assert.Nil(t, resp)
	assert.Equal(t, model.ErrInvalidQuantity, err)
	mockProductRepo.AssertNotCalled(t, "GetByIDs")
}

func TestOrderService_Create_RollbackOnInsertFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	product := model.Product{ID: uuid.New(), Price: decimal.RequireFromString("10.00")}
	req := &model.OrderRequest{
		Items: []model.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, new(MockCartRepository), zerolog.Nop())

	mockProductRepo.On("GetByIDs", ctx, []uuid.UUID{product.ID}).Return([]model.Product{product}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).
		Return(errors.New("insert failed"))
	mockTx.On("Rollback", ctx).Return(nil)

	resp, err := service.Create(ctx, userID, req)

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)
	mockTx.AssertNotCalled(t, "Commit")
}

func TestOrderService_Create_SucceedsWhenCartClearFails(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	product := model.Product{ID: uuid.New(), Price: decimal.RequireFromString("10.00")}
	req := &model.OrderRequest{
		Items: []model.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	}

	mockOrderRepo := new(MockOrderRepository)
	mockProductRepo := new(MockProductRepository)
	mockCartRepo := new(MockCartRepository)
	mockTx := new(MockTx)

	service := NewOrderService(mockOrderRepo, mockProductRepo, mockCartRepo, zerolog.Nop())

	mockProductRepo.On("GetByIDs", ctx, []uuid.UUID{product.ID}).Return([]model.Product{product}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockOrderRepo.On("CreateOrder", ctx, mockTx, mock.AnythingOfType("*model.Order")).Return(nil)
	mockOrderRepo.On("CreateOrderItems", ctx, mockTx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockCartRepo.On("Clear", ctx, userID).Return(errors.New("cart unavailable"))

	resp, err := service.Create(ctx, userID, req)

	// Cart clearing is best effort; the committed order is returned regardless.
	require.NoError(t, err)
	require.NotNil(t, resp)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockCartRepository), zerolog.Nop())

	mockOrderRepo.On("GetByID", ctx, orderID).Return(nil, nil, nil)

	resp, err := service.GetByID(ctx, orderID)

	assert.Nil(t, resp)
	assert.Equal(t, model.ErrOrderNotFound, err)
}

func TestOrderService_UpdateStatus_RequiresStatus(t *testing.T) {
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockCartRepository), zerolog.Nop())

	err := service.UpdateStatus(ctx, uuid.New(), &model.OrderStatusRequest{})

	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeMissingField, domainErr.Code)
	mockOrderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestOrderService_UpdateStatus_PassesThroughFreeFormStatus(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo := new(MockOrderRepository)
	service := NewOrderService(mockOrderRepo, new(MockProductRepository), new(MockCartRepository), zerolog.Nop())

	mockOrderRepo.On("UpdateStatus", ctx, orderID, "engraving", "TRACK-42").Return(nil)

	err := service.UpdateStatus(ctx, orderID, &model.OrderStatusRequest{
		Status:         "engraving",
		TrackingNumber: "TRACK-42",
	})

	require.NoError(t, err)
	mockOrderRepo.AssertExpectations(t)
}

func TestNewOrderNumber_Format(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	number := newOrderNumber(now)

	assert.True(t, strings.HasPrefix(number, "NFC-20250314150926-"), "got %s", number)
	assert.Len(t, number, len("NFC-20250314150926-0000"))
}
