package service

import (
	"context"
	"testing"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_Sync_ReplacesAndComputesTotals(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	items := []model.CartItem{
		{ProductID: uuid.New(), Name: "Braided Bracelet", Price: decimal.RequireFromString("49.90"), Quantity: 2, Stock: 10},
		{ProductID: uuid.New(), Name: "NFC Wristband", Price: decimal.RequireFromString("15.00"), Quantity: 3, Stock: 5},
	}

	mockCartRepo := new(MockCartRepository)
	service := NewCartService(mockCartRepo, zerolog.Nop())

	mockCartRepo.On("ReplaceItems", ctx, userID, items).Return(nil)

	resp, err := service.Sync(ctx, userID, items)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// 2×49.90 + 3×15.00
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("144.80")), "got total %s", resp.Total)
	assert.Equal(t, 5, resp.Count)
	assert.Equal(t, items, resp.Items)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_Sync_Idempotent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	items := []model.CartItem{
		{ProductID: uuid.New(), Name: "Braided Bracelet", Price: decimal.RequireFromString("49.90"), Quantity: 1, Stock: 10},
	}

	mockCartRepo := new(MockCartRepository)
	service := NewCartService(mockCartRepo, zerolog.Nop())

	// The same list is pushed twice; both calls replace with identical state.
	mockCartRepo.On("ReplaceItems", ctx, userID, items).Return(nil).Twice()

	first, err := service.Sync(ctx, userID, items)
	require.NoError(t, err)

	second, err := service.Sync(ctx, userID, items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockCartRepo.AssertExpectations(t)
}

func TestCartService_Sync_RejectsInvalidQuantity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	items := []model.CartItem{
		{ProductID: uuid.New(), Price: decimal.RequireFromString("49.90"), Quantity: 0, Stock: 10},
	}

	mockCartRepo := new(MockCartRepository)
	service := NewCartService(mockCartRepo, zerolog.Nop())

	resp, err := service.Sync(ctx, userID, items)

	assert.Nil(t, resp)
	assert.Equal(t, model.ErrInvalidQuantity, err)
	mockCartRepo.AssertNotCalled(t, "ReplaceItems")
}

func TestCartService_Sync_RejectsQuantityOverStock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	items := []model.CartItem{
		{ProductID: uuid.New(), Price: decimal.RequireFromString("49.90"), Quantity: 7, Stock: 5},
	}

	mockCartRepo := new(MockCartRepository)
	service := NewCartService(mockCartRepo, zerolog.Nop())

	resp, err := service.Sync(ctx, userID, items)

	assert.Nil(t, resp)
	assert.Equal(t, model.ErrOutOfStock, err)
	mockCartRepo.AssertNotCalled(t, "ReplaceItems")
}

func TestCartService_Sync_EmptyListClearsCart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo := new(MockCartRepository)
	service := NewCartService(mockCartRepo, zerolog.Nop())

	mockCartRepo.On("ReplaceItems", ctx, userID, []model.CartItem(nil)).Return(nil)

	resp, err := service.Sync(ctx, userID, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Count)
	assert.True(t, resp.Total.IsZero())
}

func TestCartService_Get_EmptyCart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo := new(MockCartRepository)
	service := NewCartService(mockCartRepo, zerolog.Nop())

	mockCartRepo.On("GetItems", ctx, userID).Return(nil, nil)

	resp, err := service.Get(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}
