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

func TestProductService_GetAll_ClampsPagination(t *testing.T) {
	ctx := context.Background()

	mockProductRepo := new(MockProductRepository)
	service := NewProductService(mockProductRepo, zerolog.Nop())

	mockProductRepo.On("GetAll", ctx, "bracelets", 20, 0).Return([]model.Product{}, nil)

	_, err := service.GetAll(ctx, "bracelets", -1, -10)
	require.NoError(t, err)
	mockProductRepo.AssertExpectations(t)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo := new(MockProductRepository)
	service := NewProductService(mockProductRepo, zerolog.Nop())

	mockProductRepo.On("GetByID", ctx, productID).Return(nil, nil)

	product, err := service.GetByID(ctx, productID)

	assert.Nil(t, product)
	assert.Equal(t, model.ErrProductNotFound, err)
}

func TestProductService_Create_Success(t *testing.T) {
	ctx := context.Background()

	mockProductRepo := new(MockProductRepository)
	service := NewProductService(mockProductRepo, zerolog.Nop())

	mockProductRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	product, err := service.Create(ctx, &model.ProductRequest{
		Name:     "Braided Bracelet",
		Price:    decimal.RequireFromString("49.90"),
		Category: "bracelets",
		Stock:    25,
	})

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Braided Bracelet", product.Name)
	assert.Equal(t, 25, product.Stock)
}

func TestProductService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	mockProductRepo := new(MockProductRepository)
	service := NewProductService(mockProductRepo, zerolog.Nop())

	tests := []struct {
		name string
		req  *model.ProductRequest
	}{
		{"missing name", &model.ProductRequest{Price: decimal.New(1, 0)}},
		{"negative price", &model.ProductRequest{Name: "x", Price: decimal.RequireFromString("-1")}},
		{"negative stock", &model.ProductRequest{Name: "x", Stock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := service.Create(ctx, tt.req)
			assert.Nil(t, product)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
		})
	}

	mockProductRepo.AssertNotCalled(t, "Create")
}

func TestProductService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo := new(MockProductRepository)
	service := NewProductService(mockProductRepo, zerolog.Nop())

	mockProductRepo.On("Update", ctx, mock.AnythingOfType("*model.Product")).
		Return(model.ErrProductNotFound)

	product, err := service.Update(ctx, productID, &model.ProductRequest{
		Name:  "Renamed",
		Price: decimal.New(10, 0),
	})

	assert.Nil(t, product)
	assert.Equal(t, model.ErrProductNotFound, err)
}
