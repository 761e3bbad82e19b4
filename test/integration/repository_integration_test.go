package integration

import (
	"context"
	"testing"
	"time"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo repository.UserRepository) *model.User {
	t.Helper()

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Email:        uuid.NewString() + "@example.com",
		Name:         "Test User",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func seedProduct(t *testing.T, repo repository.ProductRepository, name, price string, stock int) *model.Product {
	t.Helper()

	now := time.Now()
	product := &model.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Category:  "bracelets",
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestCartRepository_ReplaceItems_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	userRepo := repository.NewUserRepository(db.Pool, logger)
	productRepo := repository.NewProductRepository(db.Pool, logger)
	cartRepo := repository.NewCartRepository(db.Pool, logger)

	user := seedUser(t, userRepo)
	product := seedProduct(t, productRepo, "Braided Bracelet", "49.90", 10)

	items := []model.CartItem{
		{ProductID: product.ID, Name: product.Name, Price: product.Price, Quantity: 2, Stock: 10},
	}

	require.NoError(t, cartRepo.ReplaceItems(ctx, user.ID, items))

	first, err := cartRepo.GetItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 2, first[0].Quantity)

	// Pushing the identical list again leaves the stored cart unchanged
	require.NoError(t, cartRepo.ReplaceItems(ctx, user.ID, items))

	second, err := cartRepo.GetItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A different list replaces the cart wholesale
	require.NoError(t, cartRepo.ReplaceItems(ctx, user.ID, nil))

	cleared, err := cartRepo.GetItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared)
}

func TestOrderRepository_CreateAndFetch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	userRepo := repository.NewUserRepository(db.Pool, logger)
	orderRepo := repository.NewOrderRepository(db.Pool, logger)

	user := seedUser(t, userRepo)

	now := time.Now()
	order := &model.Order{
		ID:           uuid.New(),
		OrderNumber:  "NFC-20250314150926-0042",
		UserID:       user.ID,
		Status:       model.OrderStatusPending,
		ShippingAddr: "1 Test Street",
		BillingAddr:  "1 Test Street",
		TotalAmount:  decimal.RequireFromString("114.80"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	items := []model.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: uuid.New(), Name: "Bracelet", Price: decimal.RequireFromString("49.90"), Quantity: 2},
		{ID: uuid.New(), OrderID: order.ID, ProductID: uuid.New(), Name: "Wristband", Price: decimal.RequireFromString("15.00"), Quantity: 1},
	}

	tx, err := orderRepo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))
	require.NoError(t, orderRepo.CreateOrderItems(ctx, tx, items))
	require.NoError(t, tx.Commit(ctx))

	got, gotItems, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
	assert.True(t, got.TotalAmount.Equal(order.TotalAmount))
	assert.Len(t, gotItems, 2)

	// Status updates are stored verbatim
	require.NoError(t, orderRepo.UpdateStatus(ctx, order.ID, "engraving", "TRACK-42"))

	updated, _, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "engraving", updated.Status)
	assert.Equal(t, "TRACK-42", updated.TrackingNumber)
}

func TestContentRepository_PublishRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	userRepo := repository.NewUserRepository(db.Pool, logger)
	orderRepo := repository.NewOrderRepository(db.Pool, logger)
	contentRepo := repository.NewContentRepository(db.Pool, logger)

	user := seedUser(t, userRepo)

	now := time.Now()
	order := &model.Order{
		ID:          uuid.New(),
		OrderNumber: "NFC-20250314150926-0001",
		UserID:      user.ID,
		Status:      model.OrderStatusPending,
		TotalAmount: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	tx, err := orderRepo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, orderRepo.CreateOrder(ctx, tx, order))
	require.NoError(t, tx.Commit(ctx))

	// No content yet
	missing, err := contentRepo.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Ensure is idempotent
	require.NoError(t, contentRepo.Ensure(ctx, order.ID))
	require.NoError(t, contentRepo.Ensure(ctx, order.ID))

	item := &model.MediaItem{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Type:      model.MediaTypeImage,
		Title:     "Photo",
		Content:   "https://cdn.example/photo.jpg",
		CreatedAt: now,
	}
	require.NoError(t, contentRepo.AddMedia(ctx, item))

	nfcURL := "https://nfccraft.example/nfc/" + order.ID.String()
	require.NoError(t, contentRepo.Publish(ctx, order.ID, nfcURL))

	content, err := contentRepo.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.True(t, content.IsPublished)
	assert.Equal(t, nfcURL, content.NFCURL)
	require.Len(t, content.MediaItems, 1)
	assert.Equal(t, item.ID, content.MediaItems[0].ID)
}
