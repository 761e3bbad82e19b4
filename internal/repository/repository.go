package repository

import (
	"context"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for customer account data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email. Returns nil when not found.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// List retrieves users with pagination support.
	List(ctx context.Context, limit, offset int) ([]model.User, error)

	// Delete removes a user record.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminRepository defines the interface for operator account data access.
type AdminRepository interface {
	// GetByEmail retrieves an admin by email. Returns nil when not found.
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)

	// Count returns the number of admin records.
	Count(ctx context.Context) (int, error)

	// Create inserts a new admin record.
	Create(ctx context.Context, admin *model.Admin) error
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products with optional category filter and pagination.
	GetAll(ctx context.Context, category string, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update overwrites an existing product. Returns model.ErrProductNotFound
	// if no row matches.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartRepository defines the interface for server-side cart persistence.
type CartRepository interface {
	// GetItems retrieves the cart items for a user.
	GetItems(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)

	// ReplaceItems atomically replaces the user's cart with the provided
	// items. Repeated calls with the same items are idempotent.
	ReplaceItems(ctx context.Context, userID uuid.UUID, items []model.CartItem) error

	// Clear removes all cart items for a user.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByUser retrieves all orders placed by a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// ListAll retrieves orders across all users with pagination.
	ListAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// UpdateStatus writes the status and tracking number of an order.
	// The status string is stored as provided.
	UpdateStatus(ctx context.Context, id uuid.UUID, status, trackingNumber string) error
}

// DesignOrderRepository defines the interface for custom design order data access.
type DesignOrderRepository interface {
	// Create inserts a new design order.
	Create(ctx context.Context, order *model.DesignOrder) error

	// GetByID retrieves a design order by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.DesignOrder, error)

	// ListByUser retrieves design orders submitted by a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DesignOrder, error)

	// ListAll retrieves design orders across all users with pagination.
	ListAll(ctx context.Context, limit, offset int) ([]model.DesignOrder, error)

	// Update overwrites the mutable fields of a design order.
	Update(ctx context.Context, order *model.DesignOrder) error
}

// ThemeRepository defines the interface for theme catalogue data access.
type ThemeRepository interface {
	// GetAll retrieves all themes ordered by name.
	GetAll(ctx context.Context) ([]model.Theme, error)

	// GetByID retrieves a theme by ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Theme, error)

	// Create inserts a new theme.
	Create(ctx context.Context, theme *model.Theme) error

	// Update overwrites an existing theme.
	Update(ctx context.Context, theme *model.Theme) error

	// Delete removes a theme.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContentRepository defines the interface for order content data access.
type ContentRepository interface {
	// GetByOrderID retrieves the content record and its media items for an
	// order. Returns nil when no content exists yet.
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*model.OrderContent, error)

	// Ensure creates an empty content record for the order if none exists.
	Ensure(ctx context.Context, orderID uuid.UUID) error

	// AddMedia inserts a media item.
	AddMedia(ctx context.Context, item *model.MediaItem) error

	// UpdateMedia overwrites a media item. Returns model.ErrMediaNotFound
	// if no row matches.
	UpdateMedia(ctx context.Context, item *model.MediaItem) error

	// RemoveMedia deletes a media item from an order's content.
	RemoveMedia(ctx context.Context, orderID, mediaID uuid.UUID) error

	// SetTheme records the selected theme for an order's content.
	SetTheme(ctx context.Context, orderID, themeID uuid.UUID) error

	// SetCustomizations overwrites the customization map.
	SetCustomizations(ctx context.Context, orderID uuid.UUID, customizations map[string]string) error

	// Publish marks the content published and records its NFC URL.
	Publish(ctx context.Context, orderID uuid.UUID, nfcURL string) error
}

// StatsRepository aggregates figures for the admin dashboard.
type StatsRepository interface {
	// Dashboard computes the dashboard aggregates in a single round trip.
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}
