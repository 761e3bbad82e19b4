package service

import (
	"context"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
)

// AuthService defines customer authentication operations.
type AuthService interface {
	// Register creates a customer account and returns a signed token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// Profile retrieves the account for a previously verified token subject.
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

// AdminService defines operator authentication and back-office operations.
type AdminService interface {
	// Login verifies admin credentials and returns a 24h token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// Bootstrap creates the configured admin account when none exists.
	Bootstrap(ctx context.Context, email, name, password string) error

	// DashboardStats returns the aggregate dashboard figures.
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)

	// ListUsers lists customer accounts.
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)

	// DeleteUser removes a customer account.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ProductService defines operations for product management.
type ProductService interface {
	// GetAll retrieves products with optional category filter and pagination.
	GetAll(ctx context.Context, category string, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create adds a product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update overwrites a product.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService defines server-side cart operations.
type CartService interface {
	// Get retrieves the user's cart with computed count and total.
	Get(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error)

	// Sync replaces the server-side cart with the provided items.
	// Idempotent: repeated identical calls leave the cart unchanged.
	Sync(ctx context.Context, userID uuid.UUID, items []model.CartItem) (*model.CartResponse, error)

	// Clear removes all items from the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create places a new order and clears the user's server-side cart.
	Create(ctx context.Context, userID uuid.UUID, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)

	// ListByUser retrieves the orders placed by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)

	// ListAll retrieves orders across all users with pagination.
	ListAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// UpdateStatus writes the order status and tracking number as provided.
	UpdateStatus(ctx context.Context, id uuid.UUID, req *model.OrderStatusRequest) error
}

// DesignService defines operations for custom design orders.
type DesignService interface {
	// Submit records a new design request.
	Submit(ctx context.Context, userID uuid.UUID, req *model.DesignOrderRequest) (*model.DesignOrder, error)

	// GetByID retrieves a design order.
	GetByID(ctx context.Context, id uuid.UUID) (*model.DesignOrder, error)

	// ListByUser retrieves the design orders submitted by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DesignOrder, error)

	// ListAll retrieves design orders across all users with pagination.
	ListAll(ctx context.Context, limit, offset int) ([]model.DesignOrder, error)

	// Update applies admin pricing and status changes.
	Update(ctx context.Context, id uuid.UUID, req *model.DesignOrderUpdateRequest) (*model.DesignOrder, error)
}

// ThemeService defines operations for the theme catalogue.
type ThemeService interface {
	// GetAll retrieves all themes.
	GetAll(ctx context.Context) ([]model.Theme, error)

	// GetByID retrieves a theme.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Theme, error)

	// Create adds a theme.
	Create(ctx context.Context, req *model.ThemeRequest) (*model.Theme, error)

	// Update overwrites a theme.
	Update(ctx context.Context, id uuid.UUID, req *model.ThemeRequest) (*model.Theme, error)

	// Delete removes a theme.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContentService defines operations for per-order NFC content.
type ContentService interface {
	// Get retrieves the content bound to an order, or an empty unpublished
	// record when nothing has been uploaded yet.
	Get(ctx context.Context, orderID uuid.UUID) (*model.OrderContent, error)

	// AddMedia attaches a media item, lazily creating the content record.
	AddMedia(ctx context.Context, orderID uuid.UUID, req *model.MediaItemRequest) (*model.MediaItem, error)

	// UpdateMedia overwrites a media item.
	UpdateMedia(ctx context.Context, orderID, mediaID uuid.UUID, req *model.MediaItemRequest) error

	// RemoveMedia detaches a media item.
	RemoveMedia(ctx context.Context, orderID, mediaID uuid.UUID) error

	// SelectTheme records the presentation theme for the order.
	SelectTheme(ctx context.Context, orderID, themeID uuid.UUID) error

	// UpdateCustomizations overwrites the customization map.
	UpdateCustomizations(ctx context.Context, orderID uuid.UUID, customizations map[string]string) error

	// Publish freezes the content and assigns its public NFC URL.
	Publish(ctx context.Context, orderID uuid.UUID) (*model.OrderContent, error)
}
