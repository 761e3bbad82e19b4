package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const cartSnapshot = "cart"

// CartStore holds the local shopping cart. All mutations are applied
// locally and persisted immediately; Sync pushes the full item list to the
// server in one call.
type CartStore struct {
	client *Client
	files  *FileStore
	logger zerolog.Logger

	mu    sync.Mutex
	items []model.CartItem
}

// NewCartStore creates a cart store, restoring any persisted snapshot.
func NewCartStore(client *Client, files *FileStore, logger zerolog.Logger) *CartStore {
	s := &CartStore{
		client: client,
		files:  files,
		logger: logger.With().Str("state", "cart").Logger(),
	}
	var items []model.CartItem
	if err := files.Load(cartSnapshot, &items); err != nil {
		if err != ErrNotFound {
			s.logger.Warn().Err(err).Msg("failed to restore cart snapshot")
		}
	} else {
		s.items = items
	}
	return s
}

// Add inserts the product as a new line, or increments the existing line.
// The resulting quantity never exceeds the product's stock.
func (s *CartStore) Add(product *model.Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("nil product")
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity = clampQuantity(s.items[i].Quantity+quantity, product.Stock)
			return s.persist()
		}
	}

	s.items = append(s.items, model.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  clampQuantity(quantity, product.Stock),
		Stock:     product.Stock,
		Image:     product.Image,
	})
	return s.persist()
}

// UpdateQuantity sets the quantity of a line, clamped to [1, stock].
// Unknown product IDs are ignored.
func (s *CartStore) UpdateQuantity(productID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = clampQuantity(quantity, s.items[i].Stock)
			return s.persist()
		}
	}
	return nil
}

// Remove deletes the line for the given product.
func (s *CartStore) Remove(productID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Clear empties the cart.
func (s *CartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist()
}

// Items returns a copy of the current cart lines.
func (s *CartStore) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount returns the total unit count across all lines.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CartCount(s.items)
}

// Total returns the cart total, Σ price×quantity.
func (s *CartStore) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CartTotal(s.items)
}

// Sync replaces the server-side cart with the local item list. Repeating
// the same sync leaves the server cart unchanged.
func (s *CartStore) Sync(ctx context.Context) (*model.CartResponse, error) {
	req := model.CartSyncRequest{Items: s.Items()}

	var resp model.CartResponse
	if err := s.client.Put(ctx, "/api/cart", &req, &resp); err != nil {
		return nil, fmt.Errorf("failed to sync cart: %w", err)
	}
	return &resp, nil
}

// persist writes the current items to disk. Callers hold s.mu.
func (s *CartStore) persist() error {
	if err := s.files.Save(cartSnapshot, s.items); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// clampQuantity keeps a quantity within [1, stock]. A non-positive stock
// means the stock is not tracked and only the lower bound applies.
func clampQuantity(quantity, stock int) int {
	if quantity < 1 {
		quantity = 1
	}
	if stock > 0 && quantity > stock {
		quantity = stock
	}
	return quantity
}
