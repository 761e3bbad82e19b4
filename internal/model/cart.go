package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a single line in a customer's cart.
// Quantity is always within [1, Stock].
type CartItem struct {
	ProductID uuid.UUID       `json:"id" db:"product_id"`
	Name      string          `json:"name" db:"name"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Stock     int             `json:"stock" db:"stock"`
	Image     string          `json:"image" db:"image"`
}

// CartSyncRequest replaces the server-side cart with the provided items.
type CartSyncRequest struct {
	Items []CartItem `json:"items"`
}

// CartResponse is the server-side view of a customer's cart.
type CartResponse struct {
	Items []CartItem      `json:"items"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// CartTotal returns the sum of price multiplied by quantity over all items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// CartCount returns the total unit count across all items.
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
