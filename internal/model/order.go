package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Known order status values. The admin update endpoint accepts any string;
// these constants cover the values the storefront renders.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Known payment status values.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Order represents a customer order.
type Order struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	OrderNumber    string          `json:"orderNumber" db:"order_number"`
	UserID         uuid.UUID       `json:"userId" db:"user_id"`
	Status         string          `json:"status" db:"status"`
	ShippingAddr   string          `json:"shippingAddress" db:"shipping_address"`
	BillingAddr    string          `json:"billingAddress" db:"billing_address"`
	TotalAmount    decimal.Decimal `json:"totalAmount" db:"total_amount"`
	TrackingNumber string          `json:"trackingNumber" db:"tracking_number"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID        uuid.UUID       `json:"-" db:"id"`
	OrderID   uuid.UUID       `json:"-" db:"order_id"`
	ProductID uuid.UUID       `json:"productId" db:"product_id"`
	Name      string          `json:"name" db:"name"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Quantity  int             `json:"quantity" db:"quantity"`
}

// OrderRequest is the payload for creating an order at checkout.
type OrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	ShippingAddr string             `json:"shippingAddress"`
	BillingAddr  string             `json:"billingAddress"`
}

// OrderItemRequest is a single item in an order request.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// OrderResponse is an order together with its line items.
type OrderResponse struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}

// OrderStatusRequest is the admin payload for updating order progress.
type OrderStatusRequest struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}
