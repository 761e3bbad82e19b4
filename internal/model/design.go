package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DesignOrder is a bespoke product request with an uploaded reference
// image, priced manually by an admin.
type DesignOrder struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        uuid.UUID       `json:"userId" db:"user_id"`
	ProductType   string          `json:"productType" db:"product_type"`
	Material      string          `json:"material" db:"material"`
	Description   string          `json:"description" db:"description"`
	ImageURL      string          `json:"imageUrl" db:"image_url"`
	Status        string          `json:"status" db:"status"`
	PaymentStatus string          `json:"paymentStatus" db:"payment_status"`
	Price         decimal.Decimal `json:"price" db:"price"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// DesignOrderRequest is the customer payload for submitting a design request.
type DesignOrderRequest struct {
	ProductType string `json:"productType"`
	Material    string `json:"material"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// DesignOrderUpdateRequest is the admin payload for quoting and progressing
// a design order. Nil fields are left unchanged.
type DesignOrderUpdateRequest struct {
	Status        *string          `json:"status,omitempty"`
	PaymentStatus *string          `json:"paymentStatus,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
}
