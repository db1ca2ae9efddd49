package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- CRUD backend resources ---
// These four resources live in PostgreSQL and follow a plain create/list
// lifecycle; they carry no derived fields.

// DemandRecord captures a demand forecast entry for a product at one store.
type DemandRecord struct {
	ID            string    `json:"id"`
	ProductName   string    `json:"product_name"`
	StoreID       string    `json:"store_id"`
	Period        string    `json:"period"`
	ForecastUnits int       `json:"forecast_units"`
	ActualUnits   *int      `json:"actual_units,omitempty"`
	Attributes    JSONB     `json:"attributes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateDemandRequest defines the body for creating a demand record.
type CreateDemandRequest struct {
	ProductName   string `json:"product_name" validate:"required"`
	StoreID       string `json:"store_id" validate:"required"`
	Period        string `json:"period" validate:"required"`
	ForecastUnits int    `json:"forecast_units" validate:"gte=0"`
	ActualUnits   *int   `json:"actual_units,omitempty" validate:"omitempty,gte=0"`
	Attributes    JSONB  `json:"attributes,omitempty"`
}

// PricingRecord captures a price point for a product.
type PricingRecord struct {
	ID              string          `json:"id"`
	ProductName     string          `json:"product_name"`
	BasePrice       decimal.Decimal `json:"base_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	EffectivePrice  decimal.Decimal `json:"effective_price"`
	Currency        string          `json:"currency"`
	Attributes      JSONB           `json:"attributes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreatePricingRequest defines the body for creating a pricing record.
// EffectivePrice is computed server-side from BasePrice and DiscountPercent.
type CreatePricingRequest struct {
	ProductName     string          `json:"product_name" validate:"required"`
	BasePrice       decimal.Decimal `json:"base_price" validate:"required"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Currency        string          `json:"currency" validate:"omitempty,len=3"`
	Attributes      JSONB           `json:"attributes,omitempty"`
}

// LoyaltyRecord captures a customer loyalty membership.
type LoyaltyRecord struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Tier         string    `json:"tier"`
	Points       int       `json:"points"`
	Attributes   JSONB     `json:"attributes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateLoyaltyRequest defines the body for creating a loyalty record.
type CreateLoyaltyRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Tier         string `json:"tier" validate:"required,oneof=bronze silver gold platinum"`
	Points       int    `json:"points" validate:"gte=0"`
	Attributes   JSONB  `json:"attributes,omitempty"`
}

// Supplier provides items to the business.
type Supplier struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactName  *string   `json:"contact_name,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateSupplierRequest defines the body for creating a supplier.
type CreateSupplierRequest struct {
	Name         string  `json:"name" validate:"required"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}
