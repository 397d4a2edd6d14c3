package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest body para POST /api/transfers.
type TransferRequest struct {
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// AdjustmentRequest body para POST /api/adjustments.
type AdjustmentRequest struct {
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id"`
	Mode       string          `json:"mode"` // Set | Add
	Value      decimal.Decimal `json:"value"`
}

// StockLevelResponse nivel de stock de un producto en una ubicación.
type StockLevelResponse struct {
	ProductID  string          `json:"product_id"`
	LocationID string          `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// StockMoveResponse un asiento del log de movimientos.
type StockMoveResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Type           string          `json:"type"`
	FromLocationID string          `json:"from_location_id,omitempty"`
	ToLocationID   string          `json:"to_location_id,omitempty"`
	Reference      string          `json:"reference"`
	Date           time.Time       `json:"date"`
}
