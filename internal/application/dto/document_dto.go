package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLineRequest línea planificada (producto + cantidad).
type DocumentLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateDocumentRequest body para POST /api/receipts y /api/deliveries.
type CreateDocumentRequest struct {
	WarehouseID   string                `json:"warehouse_id"`
	Contact       string                `json:"contact"`
	ScheduledDate time.Time             `json:"scheduled_date"`
	Lines         []DocumentLineRequest `json:"lines"`
	SourceDoc     string                `json:"source_doc,omitempty"`
	Address       string                `json:"delivery_address,omitempty"`
	Responsible   string                `json:"responsible,omitempty"`
}

// UpdateStatusRequest body para PATCH /api/{receipts|deliveries}/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"` // Waiting | Ready
}

// DocumentResponse una recepción o entrega con sus líneas.
type DocumentResponse struct {
	ID            string                `json:"id"`
	Kind          string                `json:"kind"`
	Reference     string                `json:"reference"`
	WarehouseID   string                `json:"warehouse_id"`
	Contact       string                `json:"contact"`
	ScheduledDate time.Time             `json:"scheduled_date"`
	Status        string                `json:"status"`
	Lines         []DocumentLineRequest `json:"lines"`
	SourceDoc     string                `json:"source_doc,omitempty"`
	Address       string                `json:"delivery_address,omitempty"`
	Responsible   string                `json:"responsible,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
