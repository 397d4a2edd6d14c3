package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Cada contador es una foto puntual: las consultas que componen el dashboard
// no comparten transacción, así que no hay consistencia garantizada entre
// ellas (suficiente para un dashboard, no para conciliación).
type DashboardStatsDTO struct {
	TotalStockValue   decimal.Decimal  `json:"total_stock_value"` // Σ cantidad × costo unitario
	LowStockCount     int              `json:"low_stock_count"`
	PendingReceipts   int              `json:"pending_receipts"`
	PendingDeliveries int              `json:"pending_deliveries"`
	TotalProducts     int              `json:"total_products"`
	LateOps           int              `json:"late_ops"`    // programados antes de hoy y aún no terminales
	WaitingOps        int              `json:"waiting_ops"` // en estado Waiting
	RecentActivity    []RecentMoveDTO  `json:"recent_activity"`
	ChartData         []MonthlyFlowDTO `json:"chart_data"` // 12 meses del año de reporte
}

// RecentMoveDTO movimiento reciente para el widget de actividad.
type RecentMoveDTO struct {
	ID           string          `json:"id"`
	ProductName  string          `json:"product_name"`
	SKU          string          `json:"sku"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	FromLocation string          `json:"from_location,omitempty"`
	ToLocation   string          `json:"to_location,omitempty"`
	Reference    string          `json:"reference"`
	Date         time.Time       `json:"date"`
}

// MonthlyFlowDTO un punto de la serie mensual entradas/salidas.
type MonthlyFlowDTO struct {
	Name string          `json:"name"` // Jan..Dec
	In   decimal.Decimal `json:"in"`
	Out  decimal.Decimal `json:"out"`
}

// LowStockItemDTO producto bajo el umbral de stock con cantidad sugerida de pedido.
type LowStockItemDTO struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	LocationID   string          `json:"location_id"`
	Location     string          `json:"location"`
	Quantity     decimal.Decimal `json:"quantity"`
	SuggestedQty decimal.Decimal `json:"suggested_qty"` // umbral − cantidad actual
	UnitCost     decimal.Decimal `json:"unit_cost"`
}
