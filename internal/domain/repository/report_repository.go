package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItem nivel de stock bajo umbral enriquecido con datos del producto.
type LowStockItem struct {
	ProductID   string
	SKU         string
	ProductName string
	LocationID  string
	Location    string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
}

// MoveSummary movimiento reciente con datos de presentación (join de lectura).
type MoveSummary struct {
	ID           string
	ProductName  string
	SKU          string
	Type         string
	Quantity     decimal.Decimal
	FromLocation string
	ToLocation   string
	Reference    string
	Date         time.Time
}

// ReportRepository consultas read-only para el dashboard. Nunca muta el
// ledger; cada consulta es una foto puntual sin garantía de consistencia
// entre ellas (aceptable para dashboard, no para conciliación financiera).
type ReportRepository interface {
	// TotalStockValue Σ cantidad × costo unitario sobre todos los niveles de stock.
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
	LowStockCount(ctx context.Context, threshold decimal.Decimal) (int, error)
	LowStockItems(ctx context.Context, threshold decimal.Decimal, limit int) ([]LowStockItem, error)
	CountProducts(ctx context.Context) (int, error)
	// CountPendingDocuments documentos de un tipo fuera de estado terminal.
	CountPendingDocuments(ctx context.Context, kind string) (int, error)
	// CountLateDocuments documentos no terminales con fecha programada anterior a ref.
	CountLateDocuments(ctx context.Context, kind string, ref time.Time) (int, error)
	CountDocumentsByStatus(ctx context.Context, kind, status string) (int, error)
	RecentMoves(ctx context.Context, limit int) ([]MoveSummary, error)
}
