package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// UnitCost es el costo unitario usado para la valoración del inventario.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Category    string
	UnitMeasure string
	UnitCost    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
