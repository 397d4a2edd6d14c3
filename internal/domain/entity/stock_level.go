package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel representa la cantidad actual de un producto en una ubicación.
// Es una proyección materializada del historial de StockMove: siempre debe
// cumplir Quantity == suma de los deltas que tocan esa ubicación, y nunca
// ser negativa. Se crea de forma perezosa con el primer movimiento y no se
// elimina mientras tenga historial (se deja en cero).
type StockLevel struct {
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
