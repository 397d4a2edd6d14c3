package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// StockLevelRepository define el puerto para consultar/actualizar el stock
// por producto+ubicación. Las mutaciones se usan siempre dentro de una
// transacción para garantizar consistencia.
type StockLevelRepository interface {
	// Get devuelve el stock actual; si no existe fila devuelve cantidad cero (nunca falla por ausencia).
	Get(productID, locationID string) (*entity.StockLevel, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE) para
	// serializar las mutaciones concurrentes sobre la misma clave.
	GetForUpdate(productID, locationID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
	List(limit, offset int) ([]*entity.StockLevel, error)
	// LowStock devuelve los niveles con cantidad por debajo del umbral.
	LowStock(threshold decimal.Decimal, limit int) ([]*entity.StockLevel, error)
}
