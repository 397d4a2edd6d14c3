package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// MoveFilter filtros para listar movimientos de stock.
type MoveFilter struct {
	ProductID  string
	LocationID string // coincide contra from_location_id o to_location_id
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// MonthlyFlow entradas y salidas agregadas de un mes del año de reporte.
// Inbound suma los deltas positivos; Outbound el valor absoluto de los negativos.
type MonthlyFlow struct {
	Month    int // 1..12
	Inbound  decimal.Decimal
	Outbound decimal.Decimal
}

// StockMoveRepository define el puerto de persistencia del log de movimientos.
// El log es append-only: los movimientos nunca se actualizan ni se borran.
type StockMoveRepository interface {
	Create(move *entity.StockMove) error
	// List devuelve movimientos ordenados por fecha descendente.
	List(filter MoveFilter) ([]*entity.StockMove, error)
	ListRecent(limit int) ([]*entity.StockMove, error)
	// AggregateByMonth agrupa los deltas del año indicado por mes. El
	// resultado es disperso: solo aparecen los meses con movimientos; el
	// reporte completa la serie de doce meses con ceros.
	AggregateByMonth(year int) ([]MonthlyFlow, error)
}
