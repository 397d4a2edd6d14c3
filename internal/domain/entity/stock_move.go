package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MoveTypeReceipt    = "Receipt"    // entrada desde proveedor
	MoveTypeDelivery   = "Delivery"   // salida hacia cliente
	MoveTypeInternal   = "Internal"   // traslado entre ubicaciones
	MoveTypeAdjustment = "Adjustment" // ajuste manual
)

// StockMove representa un movimiento de inventario: el asiento inmutable
// del libro mayor. Quantity lleva signo (positivo entrada, negativo salida);
// un traslado Internal es UN solo movimiento con cantidad positiva y ambas
// ubicaciones. Una vez insertado nunca se actualiza ni se borra.
type StockMove struct {
	ID             string
	ProductID      string
	Quantity       decimal.Decimal // delta con signo
	Type           string
	FromLocationID string // vacío si no aplica
	ToLocationID   string // vacío si no aplica
	Reference      string // ej: WH/IN/00001, INT/1712..., ADJ/1712...
	Date           time.Time
	CreatedBy      string // UserID, opcional
	CreatedAt      time.Time
}

// Contribution devuelve el aporte con signo de este movimiento a la
// cantidad de la ubicación indicada (para reconstruir StockLevel desde el log).
func (m *StockMove) Contribution(locationID string) decimal.Decimal {
	if m.Type == MoveTypeInternal {
		if m.FromLocationID == locationID {
			return m.Quantity.Neg()
		}
		if m.ToLocationID == locationID {
			return m.Quantity
		}
		return decimal.Zero
	}
	if m.FromLocationID == locationID || m.ToLocationID == locationID {
		return m.Quantity
	}
	return decimal.Zero
}
