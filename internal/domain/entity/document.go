package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento de inventario.
const (
	DocumentKindReceipt  = "receipt"  // recepción de mercancía (entrada)
	DocumentKindDelivery = "delivery" // entrega a cliente (salida)
)

// Estados del ciclo de vida de un documento.
const (
	StatusDraft     = "Draft"
	StatusWaiting   = "Waiting"
	StatusReady     = "Ready"
	StatusDone      = "Done"
	StatusCancelled = "Cancelled"
)

// DocumentLine una línea planificada del documento (producto + cantidad).
type DocumentLine struct {
	ProductID string
	Quantity  decimal.Decimal
}

// InventoryDocument representa una recepción o entrega planificada que avanza
// por el ciclo Draft → Waiting → Ready → Done, o se cancela antes de Done.
// Validarlo ejecuta el movimiento de stock exactamente una vez y lo deja en Done;
// a partir de ahí (o de Cancelled) el documento es inmutable.
type InventoryDocument struct {
	ID            string
	Kind          string // receipt | delivery
	Reference     string // WH/IN/00001 | WH/OUT/00001, único
	WarehouseID   string // bodega que recibe (receipt) o despacha (delivery)
	Contact       string // proveedor o cliente, texto libre
	ScheduledDate time.Time
	Status        string
	Lines         []DocumentLine
	SourceDoc     string // documento origen (receipt)
	Address       string // dirección de entrega (delivery)
	Responsible   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsTerminal indica si un estado es final (Done o Cancelled).
func IsTerminal(status string) bool {
	return status == StatusDone || status == StatusCancelled
}

// statusOrder posición de cada estado en el flujo hacia Done.
var statusOrder = map[string]int{
	StatusDraft:   0,
	StatusWaiting: 1,
	StatusReady:   2,
	StatusDone:    3,
}

// CanTransition valida un cambio de estado: solo hacia adelante en el flujo,
// nunca desde un estado terminal. Cancelar es válido desde cualquier estado
// no terminal. El paso a Done no se hace por aquí sino validando el documento.
func (d *InventoryDocument) CanTransition(to string) bool {
	if IsTerminal(d.Status) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	from, okFrom := statusOrder[d.Status]
	dest, okTo := statusOrder[to]
	if !okFrom || !okTo {
		return false
	}
	return dest > from && to != StatusDone
}
