package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para documentos de
// inventario (recepciones y entregas) y sus líneas.
type DocumentRepository interface {
	Create(doc *entity.InventoryDocument) error
	GetByID(id string) (*entity.InventoryDocument, error)
	// GetForUpdate bloquea la fila del documento (SELECT FOR UPDATE) para que
	// la validación sea un compare-and-set sobre el estado.
	GetForUpdate(id string) (*entity.InventoryDocument, error)
	Update(doc *entity.InventoryDocument) error
	// UpdateStatus escribe el estado solo si el documento no está ya en Done
	// o Cancelled; si lo está devuelve ErrAlreadyProcessed. La condición vive
	// en la escritura para que una lectura previa desactualizada no pueda
	// resucitar un documento terminal.
	UpdateStatus(id, status string) error
	List(kind string, limit, offset int) ([]*entity.InventoryDocument, error)
}

// SequenceRepository genera consecutivos atómicos por tipo de documento para
// las referencias WH/IN/00001 y WH/OUT/00001. Nunca contar documentos: contar
// la colección se presta a colisiones bajo creación concurrente.
type SequenceRepository interface {
	Next(kind string) (int64, error)
}
