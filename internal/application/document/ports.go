package document

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRunner ejecuta la validación de un documento dentro de una transacción:
// el compare-and-set sobre el estado del documento, las actualizaciones de
// stock de todas las líneas y los movimientos del ledger se confirman juntos
// o se revierten todos.
type TxRunner interface {
	RunValidation(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		moveRepo repository.StockMoveRepository,
		stockRepo repository.StockLevelRepository,
	) error) error
}
