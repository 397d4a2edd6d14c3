package ledger

import (
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// QueryUseCase lecturas del ledger: niveles de stock y log de movimientos.
// No participa en transacciones; lee el estado confirmado.
type QueryUseCase struct {
	stockRepo repository.StockLevelRepository
	moveRepo  repository.StockMoveRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	stockRepo repository.StockLevelRepository,
	moveRepo repository.StockMoveRepository,
) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo, moveRepo: moveRepo}
}

// StockLevel cantidad actual de un producto en una ubicación. Una clave sin
// fila es cantidad cero, no un error.
func (uc *QueryUseCase) StockLevel(productID, locationID string) (*entity.StockLevel, error) {
	return uc.stockRepo.Get(productID, locationID)
}

// StockLevels lista niveles de stock con paginación.
func (uc *QueryUseCase) StockLevels(limit, offset int) ([]*entity.StockLevel, error) {
	return uc.stockRepo.List(limit, offset)
}

// Moves lista movimientos del log según el filtro, más recientes primero.
func (uc *QueryUseCase) Moves(filter repository.MoveFilter) ([]*entity.StockMove, error) {
	return uc.moveRepo.List(filter)
}
