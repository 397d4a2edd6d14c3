package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

const lowStockLimit = 100

// LowStockUseCase lista los niveles de stock bajo el umbral configurado con
// la cantidad sugerida de pedido (lo que falta para volver al umbral),
// ordenados del déficit mayor al menor.
type LowStockUseCase struct {
	reportRepo repository.ReportRepository
	cfg        Config
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(reportRepo repository.ReportRepository, cfg Config) *LowStockUseCase {
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = 10
	}
	return &LowStockUseCase{reportRepo: reportRepo, cfg: cfg}
}

// List devuelve los productos bajo umbral con su déficit.
func (uc *LowStockUseCase) List(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	threshold := decimal.NewFromInt(int64(uc.cfg.LowStockThreshold))
	items, err := uc.reportRepo.LowStockItems(ctx, threshold, lowStockLimit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, item := range items {
		suggested := threshold.Sub(item.Quantity)
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		out = append(out, dto.LowStockItemDTO{
			ProductID:    item.ProductID,
			SKU:          item.SKU,
			ProductName:  item.ProductName,
			LocationID:   item.LocationID,
			Location:     item.Location,
			Quantity:     item.Quantity,
			SuggestedQty: suggested,
			UnitCost:     item.UnitCost,
		})
	}

	// Mayor déficit primero; a igual déficit, mayor costo unitario.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SuggestedQty.Equal(out[j].SuggestedQty) {
			return out[i].SuggestedQty.GreaterThan(out[j].SuggestedQty)
		}
		return out[i].UnitCost.GreaterThan(out[j].UnitCost)
	})
	return out, nil
}
